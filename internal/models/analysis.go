package models

// ConceptKind enumerates the concepts the composer knows how to animate.
// Detection rules in the analyzer append concepts in a fixed priority order,
// so the composer can dispatch on the first kind it has a template for.
type ConceptKind string

const (
	ConceptPythagorean    ConceptKind = "pythagorean_theorem"
	ConceptVectorAddition ConceptKind = "vector_addition"
	ConceptBubbleSort     ConceptKind = "bubble_sort"
	ConceptSineWave       ConceptKind = "sine_wave"
)

type Concept struct {
	Name       string      `json:"name"`
	Kind       ConceptKind `json:"kind"`
	Category   string      `json:"category"`
	Confidence float64     `json:"confidence"`
}

type NumberLiteral struct {
	Value    float64 `json:"value"`
	Original string  `json:"original"`
}

type TimingHints struct {
	HasSequence    bool `json:"has_sequence"`
	IsSimultaneous bool `json:"is_simultaneous"`
	HasSteps       bool `json:"has_steps"`
}

// Analysis is the immutable output of the lexical analyzer.
type Analysis struct {
	Tokens        []string        `json:"tokens"`
	Category      AnimationStyle  `json:"category"`
	Concepts      []Concept       `json:"concepts"`
	Numbers       []NumberLiteral `json:"numbers"`
	AnimationType string          `json:"animation_type"`
	Timing        TimingHints     `json:"timing"`
}

// Number returns the i-th extracted numeric literal, or fallback when absent.
func (a *Analysis) Number(i int, fallback float64) float64 {
	if i < 0 || i >= len(a.Numbers) {
		return fallback
	}
	return a.Numbers[i].Value
}
