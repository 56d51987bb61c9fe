package analyzer

import "github.com/animaforge/scene-forge/internal/models"

// categoryKeywords maps category -> sub-topic -> keyword list. A token
// contributes one point per sub-topic list containing it, and may score for
// several categories at once. The slice keeps declaration order: score ties
// resolve to the earliest category, never to map iteration order.
type topicList struct {
	topic    string
	keywords []string
}

type categoryEntry struct {
	category models.AnimationStyle
	topics   []topicList
}

var categoryKeywords = []categoryEntry{
	{
		category: models.StyleMathematical,
		topics: []topicList{
			{"geometry", []string{"triangle", "square", "circle", "rectangle", "polygon", "angle", "side", "vertex", "area", "perimeter"}},
			{"algebra", []string{"equation", "variable", "solve", "function", "graph", "plot", "linear", "quadratic", "polynomial"}},
			{"calculus", []string{"derivative", "integral", "limit", "slope", "curve", "tangent"}},
			{"theorem", []string{"pythagorean", "theorem", "proof", "formula", "identity", "property"}},
		},
	},
	{
		category: models.StylePhysics,
		topics: []topicList{
			{"mechanics", []string{"velocity", "acceleration", "force", "momentum", "energy", "motion", "gravity"}},
			{"waves", []string{"wave", "frequency", "amplitude", "wavelength", "interference", "oscillation"}},
			{"vectors", []string{"vector", "magnitude", "direction", "addition", "subtraction", "component"}},
		},
	},
	{
		category: models.StyleAlgorithmic,
		topics: []topicList{
			{"sorting", []string{"sort", "bubble", "quicksort", "mergesort", "heapsort", "insertion"}},
			{"searching", []string{"search", "binary", "find", "lookup"}},
			{"structures", []string{"array", "list", "stack", "queue", "tree", "heap"}},
		},
	},
	{
		category: models.StyleScientific,
		topics: []topicList{
			{"chemistry", []string{"molecule", "atom", "bond", "reaction", "element", "compound"}},
			{"biology", []string{"cell", "organism", "evolution", "genetics", "protein", "dna"}},
			{"general", []string{"process", "cycle", "system", "structure"}},
		},
	},
}

// animationTypeKeywords follows the same scoring pattern as classification.
// "static" wins when every score is zero.
var animationTypeKeywords = []struct {
	name     string
	keywords []string
}{
	{"step-by-step", []string{"step", "steps", "process", "sequence", "algorithm"}},
	{"transformation", []string{"transform", "change", "morph", "become", "convert"}},
	{"motion", []string{"move", "motion", "velocity", "acceleration", "path"}},
	{"growth", []string{"grow", "expand", "increase", "enlarge", "scale"}},
	{"construction", []string{"build", "construct", "create", "draw", "make"}},
}

// conceptRules run in order; every matching rule appends one concept, so a
// description may carry several concepts at once. Rule order is the dispatch
// priority the composer relies on: theorem before operation before algorithm.
type conceptRule struct {
	name       string
	kind       models.ConceptKind
	category   string
	confidence float64
	match      func(tokens tokenSet) bool
}

var conceptRules = []conceptRule{
	{
		name: "Pythagorean Theorem", kind: models.ConceptPythagorean, category: "mathematics", confidence: 0.9,
		match: func(t tokenSet) bool { return t.has("pythagorean") && t.has("theorem") },
	},
	{
		name: "Vector Addition", kind: models.ConceptVectorAddition, category: "physics", confidence: 0.8,
		match: func(t tokenSet) bool { return t.has("vector") && t.hasAny("addition", "add", "sum") },
	},
	{
		name: "Bubble Sort", kind: models.ConceptBubbleSort, category: "algorithmic", confidence: 0.9,
		match: func(t tokenSet) bool { return t.has("bubble") && t.has("sort") },
	},
	{
		name: "Sine Wave", kind: models.ConceptSineWave, category: "mathematics", confidence: 0.8,
		match: func(t tokenSet) bool { return t.hasAny("sine", "sin") },
	},
}

type tokenSet map[string]struct{}

func newTokenSet(tokens []string) tokenSet {
	s := make(tokenSet, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

func (s tokenSet) has(word string) bool {
	_, ok := s[word]
	return ok
}

func (s tokenSet) hasAny(words ...string) bool {
	for _, w := range words {
		if s.has(w) {
			return true
		}
	}
	return false
}
