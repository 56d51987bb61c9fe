package analyzer

import (
	"errors"
	"strings"
	"testing"

	"github.com/animaforge/scene-forge/internal/models"
)

func TestAnalyzeRejectsEmptyDescription(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := Analyze(text, models.StyleGeneral); !errors.Is(err, models.ErrInvalidInput) {
			t.Errorf("Analyze(%q) error = %v, want ErrInvalidInput", text, err)
		}
	}
}

func TestAnalyzeRejectsOverlongDescription(t *testing.T) {
	text := strings.Repeat("a", models.MaxDescriptionLen+1)
	if _, err := Analyze(text, models.StyleGeneral); !errors.Is(err, models.ErrInvalidInput) {
		t.Fatalf("Analyze(overlong) error = %v, want ErrInvalidInput", err)
	}
}

func TestAnalyzePythagorean(t *testing.T) {
	analysis, err := Analyze("Show the Pythagorean theorem with sides 3 and 4", models.StyleGeneral)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if analysis.Category != models.StyleMathematical {
		t.Errorf("category = %s, want mathematical", analysis.Category)
	}
	if len(analysis.Concepts) == 0 || analysis.Concepts[0].Kind != models.ConceptPythagorean {
		t.Fatalf("concepts = %+v, want pythagorean first", analysis.Concepts)
	}
	if got := len(analysis.Numbers); got != 2 {
		t.Fatalf("numbers = %d, want 2", got)
	}
	if analysis.Numbers[0].Value != 3 || analysis.Numbers[1].Value != 4 {
		t.Errorf("numbers = %v, want [3 4] in text order", analysis.Numbers)
	}
}

func TestAnalyzeVectorAddition(t *testing.T) {
	analysis, err := Analyze("Demonstrate vector addition with magnitude and direction", models.StyleGeneral)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if analysis.Category != models.StylePhysics {
		t.Errorf("category = %s, want physics", analysis.Category)
	}
	if len(analysis.Concepts) != 1 || analysis.Concepts[0].Kind != models.ConceptVectorAddition {
		t.Fatalf("concepts = %+v, want single vector addition", analysis.Concepts)
	}
}

func TestAnalyzeBubbleSort(t *testing.T) {
	analysis, err := Analyze("Bubble sort shown step by step", models.StyleGeneral)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if analysis.Category != models.StyleAlgorithmic {
		t.Errorf("category = %s, want algorithmic", analysis.Category)
	}
	if len(analysis.Concepts) != 1 || analysis.Concepts[0].Kind != models.ConceptBubbleSort {
		t.Fatalf("concepts = %+v, want single bubble sort", analysis.Concepts)
	}
	if analysis.AnimationType != "step-by-step" {
		t.Errorf("animation type = %s, want step-by-step", analysis.AnimationType)
	}
	if !analysis.Timing.HasSteps {
		t.Error("timing.HasSteps = false, want true")
	}
}

func TestAnalyzeSineWave(t *testing.T) {
	analysis, err := Analyze("Plot a sine wave with amplitude 2 and frequency 3", models.StyleGeneral)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(analysis.Concepts) != 1 || analysis.Concepts[0].Kind != models.ConceptSineWave {
		t.Fatalf("concepts = %+v, want single sine wave", analysis.Concepts)
	}
	if analysis.Number(0, 1) != 2 || analysis.Number(1, 1) != 3 {
		t.Errorf("numbers = %v, want amplitude 2 frequency 3", analysis.Numbers)
	}
}

// A one-to-one score tie must resolve to the earliest declared category, and
// a preferred style may only win by bonus when it scored at all.
func TestClassifyTieBreakAndPreferredBonus(t *testing.T) {
	tied, err := Analyze("a triangle wave", models.StyleGeneral)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if tied.Category != models.StyleMathematical {
		t.Errorf("tie category = %s, want mathematical (declared first)", tied.Category)
	}

	nudged, err := Analyze("a triangle wave", models.StylePhysics)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if nudged.Category != models.StylePhysics {
		t.Errorf("preferred category = %s, want physics", nudged.Category)
	}

	// No physics keyword at all: the bonus must not apply.
	unscored, err := Analyze("a triangle and a square", models.StylePhysics)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if unscored.Category != models.StyleMathematical {
		t.Errorf("category = %s, want mathematical despite physics preference", unscored.Category)
	}
}

func TestAnalyzeGeneralFallback(t *testing.T) {
	analysis, err := Analyze("hello there friend", models.StyleGeneral)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if analysis.Category != models.StyleGeneral {
		t.Errorf("category = %s, want general", analysis.Category)
	}
	if len(analysis.Concepts) != 0 {
		t.Errorf("concepts = %+v, want none", analysis.Concepts)
	}
	if analysis.AnimationType != "static" {
		t.Errorf("animation type = %s, want static", analysis.AnimationType)
	}
}

func TestTimingHints(t *testing.T) {
	analysis, err := Analyze("First draw the axes, then trace both curves at the same time", models.StyleGeneral)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !analysis.Timing.HasSequence {
		t.Error("HasSequence = false, want true")
	}
	if !analysis.Timing.IsSimultaneous {
		t.Error("IsSimultaneous = false, want true")
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	const text = "Bubble sort with the array 5 3 8 step by step"
	first, err := Analyze(text, models.StyleGeneral)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Analyze(text, models.StyleGeneral)
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if again.Category != first.Category || again.AnimationType != first.AnimationType ||
			len(again.Concepts) != len(first.Concepts) || len(again.Numbers) != len(first.Numbers) {
			t.Fatalf("run %d diverged: %+v vs %+v", i, again, first)
		}
	}
}
