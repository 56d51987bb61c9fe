// Package composer maps an Analysis onto an ordered, contiguous sequence of
// timed scenes. A recognized concept dispatches to its template; anything
// else falls back to a per-category placeholder scene. Composition is pure
// and synchronous.
package composer

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/animaforge/scene-forge/internal/models"
)

// Compose picks a template for the first detected concept with a registered
// kind. Detection order mirrors rule priority in the analyzer, so the scan is
// a fixed priority list, not a best-confidence search.
func Compose(analysis *models.Analysis, totalDuration float64) (models.SceneList, error) {
	if analysis == nil {
		return nil, errors.Wrap(models.ErrComposition, "analysis is nil")
	}
	if totalDuration <= 0 {
		return nil, errors.Wrapf(models.ErrComposition, "total duration must be positive, got %.2f", totalDuration)
	}

	for _, concept := range analysis.Concepts {
		switch concept.Kind {
		case models.ConceptPythagorean:
			return pythagoreanScenes(analysis, totalDuration), nil
		case models.ConceptVectorAddition:
			return vectorAdditionScenes(analysis, totalDuration), nil
		case models.ConceptBubbleSort:
			return bubbleSortScenes(totalDuration), nil
		case models.ConceptSineWave:
			return sineWaveScenes(analysis, totalDuration), nil
		}
	}

	return fallbackScenes(analysis.Category, totalDuration), nil
}

func newScene(title string, duration, start float64, objects ...models.VisualObject) models.Scene {
	return models.Scene{
		ID:       uuid.New().String(),
		Title:    title,
		Duration: duration,
		Start:    start,
		Objects:  objects,
	}
}

// fallbackScenes emits a single placeholder scene spanning the whole duration.
func fallbackScenes(category models.AnimationStyle, totalDuration float64) models.SceneList {
	var title string
	switch category {
	case models.StyleMathematical:
		title = "Mathematical Visualization"
	case models.StylePhysics:
		title = "Physics Visualization"
	case models.StyleAlgorithmic:
		title = "Algorithm Demonstration"
	case models.StyleScientific:
		title = "Scientific Visualization"
	default:
		title = "Educational Visualization"
	}

	scene := newScene(title, totalDuration, 0, models.VisualObject{
		ID:   "title",
		Type: models.ObjectText,
		Properties: map[string]interface{}{
			"text":      title,
			"x":         960,
			"y":         200,
			"fontSize":  48,
			"color":     "#2E3440",
			"textAlign": "center",
		},
		Animations: []models.PropertyAnimation{fadeIn(2, 0)},
	})
	return models.SceneList{scene}
}

func fadeIn(duration, delay float64) models.PropertyAnimation {
	return models.PropertyAnimation{
		Property: "opacity",
		From:     0,
		To:       1,
		Duration: duration,
		Delay:    delay,
	}
}
