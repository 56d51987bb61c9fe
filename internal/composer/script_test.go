package composer

import (
	"errors"
	"testing"

	"github.com/animaforge/scene-forge/internal/models"
)

func TestFromScriptRejectsMissingScenes(t *testing.T) {
	if _, err := FromScript(nil); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("FromScript(nil) error = %v, want ErrInvalidInput", err)
	}
	if _, err := FromScript(&models.SceneScript{}); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("FromScript(no scenes) error = %v, want ErrInvalidInput", err)
	}
	if _, err := FromScript(&models.SceneScript{Scenes: []models.ScriptScene{}}); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("FromScript(empty scenes) error = %v, want ErrInvalidInput", err)
	}
}

func TestFromScriptConvertsScenes(t *testing.T) {
	script := &models.SceneScript{
		Title:    "Orbit Demo",
		Duration: 8,
		Scenes: []models.ScriptScene{
			{
				ID:        "s1",
				Duration:  5,
				Narration: "A ball rises",
				Objects: []models.ScriptObject{
					{
						ID:   "ball",
						Type: "sphere",
						Keyframes: []models.ObjectKeyframe{
							{T: 0, Position: []float64{0, 0, 0}},
							{T: 2, Position: []float64{0, 1, 0}, Scale: []float64{1, 1, 1}},
							{T: 4, Position: []float64{0, 2, 0}, Scale: []float64{2, 2, 2}},
						},
					},
				},
			},
			{Objects: nil},
		},
	}

	scenes, err := FromScript(script)
	if err != nil {
		t.Fatalf("FromScript: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("scenes = %d, want 2", len(scenes))
	}

	first := scenes[0]
	if first.ID != "s1" || first.Title != "Orbit Demo (scene 1)" {
		t.Errorf("first scene = %s / %q", first.ID, first.Title)
	}
	if first.Start != 0 || first.Duration != 5 {
		t.Errorf("first scene timing = %.1f@%.1f, want 5@0", first.Duration, first.Start)
	}
	if first.Narration != "A ball rises" {
		t.Errorf("narration = %q", first.Narration)
	}
	if first.Camera == nil || first.Camera.Type != "static" {
		t.Errorf("camera default missing: %+v", first.Camera)
	}
	if len(first.Objects) != 1 {
		t.Fatalf("objects = %d, want 1", len(first.Objects))
	}

	ball := first.Objects[0]
	if ball.Properties["shape"] != "sphere" {
		t.Errorf("shape = %v, want sphere", ball.Properties["shape"])
	}
	// Three keyframes make two position pairs; scale only appears on the
	// last pair because the first keyframe has none.
	positions, scales := 0, 0
	for _, anim := range ball.Animations {
		switch anim.Property {
		case "position":
			positions++
		case "scale":
			scales++
		}
	}
	if positions != 2 || scales != 1 {
		t.Errorf("animations = %d position / %d scale, want 2/1", positions, scales)
	}

	// The second scene had no duration of its own: it gets an even share of
	// the script total, and starts where the first ended.
	second := scenes[1]
	if second.Duration != 4 {
		t.Errorf("second duration = %.1f, want 4 (8 / 2 scenes)", second.Duration)
	}
	if second.Start != 5 {
		t.Errorf("second start = %.1f, want 5", second.Start)
	}
	if second.ID == "" {
		t.Error("second scene id was not generated")
	}
}

func TestFromScriptDefaultSceneDuration(t *testing.T) {
	script := &models.SceneScript{Scenes: []models.ScriptScene{{}}}
	scenes, err := FromScript(script)
	if err != nil {
		t.Fatalf("FromScript: %v", err)
	}
	if scenes[0].Duration != defaultScriptSceneDuration {
		t.Errorf("duration = %.1f, want %d", scenes[0].Duration, defaultScriptSceneDuration)
	}
	if scenes[0].Title != "Untitled (scene 1)" {
		t.Errorf("title = %q", scenes[0].Title)
	}
}
