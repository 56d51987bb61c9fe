package compiler

import (
	"math"
	"testing"

	"github.com/animaforge/scene-forge/internal/models"
)

func testScenes() models.SceneList {
	return models.SceneList{
		{
			ID: "scene-1", Title: "Intro", Duration: 4, Start: 0,
			Objects: []models.VisualObject{
				{
					ID: "title", Type: models.ObjectText,
					Properties: map[string]interface{}{"text": "hello"},
					Animations: []models.PropertyAnimation{
						{Property: "opacity", From: 0, To: 1, Duration: 1, Delay: 0.5},
					},
				},
			},
		},
		{
			ID: "scene-2", Title: "Main", Duration: 6, Start: 4,
			Objects: []models.VisualObject{
				{
					ID: "shape", Type: models.ObjectShape,
					Properties: map[string]interface{}{"shape": "rectangle"},
					Animations: []models.PropertyAnimation{
						{Property: "x", From: 0, To: 100, Duration: 2, Delay: 1, Easing: "ease-out"},
						{Property: "opacity", From: 0, To: 1, Duration: 1},
					},
				},
			},
		},
	}
}

func TestCompileTimeline(t *testing.T) {
	program := Compile(testScenes(), models.StyleMathematical)

	if program.Metadata.Version != models.ProgramVersion {
		t.Errorf("version = %s, want %s", program.Metadata.Version, models.ProgramVersion)
	}
	if program.Metadata.SceneCount != 2 {
		t.Errorf("scene count = %d, want 2", program.Metadata.SceneCount)
	}
	if program.Metadata.TotalDuration != 10 {
		t.Errorf("total duration = %.1f, want 10", program.Metadata.TotalDuration)
	}
	if program.Metadata.Style != models.StyleMathematical {
		t.Errorf("style = %s", program.Metadata.Style)
	}

	if len(program.Timeline) != 2 {
		t.Fatalf("timeline entries = %d, want 2", len(program.Timeline))
	}
	second := program.Timeline[1]
	if second.SceneID != "scene-2" || second.Start != 4 || second.End != 10 {
		t.Errorf("timeline[1] = %+v, want scene-2 from 4 to 10", second)
	}
}

func TestCompileAbsoluteAnimationTimes(t *testing.T) {
	program := Compile(testScenes(), models.StyleGeneral)

	if len(program.Animations) != 3 {
		t.Fatalf("animations = %d, want 3", len(program.Animations))
	}

	byProperty := map[string][]models.ProgramAnimation{}
	for _, anim := range program.Animations {
		byProperty[anim.Property] = append(byProperty[anim.Property], anim)
		if anim.ID == "" {
			t.Error("animation id was not generated")
		}
	}

	// Scene-relative delay 0.5 in a scene starting at 0.
	intro := byProperty["opacity"][0]
	if math.Abs(intro.StartTime-0.5) > 1e-9 {
		t.Errorf("intro opacity starts at %.2f, want 0.5", intro.StartTime)
	}
	if intro.Easing != models.DefaultEasing {
		t.Errorf("easing = %s, want default %s", intro.Easing, models.DefaultEasing)
	}

	// Scene 2 starts at 4; delay 1 puts the move at 5.
	move := byProperty["x"][0]
	if math.Abs(move.StartTime-5) > 1e-9 {
		t.Errorf("x animation starts at %.2f, want 5", move.StartTime)
	}
	if move.Easing != "ease-out" {
		t.Errorf("explicit easing was overwritten: %s", move.Easing)
	}
	if move.SceneID != "scene-2" || move.ObjectID != "shape" {
		t.Errorf("animation attribution = %s/%s", move.SceneID, move.ObjectID)
	}
}

// When two scenes emit the same object id the later entry wins the object
// table, while animations from both scenes survive with their own scene ids.
func TestCompileObjectOverwriteKeepsBothAnimations(t *testing.T) {
	scenes := models.SceneList{
		{
			ID: "a", Duration: 2,
			Objects: []models.VisualObject{{
				ID: "bar", Type: models.ObjectShape,
				Properties: map[string]interface{}{"fill": "blue"},
				Animations: []models.PropertyAnimation{{Property: "opacity", From: 0, To: 1, Duration: 1}},
			}},
		},
		{
			ID: "b", Duration: 2,
			Objects: []models.VisualObject{{
				ID: "bar", Type: models.ObjectShape,
				Properties: map[string]interface{}{"fill": "red"},
				Animations: []models.PropertyAnimation{{Property: "fill", From: "blue", To: "red", Duration: 1}},
			}},
		},
	}

	program := Compile(scenes, models.StyleGeneral)

	if len(program.Objects) != 1 {
		t.Fatalf("objects = %d, want 1 (same id collapses)", len(program.Objects))
	}
	bar := program.Objects["bar"]
	if bar.SceneID != "b" || bar.Properties["fill"] != "red" {
		t.Errorf("object table kept %s/%v, want the later scene's entry", bar.SceneID, bar.Properties["fill"])
	}
	if len(program.Animations) != 2 {
		t.Errorf("animations = %d, want both kept", len(program.Animations))
	}
}

func TestCompileEmptySceneList(t *testing.T) {
	program := Compile(models.SceneList{}, models.StyleGeneral)
	if program.Metadata.TotalDuration != 0 || len(program.Timeline) != 0 {
		t.Errorf("empty compile produced %+v", program.Metadata)
	}
	if program.Objects == nil || program.Animations == nil {
		t.Error("maps and slices must be allocated even when empty")
	}
}
