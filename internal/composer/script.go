package composer

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/animaforge/scene-forge/internal/models"
)

const defaultScriptSceneDuration = 3

// FromScript validates a provider-generated scene document and converts it
// into the composer's scene sequence, so the rest of the pipeline (compiler,
// artifact sink) runs unchanged. Keyframe pairs become property animations
// with scene-relative delays.
func FromScript(script *models.SceneScript) (models.SceneList, error) {
	if script == nil || script.Scenes == nil {
		return nil, errors.Wrap(models.ErrInvalidInput, "script has no scene array")
	}
	if len(script.Scenes) == 0 {
		return nil, errors.Wrap(models.ErrInvalidInput, "script scene array is empty")
	}

	scenes := make(models.SceneList, 0, len(script.Scenes))
	start := 0.0
	for i, src := range script.Scenes {
		duration := src.Duration
		if duration <= 0 && script.Duration > 0 {
			duration = script.Duration / float64(len(script.Scenes))
		}
		if duration <= 0 {
			duration = defaultScriptSceneDuration
		}

		title := script.Title
		if title == "" {
			title = "Untitled"
		}
		scene := models.Scene{
			ID:        src.ID,
			Title:     fmt.Sprintf("%s (scene %d)", title, i+1),
			Duration:  duration,
			Start:     start,
			Narration: src.Narration,
			Camera:    src.Camera,
		}
		if scene.ID == "" {
			scene.ID = uuid.New().String()
		}
		if scene.Camera == nil {
			scene.Camera = &models.ScriptCamera{
				Type:      "static",
				Keyframes: []models.CameraKeyframe{{T: 0, Position: [3]float64{0, 2, 5}}},
			}
		}

		for _, obj := range src.Objects {
			scene.Objects = append(scene.Objects, scriptObject(obj))
		}

		scenes = append(scenes, scene)
		start += duration
	}
	return scenes, nil
}

func scriptObject(src models.ScriptObject) models.VisualObject {
	obj := models.VisualObject{
		ID:   src.ID,
		Type: models.ObjectShape,
		Properties: map[string]interface{}{
			"shape": src.Type,
		},
	}
	if obj.ID == "" {
		obj.ID = uuid.New().String()
	}
	if obj.Properties["shape"] == "" {
		obj.Properties["shape"] = "sphere"
	}
	if len(src.Params) > 0 {
		obj.Properties["params"] = src.Params
	} else {
		obj.Properties["params"] = map[string]interface{}{"radius": 0.3, "color": "#ff0000"}
	}
	if src.Physics != nil {
		obj.Properties["physics"] = src.Physics
	}

	for i := 0; i+1 < len(src.Keyframes); i++ {
		from, to := src.Keyframes[i], src.Keyframes[i+1]
		duration := to.T - from.T
		if duration <= 0 {
			continue
		}
		if from.Position != nil && to.Position != nil {
			obj.Animations = append(obj.Animations, models.PropertyAnimation{
				Property: "position", From: from.Position, To: to.Position,
				Duration: duration, Delay: from.T,
			})
		}
		if from.Rotation != nil && to.Rotation != nil {
			obj.Animations = append(obj.Animations, models.PropertyAnimation{
				Property: "rotation", From: from.Rotation, To: to.Rotation,
				Duration: duration, Delay: from.T,
			})
		}
		if from.Scale != nil && to.Scale != nil {
			obj.Animations = append(obj.Animations, models.PropertyAnimation{
				Property: "scale", From: from.Scale, To: to.Scale,
				Duration: duration, Delay: from.T,
			})
		}
	}
	return obj
}
