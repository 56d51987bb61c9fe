// Package compiler flattens a scene sequence into the single renderer-facing
// Program: a global timeline, a deduplicated object table and a flat list of
// absolute-time animation instructions. It trusts the composer's timing
// invariant and performs no validation of its own.
package compiler

import (
	"github.com/google/uuid"

	"github.com/animaforge/scene-forge/internal/models"
)

// Compile walks the scenes in order, accumulating a running offset equal to
// each scene's own start time. Scene-relative animation delays become
// program-absolute start times. When two scenes emit the same object id the
// later scene overwrites the earlier table entry: the renderer reads that as
// one object continuing across scenes.
func Compile(scenes models.SceneList, style models.AnimationStyle) *models.Program {
	program := &models.Program{
		Metadata: models.ProgramMetadata{
			Version:         models.ProgramVersion,
			Style:           style,
			SceneCount:      len(scenes),
			FPS:             models.DefaultFPS,
			BackgroundColor: models.DefaultBackgroundColor,
			Width:           models.DefaultCanvasWidth,
			Height:          models.DefaultCanvasHeight,
		},
		Timeline:   make([]models.TimelineEntry, 0, len(scenes)),
		Objects:    make(map[string]models.ProgramObject),
		Animations: make([]models.ProgramAnimation, 0),
	}

	currentTime := 0.0
	for _, scene := range scenes {
		program.Timeline = append(program.Timeline, models.TimelineEntry{
			SceneID: scene.ID,
			Start:   currentTime,
			End:     currentTime + scene.Duration,
			Title:   scene.Title,
		})

		for _, obj := range scene.Objects {
			program.Objects[obj.ID] = models.ProgramObject{
				VisualObject: obj,
				SceneID:      scene.ID,
			}

			for _, anim := range obj.Animations {
				easing := anim.Easing
				if easing == "" {
					easing = models.DefaultEasing
				}
				program.Animations = append(program.Animations, models.ProgramAnimation{
					ID:        uuid.New().String(),
					ObjectID:  obj.ID,
					SceneID:   scene.ID,
					StartTime: currentTime + anim.Delay,
					Duration:  anim.Duration,
					Property:  anim.Property,
					FromValue: anim.From,
					ToValue:   anim.To,
					Easing:    easing,
				})
			}
		}

		currentTime += scene.Duration
	}

	program.Metadata.TotalDuration = currentTime
	return program
}
