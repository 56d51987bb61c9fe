package models

const ProgramVersion = "1.0"

// Rendering defaults carried on every compiled program.
const (
	DefaultFPS             = 30
	DefaultBackgroundColor = "#ffffff"
	DefaultCanvasWidth     = 1920
	DefaultCanvasHeight    = 1080
)

type ProgramMetadata struct {
	Version         string         `json:"version"`
	Style           AnimationStyle `json:"style"`
	TotalDuration   float64        `json:"total_duration"`
	SceneCount      int            `json:"scene_count"`
	FPS             int            `json:"fps"`
	BackgroundColor string         `json:"background_color"`
	Width           int            `json:"width"`
	Height          int            `json:"height"`
}

type TimelineEntry struct {
	SceneID string  `json:"scene_id"`
	Start   float64 `json:"start_time"`
	End     float64 `json:"end_time"`
	Title   string  `json:"title"`
}

// ProgramObject is a scene object lifted into the global object table,
// tagged with the scene that emitted it.
type ProgramObject struct {
	VisualObject
	SceneID string `json:"scene_id"`
}

// ProgramAnimation is a flattened instruction with a program-absolute start time.
type ProgramAnimation struct {
	ID        string      `json:"id"`
	ObjectID  string      `json:"object_id"`
	SceneID   string      `json:"scene_id"`
	StartTime float64     `json:"start_time"`
	Duration  float64     `json:"duration"`
	Property  string      `json:"property"`
	FromValue interface{} `json:"from_value"`
	ToValue   interface{} `json:"to_value"`
	Easing    string      `json:"easing"`
}

// Program is the compiled, renderer-facing artifact. Produced once, never mutated.
type Program struct {
	Metadata   ProgramMetadata          `json:"metadata"`
	Timeline   []TimelineEntry          `json:"timeline"`
	Objects    map[string]ProgramObject `json:"objects"`
	Animations []ProgramAnimation       `json:"animations"`
}
