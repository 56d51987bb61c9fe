package models

type ObjectType string

const (
	ObjectText     ObjectType = "text"
	ObjectShape    ObjectType = "shape"
	ObjectLine     ObjectType = "line"
	ObjectArrow    ObjectType = "arrow"
	ObjectGraph    ObjectType = "graph"
	ObjectEquation ObjectType = "equation"
	ObjectImage    ObjectType = "image"
)

const DefaultEasing = "ease-in-out"

// PropertyAnimation animates a single property of a visual object.
// Delay is relative to the owning scene's start, not the program's.
type PropertyAnimation struct {
	Property string      `json:"property"`
	From     interface{} `json:"from"`
	To       interface{} `json:"to"`
	Duration float64     `json:"duration"`
	Easing   string      `json:"easing,omitempty"`
	Delay    float64     `json:"delay,omitempty"`
}

type VisualObject struct {
	ID         string                 `json:"id"`
	Type       ObjectType             `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Animations []PropertyAnimation    `json:"animations"`
}

// Scene is one timed segment of the program. Consecutive scenes emitted by
// the composer are contiguous: scenes[i+1].Start == scenes[i].Start + scenes[i].Duration.
type Scene struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Duration   float64        `json:"duration"`
	Start      float64        `json:"start_time"`
	Objects    []VisualObject `json:"objects"`
	Background string         `json:"background,omitempty"`
	// Narration and Camera are only populated by the script ingestion path.
	Narration string        `json:"narration,omitempty"`
	Camera    *ScriptCamera `json:"camera,omitempty"`
}

type SceneList []Scene
