package models

import "encoding/json"

// SceneScript is the pre-structured scene document returned by the external
// script provider. It replaces the analyzer/composer pair when a job runs
// with EngineScript and must be validated before compilation.
type SceneScript struct {
	Title    string        `json:"title"`
	Duration float64       `json:"duration"`
	Scenes   []ScriptScene `json:"scenes"`
}

type ScriptScene struct {
	ID        string                   `json:"id"`
	Duration  float64                  `json:"duration"`
	Narration string                   `json:"narration"`
	Camera    *ScriptCamera            `json:"camera,omitempty"`
	Objects   []ScriptObject           `json:"objects"`
	Events    []map[string]interface{} `json:"events,omitempty"`
}

type ScriptCamera struct {
	Type      string           `json:"type"`
	Keyframes []CameraKeyframe `json:"keyframes"`
}

type CameraKeyframe struct {
	T        float64    `json:"t"`
	Position [3]float64 `json:"position"`
	LookAt   [3]float64 `json:"lookAt"`
}

type ScriptObject struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Params    map[string]interface{} `json:"params"`
	Keyframes []ObjectKeyframe       `json:"keyframes"`
	Physics   map[string]interface{} `json:"physics,omitempty"`
}

type ObjectKeyframe struct {
	T        float64   `json:"t"`
	Position []float64 `json:"position,omitempty"`
	Rotation []float64 `json:"rotation,omitempty"`
	Scale    []float64 `json:"scale,omitempty"`
}

// ParseSceneScript decodes provider output. A payload whose "scenes" field is
// not an array fails to decode and is reported as invalid input.
func ParseSceneScript(raw []byte) (*SceneScript, error) {
	script := &SceneScript{}
	if err := json.Unmarshal(raw, script); err != nil {
		return nil, ErrInvalidInput
	}
	if script.Scenes == nil {
		return nil, ErrInvalidInput
	}
	return script, nil
}
