package models

import (
	"fmt"
	"time"
)

type JobStatus string

const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusProcessing JobStatus = "processing"
	JobStatusRendering  JobStatus = "rendering"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Terminal reports whether no further transition may mutate the job.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

type AnimationStyle string

const (
	StyleMathematical AnimationStyle = "mathematical"
	StylePhysics      AnimationStyle = "physics"
	StyleAlgorithmic  AnimationStyle = "algorithmic"
	StyleScientific   AnimationStyle = "scientific"
	StyleGeneral      AnimationStyle = "general"
)

type Quality string

const (
	QualityPreview Quality = "preview"
	QualitySD      Quality = "sd"
	QualityHD      Quality = "hd"
	Quality4K      Quality = "4k"
)

type Engine string

const (
	// EngineHeuristic runs the analyzer/composer pipeline.
	EngineHeuristic Engine = "heuristic"
	// EngineScript asks the external script provider for a pre-structured scene document.
	EngineScript Engine = "script"
)

const (
	MaxDescriptionLen = 2000
	MinJobDuration    = 1
	MaxJobDuration    = 300
)

type AnimationJob struct {
	JobID       string         `json:"job_id" db:"job_id" redis:"job_id" validate:"omitempty"`
	UserID      string         `json:"user_id" db:"user_id" redis:"user_id" validate:"omitempty"`
	Title       string         `json:"title" db:"title" redis:"title" validate:"omitempty,lte=200"`
	Description string         `json:"description" db:"description" redis:"description" validate:"required,lte=2000"`
	Style       AnimationStyle `json:"style" db:"style" redis:"style" validate:"required,oneof=mathematical physics algorithmic scientific general"`
	Duration    float64        `json:"duration" db:"duration" redis:"duration" validate:"gte=1,lte=300"`
	Quality     Quality        `json:"quality" db:"quality" redis:"quality" validate:"required,oneof=preview sd hd 4k"`
	Engine      Engine         `json:"engine" db:"engine" redis:"engine" validate:"required,oneof=heuristic script"`
	Status      JobStatus      `json:"status" db:"status" redis:"status" validate:"required"`
	Progress    float64        `json:"progress" db:"progress" redis:"progress" validate:"gte=0,lte=100"`
	Logs        JobLogs        `json:"logs" db:"logs" redis:"logs" validate:"omitempty"`
	Error       *string        `json:"error" db:"error" redis:"error" validate:"omitempty"`
	Analysis    *Analysis      `json:"analysis" db:"analysis" redis:"analysis" validate:"omitempty"`
	Scenes      SceneList      `json:"scenes" db:"scenes" redis:"scenes" validate:"omitempty"`
	Program     *Program       `json:"program" db:"program" redis:"program" validate:"omitempty"`
	ResultPath  *string        `json:"result_path" db:"result_path" redis:"result_path" validate:"omitempty"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at" redis:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at" redis:"updated_at"`
}

// AppendLog records a timestamped entry on the job's append-only log.
func (j *AnimationJob) AppendLog(format string, args ...interface{}) {
	entry := fmt.Sprintf("[%s] %s", time.Now().UTC().Format(time.RFC3339), fmt.Sprintf(format, args...))
	j.Logs = append(j.Logs, entry)
}

// SetError marks the job failed without touching progress.
func (j *AnimationJob) SetError(msg string) {
	j.Status = JobStatusFailed
	j.Error = &msg
	j.AppendLog("%s", msg)
}

type JobStatusInfo struct {
	JobID       string    `json:"job_id" redis:"job_id"`
	Status      JobStatus `json:"status" redis:"status"`
	Progress    float64   `json:"progress" redis:"progress"`
	Error       *string   `json:"error" redis:"error"`
	LastUpdated time.Time `json:"last_updated" redis:"last_updated"`
}

type CreateAnimationInput struct {
	Title       string         `json:"title" validate:"omitempty,lte=200"`
	Description string         `json:"description" validate:"required"`
	Style       AnimationStyle `json:"style" validate:"omitempty,oneof=mathematical physics algorithmic scientific general"`
	Duration    float64        `json:"duration" validate:"omitempty"`
	Quality     Quality        `json:"quality" validate:"omitempty,oneof=preview sd hd 4k"`
	Engine      Engine         `json:"engine" validate:"omitempty,oneof=heuristic script"`
}

type JobList struct {
	Jobs       []*AnimationJob `json:"jobs"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	HasMore    bool            `json:"has_more"`
}
