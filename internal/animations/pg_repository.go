package animations

import (
	"context"

	"github.com/animaforge/scene-forge/internal/models"
	"github.com/animaforge/scene-forge/pkg/utils"
	"github.com/google/uuid"
)

// Repository is the job store. Save is a full-record write with
// last-write-wins semantics; the state machine calls it after every
// transition.
type Repository interface {
	CreateJob(ctx context.Context, job *models.AnimationJob) (*models.AnimationJob, error)
	GetJobByID(ctx context.Context, jobID string) (*models.AnimationJob, error)
	SaveJob(ctx context.Context, job *models.AnimationJob) error
	GetJobs(ctx context.Context, userID uuid.UUID, pagination *utils.Pagination) (*models.JobList, error)
	GetQueuedJobIDs(ctx context.Context, limit int) ([]string, error)
}
