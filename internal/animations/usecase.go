package animations

import (
	"context"

	"github.com/animaforge/scene-forge/internal/models"
	"github.com/animaforge/scene-forge/pkg/utils"
	"github.com/google/uuid"
)

type UseCase interface {
	CreateJob(ctx context.Context, userID uuid.UUID, input *models.CreateAnimationInput) (*models.AnimationJob, error)
	GetJob(ctx context.Context, jobID string) (*models.AnimationJob, error)
	GetJobStatus(ctx context.Context, jobID string) (*models.JobStatusInfo, error)
	GetProgramURL(ctx context.Context, jobID string) (string, error)
	ListJobs(ctx context.Context, userID uuid.UUID, pagination *utils.Pagination) (*models.JobList, error)
}
