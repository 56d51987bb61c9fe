package animations

import (
	"context"

	"github.com/animaforge/scene-forge/internal/models"
)

// RedisRepository caches per-job status so the poll endpoint does not hit
// postgres on every request. Entries are refreshed on every transition.
type RedisRepository interface {
	SetJobStatus(ctx context.Context, job *models.AnimationJob) error
	GetJobStatus(ctx context.Context, jobID string) (*models.JobStatusInfo, error)
	DeleteJobStatus(ctx context.Context, jobID string) error
}
