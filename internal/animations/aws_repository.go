package animations

import (
	"context"

	"github.com/animaforge/scene-forge/internal/models"
)

// AWSRepository is the artifact sink: compiled programs land in the output
// bucket and are served back through presigned URLs.
type AWSRepository interface {
	PutProgram(ctx context.Context, jobID string, program *models.Program) (string, error)
	GetPresignedURL(ctx context.Context, key string) (string, error)
	RemoveProgram(ctx context.Context, key string) error
}
