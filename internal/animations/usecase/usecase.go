package usecase

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/animaforge/scene-forge/internal/animations"
	"github.com/animaforge/scene-forge/internal/config"
	"github.com/animaforge/scene-forge/internal/models"
	"github.com/animaforge/scene-forge/pkg/logger"
	"github.com/animaforge/scene-forge/pkg/utils"
)

const (
	defaultJobDuration = 10
	maxTitleLen        = 100
	enqueueRetryDelay  = 100 * time.Millisecond
)

type animationUC struct {
	cfg           *config.Config
	animationRepo animations.Repository
	redisRepo     animations.RedisRepository
	awsRepo       animations.AWSRepository
	queue         animations.Queue
	logger        logger.Logger
}

func NewAnimationUseCase(
	cfg *config.Config,
	animationRepo animations.Repository,
	redisRepo animations.RedisRepository,
	awsRepo animations.AWSRepository,
	queue animations.Queue,
	log logger.Logger,
) animations.UseCase {
	return &animationUC{
		cfg:           cfg,
		animationRepo: animationRepo,
		redisRepo:     redisRepo,
		awsRepo:       awsRepo,
		queue:         queue,
		logger:        log,
	}
}

// CreateJob validates the submission, persists the queued record and hands
// the id to the dispatcher. Validation failures surface synchronously and no
// job record is created.
func (u *animationUC) CreateJob(ctx context.Context, userID uuid.UUID, input *models.CreateAnimationInput) (*models.AnimationJob, error) {
	if input == nil {
		return nil, errors.Wrap(models.ErrInvalidInput, "input is nil")
	}
	if err := utils.ValidateStruct(ctx, input); err != nil {
		u.logger.Errorf("CreateJob - ValidateStruct error: %v", err)
		return nil, errors.Wrap(models.ErrInvalidInput, err.Error())
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, errors.Wrap(models.ErrInvalidInput, "description is required")
	}
	if len(description) > models.MaxDescriptionLen {
		return nil, errors.Wrapf(models.ErrInvalidInput, "description too long (max %d characters)", models.MaxDescriptionLen)
	}

	job := &models.AnimationJob{
		JobID:       uuid.New().String(),
		UserID:      userID.String(),
		Title:       input.Title,
		Description: description,
		Style:       input.Style,
		Duration:    clampDuration(input.Duration),
		Quality:     input.Quality,
		Engine:      input.Engine,
		Status:      models.JobStatusQueued,
		Progress:    0,
		Logs:        models.JobLogs{},
	}
	if job.Title == "" {
		job.Title = truncateTitle(description)
	}
	if job.Style == "" {
		job.Style = models.StyleGeneral
	}
	if job.Quality == "" {
		job.Quality = models.QualityPreview
	}
	if job.Engine == "" {
		job.Engine = models.EngineHeuristic
	}

	created, err := u.animationRepo.CreateJob(ctx, job)
	if err != nil {
		u.logger.Errorf("CreateJob - CreateJob error: %v", err)
		return nil, errors.Wrap(models.ErrPersistence, err.Error())
	}

	if err = u.redisRepo.SetJobStatus(ctx, created); err != nil {
		// Cache only; the poll endpoint falls back to postgres.
		u.logger.Warnf("CreateJob - SetJobStatus error: %v", err)
	}

	if err = u.queue.Enqueue(created.JobID); err != nil {
		u.logger.Warnf("CreateJob - Enqueue retry for %s: %v", created.JobID, err)
		time.Sleep(enqueueRetryDelay)
		if err = u.queue.Enqueue(created.JobID); err != nil {
			// The record stays queued; the recovery drain picks it up.
			u.logger.Errorf("CreateJob - Enqueue failed for %s: %v", created.JobID, err)
		}
	}
	return created, nil
}

func (u *animationUC) GetJob(ctx context.Context, jobID string) (*models.AnimationJob, error) {
	if _, err := uuid.Parse(jobID); err != nil {
		return nil, errors.Wrap(models.ErrInvalidInput, "invalid job id")
	}
	job, err := u.animationRepo.GetJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrJobNotFound
		}
		u.logger.Errorf("GetJob - GetJobByID error: %v", err)
		return nil, errors.Wrap(models.ErrPersistence, err.Error())
	}
	return job, nil
}

// GetJobStatus serves the poll endpoint from the redis snapshot, falling
// back to postgres when the cache has no entry.
func (u *animationUC) GetJobStatus(ctx context.Context, jobID string) (*models.JobStatusInfo, error) {
	info, err := u.redisRepo.GetJobStatus(ctx, jobID)
	if err == nil {
		return info, nil
	}
	if !errors.Is(err, models.ErrJobNotFound) {
		u.logger.Warnf("GetJobStatus - redis error: %v", err)
	}

	job, err := u.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	info = &models.JobStatusInfo{
		JobID:       job.JobID,
		Status:      job.Status,
		Progress:    job.Progress,
		Error:       job.Error,
		LastUpdated: job.UpdatedAt,
	}
	if err = u.redisRepo.SetJobStatus(ctx, job); err != nil {
		u.logger.Warnf("GetJobStatus - SetJobStatus error: %v", err)
	}
	return info, nil
}

func (u *animationUC) GetProgramURL(ctx context.Context, jobID string) (string, error) {
	job, err := u.GetJob(ctx, jobID)
	if err != nil {
		return "", err
	}
	if job.Status != models.JobStatusCompleted || job.ResultPath == nil {
		return "", errors.Errorf("job %s has no compiled program yet (status: %s)", jobID, job.Status)
	}
	url, err := u.awsRepo.GetPresignedURL(ctx, *job.ResultPath)
	if err != nil {
		u.logger.Errorf("GetProgramURL - GetPresignedURL error: %v", err)
		return "", errors.Wrap(err, "failed to generate program URL")
	}
	return url, nil
}

func (u *animationUC) ListJobs(ctx context.Context, userID uuid.UUID, pagination *utils.Pagination) (*models.JobList, error) {
	if pagination == nil {
		pagination = &utils.Pagination{Page: 1, Size: 10}
	}
	if pagination.Page < 1 {
		pagination.Page = 1
	}
	if pagination.Size < 1 || pagination.Size > 100 {
		pagination.Size = 10
	}

	jobs, err := u.animationRepo.GetJobs(ctx, userID, pagination)
	if err != nil {
		u.logger.Errorf("ListJobs - GetJobs error for user %s: %v", userID.String(), err)
		return nil, errors.Wrap(models.ErrPersistence, err.Error())
	}
	return jobs, nil
}

func clampDuration(duration float64) float64 {
	if duration == 0 {
		duration = defaultJobDuration
	}
	if duration < models.MinJobDuration {
		return models.MinJobDuration
	}
	if duration > models.MaxJobDuration {
		return models.MaxJobDuration
	}
	return duration
}

func truncateTitle(description string) string {
	runes := []rune(description)
	if len(runes) <= maxTitleLen {
		return description
	}
	return string(runes[:maxTitleLen]) + "..."
}
