package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"

	"github.com/animaforge/scene-forge/internal/animations"
	"github.com/animaforge/scene-forge/internal/models"
)

const (
	statusKeyPrefix = "animation:status:"
	statusCacheTTL  = 24 * time.Hour
)

type animationRedisRepo struct {
	redisClient *redis.Client
}

func NewAnimationRedisRepo(redisClient *redis.Client) animations.RedisRepository {
	return &animationRedisRepo{
		redisClient: redisClient,
	}
}

// SetJobStatus refreshes the cached status snapshot for a job. Written after
// every state-machine transition so pollers rarely touch postgres.
func (r *animationRedisRepo) SetJobStatus(ctx context.Context, job *models.AnimationJob) error {
	info := &models.JobStatusInfo{
		JobID:       job.JobID,
		Status:      job.Status,
		Progress:    job.Progress,
		Error:       job.Error,
		LastUpdated: job.UpdatedAt,
	}
	data, err := json.Marshal(info)
	if err != nil {
		return errors.Wrap(err, "animationRedisRepo.SetJobStatus.marshal")
	}

	key := statusKeyPrefix + job.JobID
	pipe := r.redisClient.Pipeline()
	pipe.Set(ctx, key, data, statusCacheTTL)
	if _, err = pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "animationRedisRepo.SetJobStatus")
	}
	return nil
}

func (r *animationRedisRepo) GetJobStatus(ctx context.Context, jobID string) (*models.JobStatusInfo, error) {
	data, err := r.redisClient.Get(ctx, statusKeyPrefix+jobID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.Wrap(models.ErrJobNotFound, "animationRedisRepo.GetJobStatus")
		}
		return nil, errors.Wrap(err, "animationRedisRepo.GetJobStatus")
	}
	info := &models.JobStatusInfo{}
	if err = json.Unmarshal(data, info); err != nil {
		return nil, errors.Wrap(err, "animationRedisRepo.GetJobStatus.unmarshal")
	}
	return info, nil
}

func (r *animationRedisRepo) DeleteJobStatus(ctx context.Context, jobID string) error {
	if err := r.redisClient.Del(ctx, statusKeyPrefix+jobID).Err(); err != nil {
		return errors.Wrap(err, "animationRedisRepo.DeleteJobStatus")
	}
	return nil
}
