package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/animaforge/scene-forge/internal/animations"
	"github.com/animaforge/scene-forge/internal/models"
	"github.com/animaforge/scene-forge/pkg/utils"
)

type animationRepo struct {
	db *sqlx.DB
}

func NewAnimationRepo(db *sqlx.DB) animations.Repository {
	return &animationRepo{
		db: db,
	}
}

func (r *animationRepo) CreateJob(ctx context.Context, job *models.AnimationJob) (*models.AnimationJob, error) {
	row := r.db.QueryRowxContext(
		ctx,
		createJobQuery,
		job.JobID,
		job.UserID,
		job.Title,
		job.Description,
		job.Style,
		job.Duration,
		job.Quality,
		job.Engine,
		job.Status,
		job.Progress,
		job.Logs,
	)
	created, err := scanJob(row)
	if err != nil {
		return nil, errors.Wrap(err, "animationRepo.CreateJob")
	}
	return created, nil
}

func (r *animationRepo) GetJobByID(ctx context.Context, jobID string) (*models.AnimationJob, error) {
	job, err := scanJob(r.db.QueryRowxContext(ctx, getJobByIDQuery, jobID))
	if err != nil {
		return nil, errors.Wrap(err, "animationRepo.GetJobByID")
	}
	return job, nil
}

func (r *animationRepo) SaveJob(ctx context.Context, job *models.AnimationJob) error {
	if _, err := r.db.ExecContext(
		ctx,
		saveJobQuery,
		job.JobID,
		job.Status,
		job.Progress,
		job.Logs,
		job.Error,
		job.Analysis,
		job.Scenes,
		job.Program,
		job.ResultPath,
	); err != nil {
		return errors.Wrap(err, "animationRepo.SaveJob")
	}
	return nil
}

func (r *animationRepo) GetJobs(ctx context.Context, userID uuid.UUID, pagination *utils.Pagination) (*models.JobList, error) {
	var totalCount int
	if err := r.db.GetContext(ctx, &totalCount, getTotalJobsByUserIDQuery, userID); err != nil {
		return nil, errors.Wrap(err, "animationRepo.GetJobs.totalCount")
	}
	if totalCount == 0 {
		return &models.JobList{
			Jobs:       make([]*models.AnimationJob, 0),
			TotalCount: 0,
			Page:       pagination.GetPage(),
			PageSize:   pagination.GetSize(),
			HasMore:    false,
		}, nil
	}

	rows, err := r.db.QueryxContext(ctx, getJobsByUserIDQuery, userID, pagination.GetOffset(), pagination.GetLimit())
	if err != nil {
		return nil, errors.Wrap(err, "animationRepo.GetJobs")
	}
	defer rows.Close()

	jobs := make([]*models.AnimationJob, 0, pagination.GetSize())
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, errors.Wrap(err, "animationRepo.GetJobs.scan")
		}
		jobs = append(jobs, job)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "animationRepo.GetJobs.rows")
	}

	return &models.JobList{
		Jobs:       jobs,
		TotalCount: totalCount,
		Page:       pagination.GetPage(),
		PageSize:   pagination.GetSize(),
		HasMore:    utils.GetHasMore(pagination.GetPage(), totalCount, pagination.GetSize()),
	}, nil
}

func (r *animationRepo) GetQueuedJobIDs(ctx context.Context, limit int) ([]string, error) {
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, getQueuedJobIDsQuery, limit); err != nil {
		return nil, errors.Wrap(err, "animationRepo.GetQueuedJobIDs")
	}
	return ids, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanJob reads one job row. The analysis and program columns are nullable
// jsonb, scanned through raw bytes so a NULL stays a nil pointer.
func scanJob(row rowScanner) (*models.AnimationJob, error) {
	job := &models.AnimationJob{}
	var analysisRaw, programRaw []byte

	if err := row.Scan(
		&job.JobID,
		&job.UserID,
		&job.Title,
		&job.Description,
		&job.Style,
		&job.Duration,
		&job.Quality,
		&job.Engine,
		&job.Status,
		&job.Progress,
		&job.Logs,
		&job.Error,
		&analysisRaw,
		&job.Scenes,
		&programRaw,
		&job.ResultPath,
		&job.CreatedAt,
		&job.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(analysisRaw) > 0 {
		analysis := &models.Analysis{}
		if err := json.Unmarshal(analysisRaw, analysis); err != nil {
			return nil, errors.Wrap(err, "unmarshal analysis")
		}
		job.Analysis = analysis
	}
	if len(programRaw) > 0 {
		program := &models.Program{}
		if err := json.Unmarshal(programRaw, program); err != nil {
			return nil, errors.Wrap(err, "unmarshal program")
		}
		job.Program = program
	}
	return job, nil
}
