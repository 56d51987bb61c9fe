package usecase

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/animaforge/scene-forge/internal/config"
	"github.com/animaforge/scene-forge/internal/models"
	"github.com/animaforge/scene-forge/pkg/utils"
)

type nopLogger struct{}

func (nopLogger) InitLogger()                    {}
func (nopLogger) Debug(...interface{})           {}
func (nopLogger) Debugf(string, ...interface{})  {}
func (nopLogger) Info(...interface{})            {}
func (nopLogger) Infof(string, ...interface{})   {}
func (nopLogger) Warn(...interface{})            {}
func (nopLogger) Warnf(string, ...interface{})   {}
func (nopLogger) Error(...interface{})           {}
func (nopLogger) Errorf(string, ...interface{})  {}
func (nopLogger) DPanic(...interface{})          {}
func (nopLogger) DPanicf(string, ...interface{}) {}
func (nopLogger) Fatal(...interface{})           {}
func (nopLogger) Fatalf(string, ...interface{})  {}

type stubRepo struct {
	created *models.AnimationJob
	byID    map[string]*models.AnimationJob
}

func (s *stubRepo) CreateJob(_ context.Context, job *models.AnimationJob) (*models.AnimationJob, error) {
	s.created = job
	return job, nil
}

func (s *stubRepo) GetJobByID(_ context.Context, jobID string) (*models.AnimationJob, error) {
	if job, ok := s.byID[jobID]; ok {
		return job, nil
	}
	return nil, sql.ErrNoRows
}

func (s *stubRepo) SaveJob(context.Context, *models.AnimationJob) error { return nil }

func (s *stubRepo) GetJobs(context.Context, uuid.UUID, *utils.Pagination) (*models.JobList, error) {
	return &models.JobList{Jobs: []*models.AnimationJob{}}, nil
}

func (s *stubRepo) GetQueuedJobIDs(context.Context, int) ([]string, error) { return nil, nil }

type stubRedis struct {
	info *models.JobStatusInfo
	sets int
}

func (s *stubRedis) SetJobStatus(context.Context, *models.AnimationJob) error {
	s.sets++
	return nil
}

func (s *stubRedis) GetJobStatus(context.Context, string) (*models.JobStatusInfo, error) {
	if s.info == nil {
		return nil, models.ErrJobNotFound
	}
	return s.info, nil
}

func (s *stubRedis) DeleteJobStatus(context.Context, string) error { return nil }

type stubAWS struct{}

func (stubAWS) PutProgram(context.Context, string, *models.Program) (string, error) {
	return "", nil
}

func (stubAWS) GetPresignedURL(_ context.Context, key string) (string, error) {
	return "https://signed.example.com/" + key, nil
}

func (stubAWS) RemoveProgram(context.Context, string) error { return nil }

type stubQueue struct {
	ids  []string
	fail bool
}

func (q *stubQueue) Enqueue(jobID string) error {
	if q.fail {
		return errors.New("queue full")
	}
	q.ids = append(q.ids, jobID)
	return nil
}

func newTestUC(repo *stubRepo, redis *stubRedis, queue *stubQueue) *animationUC {
	if repo.byID == nil {
		repo.byID = map[string]*models.AnimationJob{}
	}
	return NewAnimationUseCase(&config.Config{}, repo, redis, stubAWS{}, queue, nopLogger{}).(*animationUC)
}

func TestCreateJobAppliesDefaults(t *testing.T) {
	repo := &stubRepo{}
	queue := &stubQueue{}
	uc := newTestUC(repo, &stubRedis{}, queue)

	job, err := uc.CreateJob(context.Background(), uuid.New(), &models.CreateAnimationInput{
		Description: "Show the pythagorean theorem",
	})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}

	if job.Style != models.StyleGeneral || job.Quality != models.QualityPreview || job.Engine != models.EngineHeuristic {
		t.Errorf("defaults = %s/%s/%s", job.Style, job.Quality, job.Engine)
	}
	if job.Duration != defaultJobDuration {
		t.Errorf("duration = %.0f, want %d", job.Duration, defaultJobDuration)
	}
	if job.Title != "Show the pythagorean theorem" {
		t.Errorf("title = %q, want derived from description", job.Title)
	}
	if job.Status != models.JobStatusQueued || job.Progress != 0 {
		t.Errorf("new job = %s at %.0f, want queued at 0", job.Status, job.Progress)
	}
	if len(queue.ids) != 1 || queue.ids[0] != job.JobID {
		t.Errorf("enqueued = %v, want [%s]", queue.ids, job.JobID)
	}
}

func TestCreateJobTruncatesTitleOnRuneBoundary(t *testing.T) {
	repo := &stubRepo{}
	uc := newTestUC(repo, &stubRedis{}, &stubQueue{})

	description := strings.Repeat("π", maxTitleLen+20)
	job, err := uc.CreateJob(context.Background(), uuid.New(), &models.CreateAnimationInput{
		Description: description,
	})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}

	if !utf8.ValidString(job.Title) {
		t.Errorf("title %q is not valid UTF-8", job.Title)
	}
	want := strings.Repeat("π", maxTitleLen) + "..."
	if job.Title != want {
		t.Errorf("title = %q, want %d runes plus ellipsis", job.Title, maxTitleLen)
	}
}

func TestCreateJobClampsDuration(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0.5, models.MinJobDuration},
		{10, 10},
		{9999, models.MaxJobDuration},
	}
	for _, tc := range cases {
		repo := &stubRepo{}
		uc := newTestUC(repo, &stubRedis{}, &stubQueue{})
		job, err := uc.CreateJob(context.Background(), uuid.New(), &models.CreateAnimationInput{
			Description: "sine wave",
			Duration:    tc.in,
		})
		if err != nil {
			t.Fatalf("CreateJob(%.1f): %v", tc.in, err)
		}
		if job.Duration != tc.want {
			t.Errorf("duration %.1f clamped to %.1f, want %.1f", tc.in, job.Duration, tc.want)
		}
	}
}

func TestCreateJobRejectsBadDescriptions(t *testing.T) {
	uc := newTestUC(&stubRepo{}, &stubRedis{}, &stubQueue{})

	for _, input := range []*models.CreateAnimationInput{
		nil,
		{Description: ""},
		{Description: "   "},
	} {
		if _, err := uc.CreateJob(context.Background(), uuid.New(), input); !errors.Is(err, models.ErrInvalidInput) {
			t.Errorf("CreateJob(%+v) error = %v, want ErrInvalidInput", input, err)
		}
	}

	long := make([]byte, models.MaxDescriptionLen+1)
	for i := range long {
		long[i] = 'x'
	}
	if _, err := uc.CreateJob(context.Background(), uuid.New(), &models.CreateAnimationInput{
		Description: string(long),
	}); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("CreateJob(overlong) error = %v, want ErrInvalidInput", err)
	}
}

func TestCreateJobSurvivesFullQueue(t *testing.T) {
	repo := &stubRepo{}
	uc := newTestUC(repo, &stubRedis{}, &stubQueue{fail: true})

	job, err := uc.CreateJob(context.Background(), uuid.New(), &models.CreateAnimationInput{
		Description: "bubble sort",
	})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	// The record is still queued in the store; recovery will re-enqueue it.
	if job.Status != models.JobStatusQueued {
		t.Errorf("status = %s, want queued", job.Status)
	}
	if repo.created == nil {
		t.Error("job was not persisted")
	}
}

func TestGetJobNotFound(t *testing.T) {
	uc := newTestUC(&stubRepo{}, &stubRedis{}, &stubQueue{})

	if _, err := uc.GetJob(context.Background(), "not-a-uuid"); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("GetJob(bad id) error = %v, want ErrInvalidInput", err)
	}
	if _, err := uc.GetJob(context.Background(), uuid.New().String()); !errors.Is(err, models.ErrJobNotFound) {
		t.Errorf("GetJob(missing) error = %v, want ErrJobNotFound", err)
	}
}

func TestGetJobStatusFallsBackToStore(t *testing.T) {
	jobID := uuid.New().String()
	repo := &stubRepo{byID: map[string]*models.AnimationJob{
		jobID: {JobID: jobID, Status: models.JobStatusRendering, Progress: 60},
	}}
	redis := &stubRedis{}
	uc := newTestUC(repo, redis, &stubQueue{})

	info, err := uc.GetJobStatus(context.Background(), jobID)
	if err != nil {
		t.Fatalf("GetJobStatus: %v", err)
	}
	if info.Status != models.JobStatusRendering || info.Progress != 60 {
		t.Errorf("info = %+v, want rendering at 60", info)
	}
	// The miss repopulated the cache.
	if redis.sets != 1 {
		t.Errorf("cache sets = %d, want 1", redis.sets)
	}
}

func TestGetJobStatusPrefersCache(t *testing.T) {
	redis := &stubRedis{info: &models.JobStatusInfo{JobID: "cached", Status: models.JobStatusProcessing, Progress: 25}}
	uc := newTestUC(&stubRepo{}, redis, &stubQueue{})

	info, err := uc.GetJobStatus(context.Background(), "cached")
	if err != nil {
		t.Fatalf("GetJobStatus: %v", err)
	}
	if info.Progress != 25 {
		t.Errorf("progress = %.0f, want cached 25", info.Progress)
	}
}

func TestGetProgramURLRequiresCompletion(t *testing.T) {
	jobID := uuid.New().String()
	key := "programs/" + jobID + ".scene.json"
	repo := &stubRepo{byID: map[string]*models.AnimationJob{
		jobID: {JobID: jobID, Status: models.JobStatusProcessing, Progress: 25},
	}}
	uc := newTestUC(repo, &stubRedis{}, &stubQueue{})

	if _, err := uc.GetProgramURL(context.Background(), jobID); err == nil {
		t.Fatal("GetProgramURL on unfinished job returned nil error")
	}

	repo.byID[jobID].Status = models.JobStatusCompleted
	repo.byID[jobID].ResultPath = &key
	url, err := uc.GetProgramURL(context.Background(), jobID)
	if err != nil {
		t.Fatalf("GetProgramURL: %v", err)
	}
	if url != "https://signed.example.com/"+key {
		t.Errorf("url = %q", url)
	}
}
