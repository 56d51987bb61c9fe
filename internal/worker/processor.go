package worker

import (
	"context"

	"github.com/pkg/errors"

	"github.com/animaforge/scene-forge/internal/analyzer"
	"github.com/animaforge/scene-forge/internal/animations"
	"github.com/animaforge/scene-forge/internal/compiler"
	"github.com/animaforge/scene-forge/internal/composer"
	"github.com/animaforge/scene-forge/internal/config"
	"github.com/animaforge/scene-forge/internal/models"
	"github.com/animaforge/scene-forge/internal/script"
	"github.com/animaforge/scene-forge/pkg/logger"
)

// Pipeline checkpoints reported through the status cache. Each value is
// written together with its state transition before the next stage runs.
const (
	progressAnalysisStarted = 5
	progressAnalysisDone    = 25
	progressScenesComposed  = 50
	progressProgramCompiled = 60
	progressCompleted       = 100
)

// Processor runs one job through the analyze, compose, compile and
// publish stages, persisting the job record after every transition.
type Processor struct {
	cfg           *config.Config
	animationRepo animations.Repository
	redisRepo     animations.RedisRepository
	awsRepo       animations.AWSRepository
	scriptClient  script.Client
	logger        logger.Logger
}

func NewProcessor(
	cfg *config.Config,
	animationRepo animations.Repository,
	redisRepo animations.RedisRepository,
	awsRepo animations.AWSRepository,
	scriptClient script.Client,
	log logger.Logger,
) *Processor {
	return &Processor{
		cfg:           cfg,
		animationRepo: animationRepo,
		redisRepo:     redisRepo,
		awsRepo:       awsRepo,
		scriptClient:  scriptClient,
		logger:        log,
	}
}

func (p *Processor) Process(ctx context.Context, jobID string) error {
	job, err := p.animationRepo.GetJobByID(ctx, jobID)
	if err != nil {
		return errors.Wrapf(err, "Processor.Process.GetJobByID %s", jobID)
	}
	if job.Status != models.JobStatusQueued {
		// Duplicate enqueue or a job that was already recovered.
		p.logger.Infof("skipping job %s in status %s", jobID, job.Status)
		return nil
	}

	job.Status = models.JobStatusProcessing
	job.Progress = progressAnalysisStarted
	job.AppendLog("processing started (engine: %s)", job.Engine)
	if err = p.persist(ctx, job); err != nil {
		return p.fail(ctx, job, err)
	}

	var scenes models.SceneList
	switch job.Engine {
	case models.EngineScript:
		scenes, err = p.composeFromScript(ctx, job)
	default:
		scenes, err = p.composeHeuristic(ctx, job)
	}
	if err != nil {
		return p.fail(ctx, job, err)
	}

	job.Scenes = scenes
	job.Progress = progressScenesComposed
	job.AppendLog("composed %d scenes", len(scenes))
	if err = p.persist(ctx, job); err != nil {
		return p.fail(ctx, job, err)
	}

	program := compiler.Compile(scenes, job.Style)
	job.Program = program
	job.Status = models.JobStatusRendering
	job.Progress = progressProgramCompiled
	job.AppendLog("compiled program: %d objects, %d animations, %.1fs",
		len(program.Objects), len(program.Animations), program.Metadata.TotalDuration)
	if err = p.persist(ctx, job); err != nil {
		return p.fail(ctx, job, err)
	}

	key, err := p.awsRepo.PutProgram(ctx, job.JobID, program)
	if err != nil {
		return p.fail(ctx, job, err)
	}

	job.ResultPath = &key
	job.Status = models.JobStatusCompleted
	job.Progress = progressCompleted
	job.AppendLog("program published to %s", key)
	if err = p.persist(ctx, job); err != nil {
		return p.fail(ctx, job, err)
	}

	p.logger.Infof("job %s completed", job.JobID)
	return nil
}

func (p *Processor) composeHeuristic(ctx context.Context, job *models.AnimationJob) (models.SceneList, error) {
	analysis, err := analyzer.Analyze(job.Description, job.Style)
	if err != nil {
		return nil, err
	}

	job.Analysis = analysis
	job.Progress = progressAnalysisDone
	job.AppendLog("analysis complete: category=%s, concepts=%d, numbers=%d",
		analysis.Category, len(analysis.Concepts), len(analysis.Numbers))
	if err = p.persist(ctx, job); err != nil {
		return nil, err
	}

	return composer.Compose(analysis, job.Duration)
}

func (p *Processor) composeFromScript(ctx context.Context, job *models.AnimationJob) (models.SceneList, error) {
	if p.scriptClient == nil {
		return nil, errors.New("script engine is not configured")
	}

	sceneScript, err := p.scriptClient.GenerateScript(ctx, job.Description, job.Duration)
	if err != nil {
		return nil, err
	}

	job.Progress = progressAnalysisDone
	job.AppendLog("script generated: %q, %d scenes", sceneScript.Title, len(sceneScript.Scenes))
	if err = p.persist(ctx, job); err != nil {
		return nil, err
	}

	return composer.FromScript(sceneScript)
}

// fail records the terminal failure on the job and returns the original
// error so the dispatcher can log it.
func (p *Processor) fail(ctx context.Context, job *models.AnimationJob, cause error) error {
	job.SetError(cause.Error())
	if err := p.persist(ctx, job); err != nil {
		p.logger.Errorf("fail - could not persist failure for %s: %v", job.JobID, err)
	}
	return cause
}

// persist writes the job to postgres and refreshes the status cache. A
// cache write failure is logged but does not fail the stage.
func (p *Processor) persist(ctx context.Context, job *models.AnimationJob) error {
	if err := p.animationRepo.SaveJob(ctx, job); err != nil {
		return errors.Wrapf(models.ErrPersistence, "job %s: %v", job.JobID, err)
	}
	if err := p.redisRepo.SetJobStatus(ctx, job); err != nil {
		p.logger.Warnf("persist - SetJobStatus error for %s: %v", job.JobID, err)
	}
	return nil
}
