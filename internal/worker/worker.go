package worker

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/animaforge/scene-forge/internal/config"
	"github.com/animaforge/scene-forge/pkg/logger"
	"github.com/animaforge/scene-forge/pkg/utils"
)

const (
	defaultQueueSize     = 100
	defaultRecoveryBatch = 50
	cpuBackoff           = 2 * time.Second
)

// ErrQueueFull is returned by Enqueue when the submission channel is at
// capacity. Callers leave the job queued in postgres and let recovery
// pick it up.
var ErrQueueFull = errors.New("job queue is full")

// Dispatcher owns the bounded submission channel and the single drain
// loop that feeds the processor. Jobs run strictly one at a time in
// enqueue order.
type Dispatcher struct {
	cfg       *config.Config
	processor *Processor
	logger    logger.Logger

	jobs     chan string
	stopChan chan struct{}
	wg       sync.WaitGroup

	mu        sync.Mutex
	isRunning bool
}

func NewDispatcher(cfg *config.Config, processor *Processor, log logger.Logger) *Dispatcher {
	queueSize := cfg.Worker.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Dispatcher{
		cfg:       cfg,
		processor: processor,
		logger:    log,
		jobs:      make(chan string, queueSize),
		stopChan:  make(chan struct{}),
	}
}

// Start launches the drain loop. Calling Start on a running dispatcher is
// a no-op, so there is never more than one loop consuming the channel.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.isRunning {
		return
	}
	d.isRunning = true

	d.logger.Info("Starting animation dispatcher")
	d.wg.Add(1)
	go d.drain()
}

// Stop signals the drain loop and waits for the in-flight job to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.isRunning {
		d.mu.Unlock()
		return
	}
	d.isRunning = false
	d.mu.Unlock()

	close(d.stopChan)
	d.wg.Wait()
	d.logger.Info("Animation dispatcher stopped")
}

// Enqueue hands a job id to the drain loop without blocking the caller.
func (d *Dispatcher) Enqueue(jobID string) error {
	select {
	case d.jobs <- jobID:
		return nil
	default:
		return errors.Wrapf(ErrQueueFull, "job %s", jobID)
	}
}

// Recover reloads queued job ids from postgres and re-enqueues them.
// Run once on startup so jobs submitted before a restart are not lost.
func (d *Dispatcher) Recover(ctx context.Context) error {
	batch := d.cfg.Worker.RecoveryBatch
	if batch <= 0 {
		batch = defaultRecoveryBatch
	}
	ids, err := d.processor.animationRepo.GetQueuedJobIDs(ctx, batch)
	if err != nil {
		return errors.Wrap(err, "Dispatcher.Recover")
	}
	for i, id := range ids {
		if err = d.Enqueue(id); err != nil {
			d.logger.Warnf("Recover - queue full after %d of %d jobs", i, len(ids))
			return err
		}
	}
	if len(ids) > 0 {
		d.logger.Infof("Recovered %d queued jobs", len(ids))
	}
	return nil
}

func (d *Dispatcher) drain() {
	defer d.wg.Done()
	for {
		select {
		case <-d.stopChan:
			return
		case jobID := <-d.jobs:
			if !d.waitForCPU() {
				return
			}
			// One job's failure never takes down the loop; the error is
			// recorded on the job itself.
			if err := d.processor.Process(context.Background(), jobID); err != nil {
				d.logger.Errorf("drain - job %s failed: %v", jobID, err)
			}
		}
	}
}

// waitForCPU blocks until the host is below the admission threshold.
// Returns false when the dispatcher is stopped while waiting.
func (d *Dispatcher) waitForCPU() bool {
	for {
		canAcceptJob, usage := utils.CheckCPUUsage(d.cfg.Worker.MaxCPUUsage)
		if canAcceptJob {
			return true
		}
		d.logger.Infof("CPU usage is high: %f, delaying next job", usage)
		select {
		case <-d.stopChan:
			return false
		case <-time.After(cpuBackoff):
		}
	}
}
