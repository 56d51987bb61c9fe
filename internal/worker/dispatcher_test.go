package worker

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/animaforge/scene-forge/internal/config"
	"github.com/animaforge/scene-forge/internal/models"
)

func dispatcherConfig(queueSize int) *config.Config {
	return &config.Config{
		Worker: config.WorkerConfig{
			QueueSize:   queueSize,
			MaxCPUUsage: 100,
		},
	}
}

// waitForStatus polls the persisted transition log rather than the live job
// pointer, so the drain goroutine can keep mutating the record.
func waitForStatus(t *testing.T, repo *fakeRepo, jobID string, want models.JobStatus) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		repo.mu.Lock()
		for _, s := range repo.saves {
			if s.jobID == jobID && s.status == want {
				repo.mu.Unlock()
				return
			}
		}
		repo.mu.Unlock()
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("job %s never reached %s", jobID, want)
}

func TestDispatcherProcessesJobsInOrder(t *testing.T) {
	jobs := []*models.AnimationJob{
		queuedJob("order-1", "sine wave", models.EngineHeuristic),
		queuedJob("order-2", "bubble sort", models.EngineHeuristic),
		queuedJob("order-3", "vector addition", models.EngineHeuristic),
	}
	repo := newFakeRepo(jobs...)
	p, _ := newTestProcessor(repo, &fakeAWS{}, nil)
	d := NewDispatcher(dispatcherConfig(10), p, nopLogger{})

	for _, job := range jobs {
		if err := d.Enqueue(job.JobID); err != nil {
			t.Fatalf("Enqueue(%s): %v", job.JobID, err)
		}
	}

	d.Start()
	defer d.Stop()

	for _, job := range jobs {
		waitForStatus(t, repo, job.JobID, models.JobStatusCompleted)
	}

	// Completion transitions appear in submission order: one drain loop,
	// strictly FIFO.
	repo.mu.Lock()
	var completed []string
	for _, s := range repo.saves {
		if s.status == models.JobStatusCompleted {
			completed = append(completed, s.jobID)
		}
	}
	repo.mu.Unlock()

	want := []string{"order-1", "order-2", "order-3"}
	if len(completed) != len(want) {
		t.Fatalf("completed = %v, want %v", completed, want)
	}
	for i := range want {
		if completed[i] != want[i] {
			t.Fatalf("completion order = %v, want %v", completed, want)
		}
	}
}

func TestDispatcherEnqueueFull(t *testing.T) {
	repo := newFakeRepo()
	p, _ := newTestProcessor(repo, &fakeAWS{}, nil)
	d := NewDispatcher(dispatcherConfig(1), p, nopLogger{})

	if err := d.Enqueue("first"); err != nil {
		t.Fatalf("Enqueue(first): %v", err)
	}
	if err := d.Enqueue("second"); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("Enqueue(second) error = %v, want ErrQueueFull", err)
	}
}

func TestDispatcherFailedJobDoesNotStopDraining(t *testing.T) {
	bad := queuedJob("bad", "  ", models.EngineHeuristic)
	good := queuedJob("good", "sine wave", models.EngineHeuristic)
	repo := newFakeRepo(bad, good)
	p, _ := newTestProcessor(repo, &fakeAWS{}, nil)
	d := NewDispatcher(dispatcherConfig(10), p, nopLogger{})

	if err := d.Enqueue("bad"); err != nil {
		t.Fatal(err)
	}
	if err := d.Enqueue("good"); err != nil {
		t.Fatal(err)
	}

	d.Start()
	defer d.Stop()

	waitForStatus(t, repo, "bad", models.JobStatusFailed)
	waitForStatus(t, repo, "good", models.JobStatusCompleted)
}

func TestDispatcherStartIsIdempotent(t *testing.T) {
	repo := newFakeRepo(queuedJob("solo", "sine wave", models.EngineHeuristic))
	p, _ := newTestProcessor(repo, &fakeAWS{}, nil)
	d := NewDispatcher(dispatcherConfig(10), p, nopLogger{})

	d.Start()
	d.Start()

	if err := d.Enqueue("solo"); err != nil {
		t.Fatal(err)
	}
	waitForStatus(t, repo, "solo", models.JobStatusCompleted)
	d.Stop()
	d.Stop()
}

func TestDispatcherRecover(t *testing.T) {
	jobs := []*models.AnimationJob{
		queuedJob("rec-1", "sine wave", models.EngineHeuristic),
		queuedJob("rec-2", "bubble sort", models.EngineHeuristic),
	}
	repo := newFakeRepo(jobs...)
	p, _ := newTestProcessor(repo, &fakeAWS{}, nil)
	d := NewDispatcher(dispatcherConfig(10), p, nopLogger{})

	if err := d.Recover(context.Background()); err != nil {
		t.Fatalf("Recover: %v", err)
	}

	d.Start()
	defer d.Stop()

	for _, job := range jobs {
		waitForStatus(t, repo, job.JobID, models.JobStatusCompleted)
	}
}
