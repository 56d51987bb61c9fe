package models

import (
	"strings"
	"testing"
)

func TestJobStatusTerminal(t *testing.T) {
	terminal := map[JobStatus]bool{
		JobStatusQueued:     false,
		JobStatusProcessing: false,
		JobStatusRendering:  false,
		JobStatusCompleted:  true,
		JobStatusFailed:     true,
	}
	for status, want := range terminal {
		if status.Terminal() != want {
			t.Errorf("%s.Terminal() = %v, want %v", status, !want, want)
		}
	}
}

func TestAppendLogTimestamps(t *testing.T) {
	job := &AnimationJob{}
	job.AppendLog("composed %d scenes", 4)
	job.AppendLog("done")

	if len(job.Logs) != 2 {
		t.Fatalf("logs = %d, want 2", len(job.Logs))
	}
	if !strings.HasPrefix(job.Logs[0], "[") || !strings.Contains(job.Logs[0], "composed 4 scenes") {
		t.Errorf("log entry = %q", job.Logs[0])
	}
}

func TestSetErrorMarksFailed(t *testing.T) {
	job := &AnimationJob{Status: JobStatusProcessing, Progress: 25}
	job.SetError("composition failed")

	if job.Status != JobStatusFailed {
		t.Errorf("status = %s, want failed", job.Status)
	}
	if job.Error == nil || *job.Error != "composition failed" {
		t.Errorf("error = %v", job.Error)
	}
	if job.Progress != 25 {
		t.Errorf("progress = %.0f, failure must not rewind it", job.Progress)
	}
	if len(job.Logs) != 1 {
		t.Errorf("logs = %d, want the failure recorded", len(job.Logs))
	}
}

func TestParseSceneScript(t *testing.T) {
	good := []byte(`{"title":"Demo","duration":6,"scenes":[{"id":"s1","duration":3}]}`)
	script, err := ParseSceneScript(good)
	if err != nil {
		t.Fatalf("ParseSceneScript: %v", err)
	}
	if script.Title != "Demo" || len(script.Scenes) != 1 {
		t.Errorf("script = %+v", script)
	}

	for _, raw := range [][]byte{
		[]byte(`not json`),
		[]byte(`{"title":"x"}`),
		[]byte(`{"scenes":"nope"}`),
		[]byte(`{"scenes":null}`),
	} {
		if _, err := ParseSceneScript(raw); err == nil {
			t.Errorf("ParseSceneScript(%s) accepted invalid payload", raw)
		}
	}
}

func TestAnalysisNumberFallback(t *testing.T) {
	a := &Analysis{Numbers: []NumberLiteral{{Value: 3}, {Value: 4}}}
	if got := a.Number(0, 9); got != 3 {
		t.Errorf("Number(0) = %g, want 3", got)
	}
	if got := a.Number(5, 9); got != 9 {
		t.Errorf("Number(5) = %g, want fallback 9", got)
	}
	if got := (&Analysis{}).Number(0, 7); got != 7 {
		t.Errorf("empty Number(0) = %g, want fallback 7", got)
	}
}
