package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/x1thexxx/mcsync/pkg/config"
)

type countingRunner struct {
	runs atomic.Int32
}

func (r *countingRunner) Run(ctx context.Context) error {
	r.runs.Add(1)
	return nil
}

func TestSchedulerRunsOnTick(t *testing.T) {
	runner := &countingRunner{}
	s := New(config.SchedulerConfig{Enabled: true, Tick: "10ms"}, runner, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	s.Start(ctx)
	if runner.runs.Load() == 0 {
		t.Fatalf("expected at least one scheduled run")
	}
}

func TestSchedulerDisabled(t *testing.T) {
	runner := &countingRunner{}
	s := New(config.SchedulerConfig{Enabled: false, Tick: "10ms"}, runner, nil)
	s.Start(context.Background())
	if runner.runs.Load() != 0 {
		t.Fatalf("disabled scheduler must not run tasks")
	}
}

func TestSchedulerRejectsBadTick(t *testing.T) {
	runner := &countingRunner{}
	s := New(config.SchedulerConfig{Enabled: true, Tick: "often"}, runner, nil)
	s.Start(context.Background())
	if runner.runs.Load() != 0 {
		t.Fatalf("invalid tick must not run tasks")
	}
}
