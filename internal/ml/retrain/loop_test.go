package retrain

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingModel struct {
	calls atomic.Int32
	err   error
}

func (m *countingModel) Train(ctx context.Context) error {
	m.calls.Add(1)
	return m.err
}

func TestRun_TrainsOnceAtStartup(t *testing.T) {
	model := &countingModel{}
	loop := NewLoop(nil, time.Hour, Model{Name: "wait_time", Model: model})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for model.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("model was never trained")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}

func TestRun_RetrainsOnInterval(t *testing.T) {
	model := &countingModel{}
	loop := NewLoop(nil, 20*time.Millisecond, Model{Name: "recommendation", Model: model})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	deadline := time.After(2 * time.Second)
	for model.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("calls = %d, want at least 3", model.calls.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestRun_TrainingErrorDoesNotStopOtherModels(t *testing.T) {
	failing := &countingModel{err: errors.New("no data")}
	healthy := &countingModel{}
	loop := NewLoop(nil, time.Hour,
		Model{Name: "wait_time", Model: failing},
		Model{Name: "recommendation", Model: healthy},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	deadline := time.After(2 * time.Second)
	for healthy.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("second model was never trained after first failed")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
