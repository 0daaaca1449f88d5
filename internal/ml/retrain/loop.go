package retrain

import (
	"context"
	"log/slog"
	"time"
)

const DefaultInterval = 24 * time.Hour

type Trainable interface {
	Train(ctx context.Context) error
}

type Model struct {
	Name  string
	Model Trainable
}

// Loop retrains every registered model once at startup and then on a fixed
// interval, until the context is cancelled. Training failures are logged
// and retried on the next tick; the previous fit stays in service.
type Loop struct {
	log      *slog.Logger
	interval time.Duration
	models   []Model
}

func NewLoop(log *slog.Logger, interval time.Duration, models ...Model) *Loop {
	if log == nil {
		log = slog.Default()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{
		log:      log.With(slog.String("component", "retrain")),
		interval: interval,
		models:   models,
	}
}

func (l *Loop) Run(ctx context.Context) {
	l.trainAll(ctx)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.trainAll(ctx)
		}
	}
}

func (l *Loop) trainAll(ctx context.Context) {
	for _, m := range l.models {
		start := time.Now()
		if err := m.Model.Train(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			l.log.Error("model training failed", slog.String("model", m.Name), slog.Any("err", err))
			continue
		}
		l.log.Info("model trained", slog.String("model", m.Name), slog.Duration("took", time.Since(start)))
	}
}
