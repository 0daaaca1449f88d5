package waittime

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"tokenline/internal/store"
)

type fakeHistory struct {
	records []store.ServiceRecord
	err     error
}

func (f *fakeHistory) CompletedServiceRecords(ctx context.Context) ([]store.ServiceRecord, error) {
	return f.records, f.err
}

func TestPredict_UntrainedFallback(t *testing.T) {
	p := New(&fakeHistory{}, Options{})

	got := p.Predict(2, 5, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))
	if got != 45.0 {
		t.Fatalf("Predict = %v, want 45.0", got)
	}
	if p.Trained() {
		t.Fatalf("Trained() = true before any training")
	}
	if p.Confidence() != ConfidenceHeuristic {
		t.Fatalf("Confidence() = %s, want %s", p.Confidence(), ConfidenceHeuristic)
	}
}

func TestPredict_NoTokensAheadIsZero(t *testing.T) {
	p := New(&fakeHistory{}, Options{})
	if got := p.Predict(5, 5, time.Now()); got != 0 {
		t.Fatalf("Predict(equal tokens) = %v, want 0", got)
	}
	if got := p.Predict(7, 5, time.Now()); got != 0 {
		t.Fatalf("Predict(current ahead) = %v, want 0", got)
	}
}

func TestTrain_BelowMinSamplesIsNoop(t *testing.T) {
	history := &fakeHistory{records: syntheticRecords(5)}
	p := New(history, Options{MinSamples: 10})

	if err := p.Train(context.Background()); err != nil {
		t.Fatalf("Train error: %v", err)
	}
	if p.Trained() {
		t.Fatalf("Trained() = true with %d samples, min 10", len(history.records))
	}
}

func TestTrain_TinyHistoryStaysHeuristic(t *testing.T) {
	// A configured minimum below the design-matrix width must not reach the
	// solver; two records would make the QR factorization blow up.
	history := &fakeHistory{records: syntheticRecords(2)}
	p := New(history, Options{MinSamples: 2})

	if err := p.Train(context.Background()); err != nil {
		t.Fatalf("Train error: %v", err)
	}
	if p.Trained() {
		t.Fatalf("Trained() = true with %d samples", len(history.records))
	}
	if got := p.Predict(2, 5, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)); got != 45.0 {
		t.Fatalf("Predict = %v, want heuristic 45.0", got)
	}
}

func TestTrain_SourceErrorPropagates(t *testing.T) {
	wantErr := errors.New("store down")
	p := New(&fakeHistory{err: wantErr}, Options{})

	if err := p.Train(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("Train error = %v, want %v", err, wantErr)
	}
}

func TestTrain_RecoversLinearSurface(t *testing.T) {
	// Durations follow duration = 5 + 2*tokensAhead exactly; the fit must
	// recover it and predictions become tokensAhead * predicted duration.
	p := New(&fakeHistory{records: syntheticRecords(24)}, Options{MinSamples: 10})

	if err := p.Train(context.Background()); err != nil {
		t.Fatalf("Train error: %v", err)
	}
	if !p.Trained() {
		t.Fatalf("Trained() = false after training")
	}

	// current=2, user=5 -> 3 ahead; per-person = 5 + 2*3 = 11; wait = 33.
	got := p.Predict(2, 5, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))
	if math.Abs(got-33.0) > 1e-6 {
		t.Fatalf("Predict = %v, want 33.0", got)
	}
}

func TestConfidence_Thresholds(t *testing.T) {
	p := New(&fakeHistory{records: syntheticRecords(24)}, Options{MinSamples: 10, ConfidentSamples: 50})
	if err := p.Train(context.Background()); err != nil {
		t.Fatalf("Train error: %v", err)
	}
	if p.Confidence() != ConfidenceLightweight {
		t.Fatalf("Confidence() = %s, want %s", p.Confidence(), ConfidenceLightweight)
	}

	p = New(&fakeHistory{records: syntheticRecords(60)}, Options{MinSamples: 10, ConfidentSamples: 50})
	if err := p.Train(context.Background()); err != nil {
		t.Fatalf("Train error: %v", err)
	}
	if p.Confidence() != ConfidenceTrained {
		t.Fatalf("Confidence() = %s, want %s", p.Confidence(), ConfidenceTrained)
	}
}

func TestPredict_ClampsNegativeDuration(t *testing.T) {
	// A steeply decreasing surface would extrapolate negative durations for
	// large queues; the per-person estimate clamps at zero.
	records := make([]store.ServiceRecord, 0, 12)
	for i := 0; i < 12; i++ {
		token := i%4 + 1
		records = append(records, store.ServiceRecord{
			ScheduledAt:     time.Date(2026, 3, 2+i%5, 8+i%6, 0, 0, 0, time.UTC),
			TokenNumber:     token,
			DurationMinutes: 10 - 8*float64(token-1), // negative beyond 2 ahead
		})
	}
	p := New(&fakeHistory{records: records}, Options{MinSamples: 10})
	if err := p.Train(context.Background()); err != nil {
		t.Fatalf("Train error: %v", err)
	}

	if got := p.Predict(0, 10, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)); got < 0 {
		t.Fatalf("Predict = %v, want non-negative", got)
	}
}

func syntheticRecords(n int) []store.ServiceRecord {
	records := make([]store.ServiceRecord, 0, n)
	for i := 0; i < n; i++ {
		token := i%6 + 1
		records = append(records, store.ServiceRecord{
			ScheduledAt:     time.Date(2026, 3, 2+i%7, 8+i%9, 30, 0, 0, time.UTC),
			TokenNumber:     token,
			DurationMinutes: 5 + 2*float64(token-1),
		})
	}
	return records
}
