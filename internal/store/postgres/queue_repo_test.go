package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"tokenline/internal/domain"
	"tokenline/internal/store"
)

var _ store.QueueTx = (*fakeQueueTx)(nil)

type fakeQueueTx struct {
	maxTokenFn          func(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (int, error)
	insertFn            func(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	inProgressFn        func(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (domain.Appointment, bool, error)
	smallestScheduledFn func(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (domain.Appointment, bool, error)
	saved               []domain.Appointment
}

func (f *fakeQueueTx) MaxTokenNumber(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (int, error) {
	if f.maxTokenFn == nil {
		panic("MaxTokenNumber not configured")
	}
	return f.maxTokenFn(ctx, providerID, dayStart, dayEnd)
}

func (f *fakeQueueTx) InsertAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	if f.insertFn == nil {
		panic("InsertAppointment not configured")
	}
	return f.insertFn(ctx, appt)
}

func (f *fakeQueueTx) InProgress(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (domain.Appointment, bool, error) {
	if f.inProgressFn == nil {
		return domain.Appointment{}, false, nil
	}
	return f.inProgressFn(ctx, providerID, dayStart, dayEnd)
}

func (f *fakeQueueTx) SmallestScheduled(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (domain.Appointment, bool, error) {
	if f.smallestScheduledFn == nil {
		return domain.Appointment{}, false, nil
	}
	return f.smallestScheduledFn(ctx, providerID, dayStart, dayEnd)
}

func (f *fakeQueueTx) HighestCompletedToken(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (int, error) {
	return 0, nil
}

func (f *fakeQueueTx) GetAppointment(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	panic("not used")
}

func (f *fakeQueueTx) SaveAppointment(ctx context.Context, appt *domain.Appointment) error {
	f.saved = append(f.saved, *appt)
	return nil
}

func (f *fakeQueueTx) RefreshProviderRating(ctx context.Context, providerID string) error {
	panic("not used")
}

func TestBookAppointment_FirstTokenIsOne(t *testing.T) {
	tx := &fakeQueueTx{
		maxTokenFn: func(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (int, error) {
			return 0, nil
		},
		insertFn: func(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
			return appt, nil
		},
	}

	dayStart, dayEnd := domain.ServiceDay(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))
	appt, err := bookAppointment(context.Background(), tx, domain.Appointment{ProviderID: "p1"}, dayStart, dayEnd)
	if err != nil {
		t.Fatalf("bookAppointment error: %v", err)
	}
	if appt.TokenNumber != 1 {
		t.Fatalf("token = %d, want 1", appt.TokenNumber)
	}
	if appt.Status != domain.StatusScheduled {
		t.Fatalf("status = %s, want %s", appt.Status, domain.StatusScheduled)
	}
}

func TestBookAppointment_NextTokenFollowsMax(t *testing.T) {
	tx := &fakeQueueTx{
		maxTokenFn: func(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (int, error) {
			return 7, nil
		},
		insertFn: func(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
			return appt, nil
		},
	}

	dayStart, dayEnd := domain.ServiceDay(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))
	appt, err := bookAppointment(context.Background(), tx, domain.Appointment{ProviderID: "p1"}, dayStart, dayEnd)
	if err != nil {
		t.Fatalf("bookAppointment error: %v", err)
	}
	if appt.TokenNumber != 8 {
		t.Fatalf("token = %d, want 8", appt.TokenNumber)
	}
}

func TestAdvanceQueue_CompletesCurrentAndPromotesSmallest(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	started := now.Add(-20 * time.Minute)
	current := domain.Appointment{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), TokenNumber: 2, Status: domain.StatusInProgress, StartedAt: &started}
	next := domain.Appointment{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), TokenNumber: 3, Status: domain.StatusScheduled}

	tx := &fakeQueueTx{
		inProgressFn: func(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (domain.Appointment, bool, error) {
			return current, true, nil
		},
		smallestScheduledFn: func(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (domain.Appointment, bool, error) {
			return next, true, nil
		},
	}

	dayStart, dayEnd := domain.ServiceDay(now)
	promoted, ok, err := advanceQueue(context.Background(), tx, "p1", dayStart, dayEnd, now)
	if err != nil {
		t.Fatalf("advanceQueue error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a promoted appointment")
	}
	if promoted.TokenNumber != 3 || promoted.Status != domain.StatusInProgress {
		t.Fatalf("promoted = token %d status %s, want token 3 %s", promoted.TokenNumber, promoted.Status, domain.StatusInProgress)
	}
	if promoted.StartedAt == nil || !promoted.StartedAt.Equal(now) {
		t.Fatalf("promoted started_at = %v, want %v", promoted.StartedAt, now)
	}

	if len(tx.saved) != 2 {
		t.Fatalf("saved %d appointments, want 2", len(tx.saved))
	}
	completed := tx.saved[0]
	if completed.Status != domain.StatusCompleted {
		t.Fatalf("first save status = %s, want %s", completed.Status, domain.StatusCompleted)
	}
	if completed.CompletedAt == nil || !completed.CompletedAt.Equal(now) {
		t.Fatalf("completed_at = %v, want %v", completed.CompletedAt, now)
	}
	if completed.DurationMinutes == nil || *completed.DurationMinutes != 20 {
		t.Fatalf("duration_minutes = %v, want 20", completed.DurationMinutes)
	}
}

func TestAdvanceQueue_EmptyQueueCompletesWithoutPromotion(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	started := now.Add(-5 * time.Minute)
	current := domain.Appointment{TokenNumber: 4, Status: domain.StatusInProgress, StartedAt: &started}

	tx := &fakeQueueTx{
		inProgressFn: func(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (domain.Appointment, bool, error) {
			return current, true, nil
		},
	}

	dayStart, dayEnd := domain.ServiceDay(now)
	_, ok, err := advanceQueue(context.Background(), tx, "p1", dayStart, dayEnd, now)
	if err != nil {
		t.Fatalf("advanceQueue error: %v", err)
	}
	if ok {
		t.Fatalf("expected no promotion on an empty queue")
	}
	if len(tx.saved) != 1 || tx.saved[0].Status != domain.StatusCompleted {
		t.Fatalf("saved = %+v, want one completed appointment", tx.saved)
	}
}

func TestAdvanceQueue_NothingInProgressPromotesDirectly(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	next := domain.Appointment{TokenNumber: 1, Status: domain.StatusScheduled}

	tx := &fakeQueueTx{
		smallestScheduledFn: func(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (domain.Appointment, bool, error) {
			return next, true, nil
		},
	}

	dayStart, dayEnd := domain.ServiceDay(now)
	promoted, ok, err := advanceQueue(context.Background(), tx, "p1", dayStart, dayEnd, now)
	if err != nil {
		t.Fatalf("advanceQueue error: %v", err)
	}
	if !ok || promoted.Status != domain.StatusInProgress {
		t.Fatalf("promoted = %+v ok=%v, want in-progress token 1", promoted, ok)
	}
}
