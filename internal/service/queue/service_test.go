package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"tokenline/internal/domain"
	"tokenline/internal/store"
)

var _ store.QueueRepository = (*fakeRepo)(nil)

type fakeRepo struct {
	bookFn          func(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	getByIDFn       func(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	callNextFn      func(ctx context.Context, providerID string, day time.Time) (domain.Appointment, bool, error)
	finishCurrentFn func(ctx context.Context, providerID string, day time.Time) (domain.Appointment, bool, error)
	updateStatusFn  func(ctx context.Context, id uuid.UUID, next domain.AppointmentStatus) (domain.Appointment, error)
	rateFn          func(ctx context.Context, id uuid.UUID, rating int16) (domain.Appointment, error)
	queueStateFn    func(ctx context.Context, providerID string, day time.Time) (store.QueueState, error)
	listForUserFn   func(ctx context.Context, userID string) ([]domain.Appointment, error)
	listForProvFn   func(ctx context.Context, providerID string, day time.Time) ([]domain.Appointment, error)
}

func (f *fakeRepo) Book(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	if f.bookFn == nil {
		panic("Book not configured")
	}
	return f.bookFn(ctx, appt)
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	if f.getByIDFn == nil {
		panic("GetByID not configured")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeRepo) CallNext(ctx context.Context, providerID string, day time.Time) (domain.Appointment, bool, error) {
	if f.callNextFn == nil {
		panic("CallNext not configured")
	}
	return f.callNextFn(ctx, providerID, day)
}

func (f *fakeRepo) FinishCurrent(ctx context.Context, providerID string, day time.Time) (domain.Appointment, bool, error) {
	if f.finishCurrentFn == nil {
		panic("FinishCurrent not configured")
	}
	return f.finishCurrentFn(ctx, providerID, day)
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, next domain.AppointmentStatus) (domain.Appointment, error) {
	if f.updateStatusFn == nil {
		panic("UpdateStatus not configured")
	}
	return f.updateStatusFn(ctx, id, next)
}

func (f *fakeRepo) Rate(ctx context.Context, id uuid.UUID, rating int16) (domain.Appointment, error) {
	if f.rateFn == nil {
		panic("Rate not configured")
	}
	return f.rateFn(ctx, id, rating)
}

func (f *fakeRepo) QueueState(ctx context.Context, providerID string, day time.Time) (store.QueueState, error) {
	if f.queueStateFn == nil {
		panic("QueueState not configured")
	}
	return f.queueStateFn(ctx, providerID, day)
}

func (f *fakeRepo) ListForUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	if f.listForUserFn == nil {
		panic("ListForUser not configured")
	}
	return f.listForUserFn(ctx, userID)
}

func (f *fakeRepo) ListForProvider(ctx context.Context, providerID string, day time.Time) ([]domain.Appointment, error) {
	if f.listForProvFn == nil {
		panic("ListForProvider not configured")
	}
	return f.listForProvFn(ctx, providerID, day)
}

func TestBook_ValidationErrorType(t *testing.T) {
	svc := NewService(&fakeRepo{
		bookFn: func(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
			return appt, nil
		},
	}, 0)

	_, err := svc.Book(context.Background(), BookInput{
		ProviderID:  "p1",
		ServiceName: "haircut",
		ScheduledAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if vErr.Error() != "user_id is required" {
		t.Fatalf("error = %q, want %q", vErr.Error(), "user_id is required")
	}
}

func TestBook_TrimsServiceNameAndNormalizesUTC(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	var got domain.Appointment
	svc := NewService(&fakeRepo{
		bookFn: func(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
			got = appt
			return appt, nil
		},
	}, 0)

	_, err := svc.Book(context.Background(), BookInput{
		UserID:      "u1",
		ProviderID:  "p1",
		ServiceName: "  haircut  ",
		ScheduledAt: time.Date(2026, 3, 2, 10, 0, 0, 0, loc),
	})
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if got.ServiceName != "haircut" {
		t.Fatalf("service_name = %q, want %q", got.ServiceName, "haircut")
	}
	if got.ScheduledAt.Location() != time.UTC {
		t.Fatalf("scheduled_at location = %v, want UTC", got.ScheduledAt.Location())
	}
}

func TestCallNext_RequiresProvider(t *testing.T) {
	svc := NewService(&fakeRepo{}, 0)
	_, _, err := svc.CallNext(context.Background(), "")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
}

func TestRate_RejectsOutOfRange(t *testing.T) {
	svc := NewService(&fakeRepo{
		rateFn: func(ctx context.Context, id uuid.UUID, rating int16) (domain.Appointment, error) {
			return domain.Appointment{}, nil
		},
	}, 0)

	for _, rating := range []int16{0, 6, -1} {
		_, err := svc.Rate(context.Background(), uuid.New(), rating)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("Rate(%d) error = %v, want *ValidationError", rating, err)
		}
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc := NewService(&fakeRepo{}, 0)
	_, err := svc.UpdateStatus(context.Background(), uuid.New(), domain.AppointmentStatus("PENDING"))
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
}

func TestPosition_ThreeAheadAtFifteenMinutesEach(t *testing.T) {
	id := uuid.New()
	svc := NewService(&fakeRepo{
		getByIDFn: func(ctx context.Context, gotID uuid.UUID) (domain.Appointment, error) {
			return domain.Appointment{
				ID:          gotID,
				ProviderID:  "p1",
				TokenNumber: 7,
				Status:      domain.StatusScheduled,
				ScheduledAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
			}, nil
		},
		queueStateFn: func(ctx context.Context, providerID string, day time.Time) (store.QueueState, error) {
			return store.QueueState{InProgressToken: 3}, nil
		},
	}, 0)

	res, err := svc.Position(context.Background(), id)
	if err != nil {
		t.Fatalf("Position error: %v", err)
	}
	if res.Position != 3 {
		t.Fatalf("position = %d, want 3", res.Position)
	}
	if res.WaitMinutes != 45 {
		t.Fatalf("wait_minutes = %v, want 45", res.WaitMinutes)
	}
	if res.CurrentToken != 3 || res.YourToken != 7 {
		t.Fatalf("tokens = %d/%d, want 3/7", res.CurrentToken, res.YourToken)
	}
	if res.Status != domain.StatusScheduled {
		t.Fatalf("status = %s, want %s", res.Status, domain.StatusScheduled)
	}
}

func TestPosition_FallsBackToHighestCompletedToken(t *testing.T) {
	svc := NewService(&fakeRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
			return domain.Appointment{
				ProviderID:  "p1",
				TokenNumber: 3,
				Status:      domain.StatusScheduled,
				ScheduledAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
			}, nil
		},
		queueStateFn: func(ctx context.Context, providerID string, day time.Time) (store.QueueState, error) {
			return store.QueueState{InProgressToken: 0, HighestCompletedToken: 2}, nil
		},
	}, 0)

	res, err := svc.Position(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Position error: %v", err)
	}
	if res.CurrentToken != 2 {
		t.Fatalf("current_token = %d, want 2", res.CurrentToken)
	}
	if res.Position != 0 || res.WaitMinutes != 0 {
		t.Fatalf("position/wait = %d/%v, want 0/0", res.Position, res.WaitMinutes)
	}
}

func TestPosition_NonScheduledIsZeroed(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{domain.StatusInProgress, domain.StatusCompleted, domain.StatusCancelled} {
		svc := NewService(&fakeRepo{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
				return domain.Appointment{ProviderID: "p1", TokenNumber: 5, Status: status}, nil
			},
		}, 0)

		res, err := svc.Position(context.Background(), uuid.New())
		if err != nil {
			t.Fatalf("Position(%s) error: %v", status, err)
		}
		if res.Position != 0 || res.WaitMinutes != 0 {
			t.Fatalf("Position(%s) = %+v, want zero position and wait", status, res)
		}
		if res.YourToken != 5 {
			t.Fatalf("your_token = %d, want 5", res.YourToken)
		}
		if res.Status != status {
			t.Fatalf("status = %s, want %s", res.Status, status)
		}
	}
}

func TestPosition_NotFoundPropagates(t *testing.T) {
	svc := NewService(&fakeRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
			return domain.Appointment{}, store.ErrNotFound
		},
	}, 0)

	_, err := svc.Position(context.Background(), uuid.New())
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, store.ErrNotFound)
	}
}
