package queue

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"tokenline/internal/domain"
	"tokenline/internal/store"
)

// DefaultWaitPerPersonMinutes is the deliberately simple public wait
// heuristic: a flat per-person estimate, independent of the learned
// predictor so the queue-position endpoint stays explainable.
const DefaultWaitPerPersonMinutes = 15.0

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

type Service struct {
	repo          store.QueueRepository
	waitPerPerson float64
}

func NewService(repo store.QueueRepository, waitPerPersonMinutes float64) *Service {
	if waitPerPersonMinutes <= 0 {
		waitPerPersonMinutes = DefaultWaitPerPersonMinutes
	}
	return &Service{repo: repo, waitPerPerson: waitPerPersonMinutes}
}

type BookInput struct {
	UserID      string
	ProviderID  string
	ServiceName string
	ScheduledAt time.Time
	Price       *float64
}

func (s *Service) Book(ctx context.Context, in BookInput) (domain.Appointment, error) {
	serviceName := strings.TrimSpace(in.ServiceName)
	if serviceName == "" {
		return domain.Appointment{}, validationError("service_name is required")
	}
	if in.UserID == "" {
		return domain.Appointment{}, validationError("user_id is required")
	}
	if in.ProviderID == "" {
		return domain.Appointment{}, validationError("provider_id is required")
	}
	if in.ScheduledAt.IsZero() {
		return domain.Appointment{}, validationError("scheduled_at is required")
	}
	if in.Price != nil && *in.Price < 0 {
		return domain.Appointment{}, validationError("price must not be negative")
	}

	return s.repo.Book(ctx, domain.Appointment{
		UserID:      in.UserID,
		ProviderID:  in.ProviderID,
		ServiceName: serviceName,
		ScheduledAt: in.ScheduledAt.UTC(),
		Price:       in.Price,
	})
}

// CallNext completes whatever the provider is serving on today's queue and
// promotes the smallest scheduled token, atomically. ok is false when the
// queue had no scheduled appointment to promote.
func (s *Service) CallNext(ctx context.Context, providerID string) (domain.Appointment, bool, error) {
	if providerID == "" {
		return domain.Appointment{}, false, validationError("provider_id is required")
	}
	return s.repo.CallNext(ctx, providerID, time.Now().UTC())
}

// FinishCurrent completes the in-progress appointment without promoting a
// successor; that takes an explicit CallNext.
func (s *Service) FinishCurrent(ctx context.Context, providerID string) (domain.Appointment, bool, error) {
	if providerID == "" {
		return domain.Appointment{}, false, validationError("provider_id is required")
	}
	return s.repo.FinishCurrent(ctx, providerID, time.Now().UTC())
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, next domain.AppointmentStatus) (domain.Appointment, error) {
	if id == uuid.Nil {
		return domain.Appointment{}, validationError("appointment_id is required")
	}
	if !domain.ValidStatus(next) {
		return domain.Appointment{}, validationError("unknown status")
	}
	return s.repo.UpdateStatus(ctx, id, next)
}

func (s *Service) Rate(ctx context.Context, id uuid.UUID, rating int16) (domain.Appointment, error) {
	if id == uuid.Nil {
		return domain.Appointment{}, validationError("appointment_id is required")
	}
	if rating < 1 || rating > 5 {
		return domain.Appointment{}, validationError("rating must be between 1 and 5")
	}
	return s.repo.Rate(ctx, id, rating)
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	if userID == "" {
		return nil, validationError("user_id is required")
	}
	return s.repo.ListForUser(ctx, userID)
}

func (s *Service) ListForProvider(ctx context.Context, providerID string, day time.Time) ([]domain.Appointment, error) {
	if providerID == "" {
		return nil, validationError("provider_id is required")
	}
	if day.IsZero() {
		day = time.Now().UTC()
	}
	return s.repo.ListForProvider(ctx, providerID, day)
}
