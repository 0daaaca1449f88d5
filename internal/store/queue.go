package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tokenline/internal/domain"
)

// QueueState is the serving snapshot for one provider/service-day: the token
// being served right now (0 if nobody is in progress) and the highest token
// already completed that day (0 if none).
type QueueState struct {
	InProgressToken       int
	HighestCompletedToken int
}

// ServiceRecord is one completed appointment usable as predictor training
// history: scheduled time, token number and realized service duration.
type ServiceRecord struct {
	ScheduledAt     time.Time
	TokenNumber     int
	DurationMinutes float64
}

// RatingRecord is one completed, rated appointment for the recommender.
type RatingRecord struct {
	UserID     string
	ProviderID string
	Rating     int16
}

type QueueRepository interface {
	// Book persists a SCHEDULED appointment, allocating the next token for
	// the provider/service-day atomically with the insert.
	Book(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Appointment, error)

	// CallNext completes any in-progress appointment for the provider on the
	// given day and promotes the smallest scheduled token, as one atomic
	// unit. Returns false when no scheduled appointment was available.
	CallNext(ctx context.Context, providerID string, day time.Time) (domain.Appointment, bool, error)
	// FinishCurrent completes the in-progress appointment without promoting
	// a successor. Returns false when nothing is in progress.
	FinishCurrent(ctx context.Context, providerID string, day time.Time) (domain.Appointment, bool, error)
	// UpdateStatus applies a direct, forward-only status change.
	UpdateStatus(ctx context.Context, id uuid.UUID, next domain.AppointmentStatus) (domain.Appointment, error)
	// Rate records a 1-5 rating on a completed appointment and refreshes the
	// provider's aggregate rating in the same transaction.
	Rate(ctx context.Context, id uuid.UUID, rating int16) (domain.Appointment, error)

	QueueState(ctx context.Context, providerID string, day time.Time) (QueueState, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Appointment, error)
	ListForProvider(ctx context.Context, providerID string, day time.Time) ([]domain.Appointment, error)
}

// HistoryRepository feeds the trainable models. Both queries cover COMPLETED
// appointments only.
type HistoryRepository interface {
	CompletedServiceRecords(ctx context.Context) ([]ServiceRecord, error)
	CompletedRatings(ctx context.Context) ([]RatingRecord, error)
}

type ProviderRepository interface {
	GetProvider(ctx context.Context, id string) (domain.Provider, error)
	// TopProviders ranks active providers by descending average rating,
	// optionally filtered by profession. limit <= 0 means no limit.
	TopProviders(ctx context.Context, profession string, limit int) ([]domain.Provider, error)
}
