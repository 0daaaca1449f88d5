package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tokenline/internal/domain"
)

// QueueTx is the set of primitive reads and writes available inside one
// provider/service-day queue transaction. Implementations must guarantee
// the whole unit commits or none of it does; callers compose the token
// allocation and call-next sequences on top of it.
type QueueTx interface {
	MaxTokenNumber(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (int, error)
	InsertAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	InProgress(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (domain.Appointment, bool, error)
	SmallestScheduled(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (domain.Appointment, bool, error)
	HighestCompletedToken(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (int, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	SaveAppointment(ctx context.Context, appt *domain.Appointment) error
	RefreshProviderRating(ctx context.Context, providerID string) error
}
