package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "SCHEDULED"
	StatusInProgress AppointmentStatus = "IN_PROGRESS"
	StatusCompleted  AppointmentStatus = "COMPLETED"
	StatusCancelled  AppointmentStatus = "CANCELLED"
)

// allowedTransitions is the forward-only state machine: SCHEDULED may start
// or cancel, IN_PROGRESS may only complete, terminal states have no exits.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted},
}

func ValidTransition(from, to AppointmentStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Appointment struct {
	bun.BaseModel `bun:"table:appointments"`

	ID          uuid.UUID         `bun:"id,pk,type:uuid"`
	UserID      string            `bun:"user_id,notnull"`
	ProviderID  string            `bun:"provider_id,notnull"`
	ServiceName string            `bun:"service_name,notnull"`
	ScheduledAt time.Time         `bun:"scheduled_at,notnull"`
	TokenNumber int               `bun:"token_number,notnull"`
	Status      AppointmentStatus `bun:"status,notnull"`
	Price       *float64          `bun:"price"`
	// DurationMinutes is the realized service time, stamped on completion.
	DurationMinutes *float64   `bun:"duration_minutes"`
	Rating          *int16     `bun:"rating"`
	CreatedAt       time.Time  `bun:"created_at,notnull"`
	UpdatedAt       time.Time  `bun:"updated_at,notnull"`
	StartedAt       *time.Time `bun:"started_at"`
	CompletedAt     *time.Time `bun:"completed_at"`
}

func (a *Appointment) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if a.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			a.ID = id
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		if a.UpdatedAt.IsZero() {
			a.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		a.UpdatedAt = now
	}
	return nil
}

// ApplyStatus moves the appointment to next, stamping started_at on entry to
// IN_PROGRESS and completed_at plus realized duration on entry to COMPLETED.
// Callers are expected to have checked ValidTransition first.
func (a *Appointment) ApplyStatus(next AppointmentStatus, now time.Time) {
	now = now.UTC()
	switch next {
	case StatusInProgress:
		started := now
		a.StartedAt = &started
	case StatusCompleted:
		completed := now
		a.CompletedAt = &completed
		if a.StartedAt != nil {
			minutes := completed.Sub(*a.StartedAt).Minutes()
			if minutes < 0 {
				minutes = 0
			}
			a.DurationMinutes = &minutes
		}
	}
	a.Status = next
}

// ServiceDay returns the half-open UTC day window [start, end) that
// partitions token sequences and currently-serving lookups.
func ServiceDay(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
