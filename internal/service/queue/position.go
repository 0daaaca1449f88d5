package queue

import (
	"context"

	"github.com/google/uuid"

	"tokenline/internal/domain"
)

type PositionResult struct {
	// Position is the number of people ahead of this appointment.
	Position     int
	WaitMinutes  float64
	CurrentToken int
	YourToken    int
	Status       domain.AppointmentStatus
}

// Position reports how far an appointment is from being served. For
// anything other than a SCHEDULED appointment the result is zeroed:
// waiting is over, or never applied.
func (s *Service) Position(ctx context.Context, id uuid.UUID) (PositionResult, error) {
	if id == uuid.Nil {
		return PositionResult{}, validationError("appointment_id is required")
	}

	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return PositionResult{}, err
	}

	out := PositionResult{YourToken: appt.TokenNumber, Status: appt.Status}
	if appt.Status != domain.StatusScheduled {
		return out, nil
	}

	state, err := s.repo.QueueState(ctx, appt.ProviderID, appt.ScheduledAt)
	if err != nil {
		return PositionResult{}, err
	}

	// The serving marker is the in-progress token; with nobody in the
	// chair it falls back to the highest completed token of the day.
	current := state.InProgressToken
	if current == 0 {
		current = state.HighestCompletedToken
	}

	ahead := appt.TokenNumber - current - 1
	if ahead < 0 {
		ahead = 0
	}

	out.CurrentToken = current
	out.Position = ahead
	out.WaitMinutes = float64(ahead) * s.waitPerPerson
	return out, nil
}
