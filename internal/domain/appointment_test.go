package domain

import (
	"testing"
	"time"
)

func TestValidTransition_ForwardOnly(t *testing.T) {
	cases := []struct {
		from, to AppointmentStatus
		want     bool
	}{
		{StatusScheduled, StatusInProgress, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusScheduled, StatusCompleted, false},
		{StatusInProgress, StatusScheduled, false},
		{StatusInProgress, StatusCancelled, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusScheduled, false},
		{StatusCancelled, StatusCompleted, false},
	}
	for _, c := range cases {
		if got := ValidTransition(c.from, c.to); got != c.want {
			t.Errorf("ValidTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestApplyStatus_StampsStartedAt(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	a := Appointment{Status: StatusScheduled}

	a.ApplyStatus(StatusInProgress, now)

	if a.Status != StatusInProgress {
		t.Fatalf("status = %s, want %s", a.Status, StatusInProgress)
	}
	if a.StartedAt == nil || !a.StartedAt.Equal(now) {
		t.Fatalf("started_at = %v, want %v", a.StartedAt, now)
	}
	if a.CompletedAt != nil {
		t.Fatalf("completed_at = %v, want nil", a.CompletedAt)
	}
}

func TestApplyStatus_CompletionStampsDuration(t *testing.T) {
	started := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	completed := started.Add(22 * time.Minute)
	a := Appointment{Status: StatusInProgress, StartedAt: &started}

	a.ApplyStatus(StatusCompleted, completed)

	if a.CompletedAt == nil || !a.CompletedAt.Equal(completed) {
		t.Fatalf("completed_at = %v, want %v", a.CompletedAt, completed)
	}
	if a.DurationMinutes == nil || *a.DurationMinutes != 22 {
		t.Fatalf("duration_minutes = %v, want 22", a.DurationMinutes)
	}
}

func TestApplyStatus_CancellationLeavesTimestampsEmpty(t *testing.T) {
	a := Appointment{Status: StatusScheduled}
	a.ApplyStatus(StatusCancelled, time.Now())

	if a.StartedAt != nil || a.CompletedAt != nil || a.DurationMinutes != nil {
		t.Fatalf("cancellation stamped timestamps: %+v", a)
	}
}

func TestServiceDay_UTCWindow(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	at := time.Date(2026, 3, 3, 1, 15, 0, 0, loc) // 2026-03-02T22:15Z

	start, end := ServiceDay(at)

	wantStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantStart.Add(24 * time.Hour)) {
		t.Fatalf("end = %v, want %v", end, wantStart.Add(24*time.Hour))
	}
}
