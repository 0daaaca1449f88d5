package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"tokenline/internal/domain"
	"tokenline/internal/store"
)

type QueueRepo struct {
	db *bun.DB
}

func NewQueueRepo(db *bun.DB) *QueueRepo {
	return &QueueRepo{db: db}
}

type queueTx struct {
	tx bun.Tx
}

// InQueueTransaction runs fn inside one transaction serialized per
// provider/service-day, so the read-then-write sequences (token allocation,
// complete+promote) cannot interleave with a concurrent booking or call-next
// against the same queue.
func (r *QueueRepo) InQueueTransaction(ctx context.Context, providerID string, day time.Time, fn func(ctx context.Context, tx store.QueueTx) error) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockProviderQueue(ctx, tx, providerID, day); err != nil {
			return err
		}
		return fn(ctx, queueTx{tx: tx})
	})
}

func lockProviderQueue(ctx context.Context, tx bun.Tx, providerID string, day time.Time) error {
	key := providerID + ":" + day.UTC().Format("2006-01-02")
	_, err := tx.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", key).Exec(ctx)
	return err
}

func (r *QueueRepo) Book(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	dayStart, dayEnd := domain.ServiceDay(appt.ScheduledAt)
	var out domain.Appointment
	err := r.InQueueTransaction(ctx, appt.ProviderID, dayStart, func(ctx context.Context, tx store.QueueTx) error {
		a, err := bookAppointment(ctx, tx, appt, dayStart, dayEnd)
		if err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}
	return out, nil
}

func bookAppointment(ctx context.Context, tx store.QueueTx, appt domain.Appointment, dayStart, dayEnd time.Time) (domain.Appointment, error) {
	maxToken, err := tx.MaxTokenNumber(ctx, appt.ProviderID, dayStart, dayEnd)
	if err != nil {
		return domain.Appointment{}, err
	}
	appt.TokenNumber = maxToken + 1
	appt.Status = domain.StatusScheduled
	return tx.InsertAppointment(ctx, appt)
}

func (r *QueueRepo) CallNext(ctx context.Context, providerID string, day time.Time) (domain.Appointment, bool, error) {
	dayStart, dayEnd := domain.ServiceDay(day)
	var (
		out      domain.Appointment
		promoted bool
	)
	err := r.InQueueTransaction(ctx, providerID, dayStart, func(ctx context.Context, tx store.QueueTx) error {
		a, ok, err := advanceQueue(ctx, tx, providerID, dayStart, dayEnd, time.Now().UTC())
		if err != nil {
			return err
		}
		out, promoted = a, ok
		return nil
	})
	if err != nil {
		return domain.Appointment{}, false, err
	}
	return out, promoted, nil
}

// advanceQueue completes the appointment currently in progress (if any) and
// promotes the smallest scheduled token. Both steps commit together or not
// at all.
func advanceQueue(ctx context.Context, tx store.QueueTx, providerID string, dayStart, dayEnd, now time.Time) (domain.Appointment, bool, error) {
	current, ok, err := tx.InProgress(ctx, providerID, dayStart, dayEnd)
	if err != nil {
		return domain.Appointment{}, false, err
	}
	if ok {
		current.ApplyStatus(domain.StatusCompleted, now)
		if err := tx.SaveAppointment(ctx, &current); err != nil {
			return domain.Appointment{}, false, err
		}
	}

	next, ok, err := tx.SmallestScheduled(ctx, providerID, dayStart, dayEnd)
	if err != nil {
		return domain.Appointment{}, false, err
	}
	if !ok {
		return domain.Appointment{}, false, nil
	}

	next.ApplyStatus(domain.StatusInProgress, now)
	if err := tx.SaveAppointment(ctx, &next); err != nil {
		return domain.Appointment{}, false, err
	}
	return next, true, nil
}

func (r *QueueRepo) FinishCurrent(ctx context.Context, providerID string, day time.Time) (domain.Appointment, bool, error) {
	dayStart, dayEnd := domain.ServiceDay(day)
	var (
		out      domain.Appointment
		finished bool
	)
	err := r.InQueueTransaction(ctx, providerID, dayStart, func(ctx context.Context, tx store.QueueTx) error {
		current, ok, err := tx.InProgress(ctx, providerID, dayStart, dayEnd)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		current.ApplyStatus(domain.StatusCompleted, time.Now().UTC())
		if err := tx.SaveAppointment(ctx, &current); err != nil {
			return err
		}
		out, finished = current, true
		return nil
	})
	if err != nil {
		return domain.Appointment{}, false, err
	}
	return out, finished, nil
}

func (r *QueueRepo) UpdateStatus(ctx context.Context, id uuid.UUID, next domain.AppointmentStatus) (domain.Appointment, error) {
	// A first read locates the queue partition; the transition itself
	// re-reads under the partition lock.
	appt, err := r.GetByID(ctx, id)
	if err != nil {
		return domain.Appointment{}, err
	}
	dayStart, _ := domain.ServiceDay(appt.ScheduledAt)

	var out domain.Appointment
	err = r.InQueueTransaction(ctx, appt.ProviderID, dayStart, func(ctx context.Context, tx store.QueueTx) error {
		current, err := tx.GetAppointment(ctx, id)
		if err != nil {
			return err
		}
		if !domain.ValidTransition(current.Status, next) {
			return fmt.Errorf("%s -> %s: %w", current.Status, next, store.ErrInvalidTransition)
		}
		current.ApplyStatus(next, time.Now().UTC())
		if err := tx.SaveAppointment(ctx, &current); err != nil {
			return err
		}
		out = current
		return nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}
	return out, nil
}

func (r *QueueRepo) Rate(ctx context.Context, id uuid.UUID, rating int16) (domain.Appointment, error) {
	appt, err := r.GetByID(ctx, id)
	if err != nil {
		return domain.Appointment{}, err
	}
	dayStart, _ := domain.ServiceDay(appt.ScheduledAt)

	var out domain.Appointment
	err = r.InQueueTransaction(ctx, appt.ProviderID, dayStart, func(ctx context.Context, tx store.QueueTx) error {
		current, err := tx.GetAppointment(ctx, id)
		if err != nil {
			return err
		}
		if current.Status != domain.StatusCompleted {
			return fmt.Errorf("rate %s appointment: %w", current.Status, store.ErrInvalidTransition)
		}
		current.Rating = &rating
		if err := tx.SaveAppointment(ctx, &current); err != nil {
			return err
		}
		if err := tx.RefreshProviderRating(ctx, current.ProviderID); err != nil {
			return err
		}
		out = current
		return nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}
	return out, nil
}

func (r *QueueRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	var appt domain.Appointment
	err := r.db.NewSelect().
		Model(&appt).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Appointment{}, store.ErrNotFound
		}
		return domain.Appointment{}, err
	}
	return appt, nil
}

func (r *QueueRepo) QueueState(ctx context.Context, providerID string, day time.Time) (store.QueueState, error) {
	dayStart, dayEnd := domain.ServiceDay(day)

	var inProgress int
	err := r.db.NewSelect().
		Model((*domain.Appointment)(nil)).
		ColumnExpr("COALESCE(MAX(token_number), 0)").
		Where("provider_id = ?", providerID).
		Where("scheduled_at >= ?", dayStart).
		Where("scheduled_at < ?", dayEnd).
		Where("status = ?", domain.StatusInProgress).
		Scan(ctx, &inProgress)
	if err != nil {
		return store.QueueState{}, err
	}

	var completed int
	err = r.db.NewSelect().
		Model((*domain.Appointment)(nil)).
		ColumnExpr("COALESCE(MAX(token_number), 0)").
		Where("provider_id = ?", providerID).
		Where("scheduled_at >= ?", dayStart).
		Where("scheduled_at < ?", dayEnd).
		Where("status = ?", domain.StatusCompleted).
		Scan(ctx, &completed)
	if err != nil {
		return store.QueueState{}, err
	}

	return store.QueueState{InProgressToken: inProgress, HighestCompletedToken: completed}, nil
}

func (r *QueueRepo) ListForUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	var rows []domain.Appointment
	err := r.db.NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		OrderExpr("scheduled_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *QueueRepo) ListForProvider(ctx context.Context, providerID string, day time.Time) ([]domain.Appointment, error) {
	dayStart, dayEnd := domain.ServiceDay(day)
	var rows []domain.Appointment
	err := r.db.NewSelect().
		Model(&rows).
		Where("provider_id = ?", providerID).
		Where("scheduled_at >= ?", dayStart).
		Where("scheduled_at < ?", dayEnd).
		OrderExpr("token_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (t queueTx) MaxTokenNumber(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (int, error) {
	var max int
	err := t.tx.NewSelect().
		Model((*domain.Appointment)(nil)).
		ColumnExpr("COALESCE(MAX(token_number), 0)").
		Where("provider_id = ?", providerID).
		Where("scheduled_at >= ?", dayStart).
		Where("scheduled_at < ?", dayEnd).
		Scan(ctx, &max)
	if err != nil {
		return 0, err
	}
	return max, nil
}

func (t queueTx) InsertAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	m := appt
	if _, err := t.tx.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.Appointment{}, err
	}
	return m, nil
}

func (t queueTx) InProgress(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (domain.Appointment, bool, error) {
	return t.oneByStatus(ctx, providerID, dayStart, dayEnd, domain.StatusInProgress, "token_number ASC")
}

func (t queueTx) SmallestScheduled(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (domain.Appointment, bool, error) {
	return t.oneByStatus(ctx, providerID, dayStart, dayEnd, domain.StatusScheduled, "token_number ASC")
}

func (t queueTx) oneByStatus(ctx context.Context, providerID string, dayStart, dayEnd time.Time, status domain.AppointmentStatus, order string) (domain.Appointment, bool, error) {
	var appt domain.Appointment
	err := t.tx.NewSelect().
		Model(&appt).
		Where("provider_id = ?", providerID).
		Where("scheduled_at >= ?", dayStart).
		Where("scheduled_at < ?", dayEnd).
		Where("status = ?", status).
		OrderExpr(order).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Appointment{}, false, nil
		}
		return domain.Appointment{}, false, err
	}
	return appt, true, nil
}

func (t queueTx) HighestCompletedToken(ctx context.Context, providerID string, dayStart, dayEnd time.Time) (int, error) {
	var max int
	err := t.tx.NewSelect().
		Model((*domain.Appointment)(nil)).
		ColumnExpr("COALESCE(MAX(token_number), 0)").
		Where("provider_id = ?", providerID).
		Where("scheduled_at >= ?", dayStart).
		Where("scheduled_at < ?", dayEnd).
		Where("status = ?", domain.StatusCompleted).
		Scan(ctx, &max)
	if err != nil {
		return 0, err
	}
	return max, nil
}

func (t queueTx) GetAppointment(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	var appt domain.Appointment
	err := t.tx.NewSelect().
		Model(&appt).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Appointment{}, store.ErrNotFound
		}
		return domain.Appointment{}, err
	}
	return appt, nil
}

func (t queueTx) SaveAppointment(ctx context.Context, appt *domain.Appointment) error {
	res, err := t.tx.NewUpdate().
		Model(appt).
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (t queueTx) RefreshProviderRating(ctx context.Context, providerID string) error {
	_, err := t.tx.NewRaw(`
		UPDATE providers SET
			avg_rating = COALESCE(agg.avg_rating, 0),
			total_reviews = COALESCE(agg.total_reviews, 0),
			updated_at = now()
		FROM (
			SELECT AVG(rating)::float8 AS avg_rating, COUNT(rating) AS total_reviews
			FROM appointments
			WHERE provider_id = ? AND status = ? AND rating IS NOT NULL
		) AS agg
		WHERE id = ?
	`, providerID, domain.StatusCompleted, providerID).Exec(ctx)
	return err
}
