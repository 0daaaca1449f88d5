package postgres

import (
	"context"
	"database/sql"
	"errors"

	"tokenline/internal/domain"
	"tokenline/internal/store"
)

func (r *QueueRepo) CompletedServiceRecords(ctx context.Context) ([]store.ServiceRecord, error) {
	var rows []domain.Appointment
	err := r.db.NewSelect().
		Model(&rows).
		Column("scheduled_at", "token_number", "duration_minutes").
		Where("status = ?", domain.StatusCompleted).
		Where("duration_minutes IS NOT NULL").
		Where("started_at IS NOT NULL").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]store.ServiceRecord, 0, len(rows))
	for _, a := range rows {
		out = append(out, store.ServiceRecord{
			ScheduledAt:     a.ScheduledAt,
			TokenNumber:     a.TokenNumber,
			DurationMinutes: *a.DurationMinutes,
		})
	}
	return out, nil
}

func (r *QueueRepo) CompletedRatings(ctx context.Context) ([]store.RatingRecord, error) {
	var rows []domain.Appointment
	err := r.db.NewSelect().
		Model(&rows).
		Column("user_id", "provider_id", "rating").
		Where("status = ?", domain.StatusCompleted).
		Where("rating IS NOT NULL").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]store.RatingRecord, 0, len(rows))
	for _, a := range rows {
		out = append(out, store.RatingRecord{
			UserID:     a.UserID,
			ProviderID: a.ProviderID,
			Rating:     *a.Rating,
		})
	}
	return out, nil
}

func (r *QueueRepo) GetProvider(ctx context.Context, id string) (domain.Provider, error) {
	var p domain.Provider
	err := r.db.NewSelect().
		Model(&p).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Provider{}, store.ErrNotFound
		}
		return domain.Provider{}, err
	}
	return p, nil
}

func (r *QueueRepo) TopProviders(ctx context.Context, profession string, limit int) ([]domain.Provider, error) {
	var rows []domain.Provider
	q := r.db.NewSelect().
		Model(&rows).
		Where("active").
		OrderExpr("avg_rating DESC, total_reviews DESC, id ASC")
	if profession != "" {
		q = q.Where("profession = ?", profession)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return rows, nil
}
