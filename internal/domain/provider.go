package domain

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

type Provider struct {
	bun.BaseModel `bun:"table:providers"`

	ID           string    `bun:"id,pk"`
	Name         string    `bun:"name,notnull"`
	Profession   string    `bun:"profession,notnull"`
	AvgRating    float64   `bun:"avg_rating,notnull,default:0"`
	TotalReviews int       `bun:"total_reviews,notnull,default:0"`
	Active       bool      `bun:"active,notnull,default:true"`
	CreatedAt    time.Time `bun:"created_at,notnull"`
	UpdatedAt    time.Time `bun:"updated_at,notnull"`
}

func (p *Provider) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		if p.UpdatedAt.IsZero() {
			p.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		p.UpdatedAt = now
	}
	return nil
}
