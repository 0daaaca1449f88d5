package recommend

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"

	"gonum.org/v1/gonum/floats"

	"tokenline/internal/domain"
	"tokenline/internal/store"
)

const (
	DefaultSimilarUsers = 5
	DefaultTopN         = 5
)

type RatingsSource interface {
	CompletedRatings(ctx context.Context) ([]store.RatingRecord, error)
}

type ProviderSource interface {
	GetProvider(ctx context.Context, id string) (domain.Provider, error)
	TopProviders(ctx context.Context, profession string, limit int) ([]domain.Provider, error)
}

// Engine recommends providers by user-based collaborative filtering over a
// sparse user-by-provider rating matrix. A missing cell is zero affinity
// ("no signal"), never a low rating. Every path degrades to the popularity
// ranking rather than failing.
type Engine struct {
	ratings      RatingsSource
	providers    ProviderSource
	similarUsers int

	model atomic.Pointer[ratingMatrix]
}

func New(ratings RatingsSource, providers ProviderSource, similarUsers int) *Engine {
	if similarUsers <= 0 {
		similarUsers = DefaultSimilarUsers
	}
	return &Engine{ratings: ratings, providers: providers, similarUsers: similarUsers}
}

type ratingMatrix struct {
	providerIDs []string             // column order
	rows        map[string][]float64 // user id -> dense rating vector
}

// Train rebuilds the rating matrix from completed rated appointments and
// swaps it in atomically. No rated history is not an error; the engine
// stays on the popularity fallback.
func (e *Engine) Train(ctx context.Context) error {
	records, err := e.ratings.CompletedRatings(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	e.model.Store(buildMatrix(records))
	return nil
}

func buildMatrix(records []store.RatingRecord) *ratingMatrix {
	type cell struct {
		sum   float64
		count int
	}
	cells := make(map[string]map[string]cell)
	providerSet := make(map[string]struct{})
	for _, r := range records {
		if cells[r.UserID] == nil {
			cells[r.UserID] = make(map[string]cell)
		}
		c := cells[r.UserID][r.ProviderID]
		c.sum += float64(r.Rating)
		c.count++
		cells[r.UserID][r.ProviderID] = c
		providerSet[r.ProviderID] = struct{}{}
	}

	providerIDs := make([]string, 0, len(providerSet))
	for id := range providerSet {
		providerIDs = append(providerIDs, id)
	}
	sort.Strings(providerIDs)

	rows := make(map[string][]float64, len(cells))
	for userID, userCells := range cells {
		vec := make([]float64, len(providerIDs))
		for i, pid := range providerIDs {
			if c, ok := userCells[pid]; ok {
				// Repeat visits average into one cell.
				vec[i] = c.sum / float64(c.count)
			}
		}
		rows[userID] = vec
	}

	return &ratingMatrix{providerIDs: providerIDs, rows: rows}
}

func (e *Engine) Trained() bool {
	return e.model.Load() != nil
}

// Recommend returns up to topN provider ids, best match first. Tier order:
// collaborative filtering for known users, popularity ranking for untrained
// or cold-start, popularity backfill when filtering leaves the list short.
func (e *Engine) Recommend(ctx context.Context, userID, profession string, topN int) ([]string, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}

	model := e.model.Load()
	if model == nil {
		return e.popularity(ctx, profession, topN, nil)
	}
	userRow, ok := model.rows[userID]
	if !ok {
		return e.popularity(ctx, profession, topN, nil)
	}

	scores := model.predictedAffinity(userID, userRow, e.similarUsers)

	picked := make([]string, 0, topN)
	seen := make(map[string]struct{}, topN)
	for _, s := range scores {
		if len(picked) >= topN {
			break
		}
		provider, err := e.providers.GetProvider(ctx, s.providerID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if profession != "" && provider.Profession != profession {
			continue
		}
		picked = append(picked, provider.ID)
		seen[provider.ID] = struct{}{}
	}

	if len(picked) < topN {
		return e.popularity(ctx, profession, topN, &backfill{picked: picked, seen: seen})
	}
	return picked, nil
}

type backfill struct {
	picked []string
	seen   map[string]struct{}
}

// popularity ranks providers by descending average rating. With a backfill
// it extends an existing pick list, skipping duplicates, until topN or the
// candidate pool runs out.
func (e *Engine) popularity(ctx context.Context, profession string, topN int, fill *backfill) ([]string, error) {
	limit := topN
	if fill != nil {
		// Candidates already picked may occupy top popularity slots.
		limit = topN + len(fill.picked)
	}
	providers, err := e.providers.TopProviders(ctx, profession, limit)
	if err != nil {
		return nil, err
	}

	picked := []string{}
	seen := map[string]struct{}{}
	if fill != nil {
		picked, seen = fill.picked, fill.seen
	}
	for _, p := range providers {
		if len(picked) >= topN {
			break
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		picked = append(picked, p.ID)
		seen[p.ID] = struct{}{}
	}
	return picked, nil
}

type providerScore struct {
	providerID string
	score      float64
}

// predictedAffinity averages the rating vectors of the k users most similar
// to userRow (cosine similarity, self excluded) and returns providers in
// descending predicted-affinity order.
func (m *ratingMatrix) predictedAffinity(userID string, userRow []float64, k int) []providerScore {
	type userSim struct {
		id  string
		sim float64
	}
	sims := make([]userSim, 0, len(m.rows))
	for id, row := range m.rows {
		if id == userID {
			continue
		}
		sims = append(sims, userSim{id: id, sim: cosine(userRow, row)})
	}
	sort.Slice(sims, func(i, j int) bool {
		if sims[i].sim != sims[j].sim {
			return sims[i].sim > sims[j].sim
		}
		return sims[i].id < sims[j].id
	})
	if len(sims) > k {
		sims = sims[:k]
	}

	scores := make([]providerScore, len(m.providerIDs))
	for i, pid := range m.providerIDs {
		scores[i] = providerScore{providerID: pid}
	}
	if len(sims) > 0 {
		for _, s := range sims {
			row := m.rows[s.id]
			for i := range scores {
				scores[i].score += row[i]
			}
		}
		for i := range scores {
			scores[i].score /= float64(len(sims))
		}
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].providerID < scores[j].providerID
	})
	return scores
}

func cosine(a, b []float64) float64 {
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}
