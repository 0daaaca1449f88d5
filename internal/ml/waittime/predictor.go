package waittime

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"gonum.org/v1/gonum/mat"

	"tokenline/internal/store"
)

const (
	// DefaultFallbackMinutesPerToken matches the queue-position heuristic so
	// untrained predictions and the public estimator agree.
	DefaultFallbackMinutesPerToken = 15.0

	// DefaultMinSamples is the lightweight activation threshold; a fit below
	// DefaultConfidentSamples is usable but not recommendation-grade.
	DefaultMinSamples       = 10
	DefaultConfidentSamples = 50
)

type Confidence string

const (
	ConfidenceHeuristic   Confidence = "heuristic"
	ConfidenceLightweight Confidence = "lightweight"
	ConfidenceTrained     Confidence = "trained"
)

type HistorySource interface {
	CompletedServiceRecords(ctx context.Context) ([]store.ServiceRecord, error)
}

type Options struct {
	MinSamples              int
	ConfidentSamples        int
	FallbackMinutesPerToken float64
}

// Predictor estimates wait minutes from a least-squares fit of realized
// service durations over {hour-of-day, day-of-week, tokens ahead}. The
// fitted surface is replaced wholesale on each training pass; readers only
// ever see a complete fit or none.
type Predictor struct {
	history          HistorySource
	minSamples       int
	confidentSamples int
	fallbackPerToken float64

	model atomic.Pointer[regression]
}

func New(history HistorySource, opts Options) *Predictor {
	if opts.MinSamples <= 0 {
		opts.MinSamples = DefaultMinSamples
	}
	// The QR solve needs at least as many observations as design-matrix
	// columns; a smaller configured minimum stays on the heuristic instead.
	if opts.MinSamples < regressionColumns {
		opts.MinSamples = regressionColumns
	}
	if opts.ConfidentSamples <= 0 {
		opts.ConfidentSamples = DefaultConfidentSamples
	}
	if opts.FallbackMinutesPerToken <= 0 {
		opts.FallbackMinutesPerToken = DefaultFallbackMinutesPerToken
	}
	return &Predictor{
		history:          history,
		minSamples:       opts.MinSamples,
		confidentSamples: opts.ConfidentSamples,
		fallbackPerToken: opts.FallbackMinutesPerToken,
	}
}

// regressionColumns is the width of the design matrix: intercept, hour,
// weekday, tokens ahead.
const regressionColumns = 4

type regression struct {
	intercept   float64
	hour        float64
	weekday     float64
	tokensAhead float64
	samples     int
}

func (m *regression) durationMinutes(hour, weekday, tokensAhead int) float64 {
	d := m.intercept +
		m.hour*float64(hour) +
		m.weekday*float64(weekday) +
		m.tokensAhead*float64(tokensAhead)
	// A linear fit can extrapolate below the target range; a service never
	// takes negative time.
	if d < 0 {
		d = 0
	}
	return d
}

// Train rebuilds the model from completed history. Too little history is
// not an error: the predictor stays (or falls back to) heuristic.
func (p *Predictor) Train(ctx context.Context) error {
	records, err := p.history.CompletedServiceRecords(ctx)
	if err != nil {
		return err
	}
	if len(records) < p.minSamples {
		return nil
	}

	model, err := fit(records)
	if err != nil {
		return err
	}
	p.model.Store(model)
	return nil
}

func fit(records []store.ServiceRecord) (*regression, error) {
	n := len(records)
	x := mat.NewDense(n, regressionColumns, nil)
	y := mat.NewVecDense(n, nil)
	for i, r := range records {
		at := r.ScheduledAt.UTC()
		x.Set(i, 0, 1)
		x.Set(i, 1, float64(at.Hour()))
		x.Set(i, 2, float64(weekdayIndex(at)))
		// Tokens ahead is approximated by the final token number; the true
		// queue depth at the historical serving moment is not reconstructed.
		x.Set(i, 3, float64(r.TokenNumber-1))
		y.SetVec(i, r.DurationMinutes)
	}

	var qr mat.QR
	qr.Factorize(x)

	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, y); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, err
		}
	}

	return &regression{
		intercept:   beta.AtVec(0),
		hour:        beta.AtVec(1),
		weekday:     beta.AtVec(2),
		tokensAhead: beta.AtVec(3),
		samples:     n,
	}, nil
}

// Predict returns estimated wait minutes for a queue position. The model
// estimates average per-person service time; total wait is that duration
// times the number of tokens ahead. Conflating service time and wait time
// this way is a documented approximation, not a bug.
func (p *Predictor) Predict(currentToken, userToken int, at time.Time) float64 {
	ahead := userToken - currentToken
	if ahead < 0 {
		ahead = 0
	}

	model := p.model.Load()
	if model == nil {
		return float64(ahead) * p.fallbackPerToken
	}

	at = at.UTC()
	perPerson := model.durationMinutes(at.Hour(), weekdayIndex(at), ahead)
	return float64(ahead) * perPerson
}

func (p *Predictor) Trained() bool {
	return p.model.Load() != nil
}

// Confidence reports how much history backs the current fit.
func (p *Predictor) Confidence() Confidence {
	model := p.model.Load()
	switch {
	case model == nil:
		return ConfidenceHeuristic
	case model.samples < p.confidentSamples:
		return ConfidenceLightweight
	default:
		return ConfidenceTrained
	}
}

// weekdayIndex counts Monday as 0 through Sunday as 6.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
