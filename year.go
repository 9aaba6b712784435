package ephemeris

import (
	"context"
	"fmt"

	"github.com/nathan-osman/go-sunrise"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/subtlepseudonym/ephemeris/timebase"
)

const defaultWorkers = 4

// Orchestrator runs the Daily Sampler across a range of civil days
// and tags each result with its page metadata. Days are independent,
// so they are computed concurrently; the output sequence is always in
// calendar order.
type Orchestrator struct {
	sampler *Sampler
	log     *zap.Logger

	workers   int
	latitude  float64 // observer position for rise/set times
	longitude float64
}

// NewOrchestrator validates the engine configuration up front: an
// empty star catalog is rejected before any day is computed.
func NewOrchestrator(sampler *Sampler, log *zap.Logger, workers int, latitude, longitude float64) (*Orchestrator, error) {
	if len(sampler.stars) == 0 {
		return nil, &ConfigurationError{Reason: "empty star catalog"}
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Orchestrator{
		sampler:   sampler,
		log:       log,
		workers:   workers,
		latitude:  latitude,
		longitude: longitude,
	}, nil
}

// Run computes every civil day in [start, end] and returns the
// results in calendar order. Page parity is a pure function of each
// day's offset from start, so completion order does not matter; the
// first day is an odd page.
func (o *Orchestrator) Run(ctx context.Context, start, end timebase.Date) ([]*DayResult, error) {
	span := start.DaysUntil(end)
	if span < 0 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("end date %s before start date %s", end, start)}
	}

	results := make([]*DayResult, span+1)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(o.workers)

	for offset := range results {
		offset := offset
		date := start.AddDays(offset)

		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			day, err := o.sampler.Day(date)
			if err != nil {
				o.log.Error("sample day failed", zap.String("date", date.String()), zap.Error(err))
				return err
			}

			day.OddPage = offset%2 == 0
			day.RiseSet = o.riseSet(date)
			results[offset] = day

			o.log.Debug("sampled day",
				zap.String("date", date.String()),
				zap.Int("dayOfYear", day.DayOfYear))
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (o *Orchestrator) riseSet(date timebase.Date) RiseSet {
	rise, set := sunrise.SunriseSunset(o.latitude, o.longitude, date.Year, date.Month, date.Day)
	return RiseSet{Sunrise: rise, Sunset: set}
}
