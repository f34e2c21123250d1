// Package draw takes many samples of one range at once, spread over a pool of
// workers that each own an independent generator.
package draw

import (
	"context"
	"math/rand/v2"

	"github.com/alitto/pond/v2"
	"github.com/donkeywon/randrange/errs"
	"github.com/donkeywon/randrange/rands"
	"github.com/donkeywon/randrange/stats"
	"github.com/donkeywon/randrange/util/vtil"
)

const (
	DefaultWorkers = 1
	MaxWorkers     = 1024

	// ctxCheckInterval is how many values a worker draws between two context checks.
	ctxCheckInterval = 4096
)

type Request[T rands.Number] struct {
	Low     T
	High    T
	Count   int `validate:"gte=1"`
	Workers int `validate:"gte=1,lte=1024"`

	// Seed makes the result reproducible for a given Workers. Empty seeds from the global generator.
	Seed string
	// KeepValues keeps every drawn value in Result.Values, otherwise only the histogram is built.
	KeepValues bool
}

func NewRequest[T rands.Number](low, high T, count int) *Request[T] {
	return &Request[T]{
		Low:        low,
		High:       high,
		Count:      count,
		Workers:    DefaultWorkers,
		KeepValues: true,
	}
}

type Result[T rands.Number] struct {
	Values    []T
	Histogram *stats.Histogram[T]
}

// Run draws req.Count values from [req.Low, req.High]. The range is validated
// before any worker starts, so an invalid range draws nothing.
func Run[T rands.Number](ctx context.Context, req *Request[T]) (*Result[T], error) {
	err := vtil.Struct(req)
	if err != nil {
		return nil, errs.WithCode(errs.Wrap(err, "invalid draw request"), errs.CodeInvalidRequest)
	}
	err = rands.Validate(req.Low, req.High)
	if err != nil {
		return nil, err
	}

	seed := rand.Uint64()
	if req.Seed != "" {
		seed = rands.SeedFromString(req.Seed)
	}

	pool := pond.NewResultPool[*Result[T]](req.Workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for i, n := range chunks(req.Count, req.Workers) {
		src := rands.NewSource(rands.DeriveSeed(seed, i))
		group.SubmitErr(func() (*Result[T], error) {
			return drawChunk(ctx, src, req, n)
		})
	}

	parts, err := group.Wait()
	if err != nil {
		return nil, errs.Wrap(err, "draw failed")
	}

	res := &Result[T]{Histogram: stats.NewHistogram[T]()}
	if req.KeepValues {
		res.Values = make([]T, 0, req.Count)
	}
	for _, p := range parts {
		res.Histogram.Merge(p.Histogram)
		res.Values = append(res.Values, p.Values...)
	}
	return res, nil
}

// drawChunk draws n values with src. A panicking src fails the chunk instead of the process.
func drawChunk[T rands.Number](ctx context.Context, src rands.Source, req *Request[T], n int) (_ *Result[T], err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errs.Wrap(errs.PanicToErr(p), "draw worker panicked")
		}
	}()

	res := &Result[T]{Histogram: stats.NewHistogram[T]()}
	if req.KeepValues {
		res.Values = make([]T, 0, n)
	}
	for i := 0; i < n; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		v, err := rands.Range(src, req.Low, req.High)
		if err != nil {
			return nil, err
		}
		res.Histogram.Add(v)
		if req.KeepValues {
			res.Values = append(res.Values, v)
		}
	}
	return res, nil
}

// chunks splits count into at most workers non-empty parts whose sizes differ by at most one.
func chunks(count, workers int) []int {
	if workers > count {
		workers = count
	}
	parts := make([]int, workers)
	for i := range parts {
		parts[i] = count / workers
		if i < count%workers {
			parts[i]++
		}
	}
	return parts
}
