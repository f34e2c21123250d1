package stats

import (
	"testing"

	"github.com/donkeywon/randrange/errs"
	"github.com/stretchr/testify/require"
)

func uniformHistogram(low, high int, each int) *Histogram[int] {
	h := NewHistogram[int]()
	for v := low; v <= high; v++ {
		for i := 0; i < each; i++ {
			h.Add(v)
		}
	}
	return h
}

func TestHistogram(t *testing.T) {
	h := NewHistogram[int]()
	for _, v := range []int{3, 1, 2, 3, 3} {
		h.Add(v)
	}
	o := NewHistogram[int]()
	o.Add(-1)
	h.Merge(o)

	require.Equal(t, uint64(6), h.Count())
	require.Equal(t, uint64(3), h.Hits(3))
	require.Equal(t, []Bucket[int]{{-1, 1}, {1, 1}, {2, 1}, {3, 3}}, h.Buckets())

	s := h.Summary()
	require.Equal(t, Summary{
		Count:    6,
		Distinct: 4,
		Min:      -1,
		Max:      3,
		Mean:     11.0 / 6,
		MinHits:  1,
		MaxHits:  3,
	}, s)
}

func TestEmptySummary(t *testing.T) {
	require.Equal(t, Summary{}, NewHistogram[float64]().Summary())
	require.ErrorIs(t, NewUniformCheck(1, 2).Check(Summary{}), ErrNotUniform)
}

func TestCheckUniform(t *testing.T) {
	require.NoError(t, NewUniformCheck(1, 1000).Check(uniformHistogram(1, 1000, 100).Summary()))
	require.NoError(t, NewUniformCheck(-5, 5).Check(uniformHistogram(-5, 5, 100).Summary()))
}

func TestCheckUniformRejects(t *testing.T) {
	gap := uniformHistogram(1, 10, 100)
	delete(gap.counts, 5)
	err := NewUniformCheck(1, 10).Check(gap.Summary())
	require.ErrorIs(t, err, ErrNotUniform)

	outside := uniformHistogram(0, 10, 100)
	require.ErrorIs(t, NewUniformCheck(1, 10).Check(outside.Summary()), ErrNotUniform)

	skew := uniformHistogram(1, 10, 100)
	for i := 0; i < 20; i++ {
		skew.Add(10)
	}
	err = NewUniformCheck(1, 10).Check(skew.Summary())
	require.ErrorIs(t, err, ErrNotUniform)
	require.Contains(t, errs.ErrToStackString(err), "not uniform")
}

func TestRelaxed(t *testing.T) {
	c := NewUniformCheck(1, 10)
	require.Equal(t, c.MeanTolerance, c.Relaxed(0).MeanTolerance)

	r := c.Relaxed(1000)
	require.Greater(t, r.MeanTolerance, c.MeanTolerance)
	require.Greater(t, r.HitsTolerance, c.HitsTolerance)

	// ten million draws over ten values is tighter than the defaults.
	big := c.Relaxed(10_000_000)
	require.Equal(t, c.MeanTolerance, big.MeanTolerance)
	require.Equal(t, c.HitsTolerance, big.HitsTolerance)
}
