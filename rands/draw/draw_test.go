package draw

import (
	"context"
	"testing"

	"github.com/donkeywon/randrange/errs"
	"github.com/donkeywon/randrange/stats"
	"github.com/stretchr/testify/require"
)

func TestChunks(t *testing.T) {
	require.Equal(t, []int{4, 3, 3}, chunks(10, 3))
	require.Equal(t, []int{1, 1}, chunks(2, 8))
	require.Equal(t, []int{5}, chunks(5, 1))
}

func TestRun(t *testing.T) {
	req := NewRequest(-3, 3, 10000)
	req.Workers = 4
	res, err := Run(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Values, 10000)
	require.Equal(t, uint64(10000), res.Histogram.Count())
	for _, v := range res.Values {
		require.True(t, v >= -3 && v <= 3, "%d out of [-3, 3]", v)
	}
	require.Len(t, res.Histogram.Buckets(), 7)
}

func TestRunSeeded(t *testing.T) {
	req := NewRequest(0.0, 1.0, 1000)
	req.Workers = 3
	req.Seed = "seed"

	a, err := Run(context.Background(), req)
	require.NoError(t, err)
	b, err := Run(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, a.Values, b.Values)
}

func TestRunHistogramOnly(t *testing.T) {
	req := NewRequest[uint8](1, 100, 100*2000)
	req.Workers = 8
	req.KeepValues = false
	req.Seed = t.Name()

	res, err := Run(context.Background(), req)
	require.NoError(t, err)
	require.Empty(t, res.Values)

	c := stats.NewUniformCheck(1, 100)
	c.HitsTolerance = 0.15
	c.MeanTolerance = 0.01
	require.NoError(t, c.Check(res.Histogram.Summary()))
}

func TestRunInvalidRange(t *testing.T) {
	_, err := Run(context.Background(), NewRequest(10, 5, 100))
	require.ErrorIs(t, err, errs.ErrInvalidRange)
	require.Equal(t, errs.CodeInvalidRange, errs.CodeOf(err))
}

func TestRunInvalidRequest(t *testing.T) {
	_, err := Run(context.Background(), NewRequest(1, 5, 0))
	require.Error(t, err)
	require.Equal(t, errs.CodeInvalidRequest, errs.CodeOf(err))

	req := NewRequest(1, 5, 10)
	req.Workers = MaxWorkers + 1
	_, err = Run(context.Background(), req)
	require.Equal(t, errs.CodeInvalidRequest, errs.CodeOf(err))
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, NewRequest(1, 5, 100000))
	require.Error(t, err)
}

type brokenSource struct{}

func (brokenSource) Uint64() uint64          { panic("source exhausted") }
func (brokenSource) Uint64N(n uint64) uint64 { panic("source exhausted") }

func TestDrawChunkPanic(t *testing.T) {
	res, err := drawChunk(context.Background(), brokenSource{}, NewRequest(1, 6, 10), 10)
	require.Nil(t, res)
	require.EqualError(t, err, "draw worker panicked: panic: source exhausted")
	require.Contains(t, errs.ErrToStackString(err), "draw.drawChunk")
}
