package stats

import (
	"errors"
	"math"

	"github.com/donkeywon/randrange/errs"
)

const (
	// DefaultMeanTolerance is the relative error allowed between the observed and the expected mean.
	DefaultMeanTolerance = 0.001
	// DefaultHitsTolerance is the relative error allowed between a value's hits and the expected hits.
	DefaultHitsTolerance = 0.05
)

var ErrNotUniform = errors.New("not uniform")

type Summary struct {
	Count    uint64  `json:"count"    yaml:"count"`
	Distinct uint64  `json:"distinct" yaml:"distinct"`
	Min      float64 `json:"min"      yaml:"min"`
	Max      float64 `json:"max"      yaml:"max"`
	Mean     float64 `json:"mean"     yaml:"mean"`
	MinHits  uint64  `json:"minHits"  yaml:"minHits"`
	MaxHits  uint64  `json:"maxHits"  yaml:"maxHits"`
}

// UniformCheck describes what a sample drawn uniformly from the integer range [Low, High] must look like.
type UniformCheck struct {
	Low           float64
	High          float64
	MeanTolerance float64
	HitsTolerance float64
}

func NewUniformCheck(low, high float64) *UniformCheck {
	return &UniformCheck{
		Low:           low,
		High:          high,
		MeanTolerance: DefaultMeanTolerance,
		HitsTolerance: DefaultHitsTolerance,
	}
}

// Check returns an error wrapping ErrNotUniform when s misses a value of the
// range, has a value outside of it, drifts from the expected mean, or has a
// value whose hits are off the expected hits by more than HitsTolerance.
func (c *UniformCheck) Check(s Summary) error {
	if s.Count == 0 {
		return errs.Wrap(ErrNotUniform, "empty sample")
	}
	if s.Min < c.Low || s.Max > c.High {
		return errs.Wrapf(ErrNotUniform, "sample [%v, %v] exceeds range [%v, %v]", s.Min, s.Max, c.Low, c.High)
	}

	width := c.High - c.Low + 1
	if float64(s.Distinct) != width {
		return errs.Wrapf(ErrNotUniform, "%d distinct values, expected %v", s.Distinct, width)
	}

	expectedMean := (c.Low + c.High) / 2
	if math.Abs(s.Mean-expectedMean) > c.MeanTolerance*c.meanScale() {
		return errs.Wrapf(ErrNotUniform, "mean %v, expected %v", s.Mean, expectedMean)
	}

	expectedHits := float64(s.Count) / width
	lo, hi := expectedHits*(1-c.HitsTolerance), expectedHits*(1+c.HitsTolerance)
	if float64(s.MinHits) < lo || float64(s.MaxHits) > hi {
		return errs.Wrapf(ErrNotUniform, "hits per value in [%d, %d], expected [%.0f, %.0f]", s.MinHits, s.MaxHits, lo, hi)
	}
	return nil
}

// Relaxed returns a copy of c whose tolerances are widened to at least five
// standard errors of a uniform sample of n values.
func (c *UniformCheck) Relaxed(n uint64) *UniformCheck {
	r := *c
	if n == 0 {
		return &r
	}

	width := c.High - c.Low + 1
	meanStdErr := math.Sqrt((width*width - 1) / 12 / float64(n))
	r.MeanTolerance = math.Max(r.MeanTolerance, 5*meanStdErr/c.meanScale())

	expectedHits := float64(n) / width
	r.HitsTolerance = math.Max(r.HitsTolerance, 5/math.Sqrt(expectedHits))
	return &r
}

// meanScale is what MeanTolerance is relative to. Ranges centered on zero
// expect a mean of 0, so the half width is used as a floor.
func (c *UniformCheck) meanScale() float64 {
	return math.Max(math.Abs(c.Low+c.High)/2, (c.High-c.Low)/2)
}
