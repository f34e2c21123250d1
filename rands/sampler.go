package rands

import (
	"errors"
	"reflect"

	"github.com/donkeywon/randrange/log"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricNamespace = "randrange"
	labelKind       = "kind"
)

type Option interface {
	apply(*Sampler)
}

type optionFunc func(*Sampler)

func (f optionFunc) apply(s *Sampler) {
	f(s)
}

// WithSource makes the Sampler draw from src instead of Global().
func WithSource(src Source) Option {
	return optionFunc(func(s *Sampler) {
		s.src = src
	})
}

func WithLogger(l log.Logger) Option {
	return optionFunc(func(s *Sampler) {
		s.l = l
	})
}

// WithRegisterer registers the Sampler's counters to reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return optionFunc(func(s *Sampler) {
		s.reg = reg
	})
}

// Sampler binds a Source to a logger and draw counters.
type Sampler struct {
	src Source
	l   log.Logger
	reg prometheus.Registerer

	draws   *prometheus.CounterVec
	invalid *prometheus.CounterVec
}

func NewSampler(opts ...Option) (*Sampler, error) {
	s := &Sampler{
		src: Global(),
		l:   log.Nop(),
	}
	for _, opt := range opts {
		opt.apply(s)
	}

	var err error
	s.draws, err = registerCounterVec(s.reg, prometheus.CounterOpts{
		Namespace: metricNamespace,
		Name:      "draws_total",
		Help:      "Number of values drawn, by numeric kind.",
	})
	if err != nil {
		return nil, err
	}
	s.invalid, err = registerCounterVec(s.reg, prometheus.CounterOpts{
		Namespace: metricNamespace,
		Name:      "invalid_range_total",
		Help:      "Number of rejected draws of an invalid range, by numeric kind.",
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func registerCounterVec(reg prometheus.Registerer, opts prometheus.CounterOpts) (*prometheus.CounterVec, error) {
	cv := prometheus.NewCounterVec(opts, []string{labelKind})
	if reg == nil {
		return cv, nil
	}
	err := reg.Register(cv)
	if err == nil {
		return cv, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			return existing, nil
		}
	}
	return nil, err
}

// SampleWith draws one value in [low, high] through s.
func SampleWith[T Number](s *Sampler, low, high T) (T, error) {
	kind := reflect.TypeFor[T]().Kind().String()
	v, err := Range(s.src, low, high)
	if err != nil {
		s.invalid.WithLabelValues(kind).Inc()
		s.l.Error("draw rejected", err, "kind", kind, "low", low, "high", high)
		return v, err
	}
	s.draws.WithLabelValues(kind).Inc()
	return v, nil
}

func (s *Sampler) Int(low, high int64) (int64, error) {
	return SampleWith(s, low, high)
}

func (s *Sampler) Uint(low, high uint64) (uint64, error) {
	return SampleWith(s, low, high)
}

func (s *Sampler) Float(low, high float64) (float64, error) {
	return SampleWith(s, low, high)
}

// Source returns the Source s draws from.
func (s *Sampler) Source() Source {
	return s.src
}
