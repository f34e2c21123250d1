package stats

import (
	"cmp"
	"slices"

	"github.com/donkeywon/randrange/rands"
)

// Bucket is how many times Value was seen.
type Bucket[T rands.Number] struct {
	Value T      `json:"value" yaml:"value"`
	Hits  uint64 `json:"hits"  yaml:"hits"`
}

// Histogram counts occurrences of drawn values. Not safe for concurrent use,
// build one per goroutine and Merge them.
type Histogram[T rands.Number] struct {
	counts map[T]uint64
	total  uint64
	sum    float64
	min    T
	max    T
}

func NewHistogram[T rands.Number]() *Histogram[T] {
	return &Histogram[T]{counts: make(map[T]uint64)}
}

func (h *Histogram[T]) Add(v T) {
	h.addN(v, 1)
}

func (h *Histogram[T]) addN(v T, n uint64) {
	if h.total == 0 || v < h.min {
		h.min = v
	}
	if h.total == 0 || v > h.max {
		h.max = v
	}
	h.counts[v] += n
	h.total += n
	h.sum += float64(v) * float64(n)
}

// Merge adds every count of o to h.
func (h *Histogram[T]) Merge(o *Histogram[T]) {
	for v, n := range o.counts {
		h.addN(v, n)
	}
}

// Count is the number of values added.
func (h *Histogram[T]) Count() uint64 {
	return h.total
}

// Hits returns how many times v was added.
func (h *Histogram[T]) Hits(v T) uint64 {
	return h.counts[v]
}

// Buckets returns one Bucket per distinct value, ordered by value.
func (h *Histogram[T]) Buckets() []Bucket[T] {
	bs := make([]Bucket[T], 0, len(h.counts))
	for v, n := range h.counts {
		bs = append(bs, Bucket[T]{Value: v, Hits: n})
	}
	slices.SortFunc(bs, func(a, b Bucket[T]) int {
		return cmp.Compare(a.Value, b.Value)
	})
	return bs
}

func (h *Histogram[T]) Summary() Summary {
	s := Summary{
		Count:    h.total,
		Distinct: uint64(len(h.counts)),
	}
	if h.total == 0 {
		return s
	}

	s.Min = float64(h.min)
	s.Max = float64(h.max)
	s.Mean = h.sum / float64(h.total)
	first := true
	for _, n := range h.counts {
		if first || n < s.MinHits {
			s.MinHits = n
		}
		if first || n > s.MaxHits {
			s.MaxHits = n
		}
		first = false
	}
	return s
}
