// Package enumerate walks cartesian products of finite value sets.
//
// The product is addressed as a mixed-radix number: one digit per set, the
// digit at position 0 most significant. Iterators never materialize the
// product; they advance the counter by offsets, which makes sampled
// enumeration as cheap as exhaustive.
package enumerate

import (
	"fmt"
	"math"
)

// Iterator yields tuples from a product of value sets. Next returns false
// once the iterator is exhausted.
type Iterator[T any] interface {
	Next() ([]T, bool)
	TotalCount() uint64
}

// Enumerator holds the mixed-radix counter over N value sets. Sets are
// indexable collections; uniqueness of their elements is not required.
type Enumerator[T any] struct {
	sets   [][]T
	digits []int
	state  []T
	total  uint64
}

// NewEnumerator validates the sets and initializes the counter. Digits start
// at |S_i|-1 while the state holds each set's first element: the sentinel
// arrangement makes the first Advance(1) wrap every digit to zero and emit
// the lexicographically smallest tuple.
func NewEnumerator[T any](sets [][]T) (*Enumerator[T], error) {
	if len(sets) == 0 {
		return nil, fmt.Errorf("the product requires at least one value set")
	}
	e := &Enumerator[T]{
		sets:   sets,
		digits: make([]int, len(sets)),
		state:  make([]T, len(sets)),
	}
	total := uint64(1)
	logTotal := 0.0
	for i, set := range sets {
		if len(set) == 0 {
			return nil, fmt.Errorf("empty set of values at position %d", i)
		}
		logTotal += math.Log2(float64(len(set)))
		if logTotal >= 64 {
			return nil, fmt.Errorf("the parameter grid is too large, try to reduce it")
		}
		total *= uint64(len(set))
		e.digits[i] = len(set) - 1
		e.state[i] = set[0]
	}
	e.total = total
	return e, nil
}

// TotalCount returns the size of the full product.
func (e *Enumerator[T]) TotalCount() uint64 {
	return e.total
}

// Advance adds offset to the multi-index with carry and returns the updated
// tuple. Only positions whose digit changed are refreshed. The returned slice
// aliases internal state and is only valid until the next call.
func (e *Enumerator[T]) Advance(offset uint64) []T {
	for i := len(e.digits) - 1; i > 0; i-- {
		old := uint64(e.digits[i])
		size := uint64(len(e.sets[i]))
		e.digits[i] = int((old + offset) % size)
		e.state[i] = e.sets[i][e.digits[i]]
		if old+offset < size {
			return e.state
		}
		offset = (offset-(size-old))/size + 1
	}
	// The most significant digit absorbs whatever carry is left.
	size := uint64(len(e.sets[0]))
	e.digits[0] = int((uint64(e.digits[0]) + offset) % size)
	e.state[0] = e.sets[0][e.digits[0]]
	return e.state
}

// Exhaustive emits every tuple of the product exactly once, in lexicographic
// order of the index tuple.
type Exhaustive[T any] struct {
	enum   *Enumerator[T]
	passed uint64
}

// NewExhaustive builds an exhaustive iterator over the given sets.
func NewExhaustive[T any](sets [][]T) (*Exhaustive[T], error) {
	enum, err := NewEnumerator(sets)
	if err != nil {
		return nil, err
	}
	return &Exhaustive[T]{enum: enum}, nil
}

// Next returns the next tuple until the product is exhausted.
func (it *Exhaustive[T]) Next() ([]T, bool) {
	if it.passed >= it.enum.total {
		return nil, false
	}
	it.passed++
	return it.enum.Advance(1), true
}

// TotalCount returns the number of tuples the iterator will emit.
func (it *Exhaustive[T]) TotalCount() uint64 {
	return it.enum.total
}
