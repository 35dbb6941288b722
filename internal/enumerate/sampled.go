package enumerate

import (
	"fmt"
	"slices"

	"github.com/gbtkit/tuning-core/pkg/utils"
)

// Sampled emits count tuples drawn uniformly from the product, in ascending
// index order. Repeats are only possible when allowRepeat is set; the caller
// enables it when tuple coordinates resolve to fresh random draws per
// evaluation, so revisiting an index is still a new candidate.
type Sampled[T any] struct {
	enum    *Enumerator[T]
	offsets []uint64
	next    int
}

// NewSampled draws the target indices up front and stores consecutive deltas,
// so iteration costs one mixed-radix advance per sample instead of a seek.
//
// Selection policy: when count covers the whole product and repeats are
// disallowed, count clamps to the product size. When it covers more than 70%,
// a full permutation is shuffled and truncated; rejection sampling that dense
// would mostly collide. Otherwise indices are rejection-sampled with a
// visited set guarding against duplicates.
func NewSampled[T any](sets [][]T, count uint32, allowRepeat bool, rng *utils.RandSource) (*Sampled[T], error) {
	enum, err := NewEnumerator(sets)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("sample count should be a positive number")
	}

	total := enum.total
	n := uint64(count)
	if n > total && !allowRepeat {
		n = total
	}

	var indexes []uint64
	if float64(n)/float64(total) > 0.7 && !allowRepeat {
		indexes = make([]uint64, total)
		for i := range indexes {
			indexes[i] = uint64(i) + 1
		}
		rng.Shuffle(len(indexes), func(i, j int) {
			indexes[i], indexes[j] = indexes[j], indexes[i]
		})
		indexes = indexes[:n]
	} else {
		chosen := make(map[uint64]struct{}, n)
		for uint64(len(indexes)) != n {
			next := rng.Uint64n(total)
			for {
				if _, taken := chosen[next]; !taken {
					break
				}
				next = rng.Uint64n(total)
			}
			// Stored 1-based like the permutation branch: the enumerator starts
			// one advance before the first tuple, so index k emits rank k-1.
			indexes = append(indexes, next+1)
			if !allowRepeat {
				chosen[next] = struct{}{}
			}
		}
	}

	slices.Sort(indexes)
	offsets := make([]uint64, 0, len(indexes))
	var last uint64
	for _, index := range indexes {
		offsets = append(offsets, index-last)
		last = index
	}
	return &Sampled[T]{enum: enum, offsets: offsets}, nil
}

// Next returns the next sampled tuple until count tuples have been emitted.
func (it *Sampled[T]) Next() ([]T, bool) {
	if it.next >= len(it.offsets) {
		return nil, false
	}
	offset := it.offsets[it.next]
	it.next++
	return it.enum.Advance(offset), true
}

// TotalCount returns the number of tuples the iterator will emit.
func (it *Sampled[T]) TotalCount() uint64 {
	return uint64(len(it.offsets))
}
