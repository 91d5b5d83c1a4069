package rangetree

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyMapping    = errors.New("rangetree: empty mapping")
	ErrUnsortedMapping = errors.New("rangetree: keys are not strictly ascending")
	ErrTooLarge        = errors.New("rangetree: too many ranges for index arithmetic")
	ErrBadLayout       = errors.New("rangetree: layout breaks the search order")
)

// Pair is a single key of a source mapping.
type Pair[V comparable] struct {
	Key rune
	Val V
}

// Range is an inclusive interval of runes, Lo <= Hi.
type Range struct {
	Lo rune
	Hi rune
}

func (r Range) Contains(k rune) bool {
	return r.Lo <= k && k <= r.Hi
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Lo, r.Hi)
}

// Entry is a range carrying one value.
type Entry[V comparable] struct {
	Range
	Val V
}

func (e Entry[V]) String() string {
	return fmt.Sprintf("%v=%v", e.Range, e.Val)
}

// Validate checks that pairs are non-empty and strictly ascending by key.
// Compact and Builder.Build rely on both.
func Validate[V comparable](pairs []Pair[V]) error {
	if len(pairs) == 0 {
		return ErrEmptyMapping
	}

	for i := 1; i < len(pairs); i++ {
		if prev, cur := pairs[i-1].Key, pairs[i].Key; cur <= prev {
			return fmt.Errorf("%w: key %d at %d follows %d", ErrUnsortedMapping, cur, i, prev)
		}
	}

	return nil
}
