package rangetree

import "fmt"

// Assemble places every ascending range into the slot chosen by perm:
// out[perm[r]] = seq[r].
func Assemble[V comparable](seq []Entry[V], perm []int) []Entry[V] {
	if len(seq) != len(perm) {
		panic(fmt.Sprintf("rangetree: %d ranges but %d slots", len(seq), len(perm)))
	}

	out := make([]Entry[V], len(seq))

	for r, e := range seq {
		out[perm[r]] = e
	}

	return out
}

// CheckLayout reports whether entries form a valid pointerless search tree: an
// in-order walk over the implicit tree must meet well-formed, strictly ascending,
// disjoint ranges.
func CheckLayout[V comparable](entries []Entry[V]) error {
	shape, err := NewShape(len(entries))
	if err != nil {
		return err
	}

	var (
		prev    Range
		badNode int
	)

	shape.walk(func(node, rank int) {
		if badNode != 0 {
			return
		}
		cur := entries[node-1].Range
		if cur.Lo > cur.Hi || rank > 0 && cur.Lo <= prev.Hi {
			badNode = node
		}
		prev = cur
	})

	if badNode != 0 {
		return fmt.Errorf("%w: node %d holds %v", ErrBadLayout, badNode, entries[badNode-1].Range)
	}
	return nil
}

// Search looks k up in a layout produced by Assemble.
func Search[V comparable](entries []Entry[V], k rune) (val V, ok bool) {
	for i, n := 1, len(entries); i <= n; {
		e := &entries[i-1]
		switch {
		case k < e.Lo:
			i = 2 * i
		case k > e.Hi:
			i = 2*i + 1
		default:
			return e.Val, true
		}
	}
	return
}

// Table is an immutable pointerless search table with a default value for runes
// outside every range. It is safe for concurrent use.
type Table[V comparable] struct {
	entries []Entry[V]
	def     V
}

func (t *Table[V]) Len() int {
	return len(t.entries)
}

func (t *Table[V]) Default() V {
	return t.def
}

// Lookup returns the value of the range containing k or the default value.
func (t *Table[V]) Lookup(k rune) V {
	if val, ok := Search(t.entries, k); ok {
		return val
	}
	return t.def
}

// Find is Lookup telling a miss apart from a stored default.
func (t *Table[V]) Find(k rune) (V, bool) {
	return Search(t.entries, k)
}

// Depth returns the maximum number of probes a lookup takes.
func (t *Table[V]) Depth() int {
	return Shape{n: len(t.entries)}.Depth()
}

// Entries returns a copy of the layout, Entries()[i-1] being tree node i.
func (t *Table[V]) Entries() []Entry[V] {
	return append([]Entry[V](nil), t.entries...)
}

// Ranges returns the entries in ascending order.
func (t *Table[V]) Ranges() []Entry[V] {
	out := make([]Entry[V], 0, len(t.entries))

	if len(t.entries) > 0 {
		Shape{n: len(t.entries)}.walk(func(node, _ int) {
			out = append(out, t.entries[node-1])
		})
	}

	return out
}
