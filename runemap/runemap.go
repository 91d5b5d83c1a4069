// Package runemap implements an ordered map from runes to values as a crit-bit
// tree.
//
// Runes are stored as 4-byte big-endian keys, so the bitwise order of the tree
// is the numeric order of non-negative runes and iteration is always ascending.
package runemap

import "fmt"

type key [4]byte

func encode(r rune) key {
	u := uint32(r)
	return key{byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)}
}

func (k key) rune() rune {
	return rune(uint32(k[0])<<24 | uint32(k[1])<<16 | uint32(k[2])<<8 | uint32(k[3]))
}

type item[V any] struct {
	key key
	val V
}

// ref holds either an item or a node pointer
type ref[V any] struct {
	item[V]
	node *node[V]
}

func (r *ref[V]) String() string {
	if r == nil {
		return "ref(nil)"
	}
	if r.node != nil {
		return fmt.Sprintf("<ref NODE off=%v, mask=%08b>", r.node.off, r.node.bit)
	}
	return fmt.Sprintf("<ref LEAF key=%U, val=%v>", r.key.rune(), r.val)
}

type node[V any] struct {
	child [2]ref[V]
	// off is the offset of the differing byte
	off int
	// bit contains the single crit bit in the differing byte
	bit byte
}

// dir calculates the direction for the given key
func (n *node[V]) dir(k key) byte {
	if k[n.off]&n.bit != 0 {
		return 1
	}
	return 0
}

// Map is an ordered rune -> V map. The zero value is an empty map.
type Map[V any] struct {
	size int
	root ref[V]
}

func New[V any]() *Map[V] {
	return &Map[V]{}
}

// Len returns the number of runes in the map.
func (m *Map[V]) Len() int {
	return m.size
}

func (m *Map[V]) Empty() bool {
	return m.size == 0
}

// Get returns the value associated with r.
func (m *Map[V]) Get(r rune) (val V, ok bool) {
	if m.Empty() {
		return
	}
	k := encode(r)

	// walk for best member
	p := m.root
	for p.node != nil {
		p = p.node.child[p.node.dir(k)]
	}
	if p.key != k {
		return
	}
	return p.val, true
}

// Set associates val with r. Returns the previous value, if any.
func (m *Map[V]) Set(r rune, val V) (V, bool) {
	return m.Update(r, func(V, bool) V { return val })
}

// Update replaces the value of r with update(previous, present) and returns the
// previous value.
func (m *Map[V]) Update(r rune, update func(prev V, ok bool) V) (prev V, ok bool) {
	k := encode(r)

	if m.Empty() {
		m.root = ref[V]{item: item[V]{k, update(prev, false)}}
		m.size++
		return
	}

	// walk for best member
	p := &m.root
	for p.node != nil {
		p = &p.node.child[p.node.dir(k)]
	}

	// find the differing byte
	var (
		off int
		ch  byte
		bit byte
	)
	for off = 0; off < len(k); off++ {
		if ch = p.key[off]; ch != k[off] {
			bit = ch ^ k[off]
			goto ByteFound
		}
	}

	// the rune is present
	prev, ok = p.val, true
	p.val = update(prev, true)
	return

ByteFound:
	// keep the most significant differing bit
	bit |= bit >> 1
	bit |= bit >> 2
	bit |= bit >> 4
	bit = bit &^ (bit >> 1)

	var ndir byte
	if ch&bit != 0 {
		ndir++
	}

	nn := &node[V]{off: off, bit: bit}
	nn.child[1-ndir].item = item[V]{k, update(prev, false)}

	// walk for best insertion node
	wp := &m.root
	for wp.node != nil {
		n := wp.node
		if n.off > off || n.off == off && n.bit < bit {
			break
		}
		wp = &n.child[n.dir(k)]
	}
	nn.child[ndir] = *wp
	*wp = ref[V]{node: nn}
	m.size++

	return
}

// Iter calls fn for every rune in ascending order until fn returns false.
// It returns whether all runes were visited.
func (m *Map[V]) Iter(fn func(r rune, val V) bool) bool {
	if m.Empty() {
		return true
	}

	// walk the tree without function recursion
	toVisit := []*ref[V]{&m.root}

	for l := len(toVisit); l > 0; l = len(toVisit) {
		p := toVisit[l-1]
		toVisit = toVisit[:l-1]

		if p.node == nil {
			if !fn(p.key.rune(), p.val) {
				return false
			}
			continue
		}
		// the right child goes first so that the left one pops next
		toVisit = append(toVisit, &p.node.child[1], &p.node.child[0])
	}

	return true
}

// Runes returns all runes in ascending order.
func (m *Map[V]) Runes() []rune {
	runes := make([]rune, 0, m.size)

	m.Iter(func(r rune, _ V) bool {
		runes = append(runes, r)
		return true
	})

	return runes
}
