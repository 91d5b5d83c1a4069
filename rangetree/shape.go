package rangetree

import (
	"fmt"
	"math"
	"math/bits"
)

// MaxNodes is the largest tree for which 2*i+1 still fits an int.
const MaxNodes = (math.MaxInt - 1) / 2

// Node is one node of a Shape. Zero links mean "absent".
type Node struct {
	Index  int
	Left   int
	Right  int
	Parent int
}

// Shape is the complete binary tree on N nodes numbered breadth-first from 1.
// Nothing is stored: every link is computed from the index.
type Shape struct {
	n int
}

func NewShape(n int) (Shape, error) {
	switch {
	case n < 1:
		return Shape{}, ErrEmptyMapping
	case n > MaxNodes:
		return Shape{}, fmt.Errorf("%w: %d nodes", ErrTooLarge, n)
	}
	return Shape{n: n}, nil
}

func (s Shape) Len() int {
	return s.n
}

// Root is always 1.
func (s Shape) Root() int {
	return 1
}

func (s Shape) Left(i int) int {
	if l := 2 * i; l <= s.n {
		return l
	}
	return 0
}

func (s Shape) Right(i int) int {
	if r := 2*i + 1; r <= s.n {
		return r
	}
	return 0
}

func (s Shape) Parent(i int) int {
	return i / 2
}

// Depth returns the number of levels in the tree.
func (s Shape) Depth() int {
	return bits.Len(uint(s.n))
}

func (s Shape) Node(i int) Node {
	return Node{
		Index:  i,
		Left:   s.Left(i),
		Right:  s.Right(i),
		Parent: s.Parent(i),
	}
}

// Nodes materializes the tree, Nodes()[i-1] being node i. Nodes are filled in
// by descending from the root, each child recording the index it was reached
// from.
func (s Shape) Nodes() []Node {
	nodes := make([]Node, s.n)

	var grow func(i, parent int)
	grow = func(i, parent int) {
		node := &nodes[i-1]
		node.Index = i
		node.Parent = parent

		if l := 2 * i; l <= s.n {
			node.Left = l
			grow(l, i)
		}
		if r := 2*i + 1; r <= s.n {
			node.Right = r
			grow(r, i)
		}
	}
	grow(s.Root(), 0)

	return nodes
}
