package rangetree

import "fmt"

type walkState uint8

const (
	stateStart walkState = iota
	stateDescendLeft
	stateVisitAndDescendRight
	stateAscendToParent
)

var walkStateNames = [...]string{
	stateStart:                "Start",
	stateDescendLeft:          "DescendLeft",
	stateVisitAndDescendRight: "VisitAndDescendRight",
	stateAscendToParent:       "AscendToParent",
}

func (st walkState) String() string {
	if int(st) < len(walkStateNames) {
		return walkStateNames[st]
	}
	return fmt.Sprintf("walkState(%d)", st)
}

// InorderRanks returns the in-order position of every node: ranks[i-1] is the
// rank of node i among 0..N-1. Since an in-order walk of a search tree lists its
// keys in ascending order, the rank of a node is the ascending position of the
// range it must hold.
func (s Shape) InorderRanks() []int {
	ranks := make([]int, s.n)

	s.walk(func(node, rank int) {
		ranks[node-1] = rank
	})

	return ranks
}

// walk runs the in-order traversal as a state machine without recursion or an
// explicit stack: going up is i/2, and a node is its parent's left child iff it
// is even. visit is called exactly once per node, in ascending rank order.
func (s Shape) walk(visit func(node, rank int)) {
	var (
		state = stateDescendLeft
		node  = s.Root()
		next  int
	)

	for state != stateStart {
		switch state {
		case stateDescendLeft:
			if l := s.Left(node); l != 0 {
				node = l
			} else {
				state = stateVisitAndDescendRight
			}

		case stateVisitAndDescendRight:
			visit(node, next)
			next++

			if r := s.Right(node); r != 0 {
				node = r
				state = stateDescendLeft
			} else {
				state = stateAscendToParent
			}

		case stateAscendToParent:
			p := s.Parent(node)
			if p == 0 {
				state = stateStart
				break
			}
			if s.Left(p) == node {
				state = stateVisitAndDescendRight
			}
			node = p

		default:
			panic(fmt.Sprintf("rangetree: unexpected walk state %v", state))
		}
	}

	if next != s.n {
		panic(fmt.Sprintf("rangetree: in-order walk visited %d of %d nodes", next, s.n))
	}
}

// Permutation inverts ranks: perm[r] is the 0-based slot of the node whose rank
// is r.
func Permutation(ranks []int) []int {
	perm := make([]int, len(ranks))

	for slot, r := range ranks {
		perm[r] = slot
	}

	return perm
}
