package rangetree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInorderRanksThree(t *testing.T) {
	t.Parallel()

	s, err := NewShape(3)
	require.NoError(t, err)

	ranks := s.InorderRanks()

	// node 2 first, then the root, then node 3
	assert.Equal(t, []int{1, 0, 2}, ranks)
	assert.Equal(t, []int{1, 0, 2}, Permutation(ranks))
}

func TestInorderRanksSmall(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		N     int
		Ranks []int
	}{
		{1, []int{0}},
		{2, []int{1, 0}},
		{4, []int{2, 1, 3, 0}},
		{6, []int{3, 1, 5, 0, 2, 4}},
		{7, []int{3, 1, 5, 0, 2, 4, 6}},
	} {
		s, err := NewShape(tcase.N)
		require.NoError(t, err)
		assert.Equal(t, tcase.Ranks, s.InorderRanks(), "N=%d", tcase.N)
	}
}

// recursiveRanks is the textbook recursive in-order walk.
func recursiveRanks(n int) []int {
	var (
		ranks = make([]int, n)
		next  int
		visit func(i int)
	)
	visit = func(i int) {
		if i > n {
			return
		}
		visit(2 * i)
		ranks[i-1] = next
		next++
		visit(2*i + 1)
	}
	visit(1)

	return ranks
}

func TestInorderRanksBijection(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 300; n++ {
		n := n

		t.Run(fmt.Sprint(n), func(t *testing.T) {
			t.Parallel()

			s, err := NewShape(n)
			require.NoError(t, err)

			var (
				ranks = s.InorderRanks()
				seen  = make([]bool, n)
			)
			for _, r := range ranks {
				require.True(t, r >= 0 && r < n, "rank %d out of range", r)
				require.False(t, seen[r], "rank %d given twice", r)
				seen[r] = true
			}
			assert.Equal(t, recursiveRanks(n), ranks)

			perm := Permutation(ranks)
			for slot, r := range ranks {
				assert.Equal(t, slot, perm[r])
			}
		})
	}
}

func TestWalkVisitsOnce(t *testing.T) {
	t.Parallel()

	s, err := NewShape(100)
	require.NoError(t, err)

	var (
		visits = make(map[int]int)
		last   = -1
	)
	s.walk(func(node, rank int) {
		visits[node]++
		assert.Equal(t, last+1, rank, "ranks must be handed out in order")
		last = rank
	})

	assert.Len(t, visits, 100)
	for node, count := range visits {
		assert.Equal(t, 1, count, "node %d", node)
	}
}

func TestWalkStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Start", stateStart.String())
	assert.Equal(t, "AscendToParent", stateAscendToParent.String())
	assert.Equal(t, "walkState(9)", walkState(9).String())
}
