// Package rangetree compiles a sorted rune -> value mapping into a pointerless
// binary search table.
//
// Building a table is a pipeline of four stages:
//
//   - Compact merges runs of consecutive runes sharing one value into maximal
//     ranges;
//   - Shape describes the complete binary tree on N nodes numbered breadth-first
//     (node i has children 2i and 2i+1 when those do not exceed N);
//   - Shape.InorderRanks walks that tree left-self-right and tells every node its
//     position in ascending key order, Permutation inverts it;
//   - Assemble scatters the ascending ranges into the slots the tree dictates.
//
// The result is searched with index arithmetic only (Knuth, TAOCP Vol. 3, answer
// to exercise 6.2.24):
//
//	i := 1
//	for i <= n {
//	    switch e := table[i-1]; {
//	    case k < e.Lo: i = 2*i
//	    case k > e.Hi: i = 2*i + 1
//	    default:       return e.Val
//	    }
//	}
//	return unclassified
//
// Example for {0:A, 1:A, 2:A, 3:B, 4:B, 5:C}:
//
//	ascending:  [0,2]=A  [3,4]=B  [5,5]=C
//	tree:                 1
//	                    /   \
//	                   2     3
//	layout:     [3,4]=B  [0,2]=A  [5,5]=C
package rangetree
