package rangetree

import (
	"github.com/brianvoe/gofakeit/v6"
)

func pairsOf(keys []rune, vals string) []Pair[byte] {
	pairs := make([]Pair[byte], len(keys))
	for i, k := range keys {
		pairs[i] = Pair[byte]{k, vals[i]}
	}
	return pairs
}

// fakePairs returns total ascending pairs with short gaps and a handful of
// values, so that both merging and splitting happen often.
func fakePairs(faker *gofakeit.Faker, total int) []Pair[byte] {
	var (
		pairs = make([]Pair[byte], total)
		key   = rune(faker.Number(0, 64))
	)

	for i := range pairs {
		pairs[i] = Pair[byte]{key, byte('A' + faker.Number(0, 3))}
		if faker.Number(0, 3) == 0 {
			key += rune(faker.Number(2, 5))
		} else {
			key++
		}
	}

	return pairs
}

// scan is the reference lookup: a linear pass over the source mapping.
func scan(pairs []Pair[byte], k rune) (byte, bool) {
	for _, p := range pairs {
		if p.Key == k {
			return p.Val, true
		}
	}
	return 0, false
}
