package rangetree

// Compact merges an ascending, key-unique mapping into the minimal sequence of
// maximal ranges. Two neighbouring keys end up in one range only when they are
// adjacent (no gap) and carry equal values.
//
// pairs must not be empty; see Validate.
func Compact[V comparable](pairs []Pair[V]) []Entry[V] {
	if len(pairs) == 0 {
		panic(ErrEmptyMapping)
	}

	var (
		out  = make([]Entry[V], 0, len(pairs))
		open = Entry[V]{Range{pairs[0].Key, pairs[0].Key}, pairs[0].Val}
	)

	for _, p := range pairs[1:] {
		if p.Val == open.Val && p.Key == open.Hi+1 {
			open.Hi = p.Key
			continue
		}
		out = append(out, open)
		open = Entry[V]{Range{p.Key, p.Key}, p.Val}
	}

	return append(out, open)
}
