package rangetree

import (
	"fmt"
	"io"
	"log/slog"
)

type options struct {
	logger *slog.Logger
}

type Option func(*options)

// WithLogger makes the builder report its stages at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Builder turns source mappings into tables. A Builder holds no state between
// builds; it may be reused and shared.
type Builder[V comparable] struct {
	def    V
	logger *slog.Logger
}

// NewBuilder returns a Builder whose tables answer def for unknown runes.
func NewBuilder[V comparable](def V, opts ...Option) *Builder[V] {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Builder[V]{
		def:    def,
		logger: o.logger,
	}
}

// Build compiles pairs into a table. pairs must be strictly ascending by key and
// is left untouched.
func (b *Builder[V]) Build(pairs []Pair[V]) (*Table[V], error) {
	if err := Validate(pairs); err != nil {
		return nil, err
	}

	seq := Compact(pairs)

	shape, err := NewShape(len(seq))
	if err != nil {
		return nil, err
	}

	var (
		ranks   = shape.InorderRanks()
		perm    = Permutation(ranks)
		entries = Assemble(seq, perm)
	)

	if err := CheckLayout(entries); err != nil {
		return nil, fmt.Errorf("assemble %d ranges: %w", len(seq), err)
	}

	b.logger.Debug("range table built",
		"pairs", len(pairs),
		"ranges", len(seq),
		"depth", shape.Depth(),
	)

	return &Table[V]{entries: entries, def: b.def}, nil
}
