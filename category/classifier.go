package category

import (
	"fmt"
	"unicode/utf8"

	"github.com/gavr-vlad-s/table-gen-for-expr/rangetree"
	"github.com/gavr-vlad-s/table-gen-for-expr/runemap"
)

// Classifier accumulates the categories of every character it is told about.
type Classifier struct {
	chars *runemap.Map[Mask]
}

func NewClassifier() *Classifier {
	return &Classifier{chars: runemap.New[Mask]()}
}

// Add puts r into category cat on top of the categories r already has.
func (c *Classifier) Add(r rune, cat Category) error {
	if cat >= NumCategories {
		return fmt.Errorf("%w: %d", ErrUnknownCategory, cat)
	}
	if !utf8.ValidRune(r) {
		return fmt.Errorf("%w: %U", ErrInvalidRune, r)
	}

	c.chars.Update(r, func(prev Mask, _ bool) Mask {
		return prev.With(cat)
	})

	return nil
}

func (c *Classifier) AddChars(chars string, cat Category) error {
	if !utf8.ValidString(chars) {
		return fmt.Errorf("%w: %q is not UTF-8", ErrInvalidRune, chars)
	}
	for _, r := range chars {
		if err := c.Add(r, cat); err != nil {
			return err
		}
	}
	return nil
}

// AddRange adds every scalar value in [from, to]; surrogates inside the range
// are skipped.
func (c *Classifier) AddRange(from, to rune, cat Category) error {
	if !utf8.ValidRune(from) || !utf8.ValidRune(to) || from > to {
		return fmt.Errorf("%w: range %U..%U", ErrInvalidRune, from, to)
	}
	for r := from; r <= to; r++ {
		if !utf8.ValidRune(r) {
			continue
		}
		if err := c.Add(r, cat); err != nil {
			return err
		}
	}
	return nil
}

// Apply adds every set of cfg.
func (c *Classifier) Apply(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	for _, set := range cfg.Sets {
		if err := c.AddChars(set.Chars, set.Category); err != nil {
			return err
		}
		for _, rr := range set.Ranges {
			if err := c.AddRange(rr.From, rr.To, set.Category); err != nil {
				return err
			}
		}
	}

	return nil
}

// Len returns the number of classified characters.
func (c *Classifier) Len() int {
	return c.chars.Len()
}

func (c *Classifier) Get(r rune) (Mask, bool) {
	return c.chars.Get(r)
}

// Mapping returns the classified characters in ascending order.
func (c *Classifier) Mapping() []rangetree.Pair[Mask] {
	pairs := make([]rangetree.Pair[Mask], 0, c.chars.Len())

	c.chars.Iter(func(r rune, m Mask) bool {
		pairs = append(pairs, rangetree.Pair[Mask]{Key: r, Val: m})
		return true
	})

	return pairs
}

// Classify applies cfg to a fresh Classifier and returns its mapping.
func Classify(cfg Config) ([]rangetree.Pair[Mask], error) {
	c := NewClassifier()
	if err := c.Apply(cfg); err != nil {
		return nil, err
	}
	return c.Mapping(), nil
}

// Build classifies cfg and compiles the mapping into a lookup table answering
// Unclassified for characters outside every set.
func Build(cfg Config, opts ...rangetree.Option) (*rangetree.Table[Mask], error) {
	pairs, err := Classify(cfg)
	if err != nil {
		return nil, err
	}
	return rangetree.NewBuilder(Unclassified, opts...).Build(pairs)
}
