// Package category classifies the characters of the expression lexer.
//
// Every character carries a Mask with one bit per Category it belongs to. The
// character sets are configuration: DefaultConfig holds the sets the lexer was
// written against and LoadConfig reads a replacement from YAML.
package category

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hideo55/go-popcount"
)

var (
	ErrUnknownCategory = errors.New("category: unknown category")
	ErrInvalidRune     = errors.New("category: invalid rune")
)

// Category is a lexical class. Its value is the bit number in a Mask.
type Category uint8

const (
	Spaces Category = iota
	Other
	ActionNameBegin
	ActionNameBody
	Delimiters
	Dollar
	Backslash
	OpenedSquareBracket
	AfterColon
	AfterBackslash
	BeginExpr
	EndExpr
	Hat

	NumCategories = iota
)

var names = [NumCategories]string{
	Spaces:              "spaces",
	Other:               "other",
	ActionNameBegin:     "action_name_begin",
	ActionNameBody:      "action_name_body",
	Delimiters:          "delimiters",
	Dollar:              "dollar",
	Backslash:           "backslash",
	OpenedSquareBracket: "opened_square_bracket",
	AfterColon:          "after_colon",
	AfterBackslash:      "after_backslash",
	BeginExpr:           "begin_expr",
	EndExpr:             "end_expr",
	Hat:                 "hat",
}

// All returns every category in bit order.
func All() []Category {
	all := make([]Category, NumCategories)
	for i := range all {
		all[i] = Category(i)
	}
	return all
}

func (c Category) String() string {
	if c < NumCategories {
		return names[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

func (c Category) Mask() Mask {
	return 1 << c
}

// ParseCategory resolves a category by the name String returns.
func ParseCategory(name string) (Category, error) {
	for i, n := range names {
		if n == name {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// Mask is a set of categories.
type Mask uint32

// Unclassified is the mask of characters outside every configured set.
const Unclassified = Mask(1 << Other)

func (m Mask) Has(c Category) bool {
	return m&c.Mask() != 0
}

func (m Mask) With(c Category) Mask {
	return m | c.Mask()
}

// Count returns the number of categories in the mask.
func (m Mask) Count() int {
	return int(popcount.Count(uint64(m)))
}

func (m Mask) Categories() []Category {
	cats := make([]Category, 0, m.Count())
	for c := Category(0); c < NumCategories; c++ {
		if m.Has(c) {
			cats = append(cats, c)
		}
	}
	return cats
}

func (m Mask) String() string {
	if m == 0 {
		return "none"
	}

	var parts []string
	for _, c := range m.Categories() {
		parts = append(parts, c.String())
	}
	if rest := m &^ (1<<NumCategories - 1); rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint32(rest)))
	}

	return strings.Join(parts, "|")
}
