package category

import (
	"fmt"
	"io"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// RuneRange is an inclusive run of characters.
type RuneRange struct {
	From rune `yaml:"from"`
	To   rune `yaml:"to"`
}

// Set lists the characters of one category, as a string and/or as ranges.
type Set struct {
	Category Category    `yaml:"category"`
	Chars    string      `yaml:"chars,omitempty"`
	Ranges   []RuneRange `yaml:"ranges,omitempty"`
}

// Config is the whole character classification.
type Config struct {
	Sets []Set `yaml:"sets"`
}

// DefaultConfig returns the character sets of the expression lexer.
func DefaultConfig() Config {
	const (
		letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
		digits  = "0123456789"
	)

	return Config{
		Sets: []Set{
			{Category: Spaces, Ranges: []RuneRange{{From: 1, To: ' '}}},
			{Category: ActionNameBegin, Chars: "_" + letters},
			{Category: ActionNameBody, Chars: "_" + letters + digits},
			{Category: Delimiters, Chars: "{}()|*+?"},
			{Category: AfterColon, Chars: "LRbdlnorx"},
			{Category: AfterBackslash, Chars: `(){}[]n$|*+?\`},
			{Category: Dollar, Chars: "$"},
			{Category: OpenedSquareBracket, Chars: "["},
			{Category: Backslash, Chars: `\`},
			{Category: BeginExpr, Chars: "{"},
			{Category: EndExpr, Chars: "}"},
			{Category: Hat, Chars: "^"},
		},
	}
}

// LoadConfig reads a YAML classification such as:
//
//	sets:
//	  - category: spaces
//	    ranges: [{from: 1, to: 32}]
//	  - category: delimiters
//	    chars: "{}()|*+?"
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode category config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Marshal renders the config in the format LoadConfig reads.
func (cfg Config) Marshal() ([]byte, error) {
	return yaml.Marshal(cfg)
}

func (cfg Config) Validate() error {
	for i, set := range cfg.Sets {
		if set.Category >= NumCategories {
			return fmt.Errorf("set %d: %w: %d", i, ErrUnknownCategory, set.Category)
		}
		if !utf8.ValidString(set.Chars) {
			return fmt.Errorf("set %d (%v): %w: chars are not UTF-8", i, set.Category, ErrInvalidRune)
		}
		for _, rr := range set.Ranges {
			if !utf8.ValidRune(rr.From) || !utf8.ValidRune(rr.To) || rr.From > rr.To {
				return fmt.Errorf("set %d (%v): %w: range %d..%d", i, set.Category, ErrInvalidRune, rr.From, rr.To)
			}
		}
	}
	return nil
}

func (c Category) MarshalYAML() (interface{}, error) {
	if c >= NumCategories {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, c)
	}
	return c.String(), nil
}

func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}

	cat, err := ParseCategory(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = cat

	return nil
}
