// Package emit renders a category table as Go source.
package emit

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/gavr-vlad-s/table-gen-for-expr/category"
	"github.com/gavr-vlad-s/table-gen-for-expr/rangetree"
)

var ErrBadOptions = errors.New("emit: bad options")

// DefaultColumns is the number of table entries per line.
const DefaultColumns = 4

type Options struct {
	Package   string // package clause of the generated file
	Table     string // name of the table variable
	Func      string // name of the lookup function
	Columns   int    // entries per line
	Generator string // named in the "Code generated" header
}

func (o Options) withDefaults() Options {
	if o.Package == "" {
		o.Package = "lexer"
	}
	if o.Table == "" {
		o.Table = "categoryTable"
	}
	if o.Func == "" {
		o.Func = "categoriesOf"
	}
	if o.Columns <= 0 {
		o.Columns = DefaultColumns
	}
	if o.Generator == "" {
		o.Generator = "tablegen"
	}
	return o
}

func (o Options) validate() error {
	for _, ident := range []string{o.Package, o.Table, o.Func} {
		if !token.IsIdentifier(ident) {
			return fmt.Errorf("%w: %q is not a Go identifier", ErrBadOptions, ident)
		}
	}
	if o.Table == o.Func {
		return fmt.Errorf("%w: table and function are both named %q", ErrBadOptions, o.Table)
	}
	return nil
}

type constant struct {
	Ident string
	Name  string
}

type data struct {
	Options
	Type       string
	Categories []constant
	Len        int
	Depth      int
	Rows       []string
	Default    string
}

var source = template.Must(template.New("table").Parse(`// Code generated by {{.Generator}}. DO NOT EDIT.

package {{.Package}}

// Category is a bit number in a category mask.
type Category uint8

const (
{{- range $i, $c := .Categories}}
	{{$c.Ident}}{{if eq $i 0}} Category = iota{{end}} // {{$c.Name}}
{{- end}}
)

type {{.Type}} struct {
	lo, hi rune
	mask   uint32
}

// {{.Table}} holds {{.Len}} ranges laid out as a complete binary tree: the
// children of entry i (counting from 1) are entries 2i and 2i+1.
var {{.Table}} = [{{.Len}}]{{.Type}}{
{{- range .Rows}}
	{{.}}
{{- end}}
}

// {{.Func}} returns the category mask of r in at most {{.Depth}} probes.
func {{.Func}}(r rune) uint32 {
	for i := 1; i <= len({{.Table}}); {
		e := &{{.Table}}[i-1]
		switch {
		case r < e.lo:
			i = 2 * i
		case r > e.hi:
			i = 2*i + 1
		default:
			return e.mask
		}
	}
	return {{.Default}}
}
`))

// Render returns the formatted Go source of table.
func Render(table *rangetree.Table[category.Mask], opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	d := data{
		Options: opts,
		Type:    opts.Table + "Range",
		Len:     table.Len(),
		Depth:   table.Depth(),
		Rows:    rows(table.Entries(), opts.Columns),
		Default: mask(table.Default()),
	}
	for _, c := range category.All() {
		d.Categories = append(d.Categories, constant{Ident: ident(c.String()), Name: c.String()})
	}

	var buf bytes.Buffer
	if err := source.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}

	return out, nil
}

// Write renders table into w.
func Write(w io.Writer, table *rangetree.Table[category.Mask], opts Options) error {
	out, err := Render(table, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func rows(entries []rangetree.Entry[category.Mask], columns int) []string {
	var (
		out  = make([]string, 0, (len(entries)+columns-1)/columns)
		line []string
	)

	for i, e := range entries {
		line = append(line, element(e))
		if len(line) == columns || i == len(entries)-1 {
			out = append(out, strings.Join(line, ", ")+",")
			line = line[:0]
		}
	}

	return out
}

func element(e rangetree.Entry[category.Mask]) string {
	return fmt.Sprintf("{%s, %s, %s}", char(e.Lo), char(e.Hi), mask(e.Val))
}

// char spells control characters and the space as numbers and everything
// else as a rune literal.
func char(r rune) string {
	if r <= ' ' {
		return strconv.Itoa(int(r))
	}
	return strconv.QuoteRune(r)
}

func mask(m category.Mask) string {
	return fmt.Sprintf("0x%04x", uint32(m))
}

// ident turns a snake_case name into an exported Go identifier.
func ident(name string) string {
	var b strings.Builder

	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}

	return b.String()
}
