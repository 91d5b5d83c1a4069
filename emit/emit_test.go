package emit

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavr-vlad-s/table-gen-for-expr/category"
	"github.com/gavr-vlad-s/table-gen-for-expr/rangetree"
)

func smallTable(t *testing.T) *rangetree.Table[category.Mask] {
	t.Helper()

	var (
		sp = category.Spaces.Mask()
		bs = category.Backslash.Mask().With(category.AfterBackslash)
		qt = category.Delimiters.Mask()
	)

	table, err := rangetree.NewBuilder(category.Unclassified).Build([]rangetree.Pair[category.Mask]{
		{Key: 9, Val: sp},
		{Key: 10, Val: sp},
		{Key: ' ', Val: sp},
		{Key: '\'', Val: qt},
		{Key: '\\', Val: bs},
	})
	require.NoError(t, err)

	return table
}

func TestRender(t *testing.T) {
	t.Parallel()

	out, err := Render(smallTable(t), Options{Package: "expr", Columns: 2})
	require.NoError(t, err)

	src := string(out)

	assert.True(t, strings.HasPrefix(src, "// Code generated by tablegen. DO NOT EDIT.\n"))
	assert.Contains(t, src, "package expr\n")
	assert.Contains(t, src, "var categoryTable = [4]categoryTableRange{\n")
	assert.Contains(t, src, "func categoriesOf(r rune) uint32 {")
	assert.Contains(t, src, "return 0x0002\n")
	assert.Contains(t, src, "OpenedSquareBracket")

	// layout order, two entries per line: node 1 is the third range
	assert.Contains(t, src, "\t{'\\'', '\\'', 0x0010}, {32, 32, 0x0001},\n")
	assert.Contains(t, src, "\t{'\\\\', '\\\\', 0x0240}, {9, 10, 0x0001},\n")
}

func TestRenderParses(t *testing.T) {
	t.Parallel()

	table, err := category.Build(category.DefaultConfig())
	require.NoError(t, err)

	out, err := Render(table, Options{})
	require.NoError(t, err)

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "table.go", out, parser.ParseComments)
	require.NoError(t, err)

	assert.Equal(t, "lexer", file.Name.Name)

	var decls []string
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			decls = append(decls, "func "+d.Name.Name)
		case *ast.GenDecl:
			decls = append(decls, d.Tok.String())
		}
	}
	if diff := cmp.Diff([]string{"type", "const", "type", "var", "func categoriesOf"}, decls); diff != "" {
		t.Errorf("unexpected declarations (-want +got):\n%s", diff)
	}

	// every entry is one composite literal element
	var elems int
	ast.Inspect(file, func(n ast.Node) bool {
		if spec, ok := n.(*ast.ValueSpec); ok && spec.Names[0].Name == "categoryTable" {
			elems = len(spec.Values[0].(*ast.CompositeLit).Elts)
			return false
		}
		return true
	})
	assert.Equal(t, table.Len(), elems)
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	table, err := category.Build(category.DefaultConfig())
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, Write(&a, table, Options{}))
	require.NoError(t, Write(&b, table, Options{}))

	assert.Equal(t, a.String(), b.String())
}

func TestRenderBadOptions(t *testing.T) {
	t.Parallel()

	table := smallTable(t)

	for _, opts := range []Options{
		{Package: "1abc"},
		{Table: "my-table"},
		{Table: "same", Func: "same"},
	} {
		_, err := Render(table, opts)
		assert.ErrorIs(t, err, ErrBadOptions, "%+v", opts)
	}
}

func TestChar(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Rune rune
		Exp  string
	}{
		{1, "1"},
		{' ', "32"},
		{'a', "'a'"},
		{'\'', `'\''`},
		{'\\', `'\\'`},
		{0x7F, `'\x7f'`},
		{'ж', "'ж'"},
	} {
		assert.Equal(t, tcase.Exp, char(tcase.Rune))
	}
}

func TestIdent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "OpenedSquareBracket", ident("opened_square_bracket"))
	assert.Equal(t, "Spaces", ident("spaces"))
	assert.Equal(t, "AfterColon", ident("after__colon"))
}
