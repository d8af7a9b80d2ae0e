package parse_test

import (
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/jesmaz/poly-enum/internal/polyenum/parse"
)

func load(t *testing.T, src string) *packages.Package {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", src, parser.ParseComments)
	require.NoError(t, err)
	return &packages.Package{
		Name:    file.Name.Name,
		PkgPath: "example.com/p",
		Fset:    fset,
		Syntax:  []*ast.File{file},
	}
}

func parseDecls(t *testing.T, src string) ([]*parse.Decl, error) {
	t.Helper()
	p, err := parse.New(load(t, src))
	require.NoError(t, err)

	decls, err := p.Parse()
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return decls, nil
}

func mustParse(t *testing.T, src string) *parse.Decl {
	t.Helper()
	decls, err := parseDecls(t, src)
	require.NoError(t, err)
	require.Len(t, decls, 1)
	return decls[0]
}

func discriminants(d *parse.Decl) []int64 {
	var out []int64
	for _, v := range d.Variants {
		i, _ := constant.Int64Val(v.Discriminant)
		out = append(out, i)
	}
	return out
}

func tagNames(v *parse.Variant) []string {
	var out []string
	for _, tag := range v.Tags {
		out = append(out, tag.Name)
	}
	return out
}

const elements = `//go:build polyenum

package p

// Element is a chemical element.
//
//polyenum:enum
//polyenum:repr uint32
type Element interface {
	// Hydrogen is the lightest.
	//polyenum:sub Gas
	Hydrogen()
	//polyenum:sub Gas, Noble
	Helium()
	//polyenum:sub Metal
	Iron()
	Carbon()
}
`

func TestParseElements(t *testing.T) {
	d := mustParse(t, elements)
	assert.Equal(t, "Element", d.Name)
	assert.Equal(t, parse.ModeEnum, d.Mode)
	assert.Equal(t, "uint32", d.Repr)
	assert.Empty(t, d.Generics)

	require.Len(t, d.Variants, 4)
	assert.Equal(t, []string{"Gas"}, tagNames(d.Variants[0]))
	assert.Equal(t, []string{"Gas", "Noble"}, tagNames(d.Variants[1]))
	assert.Equal(t, []string{"Metal"}, tagNames(d.Variants[2]))
	assert.Empty(t, tagNames(d.Variants[3]))
	assert.Equal(t, []int64{0, 1, 2, 3}, discriminants(d))

	for _, v := range d.Variants {
		assert.Equal(t, parse.ShapeUnit, v.Shape)
	}

	// Directives are stripped from docs.
	assert.Equal(t, "Element is a chemical element.\n", d.Doc.Text())
	assert.Equal(t, "Hydrogen is the lightest.\n", d.Variants[0].Doc.Text())
	assert.Nil(t, d.Variants[1].Doc)
}

func TestParseShapes(t *testing.T) {
	d := mustParse(t, `//go:build polyenum

package p

//polyenum:derive
type Number interface {
	Zero()
	F32(float32)
	Pair(int, string)
	Named(v float32, w, x int)
}
`)
	assert.Equal(t, parse.ModeDerive, d.Mode)
	assert.Empty(t, d.Repr)

	v := d.Variants
	assert.Equal(t, parse.ShapeUnit, v[0].Shape)
	assert.Equal(t, parse.ShapeTuple, v[1].Shape)
	assert.Equal(t, parse.ShapeTuple, v[2].Shape)
	assert.Equal(t, parse.ShapeNamed, v[3].Shape)

	names := func(v *parse.Variant) (out []string) {
		for _, f := range v.Fields {
			out = append(out, f.Name+" "+types.ExprString(f.Type))
		}
		return
	}
	assert.Equal(t, []string{"V0 float32"}, names(v[1]))
	assert.Equal(t, []string{"V0 int", "V1 string"}, names(v[2]))
	assert.Equal(t, []string{"v float32", "w int", "x int"}, names(v[3]))
}

func TestParseDiscriminants(t *testing.T) {
	d := mustParse(t, `//go:build polyenum

package p

//polyenum:enum
//polyenum:repr C
type Op interface {
	Nop()
	//polyenum:discriminant 10
	Add()
	Sub()
	//polyenum:discriminant -1
	Neg()
	//polyenum:discriminant 0x7f // last
	Halt()
}
`)
	assert.Equal(t, "int32", d.Repr)
	assert.Equal(t, []int64{0, 10, 11, -1, 127}, discriminants(d))
}

func TestParseRecursive(t *testing.T) {
	d := mustParse(t, `//go:build polyenum

package p

//polyenum:enum
//polyenum:repr uint8
type Expr[T any] interface {
	Lit(T)
	Neg(*Self)
	Add(Expr[T], Expr[T])
	Call(args []Self, env map[string]*Self)
}
`)
	assert.Equal(t, []string{"T"}, d.Generics.Names())

	lit, neg, add, call := d.Variants[0], d.Variants[1], d.Variants[2], d.Variants[3]
	assert.False(t, lit.Recursive())
	assert.Equal(t, parse.FieldPlain, lit.Fields[0].Class)
	assert.Nil(t, lit.Fields[0].Shape)

	assert.True(t, neg.Recursive())
	assert.Equal(t, parse.FieldRecursive, neg.Fields[0].Class)
	assert.Equal(t, "pointer", neg.Fields[0].Shape.Kind.String())

	assert.Equal(t, "self", add.Fields[0].Shape.Kind.String())
	assert.Equal(t, "slice", call.Fields[0].Shape.Kind.String())
	assert.Equal(t, "map", call.Fields[1].Shape.Kind.String())
}

func TestParsePropagate(t *testing.T) {
	d := mustParse(t, `//go:build polyenum

package p

//polyenum:derive
//polyenum:propagate String
//polyenum:propagate Match, String,
type Shape interface {
	Circle(r float64)
}
`)
	assert.Equal(t, []string{"String", "Match"}, d.Propagate)
}

func TestParseDuplicateTags(t *testing.T) {
	d := mustParse(t, `//go:build polyenum

package p

//polyenum:derive
type Shape interface {
	//polyenum:sub Round, Round
	//polyenum:sub Round
	Circle(r float64)
}
`)
	assert.Equal(t, []string{"Round"}, tagNames(d.Variants[0]))
}

func TestParseIgnoresOtherTypes(t *testing.T) {
	decls, err := parseDecls(t, `//go:build polyenum

package p

// Plain has no directives.
type Plain interface{ M() }

type (
	//polyenum:derive
	Grouped interface{ A() }
)
`)
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.Equal(t, "Grouped", decls[0].Name)
}

func TestParseIgnoresFilesWithoutConstraint(t *testing.T) {
	p, err := parse.New(load(t, `package p

type Plain interface{ M() }
`))
	require.NoError(t, err)
	assert.Empty(t, p.PolyenumGoFiles())

	decls, err := p.Parse()
	require.NoError(t, err)
	assert.Empty(t, decls)
	assert.NoError(t, p.Validate())
}

func TestNewRequiresSyntax(t *testing.T) {
	_, err := parse.New(&packages.Package{Name: "p", PkgPath: "p", Fset: token.NewFileSet()})
	assert.Error(t, err)
}
