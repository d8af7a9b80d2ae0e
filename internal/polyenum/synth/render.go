package synth

import (
	"go/ast"
	"strings"

	"github.com/jesmaz/poly-enum/internal/codefmt"
	"github.com/jesmaz/poly-enum/internal/polyenum/parse"
	"github.com/jesmaz/poly-enum/internal/polyenum/plan"
	"github.com/jesmaz/poly-enum/internal/polyenum/scan"
)

// typeParams renders a type parameter list with constraints.
//
//	[K comparable, V any]
func (s *Synth) typeParams(w *codefmt.Writer, g parse.Generics, extra ...string) string {
	if len(g) == 0 && len(extra) == 0 {
		return ""
	}

	var params []string
	for _, p := range g {
		constraint := codefmt.RewriteImports(w, s.decl.File, p.Constraint)
		params = append(params, p.Name+" "+w.Sprintf("%c", constraint))
	}
	params = append(params, extra...)
	return "[" + strings.Join(params, ", ") + "]"
}

// typeArgs renders a type argument list.
//
//	[K, V]
func typeArgs(g parse.Generics) string {
	if len(g) == 0 {
		return ""
	}
	return "[" + strings.Join(g.Names(), ", ") + "]"
}

// enumType renders the enum type instantiated with its own type parameters.
//
//	Number[T]
func enumType(p *plan.Plan) string {
	return p.Name + typeArgs(p.Generics)
}

// variantType renders the variant struct type of the enum.
//
//	Number_F32[T]
func variantType(p *plan.Plan, v *parse.Variant) string {
	return variantName(p, v) + typeArgs(p.Generics)
}

// fieldType renders the type of the field in the enum. The enum itself is
// rewritten to the enum p.
func (s *Synth) fieldType(w *codefmt.Writer, p *plan.Plan, f *parse.Field) string {
	if f.Class == parse.FieldPlain {
		return w.Sprintf("%c", codefmt.RewriteImports(w, s.decl.File, f.Type))
	}
	return s.shapeType(w, enumType(p), f.Shape)
}

func (s *Synth) shapeType(w *codefmt.Writer, self string, shape *scan.Shape) string {
	switch shape.Kind {
	case scan.KindPtr:
		return "*" + s.shapeType(w, self, shape.Elem)
	case scan.KindSlice:
		return "[]" + s.shapeType(w, self, shape.Elem)
	case scan.KindMap:
		return "map[" + s.keyType(w, shape.Key) + "]" + s.shapeType(w, self, shape.Elem)
	}
	return self
}

func (s *Synth) keyType(w *codefmt.Writer, key ast.Expr) string {
	return w.Sprintf("%c", codefmt.RewriteImports(w, s.decl.File, key))
}

// writeDoc writes the comments of a doc comment group as they are.
func writeDoc(w *codefmt.Writer, doc *ast.CommentGroup) {
	if doc == nil {
		return
	}
	for _, c := range doc.List {
		w.Printf("%s\n", c.Text)
	}
}
