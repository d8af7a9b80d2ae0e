package synth

import (
	"strings"

	"github.com/jesmaz/poly-enum/internal/codefmt"
	"github.com/jesmaz/poly-enum/internal/polyenum/parse"
	"github.com/jesmaz/poly-enum/internal/polyenum/plan"
)

// writeString writes the String method of a variant struct. It formats the
// variant the way it is declared:
//
//	Carbon
//	F32(1.5)
//	F32{v: 1.5}
func (s *Synth) writeString(w *codefmt.Writer, p *plan.Plan, v *parse.Variant) {
	typ := variantType(p, v)
	if len(v.Fields) == 0 {
		w.Printf("func (%s) String() string { return %q }\n\n", typ, v.Name)
		return
	}

	fmt := w.Import("fmt", "fmt")
	x := w.Name("x")

	var verbs, args []string
	for _, f := range v.Fields {
		if v.Shape == parse.ShapeNamed {
			verbs = append(verbs, f.Name+": %v")
		} else {
			verbs = append(verbs, "%v")
		}
		args = append(args, x+"."+f.Name)
	}

	format := v.Name + "(" + strings.Join(verbs, ", ") + ")"
	if v.Shape == parse.ShapeNamed {
		format = v.Name + "{" + strings.Join(verbs, ", ") + "}"
	}

	w.Printf("func (%s %s) String() string {\n", x, typ)
	w.Printf("return %s.Sprintf(%q, %s)\n", fmt, format, strings.Join(args, ", "))
	w.Printf("}\n\n")
}

// writeMatch writes an exhaustive match over the variants of the enum. Each
// variant has its own handler. A variant held by pointer is passed by value.
//
//	func MatchHalf[R any](v Half, onF16 func(Half_F16) R, onZero func(Half_Zero) R) R
func (s *Synth) writeMatch(w *codefmt.Writer, p *plan.Plan) {
	name := matchName(p)
	v := w.Name("v")
	x := w.Name("x")
	r := w.Name("R")

	variants := s.fam.Variants(p)
	handlers := make([]string, len(variants))
	var params []string
	for i, variant := range variants {
		handlers[i] = w.Name("on" + variant.Name)
		params = append(params, handlers[i]+" func("+variantType(p, variant)+") "+r)
	}

	w.Printf("// %s calls the handler of the variant which v holds and returns its\n", name)
	w.Printf("// result. It returns the zero %s if v is nil.\n", r)
	w.Printf("func %s%s(%s %s, %s) %s {\n", name, s.typeParams(w, p.Generics, r+" any"), v, enumType(p), strings.Join(params, ", "), r)
	w.Printf("switch %s := %s.(type) {\n", x, v)
	for i, variant := range variants {
		w.Printf("case %s:\n", variantType(p, variant))
		w.Printf("return %s(%s)\n", handlers[i], x)
		w.Printf("case *%s:\n", variantType(p, variant))
		w.Printf("if %s != nil {\n", x)
		w.Printf("return %s(*%s)\n", handlers[i], x)
		w.Printf("}\n")
	}
	w.Printf("}\n")
	zero := w.Name("zero")
	w.Printf("var %s %s\n", zero, r)
	w.Printf("return %s\n", zero)
	w.Printf("}\n\n")
}
