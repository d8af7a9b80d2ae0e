package synth

import (
	"github.com/jesmaz/poly-enum/internal/codefmt"
	"github.com/jesmaz/poly-enum/internal/polyenum/parse"
	"github.com/jesmaz/poly-enum/internal/polyenum/plan"
)

// viewable returns the variants which can be viewed from the base enum as the
// sub-enum. Recursive variants hold the enum itself, so their layouts differ.
func (s *Synth) viewable(base, sub *plan.Plan) []*parse.Variant {
	var out []*parse.Variant
	for _, v := range s.fam.Shared(base, sub) {
		if !v.Recursive() {
			out = append(out, v)
		}
	}
	return out
}

// writeView writes a shared view from the base enum to the sub-enum. A
// variant held by pointer is viewed without copying.
//
//	func NumberAsHalf(v Number) (Half, bool)
func (s *Synth) writeView(w *codefmt.Writer, base, sub *plan.Plan) {
	name := viewName(base, sub)
	g := s.convGenerics(base, sub)
	v := w.Name("v")
	x := w.Name("x")

	w.Printf("// %s views v as %s. A variant held by pointer is shared, not copied. It\n", name, sub.Name)
	w.Printf("// reports false if v holds a variant outside %s or a recursive variant.\n", sub.Name)
	w.Printf("func %s%s(%s %s) (%s, bool) {\n", name, s.typeParams(w, g), v, enumType(base), enumType(sub))
	w.Printf("if %s == nil {\n", v)
	w.Printf("return nil, true\n")
	w.Printf("}\n")

	if variants := s.viewable(base, sub); len(variants) != 0 {
		w.Printf("switch %s := %s.(type) {\n", x, v)
		for _, variant := range variants {
			w.Printf("case %s:\n", variantType(base, variant))
			w.Printf("return %s(%s), true\n", variantType(sub, variant), x)
			w.Printf("case *%s:\n", variantType(base, variant))
			w.Printf("if %s != nil {\n", x)
			w.Printf("return (*%s)(%s), true\n", variantType(sub, variant), x)
			w.Printf("}\n")
		}
		w.Printf("}\n")
	}

	w.Printf("return nil, false\n")
	w.Printf("}\n\n")
}

// writeViewMut writes an aliasing view from the base enum to the sub-enum.
// The result is always a pointer to the sub-enum's variant. Writes through it
// are visible in *v if *v holds the variant by pointer. A variant held by
// value is copied, and *v is never changed.
//
//	func NumberAsHalfMut(v *Number) (Half, bool)
func (s *Synth) writeViewMut(w *codefmt.Writer, base, sub *plan.Plan) {
	name := viewMutName(base, sub)
	g := s.convGenerics(base, sub)
	v := w.Name("v")
	x := w.Name("x")

	w.Printf("// %s views *v as %s through a pointer. Writes through the result are\n", name, sub.Name)
	w.Printf("// visible in *v only if *v holds the variant by pointer; a variant held by\n")
	w.Printf("// value is copied. It reports false if *v holds a variant outside %s or a\n", sub.Name)
	w.Printf("// recursive variant.\n")
	w.Printf("func %s%s(%s *%s) (%s, bool) {\n", name, s.typeParams(w, g), v, enumType(base), enumType(sub))
	w.Printf("if %s == nil {\n", v)
	w.Printf("return nil, false\n")
	w.Printf("}\n")
	w.Printf("if *%s == nil {\n", v)
	w.Printf("return nil, true\n")
	w.Printf("}\n")

	if variants := s.viewable(base, sub); len(variants) != 0 {
		w.Printf("switch %s := (*%s).(type) {\n", x, v)
		for _, variant := range variants {
			w.Printf("case %s:\n", variantType(base, variant))
			w.Printf("return (*%s)(&%s), true\n", variantType(sub, variant), x)
			w.Printf("case *%s:\n", variantType(base, variant))
			w.Printf("if %s != nil {\n", x)
			w.Printf("return (*%s)(%s), true\n", variantType(sub, variant), x)
			w.Printf("}\n")
		}
		w.Printf("}\n")
	}

	w.Printf("return nil, false\n")
	w.Printf("}\n\n")
}
