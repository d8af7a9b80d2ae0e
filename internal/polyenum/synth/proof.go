package synth

import (
	"github.com/jesmaz/poly-enum/internal/codefmt"
	"github.com/jesmaz/poly-enum/internal/polyenum/plan"
)

// writeProofs writes compile-time assertions that every viewable variant of
// the sub-enum keeps the discriminant and the layout of the base enum. Any
// mismatch fails to compile, as stringer does for stale constants:
//
//	func _() {
//		var x [1]struct{}
//		_ = x[uint32(NumberKindF16)-uint32(HalfKindF16)]
//		_ = x[unsafe.Offsetof(Number_F16{}.V0)-unsafe.Offsetof(Half_F16{}.V0)]
//		_ = (*Half_F16)((*Number_F16)(nil))
//	}
//
// Offsets of generic structs are not constant, so generic enums only assert
// discriminants and convertibility.
func (s *Synth) writeProofs(w *codefmt.Writer, base, sub *plan.Plan) {
	variants := s.viewable(base, sub)
	if len(variants) == 0 {
		return
	}

	generic := len(base.Generics) != 0
	unsafe := ""
	if !generic {
		for _, v := range variants {
			if len(v.Fields) != 0 {
				unsafe = w.Import("unsafe", "unsafe")
				break
			}
		}
	}

	w.Printf("// %s must share discriminants and layouts with %s.\n", sub.Name, base.Name)
	for _, v := range variants {
		w := s.local(w)
		x := w.Name("x")

		w.Printf("func _%s() {\n", s.typeParams(w, base.Generics))
		w.Printf("var %s [1]struct{}\n", x)
		w.Printf("_ = %s[%s(%s)-%s(%s)]\n", x, s.decl.Repr, kindConstName(base, v), s.decl.Repr, kindConstName(sub, v))
		if !generic {
			for _, f := range v.Fields {
				w.Printf("_ = %s[%s.Offsetof(%s{}.%s)-%s.Offsetof(%s{}.%s)]\n",
					x, unsafe, variantName(base, v), f.Name, unsafe, variantName(sub, v), f.Name)
			}
		}
		w.Printf("_ = (*%s)((*%s)(nil))\n", variantType(sub, v), variantType(base, v))
		w.Printf("}\n")
	}
	w.Printf("\n")
}
