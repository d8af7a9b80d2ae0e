package synth

import (
	"strings"

	"github.com/jesmaz/poly-enum/internal/codefmt"
	"github.com/jesmaz/poly-enum/internal/polyenum/parse"
	"github.com/jesmaz/poly-enum/internal/polyenum/plan"
)

// writeEnum writes the sealed interface of the enum, its kind and its variant
// structs.
//
//	type Half interface {
//		isHalf()
//		Kind() HalfKind
//	}
//
//	type Half_F16 struct{ V0 uint16 }
//
//	func (Half_F16) isHalf()        {}
//	func (Half_F16) Kind() HalfKind { return HalfKindF16 }
func (s *Synth) writeEnum(w *codefmt.Writer, p *plan.Plan) {
	if p.IsBase() {
		writeDoc(w, s.decl.Doc)
	} else {
		w.Printf("// %s is a sub-enum of %s.\n", p.Name, s.decl.Name)
	}

	w.Printf("type %s%s interface {\n", p.Name, s.typeParams(w, p.Generics))
	w.Printf("%s(%s)\n", markerName(p), s.markerParam(p))
	if s.decl.Mode == parse.ModeEnum {
		w.Printf("Kind() %s\n", kindName(p))
	}
	if s.propagates("String") {
		w.Printf("String() string\n")
	}
	w.Printf("}\n\n")

	if s.decl.Mode == parse.ModeEnum {
		s.writeKind(w, p)
	}

	for _, v := range s.fam.Variants(p) {
		s.writeVariant(w, p, v)
	}
}

// markerParam is the parameter of the marker method. A generic enum takes
// itself so that instantiations with different type arguments are distinct.
func (s *Synth) markerParam(p *plan.Plan) string {
	if len(p.Generics) == 0 {
		return ""
	}
	return enumType(p)
}

func (s *Synth) writeVariant(w *codefmt.Writer, p *plan.Plan, v *parse.Variant) {
	name := variantName(p, v)
	params := s.typeParams(w, p.Generics)

	writeDoc(w, v.Doc)
	if len(v.Fields) == 0 {
		w.Printf("type %s%s struct{}\n\n", name, params)
	} else {
		w.Printf("type %s%s struct {\n", name, params)
		for _, f := range v.Fields {
			w.Printf("%s %s\n", f.Name, s.fieldType(w, p, f))
		}
		w.Printf("}\n\n")
	}

	typ := variantType(p, v)
	w.Printf("func (%s) %s(%s) {}\n", typ, markerName(p), s.markerParam(p))
	if s.decl.Mode == parse.ModeEnum {
		w.Printf("func (%s) Kind() %s { return %s }\n", typ, kindName(p), kindConstName(p, v))
	}
	w.Printf("\n")

	if s.propagates("String") {
		s.writeString(s.local(w), p, v)
	}
}

// writeKind writes the kind type of the enum with a constant per variant.
// Sub-enums keep the discriminants of the base enum.
func (s *Synth) writeKind(w *codefmt.Writer, p *plan.Plan) {
	kind := kindName(p)
	w.Printf("// %s is the discriminant of %s.\n", kind, p.Name)
	w.Printf("type %s %s\n\n", kind, s.decl.Repr)

	w.Printf("const (\n")
	for _, v := range s.fam.Variants(p) {
		w.Printf("%s %s = %s\n", kindConstName(p, v), kind, v.Discriminant.ExactString())
	}
	w.Printf(")\n\n")

	strconv := w.Import("strconv", "strconv")
	w.Printf("func (k %s) String() string {\n", kind)
	w.Printf("switch k {\n")
	for _, v := range s.fam.Variants(p) {
		w.Printf("case %s:\n", kindConstName(p, v))
		w.Printf("return %q\n", v.Name)
	}
	w.Printf("}\n")
	if strings.HasPrefix(s.decl.Repr, "u") {
		w.Printf("return %q + %s.FormatUint(uint64(k), 10) + \")\"\n", kind+"(", strconv)
	} else {
		w.Printf("return %q + %s.FormatInt(int64(k), 10) + \")\"\n", kind+"(", strconv)
	}
	w.Printf("}\n\n")
}
