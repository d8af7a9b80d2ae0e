package synth

import (
	"go/token"
	"go/types"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jesmaz/poly-enum/internal/codefmt"
	"github.com/jesmaz/poly-enum/internal/polyenum/parse"
	"github.com/jesmaz/poly-enum/internal/polyenum/plan"
	"github.com/jesmaz/poly-enum/internal/polyenum/scan"
)

// convGenerics returns the type parameters of a conversion between two enums
// of the family. A conversion from or to the base enum takes the base's
// parameters. A lateral conversion takes the source's parameters followed by
// the destination's other ones.
//
//	Scalar[V] -> Keyed[K, V] => [V, K]
func (s *Synth) convGenerics(from, to *plan.Plan) parse.Generics {
	if from.IsBase() || to.IsBase() {
		return s.decl.Generics
	}
	return from.Generics.Merge(to.Generics)
}

// writeConv writes a conversion function. An upward conversion is total:
//
//	func HalfToNumber(v Half) Number
//
// Downward and lateral conversions are partial. Variants held by the source
// but not by the destination report false:
//
//	func NumberToHalf(v Number) (Half, bool)
//	func HalfToFloat(v Half) (Float, bool)
//
// Variants held by pointer are converted through their values. A nil pointer
// is absent.
func (s *Synth) writeConv(w *codefmt.Writer, e plan.Edge) {
	from, to := e.From, e.To
	name := convName(from, to)
	g := s.convGenerics(from, to)
	total := e.Kind.Total()

	c := conv{
		Synth: s,
		edge:  e,
		self:  name + typeArgs(g),
	}
	if s.needsRuntime(from, to) {
		c.runtime = w.Import(RuntimePath, "polyenum")
	}

	v := w.Name("v")
	x := w.Name("x")
	c.ok = w.Name("ok")

	switch e.Kind {
	case plan.EdgeUp:
		w.Printf("// %s converts %s to %s. It always succeeds.\n", name, from.Name, to.Name)
	default:
		w.Printf("// %s converts %s to %s. It reports false if v holds a variant outside %s.\n", name, from.Name, to.Name, to.Name)
	}

	results := enumType(to)
	if !total {
		results = "(" + results + ", bool)"
	}
	w.Printf("func %s%s(%s %s) %s {\n", name, s.typeParams(w, g), v, enumType(from), results)

	if !total {
		w.Printf("if %s == nil {\n", v)
		w.Printf("return nil, true\n")
		w.Printf("}\n")
	}

	shared := s.fam.Shared(from, to)
	if len(shared) != 0 {
		w.Printf("switch %s := %s.(type) {\n", x, v)
		for _, variant := range shared {
			w.Printf("case %s:\n", variantType(from, variant))
			c.writeConstruct(w, variant, x)
			w.Printf("case *%s:\n", variantType(from, variant))
			w.Printf("if %s != nil {\n", x)
			w.Printf("return %s(*%s)\n", c.self, x)
			w.Printf("}\n")
		}
		w.Printf("}\n")
	}

	if total {
		w.Printf("return nil\n")
	} else {
		w.Printf("return nil, false\n")
	}
	w.Printf("}\n\n")
}

// needsRuntime reports whether the conversion lifts itself over pointers,
// slices or maps.
func (s *Synth) needsRuntime(from, to *plan.Plan) bool {
	for _, v := range s.fam.Shared(from, to) {
		for _, f := range v.Fields {
			if f.Class == parse.FieldRecursive && f.Shape.Kind != scan.KindSelf {
				return true
			}
		}
	}
	return false
}

// conv holds the state of a conversion function being written.
type conv struct {
	*Synth
	edge    plan.Edge
	self    string // the conversion instantiated with its type parameters
	runtime string // the local name of the runtime package
	ok      string
}

// writeConstruct writes code which returns the destination variant built
// from the source variant x.
func (c conv) writeConstruct(w *codefmt.Writer, v *parse.Variant, x string) {
	total := c.edge.Kind.Total()

	var values []string
	for _, f := range v.Fields {
		src := x + "." + f.Name
		if f.Class == parse.FieldPlain {
			values = append(values, f.Name+": "+src)
			continue
		}

		if f.Shape.Kind == scan.KindSelf && total {
			values = append(values, f.Name+": "+c.self+"("+src+")")
			continue
		}

		local := localName(w, f.Name)
		fn := c.self
		if f.Shape.Kind != scan.KindSelf {
			fn = c.lift(w, f.Shape) + "(" + src + ")"
		} else {
			fn += "(" + src + ")"
		}

		if total {
			w.Printf("%s, _ := %s\n", local, fn)
		} else {
			w.Printf("%s, %s := %s\n", local, c.ok, fn)
			w.Printf("if !%s {\n", c.ok)
			w.Printf("return nil, false\n")
			w.Printf("}\n")
		}
		values = append(values, f.Name+": "+local)
	}

	lit := variantType(c.edge.To, v) + "{" + strings.Join(values, ", ") + "}"
	if total {
		w.Printf("return %s\n", lit)
	} else {
		w.Printf("return %s, true\n", lit)
	}
}

// lift renders the conversion of the enum lifted through the layers of the
// shape.
//
//	*Self             => polyenum.Ptr(f)
//	[]*Self           => polyenum.Slice(polyenum.Ptr(f))
//	map[string][]Self => polyenum.Map[string](polyenum.Slice(f))
func (c conv) lift(w *codefmt.Writer, shape *scan.Shape) string {
	switch shape.Kind {
	case scan.KindPtr:
		return c.runtime + ".Ptr(" + c.lift(w, shape.Elem) + ")"
	case scan.KindSlice:
		return c.runtime + ".Slice(" + c.lift(w, shape.Elem) + ")"
	case scan.KindMap:
		return c.runtime + ".Map[" + c.keyType(w, shape.Key) + "](" + c.lift(w, shape.Elem) + ")"
	}

	if c.edge.Kind.Total() {
		return c.runtime + ".Total(" + c.self + ")"
	}
	return c.runtime + ".Func[" + enumType(c.edge.From) + ", " + enumType(c.edge.To) + "](" + c.self + ")"
}

// localName returns a unique local variable name for a field.
//
//	V0 => v0, Type => type_, Nil => nil_
func localName(w *codefmt.Writer, field string) string {
	r, size := utf8.DecodeRuneInString(field)
	name := string(unicode.ToLower(r)) + field[size:]
	if token.IsKeyword(name) || types.Universe.Lookup(name) != nil {
		name += "_"
	}
	return w.Name(name)
}
