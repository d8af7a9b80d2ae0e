// Package polyenum provides the runtime contract of generated poly-enum code.
//
// Poly-enum turns one sum type, the base enum, into a family of sub-enums.
// Each sub-enum holds a chosen subset of the base enum's variants. The
// generator writes the sub-enums together with conversions between the base
// enum and its sub-enums and between sibling sub-enums. Every relationship is
// resolved at generation time. The only polymorphism afterwards is explicit,
// checked conversion.
//
// To start with poly-enum, add a build constraint to files declaring base
// enums:
//
//	//go:build polyenum
//
// A base enum is an interface type with one method per variant. A method
// without parameters is a unit variant. A method with unnamed parameters is a
// tuple variant whose fields are named V0, V1 and so on. A method with named
// parameters is a named variant. The directive on each method lists the
// sub-enums which include the variant:
//
//	//polyenum:enum
//	//polyenum:repr uint32
//	type Element interface {
//		//polyenum:sub Gas
//		Hydrogen()
//		//polyenum:sub Gas
//		Helium()
//		//polyenum:sub Metal
//		Iron()
//		Carbon()
//	}
//
// After declaring enums, run the polyenum command. It will generate
// polyenum_gen.go for your package:
//
//	go run github.com/jesmaz/poly-enum/cmd/polyenum
//
// The generated code defines a sealed interface per enum and a struct per
// variant:
//
//	// generated: (simplified)
//	type Gas interface{ isGas(); Kind() GasKind }
//	type Gas_Hydrogen struct{}
//	type Gas_Helium struct{}
//
//	func GasToElement(v Gas) Element                 // total
//	func ElementToGas(v Element) (Gas, bool)         // partial
//	func GasToMetal(v Gas) (Metal, bool)             // partial
//	func ElementAsGas(v Element) (Gas, bool)         // shared view
//	func ElementAsGasMut(v *Element) (Gas, bool)     // aliasing view
//
// # Directives
//
//	//polyenum:enum                  enum mode: kinds, views and layout proofs
//	//polyenum:derive                derive mode: declarations and conversions only
//	//polyenum:repr uint32           discriminant type, required in enum mode
//	//polyenum:sub A, B              sub-enums of a variant (repeatable)
//	//polyenum:discriminant 5        explicit discriminant of a variant
//	//polyenum:propagate String      behaviors to generate on every enum
//
// # Self-reference
//
// A variant may refer to its own enum with the identifier Self or with the
// base enum's name. In each generated enum, the reference is rewritten to
// that enum. Conversions convert such fields recursively through [Ptr],
// [Slice] and [Map].
package polyenum

// Func is a partial conversion from S to D. The boolean result reports
// whether the conversion succeeded. A failed conversion returns the zero D.
type Func[S, D any] func(S) (D, bool)

// Total lifts a total conversion to a [Func] which always succeeds.
func Total[S, D any](f func(S) D) Func[S, D] {
	return func(s S) (D, bool) {
		return f(s), true
	}
}

// Ptr lifts a conversion over pointers. The result points to a freshly
// allocated value, so it never aliases the source. A nil pointer is converted
// to a nil pointer.
func Ptr[S, D any](f Func[S, D]) Func[*S, *D] {
	return func(s *S) (*D, bool) {
		if s == nil {
			return nil, true
		}
		d, ok := f(*s)
		if !ok {
			return nil, false
		}
		return &d, true
	}
}

// Slice lifts a conversion over slices. It stops at the first element which
// fails to convert. A nil slice is converted to a nil slice.
func Slice[S, D any](f Func[S, D]) Func[[]S, []D] {
	return func(s []S) ([]D, bool) {
		if s == nil {
			return nil, true
		}
		out := make([]D, len(s))
		for i := range s {
			d, ok := f(s[i])
			if !ok {
				return nil, false
			}
			out[i] = d
		}
		return out, true
	}
}

// Map lifts a conversion over map values. Keys are kept. It stops at the
// first value which fails to convert. A nil map is converted to a nil map.
func Map[K comparable, S, D any](f Func[S, D]) Func[map[K]S, map[K]D] {
	return func(s map[K]S) (map[K]D, bool) {
		if s == nil {
			return nil, true
		}
		out := make(map[K]D, len(s))
		for k, v := range s {
			d, ok := f(v)
			if !ok {
				return nil, false
			}
			out[k] = d
		}
		return out, true
	}
}

// Then composes two conversions. The second conversion runs only if the first
// one succeeds.
func Then[A, B, C any](f Func[A, B], g Func[B, C]) Func[A, C] {
	return func(a A) (C, bool) {
		b, ok := f(a)
		if !ok {
			var zero C
			return zero, false
		}
		return g(b)
	}
}
