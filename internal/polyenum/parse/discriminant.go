package parse

import (
	"errors"
	"go/constant"
	"go/token"
	"strings"

	"fortio.org/safecast"

	"github.com/jesmaz/poly-enum/internal/codefmt"
)

// reprC is the repr which follows the C ABI. Its discriminants are C ints.
const reprC = "C"

// Reprs lists the accepted reprs.
var Reprs = []string{
	"int", "int8", "int16", "int32", "int64",
	"uint", "uint8", "uint16", "uint32", "uint64",
	"byte", "rune", reprC,
}

// parseRepr returns the Go integer type for the repr.
func parseRepr(repr string) (string, bool) {
	switch repr {
	case reprC:
		return "int32", true
	case "int", "int8", "int16", "int32", "int64":
		return repr, true
	case "uint", "uint8", "uint16", "uint32", "uint64":
		return repr, true
	case "byte":
		return "uint8", true
	case "rune":
		return "int32", true
	}
	return "", false
}

// parseDiscriminant parses an integer literal with an optional sign.
//
//	5, -1, 0x7f, 1_000
func parseDiscriminant(arg string) (constant.Value, bool) {
	neg := false
	switch {
	case strings.HasPrefix(arg, "-"):
		neg = true
		arg = arg[1:]
	case strings.HasPrefix(arg, "+"):
		arg = arg[1:]
	}

	v := constant.MakeFromLiteral(arg, token.INT, 0)
	if v.Kind() != constant.Int {
		return nil, false
	}
	if neg {
		v = constant.UnaryOp(token.SUB, v, 0)
	}
	return v, true
}

// fitsRepr reports whether the discriminant is representable by the repr
// type.
func fitsRepr(v constant.Value, repr string) bool {
	switch repr {
	case "int":
		return fits[int](v)
	case "int8":
		return fits[int8](v)
	case "int16":
		return fits[int16](v)
	case "int32":
		return fits[int32](v)
	case "int64":
		return fits[int64](v)
	case "uint":
		return fits[uint](v)
	case "uint8":
		return fits[uint8](v)
	case "uint16":
		return fits[uint16](v)
	case "uint32":
		return fits[uint32](v)
	case "uint64":
		return fits[uint64](v)
	}
	return false
}

func fits[T safecast.Integer](v constant.Value) bool {
	if i, exact := constant.Int64Val(v); exact {
		_, err := safecast.Conv[T](i)
		return err == nil
	}
	if u, exact := constant.Uint64Val(v); exact {
		_, err := safecast.Conv[T](u)
		return err == nil
	}
	return false
}

// assignDiscriminants assigns a discriminant to each variant in declaration
// order. A variant without an explicit discriminant gets the previous
// discriminant plus one. The first one gets zero.
//
// explicit holds the directives of explicit discriminants by variant index.
func (p *Parser) assignDiscriminants(decl *Decl, explicit map[int]directive) error {
	var errs error
	next := constant.MakeInt64(0)
	seen := make(map[string]*Variant)

	for _, v := range decl.Variants {
		value := next
		var poser codefmt.Poser = v

		if dir, ok := explicit[v.Index]; ok {
			poser = dir
			parsed, ok := parseDiscriminant(dir.Arg())
			if !ok {
				errs = errors.Join(errs, codefmt.Errorf(p, dir, "invalid discriminant %q: must be an integer literal", dir.Arg()))
				continue
			}
			value = parsed
		}

		v.Discriminant = value
		next = constant.BinaryOp(value, token.ADD, constant.MakeInt64(1))

		if decl.Repr != "" && !fitsRepr(value, decl.Repr) {
			errs = errors.Join(errs, codefmt.Errorf(p, poser, "discriminant %s of %s overflows %s", value.ExactString(), v.Name, decl.Repr))
			continue
		}

		key := value.ExactString()
		if prev, ok := seen[key]; ok {
			errs = errors.Join(errs, codefmt.Errorf(p, poser, "discriminant %s of %s is already used by %s", key, v.Name, prev.Name))
			continue
		}
		seen[key] = v
	}

	return errs
}
