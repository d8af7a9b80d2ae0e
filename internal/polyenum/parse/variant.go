package parse

import (
	"errors"
	"fmt"
	"go/ast"

	"github.com/jesmaz/poly-enum/internal/codefmt"
	"github.com/jesmaz/poly-enum/internal/polyenum/scan"
)

// parseVariants parses the methods of a base enum's interface as variants.
func (p *Parser) parseVariants(decl *Decl, iface *ast.InterfaceType) error {
	var errs error
	explicit := make(map[int]directive)
	names := make(map[string]*Variant)

	for _, method := range iface.Methods.List {
		if len(method.Names) == 0 {
			errs = errors.Join(errs, codefmt.Errorf(p, method.Type, "cannot embed %c in enum %s, declare variants as methods", method.Type, decl.Name))
			continue
		}

		fn, ok := method.Type.(*ast.FuncType)
		if !ok {
			errs = errors.Join(errs, codefmt.Errorf(p, method, "invalid variant %s", method.Names[0].Name)) // unreachable
			continue
		}

		dirs, doc := splitDoc(method.Doc)
		v := &Variant{
			Index:  len(decl.Variants),
			Name:   method.Names[0].Name,
			Doc:    doc,
			Method: method,
		}

		if prev, ok := names[v.Name]; ok {
			for _, dir := range dirs {
				p.used[dir.Comment] = true
			}
			errs = errors.Join(errs, codefmt.Errorf(p, v, "duplicate variant %s, already declared at %b", v.Name, prev.Pos()))
			continue
		}
		names[v.Name] = v

		for _, dir := range dirs {
			p.used[dir.Comment] = true

			switch dir.Name {
			case dirSub:
				tags, err := ParseTags(p, dir.ArgsPos, dir.Args)
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}
				for _, tag := range tags {
					if !v.HasTag(tag.Name) {
						v.Tags = append(v.Tags, tag)
					}
				}

			case dirDiscriminant:
				if decl.Mode == ModeDerive {
					errs = errors.Join(errs, codefmt.Errorf(p, dir, "polyenum:discriminant cannot be used with polyenum:derive"))
					continue
				}
				if _, ok := explicit[v.Index]; ok {
					errs = errors.Join(errs, codefmt.Errorf(p, dir, "duplicate polyenum:discriminant"))
					continue
				}
				explicit[v.Index] = dir

			case dirEnum, dirDerive, dirRepr, dirPropagate:
				errs = errors.Join(errs, codefmt.Errorf(p, dir, "polyenum:%s must be on the enum type", dir.Name))

			default:
				errs = errors.Join(errs, p.unknownDirective(dir))
			}
		}

		if fn.Results != nil && len(fn.Results.List) > 0 {
			errs = errors.Join(errs, codefmt.Errorf(p, fn.Results, "variant %s cannot have results", v.Name))
		}

		if err := p.parseFields(decl, v, fn.Params); err != nil {
			errs = errors.Join(errs, err)
		}

		decl.Variants = append(decl.Variants, v)
	}

	if errs != nil {
		return errs
	}

	if len(decl.Variants) == 0 {
		return codefmt.Errorf(p, decl, "enum %s has no variants", decl.Name)
	}

	return p.assignDiscriminants(decl, explicit)
}

// parseFields parses the parameters of a variant method as fields.
//
//	Carbon()          => unit
//	F32(float32)      => tuple with V0
//	F32(v float32)    => named with v
func (p *Parser) parseFields(decl *Decl, v *Variant, params *ast.FieldList) error {
	v.Shape = ShapeUnit
	if params == nil || len(params.List) == 0 {
		return nil
	}

	v.Shape = ShapeTuple
	if len(params.List[0].Names) != 0 {
		v.Shape = ShapeNamed
	}

	var errs error
	add := func(name *ast.Ident, typ ast.Expr) {
		if _, ok := typ.(*ast.Ellipsis); ok {
			errs = errors.Join(errs, codefmt.Errorf(p, typ, "variant %s cannot have variadic fields", v.Name))
			return
		}

		f := &Field{Type: typ, Class: FieldPlain}
		if name == nil {
			f.Name = fmt.Sprintf("V%d", len(v.Fields))
		} else {
			f.Name = name.Name
			if f.Name == "_" {
				errs = errors.Join(errs, codefmt.Errorf(p, name, "variant %s cannot have blank fields", v.Name))
				return
			}
		}

		if reserved, ok := p.reservedField(decl, f.Name); ok {
			errs = errors.Join(errs, codefmt.Errorf(p, f, "field %s of %s collides with the generated method %s", f.Name, v.Name, reserved))
			return
		}

		if scan.References(typ, scan.Self) || scan.References(typ, decl.Name) {
			shape, bad := scan.ShapeOf(typ, decl.Name)
			if bad != nil {
				errs = errors.Join(errs, codefmt.Errorf(p, bad, "cannot convert %c recursively, hold %s directly or by pointer, slice or map value", bad, decl.Name))
				return
			}
			f.Class = FieldRecursive
			f.Shape = shape
		}

		v.Fields = append(v.Fields, f)
	}

	for _, param := range params.List {
		if len(param.Names) == 0 {
			add(nil, param.Type)
			continue
		}
		for _, name := range param.Names {
			add(name, param.Type)
		}
	}
	return errs
}

// reservedField returns the name of the generated method which would collide
// with a field of the given name.
func (p *Parser) reservedField(decl *Decl, name string) (string, bool) {
	if decl.Mode == ModeEnum && name == "Kind" {
		return "Kind", true
	}
	for _, behavior := range decl.Propagate {
		if behavior == "String" && name == "String" {
			return "String", true
		}
	}
	return "", false
}
