// Package plan decides which sub-enums to generate from a base enum and which
// type parameters each of them needs.
package plan

import (
	"errors"
	"go/ast"
	"slices"

	"github.com/jesmaz/poly-enum/internal/codefmt"
	"github.com/jesmaz/poly-enum/internal/polyenum/parse"
	"github.com/jesmaz/poly-enum/internal/polyenum/scan"
)

// Plan is a generated enum: the base enum or one of its sub-enums.
type Plan struct {
	Name     string
	Tag      *ast.Ident // first occurrence; nil for the base enum
	Variants []int      // sorted indices into Decl.Variants
	Generics parse.Generics
}

// IsBase reports whether the plan is the base enum itself.
func (p *Plan) IsBase() bool { return p.Tag == nil }

// Has reports whether the plan includes the variant.
func (p *Plan) Has(index int) bool {
	_, ok := slices.BinarySearch(p.Variants, index)
	return ok
}

// Family is the base enum with all of its sub-enums.
type Family struct {
	Decl *parse.Decl
	Base *Plan
	Subs []*Plan // in order of first appearance

	members *membership
}

// New plans the sub-enums of the base enum. Sub-enums appear in the order of
// their first occurrence in the variants' tags.
func New(pkger codefmt.Pkger, decl *parse.Decl) (*Family, error) {
	f := &Family{
		Decl:    decl,
		members: newMembership(),
	}

	var errs error
	var all []int
	tags := make(map[string]*ast.Ident)
	for _, v := range decl.Variants {
		all = append(all, v.Index)
		for _, tag := range v.Tags {
			switch tag.Name {
			case decl.Name, scan.Self:
				errs = errors.Join(errs, codefmt.Errorf(pkger, tag, "sub-enum cannot be named %s like its base", tag.Name))
				continue
			case decl.Name + "Kind":
				if decl.Mode == parse.ModeEnum {
					errs = errors.Join(errs, codefmt.Errorf(pkger, tag, "sub-enum %s collides with the kind type of %s", tag.Name, decl.Name))
					continue
				}
			}

			if _, ok := tags[tag.Name]; !ok {
				tags[tag.Name] = tag
			}
			f.members.Include(tag.Name, v.Index)
		}
	}
	if errs != nil {
		return nil, errs
	}

	f.Base = &Plan{
		Name:     decl.Name,
		Variants: all,
		Generics: decl.Generics,
	}

	for _, sub := range f.members.Subs() {
		variants := f.members.Variants(sub)
		slices.Sort(variants)

		f.Subs = append(f.Subs, &Plan{
			Name:     sub,
			Tag:      tags[sub],
			Variants: variants,
			Generics: MinimalGenerics(decl, variants),
		})
	}

	if decl.Mode == parse.ModeEnum {
		for _, sub := range f.Subs {
			for _, other := range f.Subs {
				if other.Name == sub.Name+"Kind" {
					errs = errors.Join(errs, codefmt.Errorf(pkger, other.Tag, "sub-enum %s collides with the kind type of %s", other.Name, sub.Name))
				}
			}
		}
	}
	if errs != nil {
		return nil, errs
	}

	return f, nil
}

// Plans returns the base enum followed by its sub-enums.
func (f *Family) Plans() []*Plan {
	return append([]*Plan{f.Base}, f.Subs...)
}

// SubsOf returns the sub-enums including the variant.
func (f *Family) SubsOf(v *parse.Variant) []*Plan {
	var out []*Plan
	for _, name := range f.members.SubsOf(v.Index) {
		i := slices.IndexFunc(f.Subs, func(p *Plan) bool { return p.Name == name })
		out = append(out, f.Subs[i])
	}
	return out
}

// Shared returns the variants included in both plans.
func (f *Family) Shared(a, b *Plan) []*parse.Variant {
	var out []*parse.Variant
	for _, i := range a.Variants {
		if f.includes(b, i) {
			out = append(out, f.Decl.Variants[i])
		}
	}
	return out
}

// includes reports whether the plan includes the variant. The base enum
// includes every variant.
func (f *Family) includes(p *Plan, index int) bool {
	if p.IsBase() {
		return p.Has(index)
	}
	return f.members.Includes(p.Name, index)
}

// Variants returns the variants included in the plan.
func (f *Family) Variants(p *Plan) []*parse.Variant {
	out := make([]*parse.Variant, len(p.Variants))
	for i, index := range p.Variants {
		out[i] = f.Decl.Variants[index]
	}
	return out
}

// MinimalGenerics returns the type parameters of the base enum which the
// variants need. A needed type parameter whose constraint refers to other
// type parameters needs them too.
func MinimalGenerics(decl *parse.Decl, variants []int) parse.Generics {
	var names []string
	need := func(expr ast.Expr) {
		for _, name := range scan.Idents(expr, decl.Generics.Has) {
			if !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
	}

	for _, i := range variants {
		for _, field := range decl.Variants[i].Fields {
			if field.Class == parse.FieldPlain {
				need(field.Type)
				continue
			}

			// The enum itself is rewritten to each generated enum with its own
			// type parameters. Only map keys remain.
			for shape := field.Shape; shape != nil; shape = shape.Elem {
				if shape.Key != nil {
					need(shape.Key)
				}
			}
		}
	}

	// Close over constraints.
	for i := 0; i < len(names); i++ {
		p, _ := decl.Generics.Lookup(names[i])
		need(p.Constraint)
	}

	return decl.Generics.Subset(names)
}
