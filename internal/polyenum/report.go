package polyenuminternal

import (
	"context"
	"errors"
	"go/types"

	"github.com/jesmaz/poly-enum/internal/polyenum/parse"
	"github.com/jesmaz/poly-enum/internal/polyenum/plan"
)

// PackageReport describes what the generator would write for a package.
type PackageReport struct {
	Package string        `yaml:"package"`
	Enums   []*EnumReport `yaml:"enums"`
}

// EnumReport describes a base enum and its family.
type EnumReport struct {
	Name        string              `yaml:"name"`
	Mode        string              `yaml:"mode"`
	Repr        string              `yaml:"repr,omitempty"`
	Generics    []string            `yaml:"generics,omitempty"`
	Propagate   []string            `yaml:"propagate,omitempty"`
	Variants    []*VariantReport    `yaml:"variants"`
	Subs        []*SubReport        `yaml:"subs,omitempty"`
	Conversions []*ConversionReport `yaml:"conversions,omitempty"`
}

type VariantReport struct {
	Name         string   `yaml:"name"`
	Shape        string   `yaml:"shape"`
	Discriminant string   `yaml:"discriminant,omitempty"`
	Fields       []string `yaml:"fields,omitempty"`
	Subs         []string `yaml:"subs,omitempty"`
}

type SubReport struct {
	Name     string   `yaml:"name"`
	Variants []string `yaml:"variants"`
	Generics []string `yaml:"generics,omitempty"`
}

type ConversionReport struct {
	Func  string `yaml:"func"`
	Kind  string `yaml:"kind"`
	Total bool   `yaml:"total"`
}

// Report loads packages like [Main] and describes their families instead of
// generating code. Packages without base enums are omitted.
func Report(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*PackageReport, error) {
	pkgs, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}

	var reports []*PackageReport
	var errs error
	for _, pkg := range pkgs {
		pe, err := New(pkg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if err := pe.Build(); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if r := pe.Report(); len(r.Enums) != 0 {
			reports = append(reports, r)
		}
	}
	if errs != nil {
		return nil, reorderErrors(errs)
	}
	return reports, nil
}

// Report describes the planned families. It must be called after [Build]
// succeeds.
func (pe *Polyenum) Report() *PackageReport {
	r := &PackageReport{Package: pe.p.Pkg().PkgPath}
	for _, s := range pe.synths {
		fam := s.Family()
		decl := fam.Decl

		enum := &EnumReport{
			Name:      decl.Name,
			Mode:      decl.Mode.String(),
			Repr:      decl.Repr,
			Generics:  orNil(decl.Generics.Names()),
			Propagate: decl.Propagate,
		}

		for _, v := range decl.Variants {
			enum.Variants = append(enum.Variants, variantReport(fam, v))
		}

		for _, sub := range fam.Subs {
			sr := &SubReport{Name: sub.Name, Generics: orNil(sub.Generics.Names())}
			for _, v := range fam.Variants(sub) {
				sr.Variants = append(sr.Variants, v.Name)
			}
			enum.Subs = append(enum.Subs, sr)
		}

		for _, e := range fam.Edges() {
			enum.Conversions = append(enum.Conversions, &ConversionReport{
				Func:  s.FuncName(e),
				Kind:  e.Kind.String(),
				Total: e.Kind.Total(),
			})
		}

		r.Enums = append(r.Enums, enum)
	}
	return r
}

func variantReport(fam *plan.Family, v *parse.Variant) *VariantReport {
	vr := &VariantReport{Name: v.Name, Shape: v.Shape.String()}
	if v.Discriminant != nil {
		vr.Discriminant = v.Discriminant.ExactString()
	}
	for _, f := range v.Fields {
		field := f.Name + " " + types.ExprString(f.Type)
		if f.Class == parse.FieldRecursive {
			field += " (" + f.Shape.Kind.String() + ")"
		}
		vr.Fields = append(vr.Fields, field)
	}
	for _, sub := range fam.SubsOf(v) {
		vr.Subs = append(vr.Subs, sub.Name)
	}
	return vr
}

// orNil omits empty lists from reports.
func orNil(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
