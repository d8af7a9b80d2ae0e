// Package synth writes the generated code of a base enum and its sub-enums.
package synth

import (
	"errors"
	"go/token"
	"maps"

	"golang.org/x/tools/go/packages"

	"github.com/jesmaz/poly-enum/internal/codefmt"
	"github.com/jesmaz/poly-enum/internal/polyenum/parse"
	"github.com/jesmaz/poly-enum/internal/polyenum/plan"
)

// RuntimePath is the import path of the runtime package.
const RuntimePath = "github.com/jesmaz/poly-enum"

// Synth writes the generated code of a family.
type Synth struct {
	pkg  *packages.Package
	fam  *plan.Family
	decl *parse.Decl
	ns   codefmt.NS
}

func (s *Synth) Pkg() *packages.Package { return s.pkg }

// New creates a [Synth] for the family. ns holds the package-level names. The
// names of generated declarations are reserved in ns. If any of them is
// already taken, an error is returned.
func New(pkg *packages.Package, fam *plan.Family, ns codefmt.NS) (*Synth, error) {
	s := &Synth{
		pkg:  pkg,
		fam:  fam,
		decl: fam.Decl,
		ns:   ns,
	}

	var errs error
	for _, name := range s.Names() {
		if !ns.Reserve(name) {
			err := codefmt.Errorf(s, s.decl, "generated %s for enum %s collides with another declaration", name, s.decl.Name)
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}
	return s, nil
}

// Pos returns the position of the base enum.
func (s *Synth) Pos() token.Pos { return s.decl.Pos() }

// Names returns the names of all package-level declarations which the family
// generates, except the base enum itself.
func (s *Synth) Names() []string {
	var names []string
	for _, p := range s.fam.Plans() {
		if !p.IsBase() {
			names = append(names, p.Name)
		}
		if s.decl.Mode == parse.ModeEnum {
			names = append(names, kindName(p))
		}
		for _, v := range s.fam.Variants(p) {
			names = append(names, variantName(p, v))
			if s.decl.Mode == parse.ModeEnum {
				names = append(names, kindConstName(p, v))
			}
		}
		if s.propagates("Match") {
			names = append(names, matchName(p))
		}
	}

	for _, e := range s.fam.Edges() {
		names = append(names, convName(e.From, e.To))
		if s.decl.Mode == parse.ModeEnum && e.Kind == plan.EdgeDown {
			names = append(names, viewName(e.From, e.To), viewMutName(e.From, e.To))
		}
	}
	return names
}

// Write writes the generated code of the family.
func (s *Synth) Write(w *codefmt.Writer) {
	for _, p := range s.fam.Plans() {
		s.writeEnum(w, p)
	}

	for _, sub := range s.fam.Subs {
		s.writeConv(s.local(w), plan.Edge{From: sub, To: s.fam.Base, Kind: plan.EdgeUp})
		s.writeConv(s.local(w), plan.Edge{From: s.fam.Base, To: sub, Kind: plan.EdgeDown})
		if s.decl.Mode == parse.ModeEnum {
			s.writeProofs(w, s.fam.Base, sub)
			s.writeView(s.local(w), s.fam.Base, sub)
			s.writeViewMut(s.local(w), s.fam.Base, sub)
		}
	}

	for _, e := range s.fam.Edges() {
		if e.Kind == plan.EdgeLateral {
			s.writeConv(s.local(w), e)
		}
	}

	if s.propagates("Match") {
		for _, p := range s.fam.Plans() {
			s.writeMatch(s.local(w), p)
		}
	}
}

// local returns a writer with a namespace for local names in a function.
func (s *Synth) local(w *codefmt.Writer) *codefmt.Writer {
	ns := maps.Clone(s.ns)
	for name := range w.Imports() {
		ns.Reserve(name)
	}
	for _, p := range s.decl.Generics {
		ns.Reserve(p.Name)
	}
	return w.WithNS(ns)
}

func (s *Synth) propagates(behavior string) bool {
	for _, b := range s.decl.Propagate {
		if b == behavior {
			return true
		}
	}
	return false
}

// Family returns the family which the synth writes.
func (s *Synth) Family() *plan.Family { return s.fam }

// FuncName returns the name of the conversion function of the edge.
func (s *Synth) FuncName(e plan.Edge) string { return convName(e.From, e.To) }
