package parse

import (
	"errors"
	"go/ast"

	"github.com/jesmaz/poly-enum/internal/codefmt"
)

// Validate checks for directives outside expected places. It must be called
// after [Parser.Parse]. It collects all errors instead of stopping at the
// first error.
//
// Directives on base enums and their variants are checked while parsing.
// Every other directive is misplaced: it would be silently ignored otherwise.
func (p *Parser) Validate() error {
	var errs error
	for _, file := range p.Pkg().Syntax {
		errs = errors.Join(errs, p.validateConstraint(file))
		errs = errors.Join(errs, p.validateStrayDirectives(file))
	}
	return errs
}

// validateConstraint checks if files using polyenum directives have the
// "//go:build polyenum" constraint.
func (p *Parser) validateConstraint(file *ast.File) error {
	if HasGoBuildPolyenum(file) {
		return nil // Constraint satisfied
	}

	for _, group := range file.Comments {
		for _, c := range group.List {
			if isDirective(c) {
				p.used[c] = true
				return codefmt.Errorf(p, c, `file must have "//go:build polyenum" constraint when using polyenum directives`)
			}
		}
	}
	return nil
}

// validateStrayDirectives reports directives which no declaration consumed.
func (p *Parser) validateStrayDirectives(file *ast.File) error {
	if !HasGoBuildPolyenum(file) {
		return nil
	}

	var errs error
	for _, group := range file.Comments {
		for _, c := range group.List {
			if !isDirective(c) || p.used[c] {
				continue
			}

			dir := parseDirective(c)
			switch dir.Name {
			case dirEnum, dirDerive, dirRepr, dirPropagate:
				errs = errors.Join(errs, codefmt.Errorf(p, dir, "polyenum:%s must be on an interface type declaration", dir.Name))
			case dirSub, dirDiscriminant:
				errs = errors.Join(errs, codefmt.Errorf(p, dir, "polyenum:%s must be on a variant method", dir.Name))
			default:
				errs = errors.Join(errs, p.unknownDirective(dir))
			}
		}
	}
	return errs
}
