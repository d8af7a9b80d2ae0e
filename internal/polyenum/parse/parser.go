package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/build/constraint"
	"slices"

	"golang.org/x/tools/go/packages"

	"github.com/jesmaz/poly-enum/internal/codefmt"
	"github.com/jesmaz/poly-enum/internal/polyenum/scan"
	"github.com/jesmaz/poly-enum/internal/suggest"
)

// BuildTag is the build tag of files declaring base enums.
const BuildTag = "polyenum"

// Behaviors lists the behaviors which //polyenum:propagate accepts.
var Behaviors = []string{"String", "Match"}

// Parser parses an AST of the underlying package to collect base enums.
type Parser struct {
	pkg *packages.Package

	// used marks directive comments consumed by a declaration.
	used map[*ast.Comment]bool
}

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	return &Parser{pkg: pkg, used: make(map[*ast.Comment]bool)}, nil
}

// PolyenumGoFiles returns the Go files that have a "//go:build polyenum"
// constraint.
func (p *Parser) PolyenumGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.Pkg().Syntax {
		if HasGoBuildPolyenum(file) {
			files = append(files, file)
		}
	}
	return files
}

// HasGoBuildPolyenum checks if the file has a "//go:build polyenum"
// constraint.
func HasGoBuildPolyenum(file *ast.File) bool {
	ok := false
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			break
		}
		for _, comment := range group.List {
			if constraint.IsGoBuild(comment.Text) {
				expr, _ := constraint.Parse(comment.Text)
				if expr == nil {
					continue
				}
				expr.Eval(func(tag string) bool {
					if tag == BuildTag {
						ok = true
					}
					return true
				})
			}
		}
	}
	return ok
}

// Parse collects all base enums declared in the package. It collects all
// errors instead of stopping at the first error.
func (p *Parser) Parse() ([]*Decl, error) {
	var decls []*Decl
	var errs error

	for _, file := range p.PolyenumGoFiles() {
		for _, d := range file.Decls {
			gen, ok := d.(*ast.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range gen.Specs {
				spec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				doc := spec.Doc
				if doc == nil && !gen.Lparen.IsValid() {
					doc = gen.Doc
				}

				decl, err := p.parseTypeSpec(file, spec, doc)
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}
				if decl != nil {
					decls = append(decls, decl)
				}
			}
		}
	}

	return decls, errs
}

// parseTypeSpec parses a type declaration. It returns nil without an error if
// the type is not a base enum.
func (p *Parser) parseTypeSpec(file *ast.File, spec *ast.TypeSpec, doc *ast.CommentGroup) (*Decl, error) {
	dirs, rest := splitDoc(doc)
	if len(dirs) == 0 {
		return nil, nil
	}

	decl := &Decl{
		Name: spec.Name.Name,
		Doc:  rest,
		File: file,
		Spec: spec,
	}

	var errs error
	var entry *directive
	var repr *directive
	for _, dir := range dirs {
		p.used[dir.Comment] = true

		switch dir.Name {
		case dirEnum, dirDerive:
			if entry != nil {
				errs = errors.Join(errs, codefmt.Errorf(p, dir, "polyenum:%s cannot be combined with polyenum:%s", dir.Name, entry.Name))
				continue
			}
			if dir.Arg() != "" {
				errs = errors.Join(errs, codefmt.Errorf(p, dir, "polyenum:%s takes no arguments", dir.Name))
			}
			entry = &dir
			decl.Mode = ModeEnum
			if dir.Name == dirDerive {
				decl.Mode = ModeDerive
			}

		case dirRepr:
			if repr != nil {
				errs = errors.Join(errs, codefmt.Errorf(p, dir, "duplicate polyenum:repr"))
				continue
			}
			repr = &dir
			goType, ok := parseRepr(dir.Arg())
			if !ok {
				errs = errors.Join(errs, codefmt.Errorf(p, dir, "invalid repr %q%s", dir.Arg(), suggest.DidYouMean(dir.Arg(), Reprs)))
				continue
			}
			decl.Repr = goType

		case dirPropagate:
			names, err := ParseTags(p, dir.ArgsPos, dir.Args)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			for _, name := range names {
				if !slices.Contains(Behaviors, name.Name) {
					errs = errors.Join(errs, codefmt.Errorf(p, name, "unknown behavior %s to propagate%s", name.Name, suggest.DidYouMean(name.Name, Behaviors)))
					continue
				}
				if !slices.Contains(decl.Propagate, name.Name) {
					decl.Propagate = append(decl.Propagate, name.Name)
				}
			}

		case dirSub, dirDiscriminant:
			errs = errors.Join(errs, codefmt.Errorf(p, dir, "polyenum:%s must be on a variant method", dir.Name))

		default:
			errs = errors.Join(errs, p.unknownDirective(dir))
		}
	}

	if entry == nil {
		if errs != nil {
			return nil, errs
		}
		return nil, codefmt.Errorf(p, dirs[0], "polyenum:%s needs polyenum:enum or polyenum:derive on the type", dirs[0].Name)
	}

	if spec.Assign.IsValid() {
		errs = errors.Join(errs, codefmt.Errorf(p, *entry, "polyenum:%s cannot be applied to a type alias", entry.Name))
		return nil, errs
	}

	iface, ok := spec.Type.(*ast.InterfaceType)
	if !ok {
		errs = errors.Join(errs, codefmt.Errorf(p, *entry, "polyenum:%s can only be applied to an interface type", entry.Name))
		return nil, errs
	}

	if spec.Name.Name == scan.Self {
		errs = errors.Join(errs, codefmt.Errorf(p, spec.Name, "enum cannot be named %s", scan.Self))
	}

	switch decl.Mode {
	case ModeEnum:
		if repr == nil {
			errs = errors.Join(errs, codefmt.Errorf(p, *entry, "a repr is required, e.g. //polyenum:repr uint32"))
		}
	case ModeDerive:
		if repr != nil {
			errs = errors.Join(errs, codefmt.Errorf(p, *repr, "polyenum:repr cannot be used with polyenum:derive"))
		}
		decl.Repr = ""
	}

	decl.Generics = GenericsOf(spec.TypeParams)
	if err := p.parseVariants(decl, iface); err != nil {
		errs = errors.Join(errs, err)
	}

	if errs != nil {
		return nil, errs
	}
	return decl, nil
}

func (p *Parser) unknownDirective(dir directive) error {
	return codefmt.Errorf(p, dir, "unknown directive polyenum:%s%s", dir.Name, suggest.DidYouMean(dir.Name, Directives))
}
