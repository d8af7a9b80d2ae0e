package polyenuminternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"github.com/jesmaz/poly-enum/internal/codefmt"
	"github.com/jesmaz/poly-enum/internal/polyenum/parse"
	"github.com/jesmaz/poly-enum/internal/polyenum/plan"
	"github.com/jesmaz/poly-enum/internal/polyenum/synth"
)

// Polyenum generates enum code for the target package. Call [Build] and then
// [Generate] to get the generated code. All potential errors are returned by
// [Build]. Once [Build] succeeds, [Generate] never fails.
type Polyenum struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	decls  []*parse.Decl
	fams   []*plan.Family
	synths []*synth.Synth
}

// New creates a new [Polyenum] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Name, PkgPath, Fset and Syntax. Types are not required.
func New(pkg *packages.Package) (*Polyenum, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	ns := codefmt.NewNS(pkg.Syntax...)
	var buf bytes.Buffer
	return &Polyenum{
		p:   parser,
		ns:  ns,
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg, ns),
	}, nil
}

// Build prepares code generation by parsing enums and planning their
// sub-enums. All potential errors are returned by this method. It must be
// called before [Generate].
func (pe *Polyenum) Build() error {
	decls, errs := pe.p.Parse()
	errs = errors.Join(errs, pe.p.Validate())
	if errs != nil {
		return errs
	}
	pe.decls = decls

	// Base enums are erased from the source files and generated again.
	for _, decl := range decls {
		delete(pe.ns, decl.Name)
	}

	for _, decl := range decls {
		fam, err := plan.New(pe.p, decl)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		pe.fams = append(pe.fams, fam)
	}
	if errs != nil {
		return errs
	}

	for _, decl := range decls {
		if !pe.ns.Reserve(decl.Name) {
			errs = errors.Join(errs, codefmt.Errorf(pe.p, decl, "enum %s is declared twice", decl.Name))
		}
	}

	for _, fam := range pe.fams {
		s, err := synth.New(pe.p.Pkg(), fam, pe.ns)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		pe.synths = append(pe.synths, s)
	}
	return errs
}

// Families returns the planned families. It must be called after [Build]
// succeeds.
func (pe *Polyenum) Families() []*plan.Family {
	return pe.fams
}

// Generate generates enum code for the package. It must be called after
// [Build] succeeds. It returns nil if the package has no files with the
// "//go:build polyenum" constraint.
func (pe *Polyenum) Generate() []byte {
	if len(pe.p.PolyenumGoFiles()) == 0 {
		return nil
	}
	pe.writeEnumCode()
	pe.mergeCode()
	return pe.frameCode()
}

// writeEnumCode writes the declarations and conversions of every family.
func (pe *Polyenum) writeEnumCode() {
	for _, s := range pe.synths {
		fmt.Fprintf(pe.buf, "// polyenum: %s\n\n", s.Family().Decl.Name)
		s.Write(pe.w)
	}
}

// mergeCode copies non-enum code from the source files that tagged with
// "//go:build polyenum". Base enums are erased because they are generated
// again.
func (pe *Polyenum) mergeCode() {
	erased := make(map[*ast.TypeSpec]bool)
	for _, decl := range pe.decls {
		erased[decl.Spec] = true
	}

	for _, file := range pe.p.PolyenumGoFiles() {
		name := filepath.Base(pe.p.Pkg().Fset.File(file.Pos()).Name())
		first := true

		// Comments of erased enums must not be printed.
		var comments []*ast.CommentGroup
		for _, group := range file.Comments {
			if !inErased(group, erased) {
				comments = append(comments, group)
			}
		}

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok {
				if gen.Tok == token.IMPORT {
					// Skip import declarations in files. Required imports will
					// be collected from their usage, and then rewritten as an
					// import declaration group.
					continue
				}

				if gen.Tok == token.TYPE {
					var specs []ast.Spec
					for _, spec := range gen.Specs {
						if !erased[spec.(*ast.TypeSpec)] {
							specs = append(specs, spec)
						}
					}
					if len(specs) == 0 {
						continue
					}
					gen.Specs = specs
				}
			}

			if first {
				fmt.Fprintf(pe.buf, "// %s:\n\n", name)
				first = false
			}

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteDeclImports(pe.w, file, decl)

			// Write rewritten declaration code
			_ = printer.Fprint(pe.buf, pe.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: comments,
			})
			fmt.Fprintf(pe.buf, "\n\n")
		}
	}
}

// inErased reports whether the comment group belongs to an erased enum.
func inErased(group *ast.CommentGroup, erased map[*ast.TypeSpec]bool) bool {
	for spec := range erased {
		start := spec.Pos()
		if spec.Doc != nil {
			start = spec.Doc.Pos()
		}
		if start <= group.Pos() && group.End() <= spec.End() {
			return true
		}
	}
	return false
}

func (pe *Polyenum) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !%s\n", parse.BuildTag)
	fmt.Fprintf(&buf, "// Code generated by github.com/jesmaz/poly-enum%s. DO NOT EDIT.\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", pe.p.Pkg().Name)

	if len(pe.w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range pe.w.Imports() {
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, pe.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
