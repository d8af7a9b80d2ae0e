package codefmt

import (
	"go/ast"
	"go/types"
	"io"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

// Writer is a writer for generated code.
type Writer struct {
	w       io.Writer
	pkg     *packages.Package
	fmt     Formatter
	imports map[string]Import
	scope   NS
	ns      NS
}

// NewWriter creates a new [Writer]. scope holds the package-level names that
// imports must not shadow. It does not initialize the namespace for local
// names. To specify a namespace, use [WithNS].
func NewWriter(w io.Writer, pkg *packages.Package, scope NS) *Writer {
	return &Writer{
		w:       w,
		pkg:     pkg,
		fmt:     New(pkg),
		imports: make(map[string]Import),
		scope:   scope,
		ns:      nil,
	}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Printf writes a formatted string to the underlying writer using
// [Formatter.Fprintf].
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return w.fmt.Fprintf(w.w, format, args...)
}

// Sprintf creates a formatted string using [Formatter.Sprintf].
func (w *Writer) Sprintf(format string, args ...any) string {
	return w.fmt.Sprintf(format, args...)
}

// Name returns a unique name in the namespace of the writer.
func (w *Writer) Name(name string) string {
	return w.ns.Name(name)
}

// Reserve marks a name as used in the namespace of the writer.
func (w *Writer) Reserve(name string) bool {
	return w.ns.Reserve(name)
}

// WithBuf copies the writer and sets a new write buffer.
func (w *Writer) WithBuf(buf io.Writer) *Writer {
	return &Writer{
		w:       buf,
		pkg:     w.pkg,
		fmt:     w.fmt,
		imports: w.imports,
		scope:   w.scope,
		ns:      w.ns,
	}
}

// WithNS copies the writer and sets a new namespace.
func (w *Writer) WithNS(ns NS) *Writer {
	return &Writer{
		w:       w.w,
		pkg:     w.pkg,
		fmt:     w.fmt,
		imports: w.imports,
		scope:   w.scope,
		ns:      ns,
	}
}

type Import struct {
	// The package to import.
	*types.Package

	// HasAlias indicates that the import has an alias.
	HasAlias bool
}

// Imports returns the collected imports. Imports are collected by [Import] and
// [RewriteImports].
func (w *Writer) Imports() map[string]Import {
	return w.imports
}

// Import adds an import for the package with the given path and name. It
// returns the name of the imported package. The name might be different if it
// has tried to resolve name conflicts.
//
//	// fmtName can be used to refer to the "fmt" package without any name conflict.
//	fmtName := w.Import("fmt", "fmt")
//	w.Printf("%s.Println(\"Hello, World!\")", fmtName)
//
// When calling it, the package to import is recorded. Call [Imports] to
// retrieve them.
func (w *Writer) Import(path, name string) string {
	pkgName := PackageName(w.pkg, path)
	if name == "" {
		name = pkgName
	}

	for alias := range DisambiguateName(name) {
		prev, ok := w.imports[alias]
		if ok && prev.Path() == path {
			// Already imported with the same name.
			return alias
		}
		if !ok && !w.scope.Has(alias) {
			pkg := types.NewPackage(path, pkgName)
			w.imports[alias] = Import{Package: pkg, HasAlias: alias != pkgName}
			return alias
		}
	}

	panic("unreachable")
}

// RewriteImports returns a copy of the given expression parsed in file whose
// package qualifiers are rewritten to the names imported by the writer. Every
// package referred by the expression is recorded to import.
//
//	// file: import j "encoding/json"
//	// expr: map[string]j.RawMessage
//	// out:  map[string]json.RawMessage (if "json" is free in the writer)
func RewriteImports(w *Writer, file *ast.File, expr ast.Expr) ast.Expr {
	imports := FileImports(w.pkg, file)
	return astutil.Apply(CloneExpr(expr), func(c *astutil.Cursor) bool {
		sel, ok := c.Node().(*ast.SelectorExpr)
		if !ok {
			return true
		}

		pkgIdent, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}

		path, ok := imports[pkgIdent.Name]
		if !ok {
			// The qualifier is not a package name.
			return true
		}

		pkgIdent.Name = w.Import(path, pkgIdent.Name)
		return false
	}, nil).(ast.Expr)
}

// RewriteDeclImports is [RewriteImports] for declarations copied from a file.
// The declaration is rewritten in place.
func RewriteDeclImports(w *Writer, file *ast.File, decl ast.Decl) ast.Decl {
	imports := FileImports(w.pkg, file)
	return astutil.Apply(decl, func(c *astutil.Cursor) bool {
		sel, ok := c.Node().(*ast.SelectorExpr)
		if !ok {
			return true
		}

		pkgIdent, ok := sel.X.(*ast.Ident)
		if !ok || pkgIdent.Obj != nil {
			// Local objects resolved by the parser shadow imports.
			return true
		}

		path, ok := imports[pkgIdent.Name]
		if !ok {
			return true
		}

		pkgIdent.Name = w.Import(path, pkgIdent.Name)
		return false
	}, nil).(ast.Decl)
}
