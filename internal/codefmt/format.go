package codefmt

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// Formatter formats expressions and positions of a package.
type Formatter struct {
	PkgPath string
	Fset    *token.FileSet
}

func New(pkg *packages.Package) Formatter {
	if pkg == nil {
		return Formatter{}
	}
	return Formatter{pkg.PkgPath, pkg.Fset}
}

func newByPkger(pkger Pkger) Formatter {
	if pkger == nil {
		return New(nil)
	}
	return New(pkger.Pkg())
}

// Expr returns a Go source code representation of the given [ast.Expr]. It
// does not depend on positions, so synthesized nodes print the same way as
// parsed ones.
//
// e.g., f.Expr([ast.Expr for "map[string] *T"]) => "map[string]*T"
func (f Formatter) Expr(expr ast.Expr) string {
	return types.ExprString(expr)
}

func (f Formatter) Pos(pos token.Pos) string {
	if f.Fset == nil {
		return "-:-"
	}
	return FormatPosition(f.Fset.Position(pos))
}

// wd is the cached working directory.
var wd, _ = os.Getwd()

func FormatPosition(pos token.Position) string {
	if !pos.IsValid() {
		return "-:-"
	}

	filename := pos.Filename
	if rel, err := filepath.Rel(wd, filename); err == nil {
		filename = rel
	}

	return fmt.Sprintf("%s:%d:%d", filename, pos.Line, pos.Column)
}

// FormatExpr is a shorthand for [Formatter.Expr].
func FormatExpr(pkger Pkger, expr ast.Expr) string {
	return newByPkger(pkger).Expr(expr)
}

// FormatPos is a shorthand for [Formatter.Pos].
func FormatPos(pkger Pkger, pos token.Pos) string {
	return newByPkger(pkger).Pos(pos)
}

func Sprintf(pkger Pkger, format string, args ...any) string {
	return newByPkger(pkger).Sprintf(format, args...)
}

func Errorf(pkger Pkger, poser Poser, format string, args ...any) error {
	return newByPkger(pkger).Errorf(poser, format, args...)
}

type pkger struct{ pkg *packages.Package }

func (p pkger) Pkg() *packages.Package { return p.pkg }
func Pkg(pkg *packages.Package) Pkger  { return pkger{pkg} }

type poser struct{ pos, end token.Pos }

func (p poser) Pos() token.Pos { return p.pos }
func (p poser) End() token.Pos { return p.end }

// Pos wraps a position to be used as [Poser].
func Pos(pos token.Pos) Poser { return poser{pos, token.NoPos} }

// Span wraps a position range to be used as [Poser] and [Ender].
func Span(pos, end token.Pos) Poser { return poser{pos, end} }
