package parse

import (
	"go/ast"
	"go/token"
	"strings"
)

const directivePrefix = "//polyenum:"

// Names of directives.
const (
	dirEnum         = "enum"
	dirDerive       = "derive"
	dirRepr         = "repr"
	dirSub          = "sub"
	dirDiscriminant = "discriminant"
	dirPropagate    = "propagate"
)

// Directives lists the known directive names.
var Directives = []string{dirEnum, dirDerive, dirRepr, dirSub, dirDiscriminant, dirPropagate}

// directive is a "//polyenum:name args" comment.
type directive struct {
	Name    string
	Args    string
	ArgsPos token.Pos
	Comment *ast.Comment
}

func (d directive) Pos() token.Pos { return d.Comment.Pos() }
func (d directive) End() token.Pos { return d.Comment.End() }

// Arg returns the argument without a trailing comment.
//
//	//polyenum:repr uint32 // note  => "uint32"
func (d directive) Arg() string {
	arg, _, _ := strings.Cut(d.Args, "//")
	return strings.TrimSpace(arg)
}

// isDirective reports whether the comment is a polyenum directive.
func isDirective(c *ast.Comment) bool {
	return strings.HasPrefix(c.Text, directivePrefix)
}

// parseDirective splits a directive comment into its name and arguments.
func parseDirective(c *ast.Comment) directive {
	name := strings.TrimPrefix(c.Text, directivePrefix)
	if i := strings.IndexAny(name, " \t"); i >= 0 {
		name = name[:i]
	}

	args := strings.TrimLeft(c.Text[len(directivePrefix)+len(name):], " \t")
	offset := len(c.Text) - len(args)

	return directive{
		Name:    name,
		Args:    args,
		ArgsPos: c.Slash + token.Pos(offset),
		Comment: c,
	}
}

// splitDoc separates directives from the other comments in a doc comment.
// The returned doc is nil if only directives are in the doc.
func splitDoc(doc *ast.CommentGroup) ([]directive, *ast.CommentGroup) {
	if doc == nil {
		return nil, nil
	}

	var dirs []directive
	var rest []*ast.Comment
	for _, c := range doc.List {
		if isDirective(c) {
			dirs = append(dirs, parseDirective(c))
		} else {
			rest = append(rest, c)
		}
	}

	if len(rest) == 0 {
		return dirs, nil
	}
	return dirs, &ast.CommentGroup{List: rest}
}
