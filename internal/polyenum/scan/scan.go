// Package scan finds identifiers referenced by Go type expressions.
package scan

import (
	"go/ast"
	"slices"
)

// Idents returns the identifiers in the type expression which satisfy pred.
// The result is deduplicated and ordered by first encounter.
//
// Package-qualified names (pkg.Type) never match because they cannot refer to
// a type parameter or the enum itself. Anonymous struct and interface types
// are not inspected.
func Idents(expr ast.Expr, pred func(string) bool) []string {
	var idents []string
	walk(expr, func(ident *ast.Ident) {
		if pred(ident.Name) && !slices.Contains(idents, ident.Name) {
			idents = append(idents, ident.Name)
		}
	})
	return idents
}

// References reports whether the type expression refers to the identifier.
func References(expr ast.Expr, name string) bool {
	found := false
	walk(expr, func(ident *ast.Ident) {
		if ident.Name == name {
			found = true
		}
	})
	return found
}

// IsSelf reports whether the type expression is the enum itself: the Self
// marker or the base enum's name, optionally instantiated with type
// arguments.
func IsSelf(expr ast.Expr, base string) bool {
	switch x := expr.(type) {
	case *ast.Ident:
		return x.Name == Self || x.Name == base
	case *ast.ParenExpr:
		return IsSelf(x.X, base)
	case *ast.IndexExpr:
		return isIdent(x.X, base)
	case *ast.IndexListExpr:
		return isIdent(x.X, base)
	}
	return false
}

// Self is the marker which refers to the enclosing enum.
const Self = "Self"

// SelfPred returns a predicate which matches the self markers of the base
// enum.
func SelfPred(base string) func(string) bool {
	return func(name string) bool { return name == Self || name == base }
}

func isIdent(expr ast.Expr, name string) bool {
	ident, ok := expr.(*ast.Ident)
	return ok && ident.Name == name
}

func walk(expr ast.Expr, visit func(*ast.Ident)) {
	switch x := expr.(type) {
	case nil:
	case *ast.Ident:
		visit(x)
	case *ast.ArrayType:
		walk(x.Elt, visit)
	case *ast.StarExpr:
		walk(x.X, visit)
	case *ast.ParenExpr:
		walk(x.X, visit)
	case *ast.IndexExpr:
		walk(x.X, visit)
		walk(x.Index, visit)
	case *ast.IndexListExpr:
		walk(x.X, visit)
		for _, index := range x.Indices {
			walk(index, visit)
		}
	case *ast.FuncType:
		walkFields(x.Params, visit)
		walkFields(x.Results, visit)
	case *ast.Ellipsis:
		walk(x.Elt, visit)
	case *ast.MapType:
		walk(x.Key, visit)
		walk(x.Value, visit)
	case *ast.ChanType:
		walk(x.Value, visit)
	case *ast.UnaryExpr:
		// ~T in constraints
		walk(x.X, visit)
	case *ast.BinaryExpr:
		// A | B in constraints
		walk(x.X, visit)
		walk(x.Y, visit)
	}
}

func walkFields(fields *ast.FieldList, visit func(*ast.Ident)) {
	if fields == nil {
		return
	}
	for _, f := range fields.List {
		walk(f.Type, visit)
	}
}
