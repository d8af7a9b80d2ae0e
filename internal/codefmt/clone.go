package codefmt

import (
	"fmt"
	"go/ast"
)

// CloneExpr returns a deep copy of the given expression. Positions are kept
// so that errors on the copy still point to the original source code.
//
// Only expressions which may appear in type expressions, array lengths and
// type constraints are supported. Panics for other kinds of expressions.
func CloneExpr(expr ast.Expr) ast.Expr {
	if expr == nil {
		return nil
	}

	switch x := expr.(type) {
	case *ast.Ident:
		y := *x
		return &y
	case *ast.BasicLit:
		y := *x
		return &y
	case *ast.SelectorExpr:
		return &ast.SelectorExpr{X: CloneExpr(x.X), Sel: CloneExpr(x.Sel).(*ast.Ident)}
	case *ast.StarExpr:
		return &ast.StarExpr{Star: x.Star, X: CloneExpr(x.X)}
	case *ast.ParenExpr:
		return &ast.ParenExpr{Lparen: x.Lparen, X: CloneExpr(x.X), Rparen: x.Rparen}
	case *ast.UnaryExpr:
		return &ast.UnaryExpr{OpPos: x.OpPos, Op: x.Op, X: CloneExpr(x.X)}
	case *ast.BinaryExpr:
		return &ast.BinaryExpr{X: CloneExpr(x.X), OpPos: x.OpPos, Op: x.Op, Y: CloneExpr(x.Y)}
	case *ast.ArrayType:
		return &ast.ArrayType{Lbrack: x.Lbrack, Len: CloneExpr(x.Len), Elt: CloneExpr(x.Elt)}
	case *ast.Ellipsis:
		return &ast.Ellipsis{Ellipsis: x.Ellipsis, Elt: CloneExpr(x.Elt)}
	case *ast.MapType:
		return &ast.MapType{Map: x.Map, Key: CloneExpr(x.Key), Value: CloneExpr(x.Value)}
	case *ast.ChanType:
		return &ast.ChanType{Begin: x.Begin, Arrow: x.Arrow, Dir: x.Dir, Value: CloneExpr(x.Value)}
	case *ast.IndexExpr:
		return &ast.IndexExpr{X: CloneExpr(x.X), Lbrack: x.Lbrack, Index: CloneExpr(x.Index), Rbrack: x.Rbrack}
	case *ast.IndexListExpr:
		return &ast.IndexListExpr{X: CloneExpr(x.X), Lbrack: x.Lbrack, Indices: cloneExprs(x.Indices), Rbrack: x.Rbrack}
	case *ast.FuncType:
		return &ast.FuncType{
			Func:       x.Func,
			TypeParams: CloneFields(x.TypeParams),
			Params:     CloneFields(x.Params),
			Results:    CloneFields(x.Results),
		}
	case *ast.StructType:
		return &ast.StructType{Struct: x.Struct, Fields: CloneFields(x.Fields), Incomplete: x.Incomplete}
	case *ast.InterfaceType:
		return &ast.InterfaceType{Interface: x.Interface, Methods: CloneFields(x.Methods), Incomplete: x.Incomplete}
	case *ast.CallExpr:
		return &ast.CallExpr{Fun: CloneExpr(x.Fun), Lparen: x.Lparen, Args: cloneExprs(x.Args), Ellipsis: x.Ellipsis, Rparen: x.Rparen}
	}

	panic(fmt.Sprintf("cannot clone %T", expr))
}

// CloneFields returns a deep copy of the given field list. Comments are not
// copied.
func CloneFields(fields *ast.FieldList) *ast.FieldList {
	if fields == nil {
		return nil
	}

	list := make([]*ast.Field, len(fields.List))
	for i, f := range fields.List {
		var names []*ast.Ident
		for _, name := range f.Names {
			names = append(names, CloneExpr(name).(*ast.Ident))
		}

		var tag *ast.BasicLit
		if f.Tag != nil {
			tag = CloneExpr(f.Tag).(*ast.BasicLit)
		}

		list[i] = &ast.Field{Names: names, Type: CloneExpr(f.Type), Tag: tag}
	}
	return &ast.FieldList{Opening: fields.Opening, List: list, Closing: fields.Closing}
}

func cloneExprs(exprs []ast.Expr) []ast.Expr {
	if exprs == nil {
		return nil
	}
	out := make([]ast.Expr, len(exprs))
	for i, expr := range exprs {
		out[i] = CloneExpr(expr)
	}
	return out
}
