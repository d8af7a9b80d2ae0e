package scan

import "go/ast"

// Kind is the kind of a [Shape].
type Kind int

const (
	// KindSelf is the enum itself.
	KindSelf Kind = iota
	// KindPtr is a pointer to an inner shape.
	KindPtr
	// KindSlice is a slice of an inner shape.
	KindSlice
	// KindMap is a map whose values have an inner shape.
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindSelf:
		return "self"
	case KindPtr:
		return "pointer"
	case KindSlice:
		return "slice"
	case KindMap:
		return "map"
	}
	return "unknown"
}

// Shape describes how a field type holds the enum itself. Conversions of the
// field are built by lifting the enum's conversion through each layer.
type Shape struct {
	Kind Kind
	Key  ast.Expr // for KindMap
	Elem *Shape   // for KindPtr, KindSlice and KindMap
}

// Depth returns the number of layers around the enum itself.
func (s *Shape) Depth() int {
	if s.Kind == KindSelf {
		return 0
	}
	return 1 + s.Elem.Depth()
}

// ShapeOf inspects a type expression which refers to the enum itself. If the
// enum is held in a way that cannot be converted, it returns the offending
// sub-expression instead of a shape.
//
//	Self              => self
//	*Self             => pointer(self)
//	[]*Self           => slice(pointer(self))
//	map[string][]Self => map(slice(self))
//	func() Self       => offending: func() Self
func ShapeOf(expr ast.Expr, base string) (*Shape, ast.Expr) {
	if IsSelf(expr, base) {
		return &Shape{Kind: KindSelf}, nil
	}

	switch x := expr.(type) {
	case *ast.ParenExpr:
		return ShapeOf(x.X, base)
	case *ast.StarExpr:
		elem, bad := ShapeOf(x.X, base)
		if bad != nil {
			return nil, bad
		}
		return &Shape{Kind: KindPtr, Elem: elem}, nil
	case *ast.ArrayType:
		if x.Len != nil {
			return nil, x
		}
		elem, bad := ShapeOf(x.Elt, base)
		if bad != nil {
			return nil, bad
		}
		return &Shape{Kind: KindSlice, Elem: elem}, nil
	case *ast.MapType:
		if References(x.Key, Self) || References(x.Key, base) {
			return nil, x.Key
		}
		elem, bad := ShapeOf(x.Value, base)
		if bad != nil {
			return nil, bad
		}
		return &Shape{Kind: KindMap, Key: x.Key, Elem: elem}, nil
	}

	return nil, expr
}
