package parse

import (
	"go/ast"
	"slices"
)

// TypeParam is a type parameter with its constraint.
type TypeParam struct {
	Name       string
	Constraint ast.Expr
}

// Generics is an ordered list of type parameters.
type Generics []TypeParam

// GenericsOf flattens a type parameter list. [K, V any] becomes two type
// parameters sharing the constraint.
func GenericsOf(fields *ast.FieldList) Generics {
	if fields == nil {
		return nil
	}

	var g Generics
	for _, f := range fields.List {
		for _, name := range f.Names {
			g = append(g, TypeParam{Name: name.Name, Constraint: f.Type})
		}
	}
	return g
}

// Names returns the names of the type parameters in order.
func (g Generics) Names() []string {
	names := make([]string, len(g))
	for i, p := range g {
		names[i] = p.Name
	}
	return names
}

// Has reports whether the name is a type parameter.
func (g Generics) Has(name string) bool {
	return slices.ContainsFunc(g, func(p TypeParam) bool { return p.Name == name })
}

// Lookup returns the type parameter by name.
func (g Generics) Lookup(name string) (TypeParam, bool) {
	i := slices.IndexFunc(g, func(p TypeParam) bool { return p.Name == name })
	if i == -1 {
		return TypeParam{}, false
	}
	return g[i], true
}

// Merge returns the union of both lists. The receiver's parameters come first
// and duplicates are dropped.
func (g Generics) Merge(other Generics) Generics {
	merged := slices.Clone(g)
	for _, p := range other {
		if !merged.Has(p.Name) {
			merged = append(merged, p)
		}
	}
	return merged
}

// Subset returns the parameters whose names are listed, in declared order.
func (g Generics) Subset(names []string) Generics {
	var sub Generics
	for _, p := range g {
		if slices.Contains(names, p.Name) {
			sub = append(sub, p)
		}
	}
	return sub
}
