package parse

import (
	"go/ast"
	"go/constant"
	"go/token"

	"github.com/jesmaz/poly-enum/internal/polyenum/scan"
)

// Mode is the entry point which declared an enum.
type Mode int

const (
	// ModeEnum is declared by //polyenum:enum. It generates kinds, views and
	// layout proofs in addition to declarations and conversions.
	ModeEnum Mode = iota
	// ModeDerive is declared by //polyenum:derive. It generates declarations
	// and conversions only.
	ModeDerive
)

func (m Mode) String() string {
	switch m {
	case ModeEnum:
		return "enum"
	case ModeDerive:
		return "derive"
	}
	return "unknown"
}

// Shape is the shape of a variant's payload.
type Shape int

const (
	ShapeUnit  Shape = iota // Carbon()
	ShapeTuple              // F32(float32)
	ShapeNamed              // F32(v float32)
)

func (s Shape) String() string {
	switch s {
	case ShapeUnit:
		return "unit"
	case ShapeTuple:
		return "tuple"
	case ShapeNamed:
		return "named"
	}
	return "unknown"
}

// FieldClass tells whether a field refers to the enum itself.
type FieldClass int

const (
	FieldPlain FieldClass = iota
	FieldRecursive
)

func (c FieldClass) String() string {
	switch c {
	case FieldPlain:
		return "plain"
	case FieldRecursive:
		return "recursive"
	}
	return "unknown"
}

// Decl is a base enum declaration.
type Decl struct {
	Name      string
	Doc       *ast.CommentGroup // without directives
	Mode      Mode
	Repr      string // empty in ModeDerive
	Generics  Generics
	Variants  []*Variant
	Propagate []string

	File *ast.File
	Spec *ast.TypeSpec
}

func (d *Decl) Pos() token.Pos { return d.Spec.Name.Pos() }
func (d *Decl) End() token.Pos { return d.Spec.Name.End() }

// Variant is a variant of a base enum.
type Variant struct {
	Index        int
	Name         string
	Doc          *ast.CommentGroup // without directives
	Shape        Shape
	Fields       []*Field
	Tags         []*ast.Ident
	Discriminant constant.Value

	Method *ast.Field
}

func (v *Variant) Pos() token.Pos { return v.Method.Names[0].Pos() }
func (v *Variant) End() token.Pos { return v.Method.Names[0].End() }

// Recursive reports whether any field refers to the enum itself.
func (v *Variant) Recursive() bool {
	for _, f := range v.Fields {
		if f.Class == FieldRecursive {
			return true
		}
	}
	return false
}

// HasTag reports whether the variant is included in the sub-enum.
func (v *Variant) HasTag(name string) bool {
	for _, tag := range v.Tags {
		if tag.Name == name {
			return true
		}
	}
	return false
}

// Field is a field of a variant.
type Field struct {
	Name  string
	Type  ast.Expr
	Class FieldClass

	// Shape describes how a recursive field holds the enum. It is nil for
	// plain fields.
	Shape *scan.Shape
}

func (f *Field) Pos() token.Pos { return f.Type.Pos() }
func (f *Field) End() token.Pos { return f.Type.End() }
