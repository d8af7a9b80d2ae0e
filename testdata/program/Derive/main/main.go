//go:build polyenum

package main

import "fmt"

// Shape is a plane figure.
//
//polyenum:derive
//polyenum:propagate String, Match
type Shape interface {
	//polyenum:sub Round
	Circle(radius float64)
	//polyenum:sub Round, Polygon
	Dot()
	//polyenum:sub Polygon
	Rect(width, height float64)
	Label(text string)
}

func area(s Shape) float64 {
	return MatchShape(s,
		func(c Shape_Circle) float64 { return 3 * c.radius * c.radius },
		func(Shape_Dot) float64 { return 0 },
		func(r Shape_Rect) float64 { return r.width * r.height },
		func(Shape_Label) float64 { return -1 },
	)
}

func main() {
	shapes := []Shape{Shape_Circle{radius: 2}, Shape_Dot{}, &Shape_Rect{width: 2, height: 3}, Shape_Label{text: "hi"}}
	for _, s := range shapes {
		fmt.Println(s, area(s))
	}

	r, ok := ShapeToRound(Shape_Circle{radius: 1})
	fmt.Println(r, ok)
	sides := MatchRound(r,
		func(Round_Circle) int { return 0 },
		func(Round_Dot) int { return 1 },
	)
	fmt.Println(sides)

	p, ok := RoundToPolygon(Round_Dot{})
	fmt.Println(p, ok)
	onDot := func(Polygon_Dot) string { return "dot" }
	onRect := func(Polygon_Rect) string { return "rect" }
	fmt.Println(MatchPolygon(p, onDot, onRect))
	fmt.Println(MatchPolygon(nil, onDot, onRect) == "")
}
