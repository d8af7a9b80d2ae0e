//go:build polyenum

package main

import "fmt"

//polyenum:enum
//polyenum:repr uint8
type Value[K comparable, V any] interface {
	//polyenum:sub Scalar
	One(V)
	//polyenum:sub Keyed
	Dict(map[K]V)
	//polyenum:sub Scalar, Keyed
	Null()
}

func main() {
	s := Scalar[int](Scalar_One[int]{7})
	v := ScalarToValue[string](s)
	fmt.Printf("%T %v\n", v, v.Kind())

	k, ok := ValueToKeyed(Value[string, int](Value_Dict[string, int]{map[string]int{"a": 1}}))
	fmt.Println(k, ok)

	// Lateral conversions take the source's type parameters first.
	_, ok = ScalarToKeyed[int, string](s)
	fmt.Println(ok)
	n, ok := ScalarToKeyed[int, string](Scalar[int](Scalar_Null[int]{}))
	fmt.Printf("%T %v\n", n, ok)

	view, ok := ValueAsScalar(Value[string, int](&Value_One[string, int]{9}))
	fmt.Println(view.(*Scalar_One[int]).V0, ok)
}
