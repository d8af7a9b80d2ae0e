//go:build polyenum

package main

import "fmt"

//polyenum:derive
//polyenum:propagate String
type Expr interface {
	//polyenum:sub Pure
	Lit(int)
	//polyenum:sub Pure
	Neg(Self)
	//polyenum:sub Pure
	Sum(terms []Expr)
	//polyenum:sub Pure
	Env(vars map[string]Self)
	//polyenum:sub Pure
	Box(inner *Self)
	Call(name string)
}

func main() {
	pure := Pure(Pure_Sum{terms: []Pure{Pure_Lit{1}, Pure_Neg{Pure_Lit{2}}}})
	e := PureToExpr(pure)
	fmt.Println(e)
	fmt.Printf("%T\n", e.(Expr_Sum).terms[1])

	back, ok := ExprToPure(e)
	fmt.Println(back, ok)

	// A nested variant outside the sub-enum fails the whole conversion.
	_, ok = ExprToPure(Expr_Sum{terms: []Expr{Expr_Lit{1}, Expr_Call{name: "f"}}})
	fmt.Println(ok)
	_, ok = ExprToPure(Expr_Env{vars: map[string]Expr{"x": Expr_Call{name: "g"}}})
	fmt.Println(ok)

	env, ok := ExprToPure(Expr_Env{vars: map[string]Expr{"x": Expr_Lit{3}}})
	fmt.Println(env, ok)

	// Pointers are converted into fresh allocations.
	inner := Expr(Expr_Lit{5})
	box, _ := ExprToPure(Expr_Box{inner: &inner})
	inner = Expr_Lit{6}
	fmt.Println(*box.(Pure_Box).inner)

	box, ok = ExprToPure(Expr_Box{})
	fmt.Println(box.(Pure_Box).inner == nil, ok)
}
