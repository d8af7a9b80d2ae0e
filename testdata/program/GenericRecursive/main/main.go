//go:build polyenum

package main

import "fmt"

//polyenum:enum
//polyenum:repr uint8
//polyenum:propagate String
type Tree[T any] interface {
	//polyenum:sub Leafy, Branchy
	Node(left, right *Self)
	//polyenum:sub Leafy, Branchy
	Leaf(T)
	//polyenum:sub Branchy
	Many(kids []Self)
	Other()
}

func ptr[T any](v T) *T { return &v }

func main() {
	leaf := Tree[int](Tree_Leaf[int]{1})
	node := Tree[int](Tree_Node[int]{left: ptr(leaf)})

	// Nested values are converted with their parent.
	l, ok := TreeToLeafy(node)
	fmt.Println(*l.(Leafy_Node[int]).left, l.(Leafy_Node[int]).right == nil, ok)

	// A nested value outside the sub-enum fails the whole conversion.
	bad := Tree[int](Tree_Node[int]{left: ptr(Tree[int](Tree_Many[int]{}))})
	_, ok = TreeToLeafy(bad)
	fmt.Println(ok)

	// So does a lateral conversion.
	b, ok := TreeToBranchy(bad)
	fmt.Println(ok)
	_, ok = BranchyToLeafy(b)
	fmt.Println(ok)

	b, ok = TreeToBranchy(Tree[int](Tree_Many[int]{kids: []Tree[int]{leaf, Tree_Leaf[int]{2}}}))
	fmt.Println(b, ok)
	_, ok = TreeToBranchy(Tree[int](Tree_Many[int]{kids: []Tree[int]{leaf, Tree_Other[int]{}}}))
	fmt.Println(ok)

	// Upward conversions rebuild nested values.
	up := LeafyToTree(l)
	fmt.Println(*up.(Tree_Node[int]).left == leaf)

	// Recursive variants are not viewable.
	_, ok = TreeAsLeafy(node)
	fmt.Println(ok)
	v, ok := TreeAsLeafy(leaf)
	fmt.Println(v, ok)

	fmt.Println(LeafyKindNode, uint8(LeafyKindNode), BranchyKindMany, uint8(BranchyKindMany))
}
