//go:build polyenum

package variants

import "io"

//polyenum:enum
//polyenum:repr uint8
type Embeds interface {
	io.Reader // want `cannot embed io.Reader in enum Embeds, declare variants as methods`
}

//polyenum:enum
//polyenum:repr uint8
type Fields interface {
	A(Kind int)  // want `field Kind of A collides with the generated method Kind`
	B() int      // want `variant B cannot have results`
	C(...string) // want `variant C cannot have variadic fields`
}

//polyenum:derive
type Recursive interface {
	A(func(Self))        // want `cannot convert func\(Self\) recursively, hold Recursive directly or by pointer, slice or map value`
	B(map[Recursive]int) // want `cannot convert Recursive recursively, hold Recursive directly or by pointer, slice or map value`
}

//polyenum:derive
type Empty interface{} // want `enum Empty has no variants`
