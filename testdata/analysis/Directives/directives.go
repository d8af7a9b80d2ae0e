//go:build polyenum

package directives

//polyenum:enum // want `a repr is required, e.g. //polyenum:repr uint32`
type MissingRepr interface {
	A()
}

//polyenum:derive
//polyenum:repr uint8 // want `polyenum:repr cannot be used with polyenum:derive`
type DeriveRepr interface {
	A()
}

//polyenum:enum
//polyenum:repr uint33 // want `invalid repr "uint33", did you mean "uint32"\?`
type BadRepr interface {
	A()
}

//polyenum:derive
type Typo interface {
	A()
	//polyenum:subs Half // want `unknown directive polyenum:subs, did you mean "sub"\?`
	B()
}

//polyenum:derive
//polyenum:propagate Strng // want `unknown behavior Strng to propagate, did you mean "String"\?`
type Behavior interface {
	A()
}

//polyenum:enum
//polyenum:repr int8
type Overflow interface {
	//polyenum:discriminant 127
	A()
	B() // want `discriminant 128 of B overflows int8`
}
