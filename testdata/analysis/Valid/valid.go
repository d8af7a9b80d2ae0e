//go:build polyenum

package valid

// Element is a chemical element.
//
//polyenum:enum
//polyenum:repr uint8
//polyenum:propagate String
type Element interface {
	//polyenum:sub Gas
	Hydrogen()
	//polyenum:sub Gas, Noble
	Helium()
	//polyenum:sub Metal
	//polyenum:discriminant 26
	Iron(mass float64)
	Carbon()
}

// Describe describes the element.
func Describe(e Element) string {
	return "element"
}
