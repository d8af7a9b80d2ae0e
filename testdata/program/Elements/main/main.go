//go:build polyenum

package main

import "fmt"

// Element is a chemical element.
//
//polyenum:enum
//polyenum:repr uint32
type Element interface {
	//polyenum:sub Gas
	Hydrogen()
	//polyenum:sub Gas, Noble
	Helium()
	//polyenum:sub Metal
	Iron()
	Carbon()
}

func main() {
	elements := []Element{Element_Hydrogen{}, Element_Helium{}, Element_Iron{}, Element_Carbon{}}
	for _, e := range elements {
		gas, isGas := ElementToGas(e)
		_, isMetal := ElementToMetal(e)
		fmt.Println(e.Kind(), uint32(e.Kind()), isGas, isMetal, gas != nil)
	}

	// Upward conversions always succeed and keep the variant.
	fmt.Println(GasToElement(Gas_Helium{}) == Element(Element_Helium{}))

	// Lateral conversions succeed only for shared variants.
	noble, ok := GasToNoble(Gas_Helium{})
	fmt.Println(noble.Kind(), ok)
	_, ok = GasToNoble(Gas_Hydrogen{})
	fmt.Println(ok)

	// nil is absent, not a failure.
	gas, ok := ElementToGas(nil)
	fmt.Println(gas == nil, ok)

	// Unknown discriminants are still printable.
	fmt.Println(ElementKind(42))
}
