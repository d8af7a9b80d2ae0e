//go:build polyenum

package main

//polyenum:enum
//polyenum:repr uint8
type Element interface {
	Hydrogen()
	Helium()
	//polyenum:discriminant 0
	Lithium()
}

func main() {}
