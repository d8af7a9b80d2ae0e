//go:build polyenum

package main

//polyenum:derive
type Element interface {
	Hydrogen()
	//polyenum:subs Gas
	Helium()
}

func main() {}
