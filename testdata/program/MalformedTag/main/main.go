//go:build polyenum

package main

//polyenum:derive
type Element interface {
	//polyenum:sub Gas Noble
	Helium()
}

func main() {}
