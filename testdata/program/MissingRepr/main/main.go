//go:build polyenum

package main

//polyenum:enum
type Element interface {
	Hydrogen()
}

func main() {}
