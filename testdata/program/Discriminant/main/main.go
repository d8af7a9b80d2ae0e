//go:build polyenum

package main

import "fmt"

//polyenum:enum
//polyenum:repr int8
type Signal interface {
	//polyenum:sub Low
	//polyenum:discriminant -2
	Weak()
	//polyenum:sub Low
	Faint()
	//polyenum:discriminant 100
	Strong()
	//polyenum:sub Low
	Lost()
}

func main() {
	for _, k := range []SignalKind{SignalKindWeak, SignalKindFaint, SignalKindStrong, SignalKindLost} {
		fmt.Println(k, int8(k))
	}
	fmt.Println(LowKindLost, int8(LowKindLost), SignalKind(7))

	// Sub-enums keep the discriminants of the base enum.
	l, _ := SignalToLow(Signal_Faint{})
	fmt.Println(int8(l.Kind()) == int8(Signal_Faint{}.Kind()))
}
