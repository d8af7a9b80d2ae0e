//go:build polyenum

package main

import "fmt"

//polyenum:enum
//polyenum:repr int16
type Number interface {
	//polyenum:sub Float, Half
	F16(uint16)
	//polyenum:sub Float
	F32(float32)
	//polyenum:sub Float
	F64(float64)
	//polyenum:sub Int
	I32(int32)
	//polyenum:sub Half
	Pair(uint8, uint8)
}

func main() {
	// A shared view of a variant held by value copies it.
	n := Number(Number_F32{1.5})
	f, ok := NumberAsFloat(n)
	fmt.Println(f, ok)

	// A shared view of a variant held by pointer shares it.
	p := &Number_F16{V0: 7}
	h, ok := NumberAsHalf(p)
	h.(*Half_F16).V0 = 8
	fmt.Println(p.V0, ok)

	// An aliasing view never changes the viewed value. A variant held by
	// value is viewed through a copy.
	var slot Number = Number_Pair{1, 2}
	before := slot
	h, ok = NumberAsHalfMut(&slot)
	h.(*Half_Pair).V1 = 9
	fmt.Println(h, ok, slot == before)
	fmt.Printf("%T\n", slot)

	// A variant held by pointer is shared.
	slot = &Number_Pair{1, 2}
	before = slot
	h, _ = NumberAsHalfMut(&slot)
	h.(*Half_Pair).V1 = 9
	fmt.Println(*slot.(*Number_Pair), slot == before)

	// Variants outside the sub-enum are not viewable.
	_, ok = NumberAsHalf(Number_I32{3})
	fmt.Println(ok)

	// Conversions copy fields.
	i, _ := NumberToInt(Number_I32{-4})
	fmt.Println(i.(Int_I32).V0, IntToNumber(i))
	fmt.Println(HalfKindPair, int16(HalfKindPair), FloatKindF64)
}
