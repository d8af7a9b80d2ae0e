//go:build polyenum

package stray

//polyenum:sub Gas // want `polyenum:sub must be on a variant method`
var x int

//polyenum:derive // want `polyenum:derive must be on an interface type declaration`
func f() {}

var _ = x
var _ = f
