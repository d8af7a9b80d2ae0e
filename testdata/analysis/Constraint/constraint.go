package constraint

//polyenum:derive // want `file must have "//go:build polyenum" constraint when using polyenum directives`
type Element interface {
	Hydrogen()
}
