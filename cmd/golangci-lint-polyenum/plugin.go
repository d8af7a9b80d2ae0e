// golangcilintpolyenum package provides a plugin for golangci-lint to
// integrate the poly-enum analyzer. To build a custom golangci-lint binary
// with this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-polyenum binary that you can use to lint
// base enum declarations. Run it with the polyenum build tag so that files
// declaring base enums are loaded:
//
//	golangci-lint-polyenum run --build-tags polyenum ./...
package golangcilintpolyenum

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/jesmaz/poly-enum/pkg/polyenumanalysis"
)

func init() {
	register.Plugin("polyenum", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return PolyenumLinter{}, nil
}

type PolyenumLinter struct{}

func (PolyenumLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{polyenumanalysis.Analyzer}, nil
}

func (PolyenumLinter) GetLoadMode() string {
	return register.LoadModeSyntax
}
