// Package polyenumanalysis provides an analyzer which reports poly-enum
// generation errors as diagnostics.
package polyenumanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/jesmaz/poly-enum/internal/codefmt"
	polyenuminternal "github.com/jesmaz/poly-enum/internal/polyenum"
)

// Analyzer validates the declarations of base enums in the package. Files
// declaring base enums refer to generated code which does not exist under the
// polyenum build tag, so the analyzer runs despite type errors.
var Analyzer = &analysis.Analyzer{
	Name:             "polyenum",
	Doc:              "linter for poly-enum declarations",
	Run:              run,
	RunDespiteErrors: true,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	pe, err := polyenuminternal.New(pkg)
	if err != nil {
		return nil, err
	}

	for _, codeErr := range codefmt.CodeErrors(pe.Build()) {
		pass.Report(analysis.Diagnostic{
			Pos:     codeErr.Pos(),
			End:     codeErr.End(),
			Message: codeErr.Message(),
		})
	}

	return nil, nil
}
