package codefmt

import (
	"go/ast"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"
)

// FileImports returns the imported packages of the file by their local names.
// Blank and dot imports are not included.
func FileImports(pkg *packages.Package, file *ast.File) map[string]string {
	imports := make(map[string]string)
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}

		name := PackageName(pkg, path)
		if imp.Name != nil {
			name = imp.Name.Name
		}
		if name == "_" || name == "." {
			continue
		}
		imports[name] = path
	}
	return imports
}

var reMajorVersion = regexp.MustCompile(`^v[0-9]+$`)

// PackageName returns the declared name of the imported package. If the
// package was not loaded with its name, the name is guessed from the import
// path the way goimports does:
//
//	"github.com/goccy/go-yaml"      => "yaml"
//	"github.com/vmihailenco/msgpack/v5" => "msgpack"
//	"gopkg.in/yaml.v3"              => "yaml"
func PackageName(pkg *packages.Package, path string) string {
	if pkg != nil {
		if imp, ok := pkg.Imports[path]; ok && imp.Name != "" {
			return imp.Name
		}
	}

	elems := strings.Split(path, "/")
	name := elems[len(elems)-1]
	if len(elems) > 1 && reMajorVersion.MatchString(name) {
		name = elems[len(elems)-2]
	}
	if i := strings.Index(name, "."); i > 0 {
		name = name[:i]
	}
	name = strings.TrimPrefix(name, "go-")
	name = strings.TrimSuffix(name, "-go")
	return strings.Map(func(r rune) rune {
		if r == '-' {
			return -1
		}
		return r
	}, name)
}
