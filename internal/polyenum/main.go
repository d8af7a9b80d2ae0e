package polyenuminternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"github.com/jesmaz/poly-enum/internal/polyenum/parse"
)

var Version string

// Main is the main entry point for poly-enum. It is used by the command-line
// tool directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx can
// cancel the operation. wd is the path of the working directory. env is the
// environment variables to use when running the tool. tags is the build tags to
// use when loading packages. tests indicates whether to include test files.
// outFile is the name of the output file to generate in each package. And
// patterns are the package patterns to process.
//
// It returns a map of output file paths to their contents. If any error occurs,
// it returns a non-nil error.
func Main(ctx context.Context, wd string, env []string, tags string, tests bool, outFile string, patterns []string) (map[string][]byte, error) {
	pkgs, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}

	type result struct {
		out  string
		code []byte
		err  error
	}
	results := make([]result, len(pkgs))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, pkg := range pkgs {
		g.Go(func() error {
			code, err := generate(pkg)
			if err != nil {
				results[i].err = err
				return nil
			}
			if len(code) == 0 {
				return nil
			}

			outDir := filepath.Dir(pkg.GoFiles[0])
			if rel, err := filepath.Rel(wd, outDir); err == nil {
				outDir = rel
			}
			results[i].out = filepath.Join(outDir, outFile)
			results[i].code = code
			return nil
		})
	}
	_ = g.Wait()

	outs := make(map[string][]byte)
	var errs error
	for _, r := range results {
		if r.err != nil {
			errs = errors.Join(errs, r.err)
			continue
		}
		if r.code != nil {
			outs[r.out] = r.code
		}
	}
	if errs != nil {
		// errs already contains comprehensive error messages. So we don't need
		// to attach another error message.
		return nil, reorderErrors(errs)
	}

	return outs, nil
}

// generate generates the code of a package.
func generate(pkg *packages.Package) ([]byte, error) {
	if len(pkg.Errors) != 0 {
		return nil, fmt.Errorf("pkg %q has errors", pkg.Name)
	}
	if len(pkg.GoFiles) == 0 {
		return nil, nil
	}

	pe, err := New(pkg)
	if err != nil {
		return nil, err
	}
	if err := pe.Build(); err != nil {
		return nil, err
	}
	return pe.Generate(), nil
}

// load loads packages. Types are not loaded because base enums only exist in
// files which generated code replaces, so the package does not type-check
// before generation.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:       packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=" + parse.BuildTag},
		Tests:      tests,
	}
	if tags != "" {
		cfg.BuildFlags[0] += "," + tags
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	// Check for errors in the loaded packages.
	var errs error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			if err.Pos == "" {
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}

			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if rel, relErr := filepath.Rel(wd, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}

	// Test variants duplicate the files of their packages.
	if tests {
		pkgs = dedupTestVariants(pkgs)
	}

	return pkgs, nil
}

// dedupTestVariants keeps only the widest variant of each package. With tests,
// a package "p" is loaded as "p", "p [p.test]" and "p.test". The test variant
// contains all files of the plain one.
func dedupTestVariants(pkgs []*packages.Package) []*packages.Package {
	byPath := make(map[string]*packages.Package)
	var order []string
	for _, pkg := range pkgs {
		if strings.HasSuffix(pkg.PkgPath, ".test") {
			// Generated test main
			continue
		}
		prev, ok := byPath[pkg.PkgPath]
		if !ok {
			order = append(order, pkg.PkgPath)
		}
		if !ok || len(pkg.Syntax) > len(prev.Syntax) {
			byPath[pkg.PkgPath] = pkg
		}
	}

	out := make([]*packages.Package, 0, len(order))
	for _, path := range order {
		out = append(out, byPath[path])
	}
	return out
}

func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	// Flatten nested errors
	list := []error{errs}
	for i := 0; i < len(list); i++ {
		if u, ok := list[i].(interface{ Unwrap() []error }); ok {
			// errors.Join collapses errors with a single error having Unwrap()
			// []error method. The underlying errors could be retrieved using
			// the Unwrap() method.
			list = append(list, u.Unwrap()...)

			// The underlying errors are appended to the list. So the original
			// error can be removed.
			list[i] = nil
			continue
		}
	}
	list = slices.DeleteFunc(list, func(err error) bool {
		return err == nil
	})

	// Sort errors by message
	sort.Slice(list, func(i, j int) bool {
		return list[i].Error() < list[j].Error()
	})
	return errors.Join(list...)
}
