package polyenum_test

import (
	"bytes"
	"errors"
	"fmt"
	"go/build"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"

	polyenuminternal "github.com/jesmaz/poly-enum/internal/polyenum"
	"github.com/jesmaz/poly-enum/pkg/polyenumanalysis"
)

// TestAnalysis tests parsing and building errors using the Go analysis
// protocol. "// want `REGEXP`" comments in the fixture source files are used to
// check for expected diagnostics.
//
//	testdata/
//	└── analysis/
//	    ├── pkg1/
//	    │   └── *.go // with want comments
//	    └── pkg2/
//	        └── *.go // with want comments
func TestAnalysis(t *testing.T) {
	ents, err := os.ReadDir(filepath.FromSlash("testdata/analysis"))
	require.NoError(t, err)

	t.Setenv("GOFLAGS", "-tags=polyenum")

	for _, ent := range ents {
		if !ent.IsDir() {
			continue
		}

		t.Run(ent.Name(), func(t *testing.T) {
			t.Parallel()

			defer func() {
				if t.Failed() {
					t.Logf("\n\tReproduce:\tgo run ./cmd/polyenum ./testdata/analysis/%s", ent.Name())
				}
			}()

			analysistest.Run(t, "", polyenumanalysis.Analyzer, "./testdata/analysis/"+ent.Name())
		})
	}
}

// TestPrograms generates code for the programs in the testdata directory and
// runs them.
//
//	testdata/
//	└── program/
//	    ├── program1/
//	    │   ├── main_pkg.txt --- "main" if not present
//	    │   ├── main/
//	    │   │   └── main.go
//	    │   └── want/
//	    │       └── program_output.txt
//	    └── program2/
//	        ├── main/
//	        │   └── main.go
//	        └── want/
//	            └── polyenum_error.txt
func TestPrograms(t *testing.T) {
	ents, err := os.ReadDir(filepath.FromSlash("testdata/program"))
	require.NoError(t, err)

	runtimeGo, err := os.ReadFile("polyenum.go")
	require.NoError(t, err)

	var tests []*programTest
	for _, ent := range ents {
		name := ent.Name()
		if !ent.IsDir() || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}

		test, err := newProgramTest(name, runtimeGo)
		if err != nil {
			t.Error(err)
			continue
		}
		tests = append(tests, test)
	}

	for _, test := range tests {
		t.Run(test.Name(), test.Test())
	}
}

// programTest generates code for a program and runs the program with the
// generated code to check its output.
type programTest struct {
	name    string
	mainPkg string
	files   map[string][]byte
	want    struct {
		ProgramOutput string
		PolyenumError string
	}
}

func (test *programTest) Name() string {
	return test.name
}

func (test *programTest) PkgPath() string {
	return fmt.Sprintf("example.com/%s", test.name)
}

func (test *programTest) ProgramPath() string {
	return fmt.Sprintf("%s/%s", test.PkgPath(), test.mainPkg)
}

func newProgramTest(name string, runtimeGo []byte) (*programTest, error) {
	root := filepath.Join(filepath.FromSlash("testdata/program"), name)
	test := programTest{
		name:  name,
		files: make(map[string][]byte),
	}

	mainPkg, err := os.ReadFile(filepath.Join(root, "main_pkg.txt"))
	if errors.Is(err, os.ErrNotExist) {
		mainPkg = []byte("main")
	} else if err != nil {
		return nil, fmt.Errorf("load test case %s: %v", name, err)
	}
	test.mainPkg = string(bytes.TrimSpace(mainPkg))

	programOutput, _ := os.ReadFile(filepath.Join(root, "want", "program_output.txt"))
	polyenumError, _ := os.ReadFile(filepath.Join(root, "want", "polyenum_error.txt"))
	test.want.ProgramOutput = string(bytes.TrimSpace(programOutput))
	test.want.PolyenumError = string(bytes.TrimSpace(polyenumError))

	if test.want.ProgramOutput == "" && test.want.PolyenumError == "" {
		return nil, fmt.Errorf("load test case %s: does not want anything", name)
	}

	if err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() || filepath.Ext(path) != ".go" {
			return nil
		}
		if d.Name() == "polyenum_gen.go" {
			// Left behind by a manual run.
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		goCode, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		test.files[test.PkgPath()+"/"+filepath.ToSlash(rel)] = goCode
		return nil
	}); err != nil {
		return nil, fmt.Errorf("load test case %s: %v", name, err)
	}

	test.files["github.com/jesmaz/poly-enum/polyenum.go"] = runtimeGo
	return &test, nil
}

// materialize copies the program code and the runtime package into the given
// GOPATH.
func (test *programTest) materialize(gopath string) error {
	for name, content := range test.files {
		dst := filepath.Join(gopath, "src", filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(dst), 0o777); err != nil {
			return fmt.Errorf("mkdir %s: %w", name, err)
		}
		if err := os.WriteFile(dst, content, 0o666); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	runtimeDir := filepath.Join(gopath, filepath.FromSlash("src/github.com/jesmaz/poly-enum"))
	runtimeGomod := `
	module github.com/jesmaz/poly-enum
	go 1.25.0`
	if err := os.WriteFile(filepath.Join(runtimeDir, "go.mod"), []byte(runtimeGomod), 0o666); err != nil {
		return fmt.Errorf("write github.com/jesmaz/poly-enum/go.mod: %w", err)
	}

	testGomodPath := filepath.Join(gopath, "src", filepath.FromSlash(test.PkgPath()), "go.mod")
	testGomod := fmt.Sprintf(`
	module %s
	go 1.25.0
	require github.com/jesmaz/poly-enum v0.0.0
	replace github.com/jesmaz/poly-enum => %s
	`, test.PkgPath(), runtimeDir)
	if err := os.WriteFile(testGomodPath, []byte(testGomod), 0o666); err != nil {
		return fmt.Errorf("write %s/go.mod: %w", test.PkgPath(), err)
	}

	return nil
}

// Test returns a test function which generates code for the program and then
// checks the error or the output of the program.
func (test *programTest) Test() func(*testing.T) {
	return func(t *testing.T) {
		t.Parallel()

		defer func() {
			if t.Failed() {
				t.Logf("\n\tReproduce:\tgo run ./cmd/polyenum ./testdata/program/%s/%s", test.Name(), test.mainPkg)
			}
		}()

		gopath := filepath.Join(os.TempDir(), "polyenum_test_"+test.Name())
		require.NoError(t, os.RemoveAll(gopath))
		require.NoError(t, test.materialize(gopath), "Materialization failed")

		wd := filepath.Join(gopath, "src", filepath.FromSlash(test.PkgPath()))
		env := append(os.Environ(), "GOPATH="+gopath)
		generated, genErr := polyenuminternal.Main(t.Context(), wd, env, "", false, "polyenum_gen.go", []string{"pattern=./" + test.mainPkg})

		if genErr != nil {
			genErr = errors.New(relPathInString(genErr.Error(), wd))
			if test.want.PolyenumError != "" {
				want := normalizeWhitespace(test.want.PolyenumError)
				have := normalizeWhitespace(genErr.Error())
				assert.Equal(t, want, have)
			} else {
				require.NoError(t, genErr, "polyenum exited with errors unexpectedly")
			}
			return
		}

		if test.want.PolyenumError != "" {
			require.Error(t, genErr, "polyenum should have exited with an error")
		}

		for name, content := range generated {
			err := os.WriteFile(filepath.Join(wd, name), content, 0o666)
			require.NoError(t, err, "Failed to write a generated file")
		}

		goCmd := filepath.Join(build.Default.GOROOT, "bin", "go")
		cmd := exec.Command(goCmd, "run", test.ProgramPath())
		cmd.Dir = wd
		cmd.Env = env
		progOut, err := cmd.CombinedOutput()
		require.NoError(t, err, string(progOut))

		if test.want.ProgramOutput != "" {
			assert.Equal(t, test.want.ProgramOutput, strings.TrimSpace(string(progOut)))
		}
	}
}

// relPathInString replaces the paths in s with their paths relative to wd.
func relPathInString(s, wd string) string {
	realWD, err := os.Getwd()
	if err != nil {
		return s
	}

	rel, err := filepath.Rel(realWD, wd)
	if err != nil {
		return s
	}

	s = strings.ReplaceAll(s, rel+"/", "")
	s = strings.ReplaceAll(s, rel, "")
	return s
}

// normalizeWhitespace normalizes whitespace for a comparison regardless of
// the whitespace style.
func normalizeWhitespace(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\t", "    ")
	return s
}
