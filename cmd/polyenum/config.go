package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const configName = "polyenum.toml"

// config is the content of polyenum.toml. Unset keys keep the defaults of the
// flags.
//
//	tags = "integration"
//	tests = true
//	output = "enums_gen.go"
//	color = "never"
type config struct {
	Tags   *string `toml:"tags"`
	Tests  *bool   `toml:"tests"`
	Output *string `toml:"output"`
	Color  *string `toml:"color"`
}

// findConfig looks for polyenum.toml in dir and its parents.
func findConfig(dir string) (string, bool, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfig(path string) (*config, error) {
	var cfg config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		var keys []string
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return &cfg, nil
}

// apply sets the values of the config to the app unless the flags are set
// explicitly.
func (cfg *config) apply(a *app, changed func(flag string) bool) {
	if cfg.Tags != nil && !changed("tags") {
		a.tags = *cfg.Tags
	}
	if cfg.Tests != nil && !changed("tests") {
		a.tests = *cfg.Tests
	}
	if cfg.Output != nil && !changed("output") {
		a.output = *cfg.Output
	}
	if cfg.Color != nil && !changed("color") {
		a.color = *cfg.Color
	}
}
