// Package project reads and writes weld.toml, the manifest describing one
// linkable program: its tree-document inputs and the ordered list of
// global library packages injected into the root scope.
package project

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultManifestName is the file looked up when no manifest path is given.
const DefaultManifestName = "weld.toml"

// DefaultGlobals is the ordered global-library list applied when the
// manifest does not override it. Order matters: it is the injection order
// at the root scope.
var DefaultGlobals = []string{"std.lang", "std.lib"}

// ErrPackageNameMissing indicates that [package].name is absent.
var ErrPackageNameMissing = errors.New("missing [package].name")

// Manifest is the decoded weld.toml.
type Manifest struct {
	Package PackageSection `toml:"package"`
	Globals []string       `toml:"globals"`
	Inputs  []string       `toml:"inputs"`
	Cache   CacheSection   `toml:"cache"`
}

type PackageSection struct {
	Name string `toml:"name"`
}

type CacheSection struct {
	Enabled bool `toml:"enabled"`
}

// Load parses a manifest file. An absent globals key falls back to
// DefaultGlobals; an absent cache section leaves caching off.
func Load(path string) (Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if m.Package.Name == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	if !meta.IsDefined("globals") {
		m.Globals = append([]string(nil), DefaultGlobals...)
	}
	return m, nil
}

// Write serializes the manifest to path, refusing to clobber an existing
// file.
func Write(path string, m Manifest) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return toml.NewEncoder(f).Encode(m)
}
