package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"weld/internal/diag"
	"weld/internal/driver"
	"weld/internal/project"
)

// loadProject reads the manifest next to the current directory (or the
// explicit path) and expands its input patterns into document paths.
func loadProject(manifestPath string) (project.Manifest, []string, error) {
	if manifestPath == "" {
		manifestPath = project.DefaultManifestName
	}
	m, err := project.Load(manifestPath)
	if err != nil {
		return project.Manifest{}, nil, err
	}
	root := filepath.Dir(manifestPath)

	var inputs []string
	for _, pattern := range m.Inputs {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return project.Manifest{}, nil, fmt.Errorf("bad input pattern %q: %w", pattern, err)
		}
		inputs = append(inputs, matches...)
	}
	sort.Strings(inputs)
	if len(inputs) == 0 {
		return project.Manifest{}, nil, fmt.Errorf("%s: no inputs matched", manifestPath)
	}
	return m, inputs, nil
}

// newSession wires a driver session from the manifest and the persistent
// CLI flags.
func newSession(m project.Manifest, bag *diag.Bag) (*driver.Session, error) {
	var cache *driver.DiskCache
	if m.Cache.Enabled {
		var err error
		cache, err = driver.OpenDiskCache("weld")
		if err != nil {
			return nil, err
		}
	}
	return driver.NewSession(driver.Options{
		Globals:  m.Globals,
		Cache:    cache,
		Reporter: diag.BagReporter{Bag: bag},
	}), nil
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil || n <= 0 {
		return 100
	}
	return n
}

// configureColor applies the --color flag before anything renders.
func configureColor(cmd *cobra.Command) {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}

// printDiagnostics renders the bag sorted and deduplicated, and reports
// whether any errors were present.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag) bool {
	quiet, _ := cmd.Flags().GetBool("quiet")
	bag.Sort()
	bag.Dedup()

	errColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow)
	for _, d := range bag.Items() {
		if quiet && d.Severity != diag.SevError {
			continue
		}
		paint := warnColor
		if d.Severity == diag.SevError {
			paint = errColor
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", paint.Sprint(d.Code.ID()), d.Render())
	}
	return bag.HasErrors()
}
