package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"weld/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new weld project",
	Long: `Initialize a new weld project by creating a project manifest (weld.toml)
pointing at the tree documents a front-end will emit. If [path|name] is
omitted, initializes the current directory. If a non-existing name is
provided, a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "weld-project"
	}

	manifestPath := filepath.Join(target, project.DefaultManifestName)
	if err := project.Write(manifestPath, project.Manifest{
		Package: project.PackageSection{Name: name},
		Globals: project.DefaultGlobals,
		Inputs:  []string{"trees/*.tree.json", "trees/*.tree.yaml"},
		Cache:   project.CacheSection{Enabled: true},
	}); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(target, "trees"), 0o755); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", manifestPath)
	fmt.Fprintf(cmd.OutOrStdout(), "drop your front-end's *.tree.json or *.tree.yaml files into %s\n",
		filepath.Join(target, "trees"))
	return nil
}
