package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"weld/internal/diag"
	"weld/internal/ui"
)

var exploreManifest string

func init() {
	exploreCmd.Flags().StringVarP(&exploreManifest, "manifest", "m", "", "path to weld.toml (default: current directory)")
}

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Link the project and browse the environment interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal(os.Stdout) {
			return fmt.Errorf("explore needs a terminal; use 'weld resolve' in scripts")
		}
		configureColor(cmd)
		m, inputs, err := loadProject(exploreManifest)
		if err != nil {
			return err
		}

		bag := diag.NewBag(maxDiagnostics(cmd))
		s, err := newSession(m, bag)
		if err != nil {
			return err
		}
		env, err := s.Link(cmd.Context(), inputs)
		if err != nil {
			printDiagnostics(cmd, bag)
			return err
		}

		p := tea.NewProgram(ui.NewExploreModel(env))
		_, err = p.Run()
		return err
	},
}
