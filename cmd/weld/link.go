package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"weld/internal/diag"
	"weld/internal/observ"
)

var (
	linkManifest string
	linkNoCheck  bool
)

func init() {
	linkCmd.Flags().StringVarP(&linkManifest, "manifest", "m", "", "path to weld.toml (default: current directory)")
	linkCmd.Flags().BoolVar(&linkNoCheck, "no-check", false, "skip post-link validation")
}

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link the project's tree documents into one environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		configureColor(cmd)
		m, inputs, err := loadProject(linkManifest)
		if err != nil {
			return err
		}

		bag := diag.NewBag(maxDiagnostics(cmd))
		s, err := newSession(m, bag)
		if err != nil {
			return err
		}

		timer := observ.NewTimer()
		phase := timer.Begin("link")
		env, err := s.Link(cmd.Context(), inputs)
		if err != nil {
			printDiagnostics(cmd, bag)
			return err
		}
		timer.End(phase, fmt.Sprintf("%d files", len(inputs)))
		if !linkNoCheck {
			phase = timer.Begin("validate")
			problems := s.Validate()
			timer.End(phase, fmt.Sprintf("%d problems", len(problems)))
		}

		hadErrors := printDiagnostics(cmd, bag)
		quiet, _ := cmd.Flags().GetBool("quiet")
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "linked %d files, %d nodes, %d scopes\n",
				len(inputs), env.Tree.Len(), env.Scopes.Len())
		}
		if timings, _ := cmd.Flags().GetBool("timings"); timings {
			fmt.Fprint(cmd.OutOrStdout(), timer.Summary())
		}
		if hadErrors {
			return fmt.Errorf("linking finished with errors")
		}
		return nil
	},
}
