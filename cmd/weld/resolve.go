package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"weld/internal/diag"
)

var resolveManifest string

func init() {
	resolveCmd.Flags().StringVarP(&resolveManifest, "manifest", "m", "", "path to weld.toml (default: current directory)")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <qualified-name>...",
	Short: "Link the project and resolve qualified names against it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configureColor(cmd)
		m, inputs, err := loadProject(resolveManifest)
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

		missing := 0
		for _, name := range args {
			id, ok := env.Resolve(name)
			if !ok {
				missing++
				fmt.Fprintf(cmd.OutOrStdout(), "%s: not found\n", name)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %s\n",
				name, env.Tree.Get(id).Kind, env.FullName(id))
		}
		printDiagnostics(cmd, bag)
		if missing > 0 {
			return fmt.Errorf("%d of %d names not found", missing, len(args))
		}
		return nil
	},
}
