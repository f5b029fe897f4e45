package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"weld/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "weld",
	Short: "Weld links parsed tree documents into one resolvable environment",
	Long:  `Weld merges the per-file output of a language front-end into a single linked environment and resolves names against it`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
