package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "wye",
	Short: "Wye language front-end",
	Long: `wye is the front-end for the Wye language: a lexer, parser, and
Hindley-Milner type checker.

Wye is a small functional language with algebraic datatypes, structural and
nominal records, and interfaces modeled as structural bounds. This tool
lexes, parses, and type-checks Wye programs; it does not evaluate or
compile them.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
