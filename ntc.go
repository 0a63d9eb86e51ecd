package main

import (
	"fmt"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ketan-sonar/nitro-compiler/compiler"
	"github.com/ketan-sonar/nitro-compiler/constants"
	"github.com/ketan-sonar/nitro-compiler/ntc"
)

var (
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:     constants.Usage,
	Short:   "The Nitro compiler",
	Long:    constants.Description,
	Version: fmt.Sprintf("%s (compiler %s)", constants.NitroVersion, compiler.CompilerVersion),

	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Usage is only useful for argument errors
		cmd.SilenceUsage = true

		return ntc.CompileNitro(args[0], args[1], compiler.Options{
			Verbose: verbose,
			Colors:  colors(),
			Logger:  log.Default(),
		})
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "dump tokens, AST and annotated assembly")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable coloured output")
}

func colors() aurora.Aurora {
	return aurora.NewAurora(!noColor && isatty.IsTerminal(os.Stderr.Fd()))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, colors().Red("ERROR: "+err.Error()))
		os.Exit(1)
	}
}
