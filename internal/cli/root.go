package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "bw",
	Short:   "Benchmark-suite configuration toolset",
	Version: version,
	Long: `bw loads and validates the config.toml files that describe a web
framework, its metadata, and its named test-implementation variants, and
resolves each file's place in the frameworks/<language>/<framework> tree.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(infoCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(verifyCmd)
}
