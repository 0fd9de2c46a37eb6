package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NxPKG/BWPlugins/internal/config"
	"github.com/NxPKG/BWPlugins/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the test variants derived from a configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		configFile, _ := cmd.Flags().GetString("config")
		testType, _ := cmd.Flags().GetString("type")
		format, _ := cmd.Flags().GetString("format")
		noColor, _ := cmd.Flags().GetBool("no-color")

		if configFile == "" {
			fmt.Println("Error: config file is required")
			cmd.Help()
			return
		}

		outputFormat, err := output.ParseFormat(format)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		tests, err := config.ParseTests(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		for i := range tests {
			tests[i].FilterURLs(testType)
		}

		rendered, err := output.FormatTests(tests, outputFormat, noColor || !output.IsTerminal(os.Stdout))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Print(rendered)
	},
}

func init() {
	listCmd.Flags().StringP("config", "c", "", "Path to the config.toml file")
	listCmd.Flags().StringP("type", "t", "", "Keep only the URL entry for this route type")
	listCmd.Flags().StringP("format", "f", "text", "Output format (text, json, yaml)")
	listCmd.Flags().Bool("no-color", false, "Disable colored output")
}
