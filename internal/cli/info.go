package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NxPKG/BWPlugins/internal/config"
	"github.com/NxPKG/BWPlugins/internal/output"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the project a configuration file belongs to",
	Long: `Info loads a config.toml file and reports the full project derived from
it: framework metadata, project name, the language resolved from the
file's ancestor directories, and every test variant.`,
	Run: func(cmd *cobra.Command, args []string) {
		configFile, _ := cmd.Flags().GetString("config")
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

		project, err := config.LoadProject(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		rendered, err := output.FormatProject(project, outputFormat, noColor || !output.IsTerminal(os.Stdout))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Print(rendered)

		if outputFormat == output.FormatText {
			if path, err := project.Path(); err == nil {
				fmt.Printf("Path:     %s\n", path)
			}
		}
	},
}

func init() {
	infoCmd.Flags().StringP("config", "c", "", "Path to the config.toml file")
	infoCmd.Flags().StringP("format", "f", "text", "Output format (text, json, yaml)")
	infoCmd.Flags().Bool("no-color", false, "Disable colored output")
}
