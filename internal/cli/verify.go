package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NxPKG/BWPlugins/internal/config"
	"github.com/NxPKG/BWPlugins/internal/output"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Validate a configuration file and report every problem found",
	Long: `Verify lints a config.toml file against the expected document shape,
then runs the full parse. Schema violations are reported all at once;
the command exits non-zero if the file would be rejected by the loader.`,
	Run: func(cmd *cobra.Command, args []string) {
		configFile, _ := cmd.Flags().GetString("config")
		noColor, _ := cmd.Flags().GetBool("no-color")

		if configFile == "" {
			fmt.Println("Error: config file is required")
			cmd.Help()
			return
		}

		noColor = noColor || !output.IsTerminal(os.Stdout)

		if err := config.VerifyFile(configFile); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", output.ErrorIcon(noColor), err)
			os.Exit(1)
		}

		fw, err := config.ParseFramework(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", output.ErrorIcon(noColor), err)
			os.Exit(1)
		}
		tests, err := config.ParseTests(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", output.ErrorIcon(noColor), err)
			os.Exit(1)
		}

		fmt.Printf("%s %s: framework %q, %d test variant(s)\n",
			output.SuccessIcon(noColor), configFile, fw.Name, len(tests))
	},
}

func init() {
	verifyCmd.Flags().StringP("config", "c", "", "Path to the config.toml file")
	verifyCmd.Flags().Bool("no-color", false, "Disable colored output")
}
