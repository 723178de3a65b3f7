package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"firestige.xyz/cigiscope/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `
Load a configuration file and check it for errors without starting
any capture.

Examples:
  cigiscope validate -c /etc/cigiscope/config.yml
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configFile == "" {
			return fmt.Errorf("a config file is required (use -c)")
		}
		if _, err := config.Load(configFile); err != nil {
			return err
		}
		fmt.Printf("Configuration OK: %s\n", configFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
