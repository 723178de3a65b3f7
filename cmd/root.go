// Package cmd implements CLI commands using cobra framework.
package cmd

import (
	"github.com/spf13/cobra"

	"firestige.xyz/cigiscope/internal/config"
)

var configFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cigiscope",
	Short: "Cigiscope - CIGI protocol dissector for simulation links",
	Long: `Cigiscope dissects Common Image Generator Interface (CIGI) traffic
between a simulation host and an image generator. It reads UDP frames
from pcap files or live interfaces, detects the CIGI version (2, 3 or
4) and byte order per session, and renders each message as a decoded
field tree or NDJSON.

Examples:
  cigiscope dissect -r session.pcap           # Dissect a capture file
  cigiscope live -i eth0 --port 8004          # Dissect live traffic
  cigiscope validate -c config.yml            # Check a config file`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"config file path")
}

// loadConfig loads the configured file or, when none is given, the
// built-in defaults. Flag overrides are applied afterwards.
func loadConfig() (*config.GlobalConfig, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	return config.Default(), nil
}

// addProtocolFlags registers the dissection override flags shared by
// the dissect and live commands.
func addProtocolFlags(cmd *cobra.Command) {
	cmd.Flags().String("cigi-version", "", "pin the CIGI version: auto, 2, 3 or 4")
	cmd.Flags().String("byte-order", "", "pin the byte order: auto, big or little")
	cmd.Flags().Int("port", 0, "restrict dissection to this UDP port (0 = any)")
	cmd.Flags().String("host-address", "", "host endpoint address for summary labels")
	cmd.Flags().String("ig-address", "", "IG endpoint address for summary labels")
	cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	cmd.Flags().String("format", "", "output format: tree or ndjson")
}

// applyProtocolFlags copies set override flags onto the config.
func applyProtocolFlags(cmd *cobra.Command, cfg *config.GlobalConfig) {
	f := cmd.Flags()
	if f.Changed("cigi-version") {
		cfg.Protocol.Version, _ = f.GetString("cigi-version")
	}
	if f.Changed("byte-order") {
		cfg.Protocol.ByteOrder, _ = f.GetString("byte-order")
	}
	if f.Changed("port") {
		cfg.Protocol.Port, _ = f.GetInt("port")
	}
	if f.Changed("host-address") {
		cfg.Protocol.HostAddress, _ = f.GetString("host-address")
	}
	if f.Changed("ig-address") {
		cfg.Protocol.IGAddress, _ = f.GetString("ig-address")
	}
	if f.Changed("output") {
		cfg.Output.Path, _ = f.GetString("output")
	}
	if f.Changed("format") {
		cfg.Output.Format, _ = f.GetString("format")
	}
}
