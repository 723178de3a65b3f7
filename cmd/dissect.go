package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"firestige.xyz/cigiscope/internal/app"
)

var dissectCmd = &cobra.Command{
	Use:   "dissect",
	Short: "Dissect CIGI traffic from a pcap capture file",
	Long: `
Read a pcap file and dissect the CIGI messages it contains.

Examples:
  cigiscope dissect -r session.pcap                  # Auto-detect version and byte order
  cigiscope dissect -r session.pcap --cigi-version 3 # Pin CIGI 3
  cigiscope dissect -r session.pcap --format ndjson -o out.ndjson
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		readFile, _ := cmd.Flags().GetString("read")
		cfg.Capture.Type = "file"
		if cfg.Capture.Options == nil {
			cfg.Capture.Options = map[string]any{}
		}
		if readFile != "" {
			cfg.Capture.Options["file_path"] = readFile
		}
		if cfg.Capture.Options["file_path"] == nil {
			return fmt.Errorf("a capture file is required (use -r)")
		}
		applyProtocolFlags(cmd, cfg)

		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return app.Run(ctx, cfg)
	},
}

func init() {
	dissectCmd.Flags().StringP("read", "r", "", "pcap file to read")
	addProtocolFlags(dissectCmd)
	rootCmd.AddCommand(dissectCmd)
}
