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

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Dissect CIGI traffic from a live interface",
	Long: `
Capture from a network interface via AF_PACKET and dissect CIGI
messages as they arrive. Requires CAP_NET_RAW.

Examples:
  cigiscope live -i eth0                          # All UDP traffic on eth0
  cigiscope live -i eth0 --port 8004              # Only the CIGI port
  cigiscope live -i eth0 -f "udp port 8004"       # Kernel-side BPF filter
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		cfg.Capture.Type = "afpacket"
		if cfg.Capture.Options == nil {
			cfg.Capture.Options = map[string]any{}
		}
		f := cmd.Flags()
		if f.Changed("interface") {
			cfg.Capture.Options["device"], _ = f.GetString("interface")
		}
		if f.Changed("filter") {
			cfg.Capture.Options["bpf_filter"], _ = f.GetString("filter")
		}
		if f.Changed("snaplen") {
			cfg.Capture.Options["snap_len"], _ = f.GetInt("snaplen")
		}
		if f.Changed("buffer-size-mb") {
			cfg.Capture.Options["buffer_size_mb"], _ = f.GetInt("buffer-size-mb")
		}
		if f.Changed("fanout-id") {
			cfg.Capture.Options["fanout_id"], _ = f.GetUint16("fanout-id")
		}
		if cfg.Capture.Options["device"] == nil {
			return fmt.Errorf("an interface is required (use -i)")
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
	liveCmd.Flags().StringP("interface", "i", "", "interface to capture from")
	liveCmd.Flags().StringP("filter", "f", "", "BPF filter expression")
	liveCmd.Flags().Int("snaplen", 0, "snapshot length in bytes")
	liveCmd.Flags().Int("buffer-size-mb", 0, "ring buffer size in MB")
	liveCmd.Flags().Uint16("fanout-id", 0, "AF_PACKET fanout group id (0 = disabled)")
	addProtocolFlags(liveCmd)
	rootCmd.AddCommand(liveCmd)
}
