// Package capture acquires CIGI traffic from pcap files or live
// interfaces and hands UDP payloads to the dissector.
package capture

import (
	"context"
	"errors"
	"fmt"
	"io"

	"firestige.xyz/cigiscope/internal/cigi"
	"firestige.xyz/cigiscope/internal/metrics"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/mitchellh/mapstructure"
)

// Source yields raw link-layer frames from some capture backend.
type Source interface {
	Start(ctx context.Context) error
	ReadPacket() ([]byte, gopacket.CaptureInfo, error)
	LinkType() layers.LinkType
	Stop() error
}

// Config selects and parameterizes a capture source. Options carries
// the backend-specific keys and is decoded per backend.
type Config struct {
	Type    string         `mapstructure:"type"`
	Options map[string]any `mapstructure:"options"`
}

// NewSource builds the configured capture backend.
func NewSource(cfg Config) (Source, error) {
	switch cfg.Type {
	case "file":
		var fc FileCfg
		if err := decodeOptions(cfg.Options, &fc); err != nil {
			return nil, err
		}
		return NewFileSource(&fc)
	case "afpacket":
		var ac AfCfg
		if err := decodeOptions(cfg.Options, &ac); err != nil {
			return nil, err
		}
		return NewAfpacketSource(&ac)
	case "":
		return nil, fmt.Errorf("capture: source type is required")
	}
	return nil, fmt.Errorf("capture: unknown source type %q", cfg.Type)
}

func decodeOptions(opts map[string]any, out any) error {
	if err := mapstructure.Decode(opts, out); err != nil {
		return fmt.Errorf("capture: invalid source options: %w", err)
	}
	return nil
}

// Handler consumes one extracted CIGI candidate message.
type Handler func(msg cigi.Message) error

// Pump drives a source until EOF, context cancellation or a handler
// error, extracting the UDP payload of each frame. Non-UDP frames are
// counted and skipped.
func Pump(ctx context.Context, src Source, handler Handler) error {
	if err := src.Start(ctx); err != nil {
		return err
	}
	defer src.Stop()

	linkType := src.LinkType()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		data, ci, err := src.ReadPacket()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		metrics.FramesTotal.Inc()

		msg, ok := ExtractMessage(data, ci, linkType)
		if !ok {
			metrics.FramesSkippedTotal.Inc()
			continue
		}
		if err := handler(msg); err != nil {
			return err
		}
	}
}

// ExtractMessage peels a frame down to its UDP payload and endpoint
// addresses. Frames without a UDP layer or with an empty payload are
// not candidates.
func ExtractMessage(data []byte, ci gopacket.CaptureInfo, linkType layers.LinkType) (cigi.Message, bool) {
	pkt := gopacket.NewPacket(data, linkType, gopacket.NoCopy)

	udpLayer := pkt.Layer(layers.LayerTypeUDP)
	if udpLayer == nil {
		return cigi.Message{}, false
	}
	udp := udpLayer.(*layers.UDP)
	if len(udp.Payload) == 0 {
		return cigi.Message{}, false
	}

	var src, dst string
	if net := pkt.NetworkLayer(); net != nil {
		flow := net.NetworkFlow()
		src = flow.Src().String()
		dst = flow.Dst().String()
	}

	length := len(udp.Payload)
	if ci.Length > ci.CaptureLength {
		// Truncated capture: report the original payload length.
		length += ci.Length - ci.CaptureLength
	}

	return cigi.Message{
		Data:    udp.Payload,
		Src:     src,
		Dst:     dst,
		SrcPort: uint16(udp.SrcPort),
		DstPort: uint16(udp.DstPort),
		Length:  length,
	}, true
}
