// Package app wires the capture source, dissector and output sink into
// a running pipeline.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"firestige.xyz/cigiscope/internal/capture"
	"firestige.xyz/cigiscope/internal/cigi"
	"firestige.xyz/cigiscope/internal/config"
	"firestige.xyz/cigiscope/internal/log"
	"firestige.xyz/cigiscope/internal/metrics"
	"firestige.xyz/cigiscope/internal/sink"
)

// Run executes one capture-dissect-render pass until the source is
// exhausted or ctx is cancelled.
func Run(ctx context.Context, cfg *config.GlobalConfig) error {
	if err := log.Init(cfg.Log); err != nil {
		return err
	}
	defer log.Close()

	if cfg.Metrics.Enabled {
		srv := metrics.NewServer(cfg.Metrics.Listen, cfg.Metrics.Path)
		if err := srv.Start(ctx); err != nil {
			return err
		}
		defer srv.Stop(context.Background())
	}

	out, err := sink.Open(cfg.Output.Format, cfg.Output.Path)
	if err != nil {
		return err
	}
	defer out.Close()

	src, err := capture.NewSource(capture.Config{
		Type:    cfg.Capture.Type,
		Options: cfg.Capture.Options,
	})
	if err != nil {
		return err
	}

	opts, err := protocolOptions(cfg.Protocol)
	if err != nil {
		return err
	}

	p := NewPipeline(opts, out, cfg.Protocol.Port)
	slog.Info("starting capture",
		"source", cfg.Capture.Type,
		"output", cfg.Output.Format,
		"version", cfg.Protocol.Version,
		"byte_order", cfg.Protocol.ByteOrder)

	err = capture.Pump(ctx, src, p.Handle)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Pipeline dissects extracted messages and forwards the field trees to
// the sink, keeping one protocol session per endpoint pair.
type Pipeline struct {
	dissector *cigi.Dissector
	sink      sink.Sink
	port      int
	sessions  map[string]*cigi.Session
}

// NewPipeline creates a pipeline. A non-zero port restricts dissection
// to messages touching that UDP port.
func NewPipeline(opts cigi.Options, out sink.Sink, port int) *Pipeline {
	return &Pipeline{
		dissector: cigi.NewDissector(opts),
		sink:      out,
		port:      port,
		sessions:  make(map[string]*cigi.Session),
	}
}

// Handle processes one UDP payload. Non-CIGI payloads are counted and
// dropped; dissected trees go to the sink.
func (p *Pipeline) Handle(msg cigi.Message) error {
	if p.port != 0 && int(msg.SrcPort) != p.port && int(msg.DstPort) != p.port {
		return nil
	}

	sess := p.session(msg)
	tree, err := p.dissector.Dispatch(msg, sess)
	if err != nil {
		if errors.Is(err, cigi.ErrNotCIGI) || errors.Is(err, cigi.ErrEmptyMessage) {
			metrics.MessagesDeclinedTotal.Inc()
			return nil
		}
		return err
	}

	metrics.MessagesTotal.WithLabelValues(strconv.Itoa(sess.Version())).Inc()
	metrics.BytesTotal.Add(float64(len(msg.Data)))
	for _, pkt := range tree.Packets {
		metrics.PacketsTotal.WithLabelValues(pkt.Label).Inc()
	}
	if tree.Faulted() {
		metrics.FramingFaultsTotal.Inc()
		slog.Warn("framing fault", "src", msg.Src, "dst", msg.Dst, "len", msg.Length)
	}

	return p.sink.Write(tree)
}

// session returns the session for msg's endpoint pair. The key is
// direction agnostic so host and IG traffic negotiate together.
func (p *Pipeline) session(msg cigi.Message) *cigi.Session {
	a := fmt.Sprintf("%s:%d", msg.Src, msg.SrcPort)
	b := fmt.Sprintf("%s:%d", msg.Dst, msg.DstPort)
	if b < a {
		a, b = b, a
	}
	key := a + "|" + b

	sess, ok := p.sessions[key]
	if !ok {
		sess = p.dissector.NewSession()
		p.sessions[key] = sess
	}
	return sess
}

// protocolOptions maps config strings onto dissector options.
func protocolOptions(pc config.ProtocolConfig) (cigi.Options, error) {
	opts := cigi.Options{
		HostAddress: pc.HostAddress,
		IGAddress:   pc.IGAddress,
	}

	switch pc.Version {
	case "", "auto":
	case "2", "3", "4":
		v, _ := strconv.Atoi(pc.Version)
		opts.ForceVersion = v
	default:
		return opts, fmt.Errorf("app: invalid protocol version %q", pc.Version)
	}

	switch pc.ByteOrder {
	case "", "auto":
		opts.ForceOrder = cigi.OrderAuto
	case "big":
		opts.ForceOrder = cigi.OrderBig
	case "little":
		opts.ForceOrder = cigi.OrderLittle
	default:
		return opts, fmt.Errorf("app: invalid byte order %q", pc.ByteOrder)
	}

	return opts, nil
}
