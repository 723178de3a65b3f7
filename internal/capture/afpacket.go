package capture

import (
	"context"
	"fmt"
	"os"

	"github.com/google/gopacket"
	"github.com/google/gopacket/afpacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
	"golang.org/x/net/bpf"
)

// AfCfg parameterizes the live AF_PACKET source.
type AfCfg struct {
	Device       string `mapstructure:"device"`
	SnapLen      int    `mapstructure:"snap_len"`
	BufferSizeMB int    `mapstructure:"buffer_size_mb"`
	TimeoutMs    int    `mapstructure:"timeout_ms"`
	FanoutID     uint16 `mapstructure:"fanout_id"`
	BpfFilter    string `mapstructure:"bpf_filter"`
}

// AfpacketSource captures live traffic through a TPacket v3 ring.
type AfpacketSource struct {
	handle *afpacket.TPacket

	device    string
	frameSize int
	blockSize int
	numBlocks int
	timeoutMs int
	fanoutID  uint16
	bpfFilter string
}

func NewAfpacketSource(cfg *AfCfg) (*AfpacketSource, error) {
	if cfg.Device == "" {
		return nil, fmt.Errorf("capture: device is required")
	}
	snapLen := cfg.SnapLen
	if snapLen == 0 {
		snapLen = 65535
	}
	bufMB := cfg.BufferSizeMB
	if bufMB == 0 {
		bufMB = 8
	}
	frameSize, blockSize, numBlocks, err := recomputeSize(bufMB, snapLen, os.Getpagesize())
	if err != nil {
		return nil, err
	}
	return &AfpacketSource{
		device:    cfg.Device,
		frameSize: frameSize,
		blockSize: blockSize,
		numBlocks: numBlocks,
		timeoutMs: cfg.TimeoutMs,
		fanoutID:  cfg.FanoutID,
		bpfFilter: cfg.BpfFilter,
	}, nil
}

func (s *AfpacketSource) Start(ctx context.Context) error {
	tp, err := afpacket.NewTPacket(
		afpacket.OptInterface(s.device),
		afpacket.OptFrameSize(s.frameSize),
		afpacket.OptBlockSize(s.blockSize),
		afpacket.OptNumBlocks(s.numBlocks),
		afpacket.OptPollTimeout(s.timeoutMs),
		afpacket.SocketRaw,
		afpacket.TPacketVersion3,
	)
	if err != nil {
		return fmt.Errorf("capture: failed to open %s: %w", s.device, err)
	}

	if s.fanoutID > 0 {
		if err := tp.SetFanout(afpacket.FanoutHashWithDefrag, s.fanoutID); err != nil {
			tp.Close()
			return err
		}
	}

	if s.bpfFilter != "" {
		raw, err := compileFilter(s.bpfFilter, s.frameSize)
		if err != nil {
			tp.Close()
			return err
		}
		if err := tp.SetBPF(raw); err != nil {
			tp.Close()
			return err
		}
	}

	s.handle = tp
	return nil
}

// compileFilter turns a pcap-syntax expression into the raw classic
// BPF program AF_PACKET sockets attach with. The frame size bounds
// packet-length tests inside the program, so it must match the ring's.
func compileFilter(expr string, frameSize int) ([]bpf.RawInstruction, error) {
	prog, err := pcap.CompileBPFFilter(layers.LinkTypeEthernet, frameSize, expr)
	if err != nil {
		return nil, fmt.Errorf("capture: bad filter %q: %w", expr, err)
	}
	raw := make([]bpf.RawInstruction, 0, len(prog))
	for _, ins := range prog {
		raw = append(raw, bpf.RawInstruction{
			Op: ins.Code,
			Jt: ins.Jt,
			Jf: ins.Jf,
			K:  ins.K,
		})
	}
	return raw, nil
}

func (s *AfpacketSource) ReadPacket() ([]byte, gopacket.CaptureInfo, error) {
	return s.handle.ReadPacketData()
}

func (s *AfpacketSource) LinkType() layers.LinkType {
	return layers.LinkTypeEthernet
}

func (s *AfpacketSource) Stop() error {
	if s.handle != nil {
		s.handle.Close()
		s.handle = nil
	}
	return nil
}
