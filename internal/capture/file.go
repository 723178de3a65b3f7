package capture

import (
	"context"
	"fmt"
	"io"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
)

// FileCfg parameterizes the offline pcap source.
type FileCfg struct {
	FilePath string `mapstructure:"file_path"`
}

// FileSource replays a pcap capture file.
type FileSource struct {
	path   string
	handle *pcap.Handle
}

func NewFileSource(cfg *FileCfg) (*FileSource, error) {
	if cfg.FilePath == "" {
		return nil, fmt.Errorf("capture: file_path is required")
	}
	return &FileSource{path: cfg.FilePath}, nil
}

func (fs *FileSource) Start(ctx context.Context) error {
	handle, err := pcap.OpenOffline(fs.path)
	if err != nil {
		return fmt.Errorf("capture: failed to open pcap file %s: %w", fs.path, err)
	}
	fs.handle = handle
	return nil
}

func (fs *FileSource) ReadPacket() ([]byte, gopacket.CaptureInfo, error) {
	if fs.handle == nil {
		return nil, gopacket.CaptureInfo{}, fmt.Errorf("capture: file source not started")
	}
	data, ci, err := fs.handle.ReadPacketData()
	if err != nil {
		if err == io.EOF {
			return nil, gopacket.CaptureInfo{}, io.EOF
		}
		return nil, gopacket.CaptureInfo{}, fmt.Errorf("capture: failed to read packet: %w", err)
	}
	return data, ci, nil
}

func (fs *FileSource) LinkType() layers.LinkType {
	if fs.handle == nil {
		return layers.LinkTypeEthernet
	}
	return fs.handle.LinkType()
}

func (fs *FileSource) Stop() error {
	if fs.handle != nil {
		fs.handle.Close()
		fs.handle = nil
	}
	return nil
}
