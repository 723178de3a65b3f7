package capture

import (
	"net"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildUDPFrame(t *testing.T, payload []byte) []byte {
	t.Helper()
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01},
		DstMAC:       net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x02},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		IHL:      5,
		TTL:      64,
		Protocol: layers.IPProtocolUDP,
		SrcIP:    net.IP{10, 0, 0, 1},
		DstIP:    net.IP{10, 0, 0, 2},
	}
	udp := &layers.UDP{SrcPort: 8004, DstPort: 8004}
	require.NoError(t, udp.SetNetworkLayerForChecksum(ip))

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	require.NoError(t, gopacket.SerializeLayers(buf, opts, eth, ip, udp, gopacket.Payload(payload)))
	return buf.Bytes()
}

func TestExtractMessage(t *testing.T) {
	payload := []byte{1, 16, 3, 0, 0x01, 0, 0x80, 0x00, 0, 0, 0, 1, 0, 0, 0, 0}
	frame := buildUDPFrame(t, payload)
	ci := gopacket.CaptureInfo{Length: len(frame), CaptureLength: len(frame)}

	msg, ok := ExtractMessage(frame, ci, layers.LinkTypeEthernet)
	require.True(t, ok)
	assert.Equal(t, payload, msg.Data)
	assert.Equal(t, "10.0.0.1", msg.Src)
	assert.Equal(t, "10.0.0.2", msg.Dst)
	assert.Equal(t, uint16(8004), msg.SrcPort)
	assert.Equal(t, uint16(8004), msg.DstPort)
	assert.Equal(t, len(payload), msg.Length)
}

func TestExtractMessageSkipsNonUDP(t *testing.T) {
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01},
		DstMAC:       net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x02},
		EthernetType: layers.EthernetTypeARP,
	}
	arp := &layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		HwAddressSize:     6,
		ProtAddressSize:   4,
		Operation:         layers.ARPRequest,
		SourceHwAddress:   eth.SrcMAC,
		SourceProtAddress: []byte{10, 0, 0, 1},
		DstHwAddress:      make([]byte, 6),
		DstProtAddress:    []byte{10, 0, 0, 2},
	}
	buf := gopacket.NewSerializeBuffer()
	require.NoError(t, gopacket.SerializeLayers(buf, gopacket.SerializeOptions{FixLengths: true}, eth, arp))

	_, ok := ExtractMessage(buf.Bytes(), gopacket.CaptureInfo{}, layers.LinkTypeEthernet)
	assert.False(t, ok)
}

func TestExtractMessageReportsTruncatedLength(t *testing.T) {
	payload := make([]byte, 64)
	payload[0] = 1
	frame := buildUDPFrame(t, payload)
	ci := gopacket.CaptureInfo{Length: len(frame) + 100, CaptureLength: len(frame)}

	msg, ok := ExtractMessage(frame, ci, layers.LinkTypeEthernet)
	require.True(t, ok)
	assert.Equal(t, len(payload)+100, msg.Length)
	assert.Len(t, msg.Data, len(payload))
}

func TestNewSourceDispatch(t *testing.T) {
	_, err := NewSource(Config{})
	assert.Error(t, err)

	_, err = NewSource(Config{Type: "carrier-pigeon"})
	assert.Error(t, err)

	src, err := NewSource(Config{
		Type:    "file",
		Options: map[string]any{"file_path": "testdata/session.pcap"},
	})
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, src)

	_, err = NewSource(Config{Type: "file"})
	assert.Error(t, err, "file_path is required")
}

func TestCompileFilter(t *testing.T) {
	raw, err := compileFilter("udp port 8004", 65535)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)

	_, err = compileFilter("udp porte 8004", 65535)
	assert.Error(t, err)
}

func TestRecomputeSizeAlignment(t *testing.T) {
	frameSize, blockSize, numBlocks, err := recomputeSize(8, 65535, 4096)
	require.NoError(t, err)
	assert.Zero(t, frameSize%16)
	assert.Zero(t, blockSize%4096)
	assert.GreaterOrEqual(t, numBlocks, 1)

	_, _, _, err = recomputeSize(0, 65535, 4096)
	assert.Error(t, err)
	_, _, _, err = recomputeSize(8, 0, 4096)
	assert.Error(t, err)
}
