package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
cigiscope:
  capture:
    type: afpacket
    options:
      device: eth0
      bpf_filter: "udp port 8004"
  protocol:
    version: "3"
    byte_order: big
    host_address: 10.0.0.1
    ig_address: 10.0.0.2
    port: 8004
  output:
    format: ndjson
    path: /tmp/out.ndjson
  log:
    level: debug
    format: json
  metrics:
    enabled: true
    listen: ":9100"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "afpacket", cfg.Capture.Type)
	assert.Equal(t, "eth0", cfg.Capture.Options["device"])
	assert.Equal(t, "3", cfg.Protocol.Version)
	assert.Equal(t, "big", cfg.Protocol.ByteOrder)
	assert.Equal(t, "10.0.0.1", cfg.Protocol.HostAddress)
	assert.Equal(t, 8004, cfg.Protocol.Port)
	assert.Equal(t, "ndjson", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9100", cfg.Metrics.Listen)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
cigiscope:
  capture:
    type: file
    options:
      file_path: /tmp/session.pcap
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.Protocol.Version)
	assert.Equal(t, "auto", cfg.Protocol.ByteOrder)
	assert.Equal(t, "tree", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9091", cfg.Metrics.Listen)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yml")
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"bad version": `
cigiscope:
  capture:
    type: file
  protocol:
    version: "5"
`,
		"bad byte order": `
cigiscope:
  capture:
    type: file
  protocol:
    byte_order: middle
`,
		"bad port": `
cigiscope:
  capture:
    type: file
  protocol:
    port: 70000
`,
		"bad output format": `
cigiscope:
  capture:
    type: file
  output:
    format: xml
`,
		"bad log level": `
cigiscope:
  capture:
    type: file
  log:
    level: loud
`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "file", cfg.Capture.Type)
	assert.Equal(t, "auto", cfg.Protocol.Version)
}
