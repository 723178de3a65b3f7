package cigi

import (
	"encoding/binary"
	"encoding/hex"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type messageFixture struct {
	Name    string   `yaml:"name"`
	Hex     string   `yaml:"hex"`
	Version int      `yaml:"version"`
	Order   string   `yaml:"order"`
	Packets []string `yaml:"packets"`
}

// Corpus of captured leading messages covering every version and byte
// order the classifier accepts.
func TestDispatchCapturedMessages(t *testing.T) {
	raw, err := os.ReadFile("testdata/messages.yaml")
	require.NoError(t, err)

	var fixtures []messageFixture
	require.NoError(t, yaml.Unmarshal(raw, &fixtures))
	require.NotEmpty(t, fixtures)

	for _, fx := range fixtures {
		t.Run(fx.Name, func(t *testing.T) {
			data, err := hex.DecodeString(fx.Hex)
			require.NoError(t, err)

			d := NewDissector(Options{})
			sess := d.NewSession()
			tree, err := d.Dispatch(Message{Data: data, Length: len(data)}, sess)
			require.NoError(t, err)

			assert.Equal(t, fx.Version, sess.Version())
			want := binary.ByteOrder(binary.BigEndian)
			if fx.Order == "little" {
				want = binary.LittleEndian
			}
			assert.Equal(t, want, sess.ByteOrder())

			require.Len(t, tree.Packets, len(fx.Packets))
			for i, label := range fx.Packets {
				assert.Equal(t, label, tree.Packets[i].Label)
			}
			assert.False(t, tree.Faulted())
		})
	}
}
