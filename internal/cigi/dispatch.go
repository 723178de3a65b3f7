package cigi

import "fmt"

// Message is one transport-level unit handed in by the capture layer,
// typically a single UDP datagram. Data is borrowed read-only for the
// duration of the dispatch call. Length is the reported total length,
// which may exceed len(Data) for truncated captures.
type Message struct {
	Data    []byte
	Src     string
	Dst     string
	SrcPort uint16
	DstPort uint16
	Length  int
}

// Dissector is the top-level entry point, invoked once per Message.
// It is stateless apart from its options; all cross-message state
// lives in the Session the caller supplies.
type Dissector struct {
	opts Options
}

// NewDissector creates a dissector with the given operator options.
func NewDissector(opts Options) *Dissector {
	return &Dissector{opts: opts}
}

// NewSession creates a session carrying this dissector's overrides.
// One session per logical CIGI link.
func (d *Dissector) NewSession() *Session {
	return NewSession(d.opts)
}

// Dispatch dissects one message into a field tree. It returns
// ErrNotCIGI when the message does not classify as CIGI and no version
// override is active; the caller should decline the message rather
// than report an error. A framing fault inside the message is not an
// error: it is recorded as a tree annotation and dissection of later
// messages is unaffected.
func (d *Dissector) Dispatch(msg Message, sess *Session) (*Tree, error) {
	if len(msg.Data) == 0 {
		return nil, ErrEmptyMessage
	}

	// With a forced version the sniffer's auto-negotiation is bypassed
	// entirely; otherwise an unclassifiable buffer is declined unless
	// an earlier message already negotiated the stream parameters.
	if !sess.versionForced() {
		c, ok := Classify(msg.Data)
		if !ok && sess.Version() == 0 {
			return nil, ErrNotCIGI
		}
		if ok && leadsWithControl(msg.Data, c) {
			sess.observeLeader(c.Version, c.Minor, c.Order)
		}
	}

	tree := &Tree{
		SrcPort:  msg.SrcPort,
		DstPort:  msg.DstPort,
		FrameLen: msg.Length,
	}
	tree.Summary = d.summarize(msg, sess)

	walk(msg.Data, sess, tree)
	return tree, nil
}

// leadsWithControl re-derives the first packet's id under the
// classified header shape and reports whether the message opens with
// an IG Control or Start of Frame. The version is not yet confirmed at
// this point, so this is a deliberate lightweight re-derivation rather
// than a peek into the sniffer's internals.
func leadsWithControl(buf []byte, c Classification) bool {
	switch c.Version {
	case 4:
		if len(buf) < headerSizeV4 {
			return false
		}
		id := c.Order.Uint16(buf[2:4])
		return id == v4PacketIDIGControl || id == v4PacketIDStartOfFrame
	default:
		if len(buf) < 1 {
			return false
		}
		return buf[0] == packetIDIGControl || buf[0] == packetIDStartOfFrame
	}
}

// summarize builds the one-line description, substituting the
// configured Host/IG friendly names for matching endpoint addresses.
func (d *Dissector) summarize(msg Message, sess *Session) string {
	src := d.endpointLabel(msg.Src)
	dst := d.endpointLabel(msg.Dst)
	if v := sess.Version(); v != 0 {
		return fmt.Sprintf("CIGI v%d: %s => %s (%d bytes)", v, src, dst, msg.Length)
	}
	return fmt.Sprintf("CIGI: %s => %s (%d bytes)", src, dst, msg.Length)
}

func (d *Dissector) endpointLabel(addr string) string {
	switch {
	case addr == "":
		return "?"
	case d.opts.HostAddress != "" && addr == d.opts.HostAddress:
		return "Host"
	case d.opts.IGAddress != "" && addr == d.opts.IGAddress:
		return "IG"
	}
	return addr
}
