package cigi

import "encoding/binary"

// Order is the configured byte-order selection for a session.
type Order uint8

const (
	OrderAuto Order = iota
	OrderBig
	OrderLittle
)

// Options carries the operator configuration for one session. A forced
// value is authoritative: auto-detection never overrides it.
type Options struct {
	// ForceVersion pins the major version (2, 3 or 4). Zero means
	// auto-detect per message.
	ForceVersion int

	// ForceOrder pins the byte order for v3/v4 streams. CIGI 2 is
	// big-endian by protocol definition regardless of this setting.
	ForceOrder Order

	// HostAddress and IGAddress substitute friendly names into the
	// summary line when an endpoint address matches.
	HostAddress string
	IGAddress   string
}

// Session holds the negotiated protocol parameters for one logical
// CIGI link. Values observed from a leading IG Control or Start of
// Frame packet persist for the life of the session; they are only ever
// written from those trusted leading-packet fields. One Session must
// never be shared across links.
type Session struct {
	opts Options

	version int // 0 until negotiated
	minor   int // v3 only: 0, 2 or 3
	order   binary.ByteOrder
}

// NewSession creates a session, applying any operator overrides.
func NewSession(opts Options) *Session {
	s := &Session{opts: opts}
	if opts.ForceVersion != 0 {
		s.version = opts.ForceVersion
	}
	switch opts.ForceOrder {
	case OrderBig:
		s.order = binary.BigEndian
	case OrderLittle:
		s.order = binary.LittleEndian
	}
	return s
}

// Version returns the effective major version, zero when unknown.
func (s *Session) Version() int {
	return s.version
}

// Minor returns the negotiated v3 minor version (0, 2 or 3).
func (s *Session) Minor() int {
	return s.minor
}

// ByteOrder returns the effective byte order. Big-endian is the
// protocol default until a little-endian marker is observed.
func (s *Session) ByteOrder() binary.ByteOrder {
	if s.order == nil {
		return binary.BigEndian
	}
	return s.order
}

// versionForced reports whether the operator pinned the version.
func (s *Session) versionForced() bool {
	return s.opts.ForceVersion != 0
}

// orderForced reports whether the operator pinned the byte order.
func (s *Session) orderForced() bool {
	return s.opts.ForceOrder != OrderAuto
}

// observeLeader records protocol parameters carried by a leading
// IG Control or Start of Frame packet. This is the single negotiation
// site: the dispatcher and every frame walker funnel through it, so a
// new CIGI version extends exactly one method. Operator overrides win.
func (s *Session) observeLeader(version, minor int, order binary.ByteOrder) {
	if !s.versionForced() && version != 0 {
		s.version = version
	}
	// The operator override enumerates major versions only; the v3
	// minor version always tracks the stream.
	if minor != 0 {
		s.minor = minor
	}
	if !s.orderForced() && order != nil {
		s.order = order
	}
}
