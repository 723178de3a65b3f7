// Package cigi implements a dissector for the Common Image Generator
// Interface wire protocol, versions 2 through 4.
package cigi

import "errors"

// Sentinel errors returned from the dissection entry points.
var (
	// ErrNotCIGI means the buffer did not classify as a CIGI message.
	// Callers should decline the message and try other handlers; it is
	// not a dissection failure.
	ErrNotCIGI = errors.New("cigiscope: not a CIGI message")

	// ErrEmptyMessage means Dispatch was handed a zero-length buffer.
	ErrEmptyMessage = errors.New("cigiscope: empty message")
)
