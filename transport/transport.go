package transport

import "time"

// Transport is a byte-oriented duplex channel to the module. Reads are
// bounded: a read that produces no bytes before the timeout returns n == 0
// and a nil error, which callers treat as silence rather than failure.
// Timeouts are the only mechanism bounding how long a call may block.
type Transport interface {
	// Write sends p to the device.
	Write(p []byte) (int, error)

	// ReadWithTimeout fills p with up to len(p) bytes, waiting at most
	// timeout for the first byte. Returns the number of bytes read;
	// n == 0 with a nil error means the timeout expired in silence.
	ReadWithTimeout(p []byte, timeout time.Duration) (int, error)

	// Close releases the underlying device.
	Close() error
}
