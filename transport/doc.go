// Package transport provides the byte channels connecting the host to the
// module: a fixed-packet raw HID channel for command traffic and a CDC
// serial stream for bulk transfer. Both satisfy the Transport interface, so
// the protocol layers above are transport-agnostic.
//
// Reads are bounded by explicit timeouts. A bounded read that produces no
// bytes reports n == 0 with a nil error; silence is a protocol signal, not
// an I/O failure, and the layers above decide what it means.
package transport
