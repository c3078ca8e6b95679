// Package rgb565 converts between 8-bit RGB and the 16-bit RGB565 encoding
// the module display uses on the wire.
//
// Encoding truncates to 5/6/5 bits per channel; decoding widens by bit
// replication, so the round trip is lossy and one-directional. Display
// payloads are serialized big-endian. The quantizing variant snaps colors
// to a small fixed palette for high-contrast imagery on the panel.
package rgb565
