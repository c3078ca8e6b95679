// Package dump implements the CDC bulk file transfer: the module streams
// its whole filesystem to the host as a sequence of self-delimited frames
// over the serial interface.
//
// # Wire Format
//
// Each file is one frame, repeated until the stream ends:
//
//	[FILENAME: UTF-8, 0x00-terminated][SIZE(4, little-endian)][PAYLOAD: SIZE bytes]
//
// A lone 0x00 in filename position ends the transfer. There is no checksum
// and no retransmission; integrity rests on the USB transport and on
// timeout detection.
//
// # End-of-Transfer Ambiguity
//
// Beyond the explicit 0x00 terminator the firmware has no way to say "I am
// done"; some revisions simply stop sending. The receiver therefore treats
// inter-file silence after at least one saved file as a successful end.
// That makes a finished device indistinguishable from a slow one, which is
// a property of the protocol, not of this implementation; tune
// WithInterFileTimeout for slow devices rather than expecting a signal.
//
// # Partial Results
//
// The receive loop aborts on the first protocol violation: a truncated
// size field, a silent payload read, an unsafe filename. The file being
// received is deleted, files completed earlier are kept, and the returned
// Result counts exactly what is on disk. The output directory is wiped
// before every run, so its contents after Receive are always the product
// of a single transfer.
package dump
