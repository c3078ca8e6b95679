// Package device provides the high-level client for the ToffeeStudio
// module: remote filesystem operations, display control, and the bulk dump
// trigger, all over the raw HID command channel.
//
// # Basic Usage
//
//	t, err := transport.OpenHID(transport.HIDSelector{
//	    VendorID:  0x1067,
//	    ProductID: 0x626D,
//	    UsagePage: 0xFF60,
//	    Usage:     0x61,
//	})
//	if err != nil {
//	    log.Fatal().Err(err).Msg("module not found")
//	}
//	defer t.Close()
//
//	c := device.New(t)
//	entries, err := c.List()
//
// # Writing Files
//
// Open returns an explicit handle even though the wire protocol keeps a
// single implicit server-side cursor; Write and Close go through the
// handle so stale use is caught on the host:
//
//	f, err := c.Open("logo.raw")
//	if err != nil {
//	    return err
//	}
//	if err := f.Write(pixels); err != nil {
//	    f.Close()
//	    return err
//	}
//	return f.Close()
//
// # Failure Model
//
// Execute maps a silent device to protocol.StatusNoResponse instead of an
// error; higher-level operations fold every non-success status into a
// *protocol.StatusError. Nothing is retried automatically. A failed chunked
// write leaves the remote file partially written by design.
//
// # Firmware Variants
//
// Firmware revisions are described by protocol.Profile capability tables.
// A client built with WithProfile refuses opcodes the connected firmware
// does not implement rather than sending them to die on the wire.
package device
