package dump

import (
	"github.com/ToffeeStudio/go-module/device"
	"github.com/ToffeeStudio/go-module/transport"
)

// Run performs a complete two-phase bulk dump: trigger the transfer on the
// command channel, then receive every file on the stream transport into
// outDir.
//
// Phase one gets no structured response; the client's settle delay stands
// in for one while the firmware brings the CDC interface up. Phase two is
// the receive loop. A mid-stream failure still returns the files saved
// before it, alongside the error.
//
// Example:
//
//	result, err := dump.Run(client, serialTransport, "dump-out",
//	    dump.WithLogger(logger),
//	)
//	fmt.Printf("saved %d files (%d bytes)\n", result.FileCount, result.ByteCount)
func Run(c *device.Client, stream transport.Transport, outDir string, opts ...Option) (*Result, error) {
	if err := c.TriggerDump(); err != nil {
		return &Result{}, err
	}
	return New(stream, opts...).Receive(outDir)
}
