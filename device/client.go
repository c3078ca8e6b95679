package device

import (
	"fmt"
	"time"

	"github.com/ToffeeStudio/go-module/protocol"
	"github.com/ToffeeStudio/go-module/transport"
)

// Client drives the module's command channel over a raw HID transport.
// It owns the packet sequence counter and the open-file session state.
//
// Client is strictly single-session: one transport, one outstanding
// exchange at a time, blocking until the response or the timeout.
type Client struct {
	t    transport.Transport
	cfg  Config
	seq  uint32
	open *RemoteFile
}

// New creates a Client over the given transport.
//
// Example:
//
//	t, err := transport.OpenHID(transport.HIDSelector{...})
//	if err != nil {
//	    log.Fatal().Err(err).Msg("module not connected")
//	}
//	c := device.New(t,
//	    device.WithProfile(protocol.ProfileCDC),
//	    device.WithLogger(logger),
//	)
func New(t transport.Transport, opts ...Option) *Client {
	if t == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.SettleDelay == 0 {
		cfg.SettleDelay = cfg.Profile.SettleDelay
	}

	return &Client{t: t, cfg: cfg}
}

// Profile returns the capability profile the client was built with.
func (c *Client) Profile() *protocol.Profile {
	return c.cfg.Profile
}

// Sequence returns the next packet sequence number the client will send.
func (c *Client) Sequence() uint32 {
	return c.seq
}

// Execute performs one command exchange: build a packet, send it, read one
// response packet within the command's timeout.
//
// The sequence counter increments once per send attempt whether or not a
// response arrives; sequence numbers are never reused. A silent device is
// reported as protocol.StatusNoResponse with a nil error: at this layer
// every exchange failure is representable as a status code. No retries are
// performed; retry policy belongs to the caller.
func (c *Client) Execute(cmd protocol.Command, payload []byte) (protocol.Status, []byte, error) {
	if !c.cfg.Profile.Supports(cmd) {
		return protocol.StatusInvalidCommand, nil, &UnsupportedCommandError{
			Profile: c.cfg.Profile.Name,
			Command: cmd,
		}
	}

	packet, err := protocol.BuildPacket(cmd, c.seq, payload)
	if err != nil {
		return protocol.StatusInvalidCommand, nil, err
	}

	seq := c.seq
	c.seq++

	if _, err := c.t.Write(packet); err != nil {
		return protocol.StatusNoResponse, nil, fmt.Errorf("write packet: %w", err)
	}

	timeout := c.cfg.Profile.Timeout(cmd)
	response := make([]byte, protocol.PacketSize)
	n, err := c.t.ReadWithTimeout(response, timeout)
	if err != nil {
		return protocol.StatusNoResponse, nil, fmt.Errorf("read response: %w", err)
	}
	if n == 0 {
		c.cfg.Logger.Debug().
			Uint8("opcode", uint8(cmd)).
			Uint32("seq", seq).
			Dur("timeout", timeout).
			Msg("no response within timeout")
		return protocol.StatusNoResponse, nil, nil
	}

	status, data, err := protocol.ParseResponse(response[:n])
	if err != nil {
		return protocol.StatusNoResponse, nil, err
	}

	c.cfg.Logger.Debug().
		Uint8("opcode", uint8(cmd)).
		Uint32("seq", seq).
		Str("status", protocol.StatusName(status)).
		Int("payload_len", len(data)).
		Msg("exchange complete")

	return status, data, nil
}

// execute runs an exchange and folds every non-success status into a
// StatusError, which is what most single-shot commands want.
func (c *Client) execute(op string, cmd protocol.Command, payload []byte) ([]byte, error) {
	status, data, err := c.Execute(cmd, payload)
	if err != nil {
		return nil, err
	}
	if status != protocol.StatusOK {
		return nil, &protocol.StatusError{Operation: op, Status: status}
	}
	return data, nil
}

// send transmits one packet without waiting for a response. The sequence
// counter still increments.
func (c *Client) send(cmd protocol.Command, payload []byte) error {
	if !c.cfg.Profile.Supports(cmd) {
		return &UnsupportedCommandError{Profile: c.cfg.Profile.Name, Command: cmd}
	}

	packet, err := protocol.BuildPacket(cmd, c.seq, payload)
	if err != nil {
		return err
	}
	c.seq++

	if _, err := c.t.Write(packet); err != nil {
		return fmt.Errorf("write packet: %w", err)
	}
	return nil
}

// TriggerDump asks the firmware to start a bulk file dump on the CDC
// interface. The firmware answers on the second transport, not here, so no
// response packet is awaited; instead the configured settle delay gives the
// device time to bring the CDC interface up.
func (c *Client) TriggerDump() error {
	if err := c.send(protocol.CmdDumpFiles, nil); err != nil {
		return err
	}

	c.cfg.Logger.Debug().
		Dur("settle_delay", c.cfg.SettleDelay).
		Msg("dump triggered, waiting for CDC interface")
	time.Sleep(c.cfg.SettleDelay)
	return nil
}
