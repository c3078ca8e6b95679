package device

import (
	"fmt"

	"github.com/ToffeeStudio/go-module/protocol"
)

// WriteDisplay pushes raw RGB565 pixel data straight to the display,
// bypassing the filesystem. Data is chunked like a file write; the first
// rejected chunk aborts and the panel is left partially drawn.
func (c *Client) WriteDisplay(data []byte) error {
	offset := 0
	for {
		end := offset + protocol.MaxPayloadSize
		if end > len(data) {
			end = len(data)
		}

		if _, err := c.execute("write display", protocol.CmdWriteDisplay, data[offset:end]); err != nil {
			return fmt.Errorf("write display at offset %d: %w", offset, err)
		}

		offset = end
		if offset >= len(data) {
			return nil
		}
	}
}

// ChooseImage selects the stored image the display should show.
func (c *Client) ChooseImage(path string) error {
	_, err := c.execute("choose image", protocol.CmdChooseImage, []byte(path))
	return err
}

// SetTime sets the on-device clock.
func (c *Client) SetTime(hour, minute, second int) error {
	payload, err := protocol.TimePayload(hour, minute, second)
	if err != nil {
		return err
	}
	_, err = c.execute("set time", protocol.CmdSetTime, payload)
	return err
}

// SetWPMRange sets the range of the typing-speed gauge.
func (c *Client) SetWPMRange(min, max uint16) error {
	payload, err := protocol.WPMRangePayload(min, max)
	if err != nil {
		return err
	}
	_, err = c.execute("set wpm range", protocol.CmdSetWPMRange, payload)
	return err
}
