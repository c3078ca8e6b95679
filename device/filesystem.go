package device

import (
	"bytes"

	"github.com/ToffeeStudio/go-module/protocol"
)

// List enumerates the current remote directory.
//
// Listings may span multiple packets: a page tagged StatusMoreEntries is
// followed by a ListNext exchange for the next page, until a page arrives
// with plain success. Entries are returned in device order, undeduplicated.
//
// On any other status the listing aborts and the entries accumulated so far
// are returned together with a StatusError, so a partial listing is always
// distinguishable from a complete one.
func (c *Client) List() ([]string, error) {
	var entries []string

	cmd := protocol.CmdList
	for {
		status, payload, err := c.Execute(cmd, nil)
		if err != nil {
			return entries, err
		}

		switch status {
		case protocol.StatusOK:
			entries = append(entries, protocol.ParseListPage(payload)...)
			return entries, nil
		case protocol.StatusMoreEntries:
			entries = append(entries, protocol.ParseListPage(payload)...)
			cmd = protocol.CmdListNext
		default:
			return entries, &protocol.StatusError{Operation: "list", Status: status}
		}
	}
}

// ChangeDir changes the remote working directory.
func (c *Client) ChangeDir(dir string) error {
	_, err := c.execute("change directory", protocol.CmdChangeDir, []byte(dir))
	return err
}

// WorkingDir reports the remote working directory. The path is a string,
// so the report padding is trimmed off.
func (c *Client) WorkingDir() (string, error) {
	payload, err := c.execute("working directory", protocol.CmdWorkingDir, nil)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimRight(payload, "\x00")), nil
}

// Remove deletes a remote file or directory.
func (c *Client) Remove(path string) error {
	_, err := c.execute("remove", protocol.CmdRemove, []byte(path))
	return err
}

// MakeDir creates a remote directory.
func (c *Client) MakeDir(dir string) error {
	_, err := c.execute("make directory", protocol.CmdMakeDir, []byte(dir))
	return err
}

// Touch creates an empty remote file.
func (c *Client) Touch(path string) error {
	_, err := c.execute("touch", protocol.CmdTouch, []byte(path))
	return err
}

// ReadFile reads a remote file's contents. Only files that fit in a single
// response payload can be read this way; the firmware truncates the rest.
// The wire gives no length field, so the report padding is trimmed off;
// trailing zero bytes of the file itself are indistinguishable from padding
// and are lost too.
func (c *Client) ReadFile(path string) ([]byte, error) {
	payload, err := c.execute("read file", protocol.CmdReadFile, []byte(path))
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(payload, "\x00"), nil
}

// Format reformats the module filesystem, destroying all remote files.
func (c *Client) Format() error {
	_, err := c.execute("format filesystem", protocol.CmdFormat, nil)
	return err
}

// FlashRemaining reports the free image flash space in bytes.
func (c *Client) FlashRemaining() (uint32, error) {
	payload, err := c.execute("flash remaining", protocol.CmdFlashRemaining, nil)
	if err != nil {
		return 0, err
	}
	return protocol.ParseFlashRemaining(payload)
}
