package device

import (
	"fmt"

	"github.com/ToffeeStudio/go-module/protocol"
)

// RemoteFile is a handle to the remote file opened for writing.
//
// The wire protocol carries no handle value: the firmware keeps a single
// implicit cursor set by Open and consumed by Write and Close. The handle
// makes that cursor explicit on the host so stale or doubled writes are
// caught before they reach the wire.
type RemoteFile struct {
	c      *Client
	path   string
	closed bool
}

// Open opens a remote file for writing and returns its handle. While a
// handle is open, a second Open fails with ErrFileOpen; close the first
// handle before opening another file.
func (c *Client) Open(path string) (*RemoteFile, error) {
	if c.open != nil {
		return nil, fmt.Errorf("open %s: %w", path, ErrFileOpen)
	}

	if _, err := c.execute("open", protocol.CmdOpen, []byte(path)); err != nil {
		return nil, err
	}

	f := &RemoteFile{c: c, path: path}
	c.open = f
	return f, nil
}

// Path returns the remote path the handle was opened with.
func (f *RemoteFile) Path() string {
	return f.path
}

// Write appends data to the remote file.
//
// The payload is split into chunks of at most protocol.MaxPayloadSize
// bytes, one Write command per chunk, in order. Empty data still issues a
// single empty-payload command. The first chunk rejected by the firmware
// aborts the operation; chunks already written are not rolled back, so on
// error the remote file is left partially written and the caller decides
// whether to Close and retry or Remove it.
func (f *RemoteFile) Write(data []byte) error {
	if f.closed {
		return fmt.Errorf("write %s: %w", f.path, ErrHandleClosed)
	}

	offset := 0
	for {
		end := offset + protocol.MaxPayloadSize
		if end > len(data) {
			end = len(data)
		}

		if _, err := f.c.execute("write", protocol.CmdWrite, data[offset:end]); err != nil {
			return fmt.Errorf("write %s at offset %d: %w", f.path, offset, err)
		}

		offset = end
		if offset >= len(data) {
			return nil
		}
	}
}

// Close closes the remote file and invalidates the handle.
func (f *RemoteFile) Close() error {
	if f.closed {
		return fmt.Errorf("close %s: %w", f.path, ErrHandleClosed)
	}

	f.closed = true
	f.c.open = nil

	if _, err := f.c.execute("close", protocol.CmdClose, nil); err != nil {
		return err
	}
	return nil
}

// WriteFile opens a remote file, writes data in chunks, and closes it.
// On a write failure the file is still closed so the session cursor is not
// left dangling; the write error wins over any close error.
func (c *Client) WriteFile(path string, data []byte) error {
	f, err := c.Open(path)
	if err != nil {
		return err
	}

	if err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
