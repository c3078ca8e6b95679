package device

import (
	"errors"
	"fmt"

	"github.com/ToffeeStudio/go-module/protocol"
)

// UnsupportedCommandError indicates an opcode the connected firmware's
// capability profile does not include.
type UnsupportedCommandError struct {
	Profile string
	Command protocol.Command
}

func (e *UnsupportedCommandError) Error() string {
	return fmt.Sprintf("firmware profile %q does not support opcode 0x%02X", e.Profile, byte(e.Command))
}

// ErrFileOpen is returned by Open while another remote file handle is still
// open. The wire protocol has a single implicit server-side cursor; the
// client refuses to silently repoint it.
var ErrFileOpen = errors.New("a remote file is already open")

// ErrHandleClosed is returned by RemoteFile operations after Close.
var ErrHandleClosed = errors.New("remote file handle is closed")
