package dump

import (
	"errors"
	"fmt"
)

// ErrNeverStarted is returned when the stream stays silent before the
// first filename byte: the device never began transferring.
var ErrNeverStarted = errors.New("transfer never started: no data before timeout")

// TruncatedFrameError indicates a frame header field that ended mid-way.
// There is no way to resynchronize the stream after one of these.
type TruncatedFrameError struct {
	// Filename is the frame's filename, when it was readable
	Filename string

	// Field names the truncated frame field
	Field string

	// Got and Want are the byte counts read and required
	Got  int
	Want int
}

func (e *TruncatedFrameError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("truncated %s field: got %d bytes", e.Field, e.Got)
	}
	return fmt.Sprintf("truncated %s field for %q: got %d of %d bytes", e.Field, e.Filename, e.Got, e.Want)
}

// DataTimeoutError indicates the stream went silent inside a file payload.
// The partial file has been deleted; earlier completed files are kept.
type DataTimeoutError struct {
	Filename string
	Received int64
	Expected int64
}

func (e *DataTimeoutError) Error() string {
	return fmt.Sprintf("timeout receiving %q at %d/%d bytes", e.Filename, e.Received, e.Expected)
}

// BadFilenameError indicates a received filename that would escape the
// output directory.
type BadFilenameError struct {
	Name string
}

func (e *BadFilenameError) Error() string {
	return fmt.Sprintf("refusing unsafe filename %q", e.Name)
}
