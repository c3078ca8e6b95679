package dump

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ToffeeStudio/go-module/transport"
)

// Result reports what a receive loop accomplished. It is always populated,
// including when Receive returns an error: files saved before a mid-stream
// failure are kept and listed here.
type Result struct {
	// Files holds the paths of files saved to disk, in receive order
	Files []string

	// FileCount is len(Files)
	FileCount int

	// ByteCount is the total payload bytes saved across all files
	ByteCount int64
}

// Receiver runs the CDC bulk receive loop. Each file arrives as one frame:
//
//	[FILENAME: UTF-8 + 0x00][SIZE(4, little-endian)][PAYLOAD: SIZE bytes]
//
// A lone 0x00 where a filename would start ends the transfer explicitly.
// The firmware gives no authoritative end signal beyond that, so silence on
// the stream after at least one file is also treated as end-of-transfer;
// the inter-file timeout is deliberately exposed as configuration because
// a slow device is indistinguishable from a finished one.
type Receiver struct {
	t   transport.Transport
	cfg Config
}

// New creates a Receiver over the given stream transport.
//
// Example:
//
//	st, err := transport.OpenSerial(port)
//	if err != nil {
//	    return err
//	}
//	r := dump.New(st, dump.WithLogger(logger))
//	result, err := r.Receive("dump-out")
func New(t transport.Transport, opts ...Option) *Receiver {
	if t == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Receiver{t: t, cfg: cfg}
}

// Receive runs the receive loop until the transfer ends or a protocol
// failure aborts it.
//
// The output directory is removed and recreated first: a dump is always a
// clean slate, never mixed with the remains of a previous run. On abort the
// current file is deleted but completed files stay on disk, and the Result
// accounts for exactly what was kept.
func (r *Receiver) Receive(outDir string) (*Result, error) {
	result := &Result{}

	if err := os.RemoveAll(outDir); err != nil {
		return result, fmt.Errorf("clear output directory: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return result, fmt.Errorf("create output directory: %w", err)
	}

	for {
		name, done, err := r.readFilename(result.FileCount)
		if err != nil {
			return result, err
		}
		if done {
			r.cfg.Logger.Info().
				Int("files", result.FileCount).
				Int64("bytes", result.ByteCount).
				Msg("transfer complete")
			return result, nil
		}

		size, err := r.readSize(name)
		if err != nil {
			return result, err
		}

		path, err := destinationPath(outDir, name)
		if err != nil {
			return result, err
		}

		written, err := r.readPayload(path, name, size)
		if err != nil {
			return result, err
		}

		result.Files = append(result.Files, path)
		result.FileCount++
		result.ByteCount += written

		r.cfg.Logger.Info().
			Str("file", name).
			Int64("bytes", written).
			Msg("file saved")
	}
}

// readFilename accumulates filename bytes until the 0x00 terminator.
// done is true when the transfer ended, either by an explicit empty
// filename or by inter-file silence after at least one saved file.
func (r *Receiver) readFilename(filesReceived int) (name string, done bool, err error) {
	var buf []byte
	b := make([]byte, 1)

	for {
		n, err := r.t.ReadWithTimeout(b, r.cfg.InterFileTimeout)
		if err != nil {
			return "", false, fmt.Errorf("read filename: %w", err)
		}
		if n == 0 {
			// Stream went quiet.
			if len(buf) > 0 {
				return "", false, &TruncatedFrameError{Field: "filename", Got: len(buf)}
			}
			if filesReceived == 0 {
				return "", false, ErrNeverStarted
			}
			r.cfg.Logger.Debug().
				Dur("inter_file_timeout", r.cfg.InterFileTimeout).
				Msg("stream silent, treating as end of transfer")
			return "", true, nil
		}
		if b[0] == 0 {
			if len(buf) == 0 {
				// Explicit termination signal.
				return "", true, nil
			}
			return string(buf), false, nil
		}
		buf = append(buf, b[0])
	}
}

// readSize reads the 4-byte little-endian payload size. A short read is a
// hard error; there is no way to resynchronize mid-frame.
func (r *Receiver) readSize(name string) (uint32, error) {
	buf := make([]byte, 4)
	got := 0
	for got < 4 {
		n, err := r.t.ReadWithTimeout(buf[got:], r.cfg.InterFileTimeout)
		if err != nil {
			return 0, fmt.Errorf("read size for %q: %w", name, err)
		}
		if n == 0 {
			return 0, &TruncatedFrameError{Filename: name, Field: "size", Got: got, Want: 4}
		}
		got += n
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// readPayload streams exactly size bytes into path. A single silent read
// before size is reached deletes the partial file and aborts the transfer;
// the protocol has no retransmission primitive.
func (r *Receiver) readPayload(path, name string, size uint32) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}

	r.cfg.Integrity.Reset()

	var received int64
	expected := int64(size)
	buf := make([]byte, r.cfg.ReadChunkSize)

	for received < expected {
		want := expected - received
		if want > int64(len(buf)) {
			want = int64(len(buf))
		}

		n, err := r.t.ReadWithTimeout(buf[:want], r.cfg.DataTimeout)
		if err != nil {
			f.Close()
			os.Remove(path)
			return 0, fmt.Errorf("read payload for %q: %w", name, err)
		}
		if n == 0 {
			f.Close()
			os.Remove(path)
			return 0, &DataTimeoutError{Filename: name, Received: received, Expected: expected}
		}

		if _, err := f.Write(buf[:n]); err != nil {
			f.Close()
			os.Remove(path)
			return 0, fmt.Errorf("write %s: %w", path, err)
		}
		r.cfg.Integrity.Sum(buf[:n])
		received += int64(n)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("finalize %s: %w", path, err)
	}

	if err := r.cfg.Integrity.Verify(name); err != nil {
		os.Remove(path)
		return 0, err
	}

	return received, nil
}

// destinationPath joins the received filename to the output directory,
// rejecting names that would escape it. The device sends flat names; a
// traversing name is a protocol violation, not a file to write.
func destinationPath(outDir, name string) (string, error) {
	if name != filepath.Base(name) || name == "." || name == ".." {
		return "", &BadFilenameError{Name: name}
	}
	return filepath.Join(outDir, name), nil
}
