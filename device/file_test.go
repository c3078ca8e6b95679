package device

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ToffeeStudio/go-module/protocol"
)

// okScript returns n successful empty responses.
func okScript(n int) [][]byte {
	script := make([][]byte, n)
	for i := range script {
		script[i] = respond(protocol.StatusOK, nil)
	}
	return script
}

func TestWriteChunking(t *testing.T) {
	tests := []struct {
		name       string
		dataLen    int
		wantChunks int
	}{
		{"empty write still issues one command", 0, 1},
		{"single partial chunk", 10, 1},
		{"exactly one chunk", protocol.MaxPayloadSize, 1},
		{"one byte over", protocol.MaxPayloadSize + 1, 2},
		{"many chunks", protocol.MaxPayloadSize*3 + 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// +1 exchange for the open.
			mt := &mockTransport{script: okScript(tt.wantChunks + 1)}
			c := New(mt)

			f, err := c.Open("out.raw")
			assert.Nil(t, err)

			data := bytes.Repeat([]byte{0x5A}, tt.dataLen)
			assert.Nil(t, f.Write(data))

			writes := mt.writes[1:]
			assert.Len(t, writes, tt.wantChunks)

			// Chunks arrive in order and reassemble to the input.
			var reassembled []byte
			for i, packet := range writes {
				assert.EqualValues(t, protocol.CmdWrite, packet[1], "chunk %d opcode", i)
				end := protocol.HeaderSize + protocol.MaxPayloadSize
				reassembled = append(reassembled, packet[protocol.HeaderSize:end]...)
			}
			assert.Equal(t, data, bytes.TrimRight(reassembled, "\x00"))
		})
	}
}

func TestWriteFailsFast(t *testing.T) {
	// Chunk 2 of 3 is rejected: chunk 3 must never be sent, chunk 1 is
	// not rolled back.
	mt := &mockTransport{script: [][]byte{
		respond(protocol.StatusOK, nil), // open
		respond(protocol.StatusOK, nil), // chunk 1
		respond(protocol.StatusFlashFull, nil),
	}}
	c := New(mt)

	f, err := c.Open("big.raw")
	assert.Nil(t, err)

	data := bytes.Repeat([]byte{1}, protocol.MaxPayloadSize*3)
	err = f.Write(data)
	assert.NotNil(t, err)

	var statusErr *protocol.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, protocol.StatusFlashFull, statusErr.Status)
	assert.Len(t, mt.writes, 3, "no chunks after the failed one")
}

func TestOpenWhileOpen(t *testing.T) {
	mt := &mockTransport{script: okScript(3)}
	c := New(mt)

	f, err := c.Open("a.raw")
	assert.Nil(t, err)

	_, err = c.Open("b.raw")
	assert.ErrorIs(t, err, ErrFileOpen)

	assert.Nil(t, f.Close())

	// After close the cursor is free again.
	g, err := c.Open("b.raw")
	assert.Nil(t, err)
	assert.Equal(t, "b.raw", g.Path())
}

func TestClosedHandleIsInert(t *testing.T) {
	mt := &mockTransport{script: okScript(2)}
	c := New(mt)

	f, err := c.Open("a.raw")
	assert.Nil(t, err)
	assert.Nil(t, f.Close())

	assert.ErrorIs(t, f.Write([]byte("x")), ErrHandleClosed)
	assert.ErrorIs(t, f.Close(), ErrHandleClosed)
	assert.Len(t, mt.writes, 2, "stale handle use must not reach the wire")
}

func TestWriteFile(t *testing.T) {
	mt := &mockTransport{script: okScript(4)} // open + 2 chunks + close
	c := New(mt)

	data := bytes.Repeat([]byte{7}, protocol.MaxPayloadSize+4)
	assert.Nil(t, c.WriteFile("f.raw", data))

	assert.EqualValues(t, protocol.CmdOpen, mt.writes[0][1])
	assert.EqualValues(t, protocol.CmdWrite, mt.writes[1][1])
	assert.EqualValues(t, protocol.CmdWrite, mt.writes[2][1])
	assert.EqualValues(t, protocol.CmdClose, mt.writes[3][1])
	assert.Nil(t, c.open, "session cursor released")
}

func TestWriteFileClosesOnFailure(t *testing.T) {
	mt := &mockTransport{script: [][]byte{
		respond(protocol.StatusOK, nil),        // open
		respond(protocol.StatusFlashFull, nil), // chunk rejected
		respond(protocol.StatusOK, nil),        // close still sent
	}}
	c := New(mt)

	err := c.WriteFile("f.raw", []byte("data"))
	assert.NotNil(t, err)
	assert.EqualValues(t, protocol.CmdClose, mt.writes[2][1])
	assert.Nil(t, c.open)
}
