package protocol

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestBuildPacketSize(t *testing.T) {
	// Every well-formed packet is exactly PacketSize bytes regardless of
	// payload length.
	opcodes := []Command{
		CmdList, CmdChangeDir, CmdWorkingDir, CmdRemove, CmdMakeDir,
		CmdTouch, CmdReadFile, CmdOpen, CmdWrite, CmdClose, CmdFormat,
		CmdFlashRemaining, CmdChooseImage, CmdWriteDisplay, CmdSetTime,
		CmdListNext, CmdSetWPMRange, CmdDumpFiles,
	}

	for _, cmd := range opcodes {
		for payloadLen := 0; payloadLen <= MaxPayloadSize; payloadLen++ {
			payload := bytes.Repeat([]byte{0xAB}, payloadLen)
			packet, err := BuildPacket(cmd, 7, payload)
			if err != nil {
				t.Fatalf("BuildPacket(0x%02X, len=%d): %v", byte(cmd), payloadLen, err)
			}
			if len(packet) != PacketSize {
				t.Fatalf("BuildPacket(0x%02X, len=%d): packet length %d, want %d",
					byte(cmd), payloadLen, len(packet), PacketSize)
			}
		}
	}
}

func TestBuildPacketLayout(t *testing.T) {
	packet, err := BuildPacket(CmdOpen, 0x01020304, []byte("logo.raw"))
	if err != nil {
		t.Fatalf("BuildPacket: %v", err)
	}

	if packet[0] != Magic {
		t.Errorf("magic = 0x%02X, want 0x%02X", packet[0], Magic)
	}
	if packet[1] != byte(CmdOpen) {
		t.Errorf("opcode = 0x%02X, want 0x%02X", packet[1], byte(CmdOpen))
	}
	if seq := binary.LittleEndian.Uint32(packet[2:6]); seq != 0x01020304 {
		t.Errorf("seq = 0x%08X, want 0x01020304", seq)
	}
	if !bytes.Equal(packet[HeaderSize:HeaderSize+8], []byte("logo.raw")) {
		t.Errorf("payload = %q, want %q", packet[HeaderSize:HeaderSize+8], "logo.raw")
	}
	for i := HeaderSize + 8; i < PacketSize; i++ {
		if packet[i] != 0 {
			t.Fatalf("padding byte %d = 0x%02X, want 0x00", i, packet[i])
		}
	}
}

func TestBuildPacketOversizedPayload(t *testing.T) {
	payload := bytes.Repeat([]byte{1}, MaxPayloadSize+1)
	if _, err := BuildPacket(CmdWrite, 0, payload); err == nil {
		t.Fatal("expected error for oversized payload, got nil")
	}
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name        string
		packet      []byte
		wantStatus  Status
		wantPayload []byte
		wantErr     bool
	}{
		{
			name:        "success with payload",
			packet:      append([]byte{0x00, 'a', 'b'}, make([]byte, 29)...),
			wantStatus:  StatusOK,
			wantPayload: append([]byte("ab"), make([]byte, 29)...),
		},
		{
			name:        "domain error no payload",
			packet:      append([]byte{0xE6}, make([]byte, 31)...),
			wantStatus:  StatusNotFound,
			wantPayload: make([]byte, 31),
		},
		{
			name:        "more entries",
			packet:      append([]byte{0xEA, 'x', 0x00, 'y', 0x00}, make([]byte, 27)...),
			wantStatus:  StatusMoreEntries,
			wantPayload: append([]byte{'x', 0x00, 'y', 0x00}, make([]byte, 27)...),
		},
		{
			name:    "empty packet",
			packet:  nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, payload, err := ParseResponse(tt.packet)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseResponse: %v", err)
			}
			if status != tt.wantStatus {
				t.Errorf("status = 0x%02X, want 0x%02X", byte(status), byte(tt.wantStatus))
			}
			if !bytes.Equal(payload, tt.wantPayload) {
				t.Errorf("payload = %v, want %v", payload, tt.wantPayload)
			}
		})
	}
}

func TestParseResponseKeepsBinaryTrailingZeros(t *testing.T) {
	// A flash-remaining report for 0x20000 free bytes ends in a zero byte
	// that is data, not padding. ParseResponse must hand the payload over
	// untouched so fixed-width consumers can slice it themselves.
	packet := make([]byte, PacketSize)
	packet[0] = byte(StatusOK)
	copy(packet[1:], []byte{0x00, 0x00, 0x02, 0x00})

	_, payload, err := ParseResponse(packet)
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	if len(payload) != PacketSize-1 {
		t.Fatalf("payload length = %d, want %d", len(payload), PacketSize-1)
	}

	free, err := ParseFlashRemaining(payload)
	if err != nil {
		t.Fatalf("ParseFlashRemaining: %v", err)
	}
	if free != 0x20000 {
		t.Errorf("free = 0x%X, want 0x20000", free)
	}
}

func TestParseListPage(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    []string
	}{
		{"two entries", []byte("a\x00b\x00"), []string{"a", "b"}},
		{"trailing garbage nulls", []byte("logo.raw\x00\x00\x00"), []string{"logo.raw"}},
		{"empty payload", nil, nil},
		{"only nulls", []byte{0, 0, 0}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseListPage(tt.payload)
			if len(got) != len(tt.want) {
				t.Fatalf("entries = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseFlashRemaining(t *testing.T) {
	free, err := ParseFlashRemaining([]byte{0x00, 0x10, 0x00, 0x00})
	if err != nil {
		t.Fatalf("ParseFlashRemaining: %v", err)
	}
	if free != 4096 {
		t.Errorf("free = %d, want 4096", free)
	}

	if _, err := ParseFlashRemaining([]byte{1, 2}); err == nil {
		t.Fatal("expected error for short payload, got nil")
	}
}

func TestTimePayload(t *testing.T) {
	payload, err := TimePayload(13, 37, 59)
	if err != nil {
		t.Fatalf("TimePayload: %v", err)
	}
	if !bytes.Equal(payload, []byte{13, 37, 59}) {
		t.Errorf("payload = %v, want [13 37 59]", payload)
	}

	for _, bad := range [][3]int{{24, 0, 0}, {-1, 0, 0}, {0, 60, 0}, {0, 0, 60}} {
		if _, err := TimePayload(bad[0], bad[1], bad[2]); err == nil {
			t.Errorf("TimePayload(%v): expected error, got nil", bad)
		}
	}
}

func TestWPMRangePayload(t *testing.T) {
	payload, err := WPMRangePayload(40, 120)
	if err != nil {
		t.Fatalf("WPMRangePayload: %v", err)
	}
	if binary.LittleEndian.Uint16(payload[0:2]) != 40 || binary.LittleEndian.Uint16(payload[2:4]) != 120 {
		t.Errorf("payload = %v, want 40/120 little-endian", payload)
	}

	if _, err := WPMRangePayload(120, 40); err == nil {
		t.Fatal("expected error for inverted range, got nil")
	}
	if _, err := WPMRangePayload(50, 50); err == nil {
		t.Fatal("expected error for empty range, got nil")
	}
}
