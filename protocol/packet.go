package protocol

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// BuildPacket constructs a complete command packet.
// The payload must not exceed MaxPayloadSize; callers are responsible for
// chunking larger payloads into multiple packets.
//
// Packet structure (always exactly PacketSize bytes, zero-padded):
//
//	[MAGIC][OPCODE][SEQ_0][SEQ_1][SEQ_2][SEQ_3][PAYLOAD...][0x00 padding]
//
// The sequence number is little-endian and supplied by the caller; the
// command channel increments it once per send attempt.
func BuildPacket(cmd Command, seq uint32, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayloadSize {
		return nil, fmt.Errorf("payload length %d exceeds maximum %d bytes", len(payload), MaxPayloadSize)
	}

	packet := make([]byte, PacketSize)
	packet[0] = Magic
	packet[1] = byte(cmd)
	binary.LittleEndian.PutUint32(packet[2:6], seq)
	copy(packet[HeaderSize:], payload)

	return packet, nil
}

// ParseResponse extracts the status code and payload from a response packet.
//
// Response structure:
//
//	[STATUS][PAYLOAD...]
//
// The payload is returned as-is, padding included: fixed-width binary
// payloads legitimately end in zero bytes, so only the consumer of a
// specific response knows where its data ends. String-valued responses
// trim their own padding. An empty response is rejected.
func ParseResponse(packet []byte) (Status, []byte, error) {
	if len(packet) == 0 {
		return StatusNoResponse, nil, fmt.Errorf("empty response packet")
	}

	return Status(packet[0]), packet[1:], nil
}

// ParseListPage splits one listing page payload into directory entry names.
// Each page is a concatenation of NUL-terminated names; empty names are
// dropped. Entries are returned in wire order.
func ParseListPage(payload []byte) []string {
	var entries []string
	for _, name := range bytes.Split(payload, []byte{0}) {
		if len(name) == 0 {
			continue
		}
		entries = append(entries, string(name))
	}
	return entries
}

// ParseFlashRemaining parses a flash-remaining response payload.
//
// Data format (4 bytes):
//
//	[FREE_BYTES(4, little-endian)]
func ParseFlashRemaining(payload []byte) (uint32, error) {
	if len(payload) < 4 {
		return 0, fmt.Errorf("invalid flash remaining payload: got %d bytes, expected 4", len(payload))
	}
	return binary.LittleEndian.Uint32(payload[:4]), nil
}

// TimePayload encodes a wall-clock time for the SetTime command.
//
// Data format (3 bytes):
//
//	[HOUR][MINUTE][SECOND]
func TimePayload(hour, minute, second int) ([]byte, error) {
	if hour < 0 || hour > 23 {
		return nil, fmt.Errorf("hour %d out of range 0-23", hour)
	}
	if minute < 0 || minute > 59 {
		return nil, fmt.Errorf("minute %d out of range 0-59", minute)
	}
	if second < 0 || second > 59 {
		return nil, fmt.Errorf("second %d out of range 0-59", second)
	}
	return []byte{byte(hour), byte(minute), byte(second)}, nil
}

// WPMRangePayload encodes a typing-speed range for the SetWPMRange command.
//
// Data format (4 bytes):
//
//	[MIN(2, little-endian)][MAX(2, little-endian)]
func WPMRangePayload(min, max uint16) ([]byte, error) {
	if min >= max {
		return nil, fmt.Errorf("wpm range minimum %d must be below maximum %d", min, max)
	}
	payload := make([]byte, 4)
	binary.LittleEndian.PutUint16(payload[0:2], min)
	binary.LittleEndian.PutUint16(payload[2:4], max)
	return payload, nil
}
