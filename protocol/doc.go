// Package protocol implements the ToffeeStudio module wire protocol.
//
// This package provides packet construction and response parsing for the
// raw HID command channel, the status and opcode tables, and capability
// profiles describing firmware protocol variants.
//
// # Protocol Overview
//
// Every command travels in one fixed-size raw HID report:
//
//	Command:  [MAGIC][OPCODE][SEQ(4, LE)][PAYLOAD...][0x00 padding to 32]
//	Response: [STATUS][PAYLOAD...]
//
// Where:
//   - MAGIC = 0x09
//   - SEQ = host packet sequence, little-endian, incremented per send
//   - STATUS = one of the Status* codes
//
// Packets are always exactly PacketSize bytes; payloads longer than
// MaxPayloadSize must be chunked by the caller.
//
// # Usage
//
// Build a command packet and parse the response:
//
//	packet, err := protocol.BuildPacket(protocol.CmdOpen, seq, []byte("logo.raw"))
//	status, data, err := protocol.ParseResponse(response)
//	if status != protocol.StatusOK {
//	    return &protocol.StatusError{Operation: "open", Status: status}
//	}
//
// # Profiles
//
// Firmware revisions differ in opcode sets and timing, never in framing.
// A Profile captures one revision as data:
//
//	if !profile.Supports(protocol.CmdDumpFiles) {
//	    return fmt.Errorf("firmware %s cannot dump files", profile.Name)
//	}
//	timeout := profile.Timeout(protocol.CmdFormat)
package protocol
