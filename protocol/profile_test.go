package protocol

import "testing"

func TestProfileOpcodeSets(t *testing.T) {
	// The classic firmware predates the CDC interface.
	for _, cmd := range []Command{CmdListNext, CmdSetWPMRange, CmdDumpFiles} {
		if ProfileClassic.Supports(cmd) {
			t.Errorf("classic profile should not support opcode 0x%02X", byte(cmd))
		}
		if !ProfileCDC.Supports(cmd) {
			t.Errorf("cdc profile should support opcode 0x%02X", byte(cmd))
		}
	}

	// The shared filesystem set is in both.
	for _, cmd := range []Command{CmdList, CmdOpen, CmdWrite, CmdClose, CmdFormat} {
		if !ProfileClassic.Supports(cmd) || !ProfileCDC.Supports(cmd) {
			t.Errorf("both profiles should support opcode 0x%02X", byte(cmd))
		}
	}

	if len(ProfileCDC.Commands()) != len(ProfileClassic.Commands())+3 {
		t.Errorf("cdc profile should add exactly 3 opcodes over classic")
	}
}

func TestProfileTimeouts(t *testing.T) {
	// Flash-touching commands get the long timeout, RAM-answered ones the
	// short one, and unknown opcodes fall back to interactive.
	if got := ProfileCDC.Timeout(CmdFormat); got != ProfileCDC.DeviceIO {
		t.Errorf("format timeout = %v, want %v", got, ProfileCDC.DeviceIO)
	}
	if got := ProfileCDC.Timeout(CmdList); got != ProfileCDC.Interactive {
		t.Errorf("list timeout = %v, want %v", got, ProfileCDC.Interactive)
	}
	if got := ProfileClassic.Timeout(CmdDumpFiles); got != ProfileClassic.Interactive {
		t.Errorf("unknown opcode timeout = %v, want %v", got, ProfileClassic.Interactive)
	}
}
