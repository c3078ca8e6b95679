package protocol

import "time"

// TimeoutClass groups commands by how long the module may take to answer.
type TimeoutClass int

const (
	// TimeoutInteractive covers commands answered straight from RAM
	TimeoutInteractive TimeoutClass = iota

	// TimeoutDeviceIO covers commands that touch flash or bring up the
	// CDC interface before answering
	TimeoutDeviceIO
)

// Profile describes one firmware protocol variant as data: which opcodes it
// accepts, how each is timed, and the dump settle delay. Firmware revisions
// differ only in these tables, not in framing, so variants are capability
// profiles rather than separate code paths.
type Profile struct {
	// Name identifies the profile in logs and errors
	Name string

	// Interactive is the exchange timeout for TimeoutInteractive commands
	Interactive time.Duration

	// DeviceIO is the exchange timeout for TimeoutDeviceIO commands
	DeviceIO time.Duration

	// SettleDelay is how long the host waits after triggering a bulk dump
	// before opening the CDC stream; the firmware needs time to enumerate
	// the second interface
	SettleDelay time.Duration

	commands map[Command]TimeoutClass
}

// Supports reports whether the profile's firmware accepts the opcode.
func (p *Profile) Supports(cmd Command) bool {
	_, ok := p.commands[cmd]
	return ok
}

// Timeout returns the exchange timeout for the opcode. Unknown opcodes get
// the interactive timeout; the firmware answers them immediately with
// StatusInvalidCommand.
func (p *Profile) Timeout(cmd Command) time.Duration {
	if p.commands[cmd] == TimeoutDeviceIO {
		return p.DeviceIO
	}
	return p.Interactive
}

// Commands returns the opcodes the profile supports, in no particular order.
func (p *Profile) Commands() []Command {
	cmds := make([]Command, 0, len(p.commands))
	for cmd := range p.commands {
		cmds = append(cmds, cmd)
	}
	return cmds
}

// classicCommands is the opcode set of the original filesystem firmware.
var classicCommands = map[Command]TimeoutClass{
	CmdList:           TimeoutInteractive,
	CmdChangeDir:      TimeoutInteractive,
	CmdWorkingDir:     TimeoutInteractive,
	CmdRemove:         TimeoutDeviceIO,
	CmdMakeDir:        TimeoutDeviceIO,
	CmdTouch:          TimeoutDeviceIO,
	CmdReadFile:       TimeoutInteractive,
	CmdOpen:           TimeoutDeviceIO,
	CmdWrite:          TimeoutDeviceIO,
	CmdClose:          TimeoutDeviceIO,
	CmdFormat:         TimeoutDeviceIO,
	CmdFlashRemaining: TimeoutInteractive,
	CmdChooseImage:    TimeoutDeviceIO,
	CmdWriteDisplay:   TimeoutInteractive,
	CmdSetTime:        TimeoutInteractive,
}

// cdcCommands extends the classic set with paginated listings, the typing
// speed gauge, and the CDC bulk dump trigger.
var cdcCommands = func() map[Command]TimeoutClass {
	m := make(map[Command]TimeoutClass, len(classicCommands)+3)
	for cmd, class := range classicCommands {
		m[cmd] = class
	}
	m[CmdListNext] = TimeoutInteractive
	m[CmdSetWPMRange] = TimeoutInteractive
	m[CmdDumpFiles] = TimeoutDeviceIO
	return m
}()

// ProfileClassic matches the original filesystem firmware: no listing
// continuation, no CDC dump.
var ProfileClassic = &Profile{
	Name:        "classic",
	Interactive: 1 * time.Second,
	DeviceIO:    5 * time.Second,
	SettleDelay: 500 * time.Millisecond,
	commands:    classicCommands,
}

// ProfileCDC matches firmware with the CDC dump interface. This is the
// default for new clients.
var ProfileCDC = &Profile{
	Name:        "cdc",
	Interactive: 1 * time.Second,
	DeviceIO:    5 * time.Second,
	SettleDelay: 500 * time.Millisecond,
	commands:    cdcCommands,
}
