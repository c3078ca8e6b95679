package protocol

// Packet framing constants. These must match RAW_EPSIZE and the raw HID
// handler in the module firmware.
const (
	// Magic is the first byte of every command packet (0x09)
	Magic = 0x09

	// PacketSize is the fixed total length of a command or response packet
	PacketSize = 32

	// HeaderSize is the command header length:
	// Magic(1) + Opcode(1) + Sequence(4, little-endian)
	HeaderSize = 6

	// MaxPayloadSize is the maximum command payload per packet
	MaxPayloadSize = PacketSize - HeaderSize
)

// Command is a single-byte command opcode.
type Command byte

// Command opcodes understood by the module firmware.
const (
	// CmdList requests the first page of the current directory listing
	CmdList Command = 0x50

	// CmdChangeDir changes the remote working directory
	CmdChangeDir Command = 0x51

	// CmdWorkingDir reports the remote working directory
	CmdWorkingDir Command = 0x52

	// CmdRemove removes a remote file or directory
	CmdRemove Command = 0x53

	// CmdMakeDir creates a remote directory
	CmdMakeDir Command = 0x54

	// CmdTouch creates an empty remote file
	CmdTouch Command = 0x55

	// CmdReadFile reads the contents of a remote file
	CmdReadFile Command = 0x56

	// CmdOpen opens a remote file for writing
	CmdOpen Command = 0x57

	// CmdWrite appends one chunk to the currently open remote file
	CmdWrite Command = 0x58

	// CmdClose closes the currently open remote file
	CmdClose Command = 0x59

	// CmdFormat reformats the module filesystem
	CmdFormat Command = 0x5A

	// CmdFlashRemaining queries free flash space (u32 little-endian response)
	CmdFlashRemaining Command = 0x5B

	// CmdChooseImage selects the image shown on the display
	CmdChooseImage Command = 0x5C

	// CmdWriteDisplay pushes raw RGB565 pixels straight to the display
	CmdWriteDisplay Command = 0x5D

	// CmdSetTime sets the on-device clock (hour, minute, second bytes)
	CmdSetTime Command = 0x5E

	// CmdListNext requests the next page of a directory listing
	CmdListNext Command = 0x5F

	// CmdSetWPMRange sets the typing-speed gauge range (min, max u16 LE)
	CmdSetWPMRange Command = 0x60

	// CmdDumpFiles triggers a bulk file dump over the CDC interface
	CmdDumpFiles Command = 0x61
)

// Status is the first byte of a response packet.
type Status byte

// Status codes returned by the module firmware, plus the host-side
// StatusNoResponse sentinel which never appears on the wire.
const (
	// StatusOK indicates the command was executed successfully
	StatusOK Status = 0x00

	// StatusImageExists indicates the image already exists on flash
	StatusImageExists Status = 0xE1

	// StatusFlashFull indicates the image flash region is full
	StatusFlashFull Status = 0xE2

	// StatusWidthOutOfBounds indicates an image width the panel cannot show
	StatusWidthOutOfBounds Status = 0xE3

	// StatusHeightOutOfBounds indicates an image height the panel cannot show
	StatusHeightOutOfBounds Status = 0xE4

	// StatusNameInUse indicates the target name is already taken
	StatusNameInUse Status = 0xE5

	// StatusNotFound indicates the named file or image does not exist
	StatusNotFound Status = 0xE6

	// StatusNotOpen indicates a write or close without an open file
	StatusNotOpen Status = 0xE7

	// StatusPacketIDError indicates the firmware saw an unexpected sequence
	StatusPacketIDError Status = 0xE8

	// StatusFlashRemaining tags a flash-remaining report payload
	StatusFlashRemaining Status = 0xE9

	// StatusMoreEntries indicates a listing page with more entries to fetch
	StatusMoreEntries Status = 0xEA

	// StatusInvalidCommand indicates the firmware rejected the opcode
	StatusInvalidCommand Status = 0xEF

	// StatusNoResponse is reported by the host when no response packet
	// arrived within the exchange timeout. It is never sent by the device.
	StatusNoResponse Status = 0xFF
)
