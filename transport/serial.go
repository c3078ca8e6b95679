package transport

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// BaudRate is the CDC baud rate. USB CDC ignores it, but the port still
// has to be opened with one.
const BaudRate = 115200

// SerialTransport is the free-form CDC byte stream used for bulk transfer.
type SerialTransport struct {
	port        serial.Port
	name        string
	lastTimeout time.Duration
}

// OpenSerial opens the named serial port for module traffic.
func OpenSerial(name string) (*SerialTransport, error) {
	port, err := serial.Open(name, &serial.Mode{
		BaudRate: BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", name, err)
	}
	return &SerialTransport{port: port, name: name, lastTimeout: -1}, nil
}

// Name returns the port name.
func (t *SerialTransport) Name() string {
	return t.name
}

// Write sends p on the serial port.
func (t *SerialTransport) Write(p []byte) (int, error) {
	return t.port.Write(p)
}

// ReadWithTimeout reads up to len(p) bytes, waiting at most timeout for
// data. Returns 0 bytes and a nil error when the port stays silent.
func (t *SerialTransport) ReadWithTimeout(p []byte, timeout time.Duration) (int, error) {
	if timeout != t.lastTimeout {
		if err := t.port.SetReadTimeout(timeout); err != nil {
			return 0, fmt.Errorf("set read timeout: %w", err)
		}
		t.lastTimeout = timeout
	}
	return t.port.Read(p)
}

// Close closes the serial port.
func (t *SerialTransport) Close() error {
	return t.port.Close()
}

// FindPort scans OS-reported serial ports for the module's CDC interface.
// Candidates are accepted, in order, by exact VID/PID match, by product
// string substring, and by hardware-ID inspection of the port metadata.
// The first match wins; later matches are logged and ignored.
func FindPort(vid, pid uint16, product string, log zerolog.Logger) (string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return "", fmt.Errorf("enumerate serial ports: %w", err)
	}
	if len(ports) == 0 {
		return "", fmt.Errorf("no serial ports found")
	}

	var found string
	for _, p := range ports {
		method := matchPort(p, vid, pid, product)
		if method == "" {
			continue
		}
		log.Debug().
			Str("port", p.Name).
			Str("method", method).
			Str("product", p.Product).
			Msg("serial port matched")
		if found == "" {
			found = p.Name
		} else {
			log.Warn().Str("port", p.Name).Msg("additional matching port ignored")
		}
	}

	if found == "" {
		return "", fmt.Errorf("no CDC port found for VID=0x%04X PID=0x%04X", vid, pid)
	}
	return found, nil
}

// matchPort reports which discovery method accepted the port, or "" for no
// match.
func matchPort(p *enumerator.PortDetails, vid, pid uint16, product string) string {
	if p.IsUSB {
		portVID, errV := strconv.ParseUint(p.VID, 16, 16)
		portPID, errP := strconv.ParseUint(p.PID, 16, 16)
		if errV == nil && errP == nil && uint16(portVID) == vid && uint16(portPID) == pid {
			return "vid/pid"
		}
	}
	if product != "" && p.Product != "" && strings.Contains(p.Product, product) {
		return "product"
	}
	// Some drivers report no parsed USB IDs but embed them in the port
	// metadata strings.
	if MatchHardwareID(p.Product, vid, pid) || MatchHardwareID(p.SerialNumber, vid, pid) {
		return "hwid"
	}
	return ""
}

// MatchHardwareID reports whether a platform hardware-ID string names the
// given VID/PID pair. Both observed formats are accepted:
//
//	VID:PID=1067:626D
//	VID_1067&PID_626D
func MatchHardwareID(hwid string, vid, pid uint16) bool {
	if hwid == "" {
		return false
	}
	hwid = strings.ToUpper(hwid)
	colonForm := fmt.Sprintf("VID:PID=%04X:%04X", vid, pid)
	underscoreForm := fmt.Sprintf("VID_%04X&PID_%04X", vid, pid)
	return strings.Contains(hwid, colonForm) || strings.Contains(hwid, underscoreForm)
}
