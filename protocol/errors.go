package protocol

import "fmt"

// StatusError represents a non-success status returned by the module.
// It carries the raw status byte so callers can branch on specific codes.
type StatusError struct {
	// Operation is the command that failed
	Operation string

	// Status is the status code from the module response
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed: %s (0x%02X)", e.Operation, StatusName(e.Status), byte(e.Status))
}

// IsStatusError returns true if the error is a StatusError.
func IsStatusError(err error) bool {
	_, ok := err.(*StatusError)
	return ok
}

// StatusName returns a human-readable name for a status code.
func StatusName(s Status) string {
	switch s {
	case StatusOK:
		return "success"
	case StatusImageExists:
		return "image already exists"
	case StatusFlashFull:
		return "image flash full"
	case StatusWidthOutOfBounds:
		return "image width out of bounds"
	case StatusHeightOutOfBounds:
		return "image height out of bounds"
	case StatusNameInUse:
		return "name already in use"
	case StatusNotFound:
		return "not found"
	case StatusNotOpen:
		return "no file open"
	case StatusPacketIDError:
		return "packet sequence error"
	case StatusFlashRemaining:
		return "flash remaining report"
	case StatusMoreEntries:
		return "more entries available"
	case StatusInvalidCommand:
		return "invalid command"
	case StatusNoResponse:
		return "no response from device"
	default:
		return fmt.Sprintf("unknown status code 0x%02X", byte(s))
	}
}
