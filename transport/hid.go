package transport

import (
	"fmt"
	"time"

	"github.com/sstallion/go-hid"
)

// HIDSelector identifies the module's raw HID interface among all HID
// interfaces the device exposes. All four fields must match exactly.
type HIDSelector struct {
	VendorID  uint16
	ProductID uint16
	UsagePage uint16
	Usage     uint16
}

// HIDTransport is the fixed-packet raw HID command channel.
type HIDTransport struct {
	dev  *hid.Device
	path string
}

// OpenHID enumerates HID devices and opens the first interface matching the
// selector. A device that is not present is a fatal condition for callers;
// no retry or polling is performed here.
func OpenHID(sel HIDSelector) (*HIDTransport, error) {
	if err := hid.Init(); err != nil {
		return nil, fmt.Errorf("initialize hidapi: %w", err)
	}

	var path string
	err := hid.Enumerate(sel.VendorID, sel.ProductID, func(info *hid.DeviceInfo) error {
		if path == "" && info.UsagePage == sel.UsagePage && info.Usage == sel.Usage {
			path = info.Path
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("enumerate HID devices: %w", err)
	}
	if path == "" {
		return nil, fmt.Errorf("no HID interface found for VID=0x%04X PID=0x%04X UsagePage=0x%04X Usage=0x%02X",
			sel.VendorID, sel.ProductID, sel.UsagePage, sel.Usage)
	}

	dev, err := hid.OpenPath(path)
	if err != nil {
		return nil, fmt.Errorf("open HID device %s: %w", path, err)
	}

	return &HIDTransport{dev: dev, path: path}, nil
}

// Path returns the platform path of the opened HID interface.
func (t *HIDTransport) Path() string {
	return t.path
}

// Write sends one output report. hidapi expects the report ID as the first
// byte; the module uses unnumbered reports, so a zero byte is prepended.
func (t *HIDTransport) Write(p []byte) (int, error) {
	report := make([]byte, 1+len(p))
	copy(report[1:], p)

	n, err := t.dev.Write(report)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		n--
	}
	return n, nil
}

// ReadWithTimeout reads one input report, waiting at most timeout.
// Returns 0 bytes and a nil error when the device stays silent.
func (t *HIDTransport) ReadWithTimeout(p []byte, timeout time.Duration) (int, error) {
	return t.dev.ReadWithTimeout(p, timeout)
}

// Close closes the HID device.
func (t *HIDTransport) Close() error {
	return t.dev.Close()
}
