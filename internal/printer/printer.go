// Package printer transmits formatted receipts to a Bluetooth thermal
// printer over the serial port profile (RFCOMM).
//
// The adapter and socket layers sit behind small interfaces so the
// transmit sequence — guards, reset, payload, cut, timing hold — can be
// tested without hardware.
package printer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tehkencana/pos/internal/models"
	"github.com/tehkencana/pos/internal/receipt"
)

// SerialPortProfileUUID identifies the Bluetooth serial port profile the
// target printers expose. The transport connects on a fixed RFCOMM channel
// rather than resolving it through SDP; service negotiation is out of scope.
const SerialPortProfileUUID = "00001101-0000-1000-8000-00805F9B34FB"

// cutHold is how long the socket stays open after the cut command so the
// physical cut mechanism can finish. Hardware timing, not arbitrary.
const cutHold = time.Second

// Adapter abstracts the local Bluetooth radio.
type Adapter interface {
	// Permitted reports whether the process may use Bluetooth at all.
	Permitted(ctx context.Context) bool

	// Powered reports whether an enabled adapter is present.
	Powered(ctx context.Context) (bool, error)

	// CancelDiscovery stops any in-progress device discovery, which would
	// otherwise interfere with the connection attempt. Best effort.
	CancelDiscovery(ctx context.Context)

	// PairedDevices returns the adapter's bonded device set.
	PairedDevices(ctx context.Context) ([]models.Device, error)
}

// Dialer opens a serial-profile connection to a device by MAC address.
type Dialer interface {
	Dial(ctx context.Context, addr string) (io.ReadWriteCloser, error)
}

// Manager drives the single-path transmit sequence. No retries, no
// cancellation once transmission begins.
type Manager struct {
	adapter Adapter
	dialer  Dialer
	hold    time.Duration
}

// New creates a Manager on the given adapter and dialer.
func New(adapter Adapter, dialer Dialer) *Manager {
	return &Manager{adapter: adapter, dialer: dialer, hold: cutHold}
}

// Print transmits a formatted receipt payload to the device at addr.
//
// Guards fail fast, before any socket work: empty address, missing
// permission, absent or disabled adapter. On a successful connect it writes
// the hardware reset, the payload and the feed-and-cut command, holds the
// connection open for the cut mechanism, then closes. The socket is closed
// unconditionally once transmission completes or fails.
//
// Print blocks for the duration of the transfer; callers that must not
// stall run it on a one-shot goroutine.
func (m *Manager) Print(ctx context.Context, addr string, payload []byte) error {
	if addr == "" {
		return ErrNoDeviceSelected
	}
	if !m.adapter.Permitted(ctx) {
		return ErrPermissionDenied
	}

	powered, err := m.adapter.Powered(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAdapterUnavailable, err)
	}
	if !powered {
		return ErrAdapterUnavailable
	}

	m.adapter.CancelDiscovery(ctx)

	conn, err := m.dialer.Dial(ctx, addr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	defer conn.Close()

	slog.Debug("printer connected", "address", addr, "payload_bytes", len(payload))

	for _, chunk := range [][]byte{receipt.Reset, payload, receipt.Cut} {
		if _, err := conn.Write(chunk); err != nil {
			return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
		}
	}

	// Not interruptible: the cutter needs the link up until it finishes.
	time.Sleep(m.hold)

	return nil
}

// PairedDevices enumerates bonded devices as (name-or-empty, address)
// pairs. Missing permission or adapter yields an empty result, not an
// error: there is simply nothing to list.
func (m *Manager) PairedDevices(ctx context.Context) []models.Device {
	if !m.adapter.Permitted(ctx) {
		return nil
	}
	powered, err := m.adapter.Powered(ctx)
	if err != nil || !powered {
		return nil
	}

	devices, err := m.adapter.PairedDevices(ctx)
	if err != nil {
		slog.Warn("failed to enumerate paired devices", "error", err)
		return nil
	}
	return devices
}
