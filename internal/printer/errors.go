package printer

import "errors"

// Printing failures are terminal: they are reported to the caller once and
// never retried, and they never propagate into catalog or cart state.
var (
	// ErrNoDeviceSelected means checkout ran with no printer configured.
	ErrNoDeviceSelected = errors.New("no printer selected")

	// ErrPermissionDenied means the process lacks Bluetooth access.
	ErrPermissionDenied = errors.New("bluetooth permission denied")

	// ErrAdapterUnavailable means the Bluetooth radio is absent or off.
	ErrAdapterUnavailable = errors.New("bluetooth adapter unavailable")

	// ErrConnectionFailed wraps socket-level failures during connect or
	// write; the underlying message is preserved for the user.
	ErrConnectionFailed = errors.New("printer connection failed")
)
