package models

// Device is a paired Bluetooth device as reported by the adapter.
type Device struct {
	// Name is the device's advertised display name, empty when the
	// adapter has none on record.
	Name string

	// Address is the device's MAC address ("AA:BB:CC:DD:EE:FF"). This is
	// what gets persisted as the printer selection.
	Address string
}
