package receipt

// ESC/POS control sequences for the target thermal printer. The alignment
// and emphasis selectors use the ASCII-digit argument form the device
// expects; these byte sequences are a hardware contract and must not change.
const (
	alignCenter = "\x1ba1" // ESC a 1
	alignLeft   = "\x1ba0" // ESC a 0
	boldOn      = "\x1bE1" // ESC E 1
	boldOff     = "\x1bE0" // ESC E 0
)

// Reset is the printer hardware-initialize command (ESC @), sent before the
// receipt payload.
var Reset = []byte{0x1B, 0x40}

// Cut feeds the paper and triggers the cutter (GS V B 0), sent after the
// payload.
var Cut = []byte{0x1D, 0x56, 0x42, 0x00}
