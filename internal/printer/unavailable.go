package printer

import (
	"context"

	"github.com/tehkencana/pos/internal/models"
)

var _ Adapter = UnavailableAdapter{}

// UnavailableAdapter stands in when the system bus cannot be reached at
// startup. Prints fail the adapter guard and the paired-device list is
// empty; the rest of the POS keeps working.
type UnavailableAdapter struct{}

func (UnavailableAdapter) Permitted(ctx context.Context) bool        { return true }
func (UnavailableAdapter) Powered(ctx context.Context) (bool, error) { return false, nil }
func (UnavailableAdapter) CancelDiscovery(ctx context.Context)       {}
func (UnavailableAdapter) PairedDevices(ctx context.Context) ([]models.Device, error) {
	return nil, nil
}
