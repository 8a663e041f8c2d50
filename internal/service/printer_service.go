package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tehkencana/pos/internal/models"
	"github.com/tehkencana/pos/internal/storage"
)

// DeviceLister enumerates candidate printers.
type DeviceLister interface {
	PairedDevices(ctx context.Context) []models.Device
}

// PrinterService handles printer selection: enumerating paired devices and
// persisting the chosen address.
type PrinterService struct {
	store   storage.Store
	devices DeviceLister
}

// NewPrinterService creates a PrinterService with the given storage backend
// and device source.
func NewPrinterService(store storage.Store, devices DeviceLister) *PrinterService {
	return &PrinterService{store: store, devices: devices}
}

// PairedDevices lists the adapter's bonded devices. Empty when Bluetooth is
// unavailable; never an error.
func (s *PrinterService) PairedDevices(ctx context.Context) []models.Device {
	return s.devices.PairedDevices(ctx)
}

// Select persists addr as the printer for all future checkouts, replacing
// any previous selection.
func (s *PrinterService) Select(ctx context.Context, addr string) error {
	if addr == "" {
		return fmt.Errorf("device address must not be empty")
	}

	if err := s.store.SetPrinterAddress(ctx, addr); err != nil {
		return err
	}

	slog.Info("printer selected", "address", addr)
	return nil
}

// Selected returns the persisted printer address, "" when none is set.
func (s *PrinterService) Selected(ctx context.Context) (string, error) {
	return s.store.PrinterAddress(ctx)
}
