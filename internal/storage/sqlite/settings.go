package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// printerMACKey is the settings row holding the selected printer's address.
const printerMACKey = "printer_mac"

// PrinterAddress returns the persisted printer MAC, or "" when no printer
// has been selected yet. An unset selection is not an error.
func (s *SQLiteStore) PrinterAddress(ctx context.Context) (string, error) {
	var addr string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = ?", printerMACKey,
	).Scan(&addr)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get printer address: %w", err)
	}

	return addr, nil
}

// SetPrinterAddress persists the chosen printer MAC, overwriting any
// previous selection.
func (s *SQLiteStore) SetPrinterAddress(ctx context.Context, addr string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		printerMACKey, addr,
	)
	if err != nil {
		return fmt.Errorf("failed to set printer address: %w", err)
	}

	return nil
}
