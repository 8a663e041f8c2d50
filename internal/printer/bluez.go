package printer

import (
	"context"
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/tehkencana/pos/internal/models"
)

const (
	bluezService      = "org.bluez"
	adapterInterface  = "org.bluez.Adapter1"
	deviceInterface   = "org.bluez.Device1"
	objectManagerCall = "org.freedesktop.DBus.ObjectManager.GetManagedObjects"
	dbusAccessDenied  = "org.freedesktop.DBus.Error.AccessDenied"
)

// Ensure BluezAdapter implements Adapter
var _ Adapter = (*BluezAdapter)(nil)

// BluezAdapter implements Adapter against the BlueZ daemon over the system
// D-Bus. Bonded-device enumeration and adapter state come from BlueZ's
// object tree; the data path itself goes through the RFCOMM dialer, not
// D-Bus.
type BluezAdapter struct {
	conn *dbus.Conn
}

// NewBluezAdapter connects to the system bus. The returned adapter is ready
// even when BlueZ itself is absent; calls then report the adapter as
// unavailable.
func NewBluezAdapter() (*BluezAdapter, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to system bus: %w", err)
	}
	return &BluezAdapter{conn: conn}, nil
}

// Permitted reports whether BlueZ will talk to us at all. A bus-level
// access denial maps to the PermissionDenied guard.
func (b *BluezAdapter) Permitted(ctx context.Context) bool {
	_, err := b.managedObjects(ctx)
	var dbusErr dbus.Error
	if errors.As(err, &dbusErr) && dbusErr.Name == dbusAccessDenied {
		return false
	}
	return true
}

// Powered reports whether any adapter is present and switched on.
func (b *BluezAdapter) Powered(ctx context.Context) (bool, error) {
	objects, err := b.managedObjects(ctx)
	if err != nil {
		return false, err
	}

	for _, ifaces := range objects {
		props, ok := ifaces[adapterInterface]
		if !ok {
			continue
		}
		if powered, ok := props["Powered"].Value().(bool); ok && powered {
			return true, nil
		}
	}
	return false, nil
}

// CancelDiscovery stops discovery on every adapter. Errors are ignored:
// "no discovery running" is the common case.
func (b *BluezAdapter) CancelDiscovery(ctx context.Context) {
	objects, err := b.managedObjects(ctx)
	if err != nil {
		return
	}

	for path, ifaces := range objects {
		if _, ok := ifaces[adapterInterface]; !ok {
			continue
		}
		obj := b.conn.Object(bluezService, path)
		_ = obj.CallWithContext(ctx, adapterInterface+".StopDiscovery", 0).Err
	}
}

// PairedDevices returns every bonded device known to BlueZ.
func (b *BluezAdapter) PairedDevices(ctx context.Context) ([]models.Device, error) {
	objects, err := b.managedObjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query bluez objects: %w", err)
	}

	var devices []models.Device
	for _, ifaces := range objects {
		props, ok := ifaces[deviceInterface]
		if !ok {
			continue
		}
		paired, _ := props["Paired"].Value().(bool)
		if !paired {
			continue
		}

		addr, _ := props["Address"].Value().(string)
		if addr == "" {
			continue
		}
		name, _ := props["Name"].Value().(string)
		devices = append(devices, models.Device{Name: name, Address: addr})
	}

	return devices, nil
}

func (b *BluezAdapter) managedObjects(ctx context.Context) (map[dbus.ObjectPath]map[string]map[string]dbus.Variant, error) {
	var objects map[dbus.ObjectPath]map[string]map[string]dbus.Variant
	obj := b.conn.Object(bluezService, "/")
	if err := obj.CallWithContext(ctx, objectManagerCall, 0).Store(&objects); err != nil {
		return nil, err
	}
	return objects, nil
}
