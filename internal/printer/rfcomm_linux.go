//go:build linux

package printer

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// Ensure RFCOMMDialer implements Dialer
var _ Dialer = (*RFCOMMDialer)(nil)

// RFCOMMDialer opens AF_BLUETOOTH stream sockets to the serial port profile
// on a fixed channel. Thermal printers conventionally expose SPP on
// channel 1.
type RFCOMMDialer struct {
	// Channel is the RFCOMM channel to connect on. Zero means channel 1.
	Channel uint8
}

// Dial connects to the device at addr ("AA:BB:CC:DD:EE:FF"). The connect
// blocks until the device accepts or the kernel gives up; once started it
// is not cancelled.
func (d *RFCOMMDialer) Dial(ctx context.Context, addr string) (io.ReadWriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mac, err := parseMAC(addr)
	if err != nil {
		return nil, err
	}

	channel := d.Channel
	if channel == 0 {
		channel = 1
	}

	fd, err := unix.Socket(unix.AF_BLUETOOTH, unix.SOCK_STREAM, unix.BTPROTO_RFCOMM)
	if err != nil {
		return nil, fmt.Errorf("failed to open rfcomm socket: %w", err)
	}

	sa := &unix.SockaddrRFCOMM{Addr: mac, Channel: channel}
	if err := unix.Connect(fd, sa); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	return &rfcommConn{fd: fd}, nil
}

// parseMAC converts a colon-separated MAC string into the byte order the
// kernel expects (least significant byte first).
func parseMAC(addr string) ([6]byte, error) {
	var mac [6]byte
	parts := strings.Split(addr, ":")
	if len(parts) != 6 {
		return mac, fmt.Errorf("invalid device address: %q", addr)
	}
	for i, part := range parts {
		b, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return mac, fmt.Errorf("invalid device address: %q", addr)
		}
		mac[5-i] = byte(b)
	}
	return mac, nil
}

type rfcommConn struct {
	fd int
}

func (c *rfcommConn) Read(p []byte) (int, error) {
	return unix.Read(c.fd, p)
}

func (c *rfcommConn) Write(p []byte) (int, error) {
	// unix.Write may write short on a stalled link; loop until done
	total := 0
	for total < len(p) {
		n, err := unix.Write(c.fd, p[total:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func (c *rfcommConn) Close() error {
	return unix.Close(c.fd)
}
