//go:build !linux

package printer

import (
	"context"
	"errors"
	"io"
)

var _ Dialer = (*RFCOMMDialer)(nil)

// RFCOMMDialer requires Linux Bluetooth sockets; other platforms fail the
// connection attempt.
type RFCOMMDialer struct {
	Channel uint8
}

func (d *RFCOMMDialer) Dial(ctx context.Context, addr string) (io.ReadWriteCloser, error) {
	return nil, errors.New("rfcomm sockets are only supported on linux")
}
