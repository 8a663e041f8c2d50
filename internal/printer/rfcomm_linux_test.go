//go:build linux

package printer

import "testing"

func TestParseMAC(t *testing.T) {
	tests := []struct {
		addr    string
		want    [6]byte
		wantErr bool
	}{
		// Kernel byte order is least significant byte first
		{addr: "AA:BB:CC:DD:EE:FF", want: [6]byte{0xFF, 0xEE, 0xDD, 0xCC, 0xBB, 0xAA}},
		{addr: "00:11:22:33:44:55", want: [6]byte{0x55, 0x44, 0x33, 0x22, 0x11, 0x00}},
		{addr: "not-a-mac", wantErr: true},
		{addr: "AA:BB:CC:DD:EE", wantErr: true},
		{addr: "AA:BB:CC:DD:EE:GG", wantErr: true},
		{addr: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			got, err := parseMAC(tt.addr)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseMAC(%q) expected error", tt.addr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseMAC(%q) failed: %v", tt.addr, err)
			}
			if got != tt.want {
				t.Errorf("parseMAC(%q) = %v, want %v", tt.addr, got, tt.want)
			}
		})
	}
}
