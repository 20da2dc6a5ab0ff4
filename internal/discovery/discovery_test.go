package discovery

import (
	"net"
	"testing"

	"github.com/grandcat/zeroconf"
	"github.com/stretchr/testify/assert"
)

func TestEntryURL(t *testing.T) {
	tests := []struct {
		entry  *zeroconf.ServiceEntry
		name   string
		want   string
		wantOK bool
	}{
		{name: "nil entry"},
		{
			name:   "ipv4",
			entry:  &zeroconf.ServiceEntry{AddrIPv4: []net.IP{net.ParseIP("192.168.1.10")}, Port: 5000},
			want:   "http://192.168.1.10:5000",
			wantOK: true,
		},
		{
			name: "ipv4 preferred over ipv6",
			entry: &zeroconf.ServiceEntry{
				AddrIPv4: []net.IP{net.ParseIP("10.0.0.2")},
				AddrIPv6: []net.IP{net.ParseIP("fe80::1")},
				Port:     8080,
			},
			want:   "http://10.0.0.2:8080",
			wantOK: true,
		},
		{
			name:   "ipv6 only",
			entry:  &zeroconf.ServiceEntry{AddrIPv6: []net.IP{net.ParseIP("fe80::1")}, Port: 5000},
			want:   "http://[fe80::1]:5000",
			wantOK: true,
		},
		{name: "no address", entry: &zeroconf.ServiceEntry{Port: 5000}},
		{name: "no port", entry: &zeroconf.ServiceEntry{AddrIPv4: []net.IP{net.ParseIP("10.0.0.2")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EntryURL(tt.entry)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdvertisement_ShutdownNil(t *testing.T) {
	var a *Advertisement
	assert.NotPanics(t, a.Shutdown)
}
