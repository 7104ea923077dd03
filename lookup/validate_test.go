package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iplook/structs"
)

func TestParseAddr(t *testing.T) {
	tests := []struct {
		in   string
		want structs.Family
	}{
		{"8.8.8.8", structs.IPv4},
		{"192.168.0.1", structs.IPv4},
		{"255.255.255.255", structs.IPv4},
		{"2001:4860:4860::8888", structs.IPv6},
		{"::1", structs.IPv6},
		{"fe80::1", structs.IPv6},
		{"", structs.Invalid},
		{"bad-ip", structs.Invalid},
		{"256.1.1.1", structs.Invalid},
		{"8.8.8.8/32", structs.Invalid},
		{"8.8.8", structs.Invalid},
		{"google.com", structs.Invalid},
	}
	for _, tt := range tests {
		fam, err := ParseAddr(tt.in)
		assert.Equal(t, tt.want, fam, "input %q", tt.in)
		if tt.want == structs.Invalid {
			assert.Error(t, err, "input %q", tt.in)
		} else {
			assert.NoError(t, err, "input %q", tt.in)
		}
	}
}

func TestParseAddrErrorNamesInput(t *testing.T) {
	_, err := ParseAddr("bad-ip")
	require.Error(t, err)
	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "bad-ip", verr.Addr)
	assert.Contains(t, err.Error(), "bad-ip")
}
