package lookup

import (
	"net"

	"iplook/structs"
)

// ParseAddr tags s as IPv4 or IPv6, or returns a ValidationError.
func ParseAddr(s string) (structs.Family, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return structs.Invalid, &ValidationError{Addr: s}
	}
	if ip.To4() != nil {
		return structs.IPv4, nil
	}
	return structs.IPv6, nil
}
