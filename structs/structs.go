package structs

// Family is the address family of a validated input.
type Family int

const (
	Invalid Family = iota
	IPv4
	IPv6
)

func (f Family) String() string {
	switch f {
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	}
	return "invalid"
}

// Result is the outcome for one input address. Record is set on success,
// Err on failure; a run keeps results in input order.
type Result struct {
	Addr   string
	Family Family
	Record *Record
	Err    error
}

func (r Result) OK() bool {
	return r.Err == nil
}
