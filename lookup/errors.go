package lookup

import "fmt"

// ValidationError marks an input string that is not an IP address. The
// address is skipped; the rest of the batch still runs.
type ValidationError struct {
	Addr string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid IP address: %q", e.Addr)
}

// PermanentError marks a lookup failure that retrying cannot fix, such as a
// rejected token or a malformed response. It is recorded without spending
// retry budget.
type PermanentError struct {
	Addr string
	Err  error
}

func (e *PermanentError) Error() string {
	return fmt.Sprintf("lookup %s: %s", e.Addr, e.Err)
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}
