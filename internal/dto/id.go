package dto

import (
	"strconv"
	"strings"
)

// LookupID is an entity id read from a body, query or path. Absent or
// malformed values decode to 0, which matches no row, so they surface as
// "not found" instead of a binding error.
type LookupID uint

// UnmarshalJSON accepts a JSON number or a numeric string.
func (id *LookupID) UnmarshalJSON(b []byte) error {
	*id = ParseLookupID(strings.Trim(string(b), `"`))
	return nil
}

// ParseLookupID parses s as a positive id, returning 0 when it is not one.
func ParseLookupID(s string) LookupID {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 0)
	if err != nil {
		return 0
	}
	return LookupID(n)
}
