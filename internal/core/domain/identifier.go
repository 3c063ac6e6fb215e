package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// EntityKind names an entity that carries a human-readable sequential identifier.
// Each kind has its own sequence per organization.
type EntityKind string

const (
	EntityKindClient EntityKind = "CLIENT"
	EntityKindDeal   EntityKind = "DEAL"
	EntityKindTeam   EntityKind = "TEAM"
)

// minIdentifierDigits is the minimum zero-padded width of an identifier's numeric suffix.
const minIdentifierDigits = 3

// ErrMalformedIdentifier is returned when a stored identifier has no numeric suffix.
var ErrMalformedIdentifier = errors.New("malformed identifier")

// Valid reports whether k is a known entity kind.
func (k EntityKind) Valid() bool {
	switch k {
	case EntityKindClient, EntityKindDeal, EntityKindTeam:
		return true
	}
	return false
}

// NextIdentifier returns the successor of latest: its trailing dash-delimited
// numeric segment incremented by one, e.g. ORG-CL-009 -> ORG-CL-010 and ORG-999 -> ORG-1000.
// The suffix keeps its width, is never narrower than three digits, and grows when it overflows.
func NextIdentifier(latest string) (string, error) {
	prefix, suffix := "", latest
	if i := strings.LastIndex(latest, "-"); i >= 0 {
		prefix, suffix = latest[:i+1], latest[i+1:]
	}

	if suffix == "" || strings.TrimLeft(suffix, "0123456789") != "" {
		return "", fmt.Errorf("%w: %q has no numeric suffix", ErrMalformedIdentifier, latest)
	}

	n, err := strconv.ParseUint(suffix, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrMalformedIdentifier, latest, err)
	}

	width := max(len(suffix), minIdentifierDigits)
	return fmt.Sprintf("%s%0*d", prefix, width, n+1), nil
}
