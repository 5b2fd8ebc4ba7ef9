package acrypt

import (
	"fmt"
	"strconv"
	"strings"
)

// ContainerVersion is the outer envelope version, an ASCII dotted pair
// such as "1.1" or "1.2". New output always uses ContainerVersionCurrent.
type ContainerVersion string

const (
	ContainerVersion11      ContainerVersion = "1.1"
	ContainerVersion12      ContainerVersion = "1.2"
	ContainerVersionCurrent                  = ContainerVersion12
)

// parseVersionComponents splits a dotted version string into integers.
// A component that fails to parse as an integer is treated as 0, which
// only matters for malformed input that has already failed validation
// elsewhere.
func parseVersionComponents(v ContainerVersion) []int {
	parts := strings.Split(string(v), ".")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			n = 0
		}
		out[i] = n
	}
	return out
}

// AtLeast reports whether v is >= other, comparing dotted components as
// integers rather than lexicographically. Byte-wise comparison of the
// dotted components coincides with integer order only while every
// component is a single digit, which the original implementation relied
// on; this compares components numerically so "1.10" would correctly
// outrank "1.2" if such a version ever appeared.
func (v ContainerVersion) AtLeast(other ContainerVersion) bool {
	a := parseVersionComponents(v)
	b := parseVersionComponents(other)

	for i := 0; i < len(a) || i < len(b); i++ {
		var av, bv int
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av != bv {
			return av > bv
		}
	}
	return true
}

func (v ContainerVersion) String() string {
	return string(v)
}

// validateContainerVersion reports whether v is one this package knows
// how to parse at all (1.1 or 1.2). Anything else is a malformed header,
// not merely an old one.
func validateContainerVersion(v ContainerVersion) error {
	switch v {
	case ContainerVersion11, ContainerVersion12:
		return nil
	default:
		return fmt.Errorf("%w: unrecognized container version %q", ErrMalformedHeader, v)
	}
}
