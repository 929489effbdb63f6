package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// ProtocolVersion is the version of the wire contract this extension
	// speaks. Format: MAJOR.MINOR.PATCH.
	// - Increment MAJOR for breaking changes to message shapes.
	// - Increment MINOR for backward-compatible additions.
	// - Increment PATCH for backward-compatible bug fixes.
	ProtocolVersion = "2.7.0"

	// MinHelperVersion is the oldest helper version this extension can work
	// with. Helpers that predate version reporting are detected separately
	// via the version-check timeout.
	MinHelperVersion = "2.0.0"
)

// Version represents a parsed helper version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a version string in "MAJOR.MINOR.PATCH" format.
func ParseVersion(version string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(version), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version format: %s (expected MAJOR.MINOR.PATCH)", version)
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("invalid major version: %s", parts[0])
	}

	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}, fmt.Errorf("invalid minor version: %s", parts[1])
	}

	patch, err := strconv.Atoi(parts[2])
	if err != nil {
		return Version{}, fmt.Errorf("invalid patch version: %s", parts[2])
	}

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// String returns the string representation of the version.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or 1 depending on whether v is older than, equal to
// or newer than other.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		return sign(v.Major - other.Major)
	}
	if v.Minor != other.Minor {
		return sign(v.Minor - other.Minor)
	}
	return sign(v.Patch - other.Patch)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// IsCompatible checks whether a reported helper version satisfies
// MinHelperVersion. Helpers may be newer than the extension; only helpers
// older than the minimum are rejected.
func IsCompatible(helperVersion string) (bool, error) {
	version, err := ParseVersion(helperVersion)
	if err != nil {
		return false, fmt.Errorf("failed to parse helper version: %w", err)
	}

	minVersion, err := ParseVersion(MinHelperVersion)
	if err != nil {
		return false, fmt.Errorf("failed to parse minimum helper version: %w", err)
	}

	if version.Compare(minVersion) < 0 {
		return false, fmt.Errorf(
			"helper version %s is too old, minimum required is %s",
			version.String(),
			MinHelperVersion,
		)
	}

	return true, nil
}
