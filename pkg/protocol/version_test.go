package protocol

import (
	"strings"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		version     string
		expectError bool
		major       int
		minor       int
		patch       int
	}{
		{"2.7.0", false, 2, 7, 0},
		{"1.0.0", false, 1, 0, 0},
		{"10.99.42", false, 10, 99, 42},
		{" 2.0.0 ", false, 2, 0, 0},
		{"invalid", true, 0, 0, 0},
		{"2", true, 0, 0, 0},
		{"2.7", true, 0, 0, 0},
		{"2.7.x", true, 0, 0, 0},
	}

	for _, tt := range tests {
		v, err := ParseVersion(tt.version)
		if tt.expectError {
			if err == nil {
				t.Errorf("ParseVersion(%q) expected error but got none", tt.version)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVersion(%q) unexpected error: %v", tt.version, err)
			continue
		}
		if v.Major != tt.major || v.Minor != tt.minor || v.Patch != tt.patch {
			t.Errorf("ParseVersion(%q) = %d.%d.%d, want %d.%d.%d",
				tt.version, v.Major, v.Minor, v.Patch, tt.major, tt.minor, tt.patch)
		}
	}
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		a    string
		b    string
		want int
	}{
		{"2.0.0", "2.0.0", 0},
		{"1.9.9", "2.0.0", -1},
		{"2.0.1", "2.0.0", 1},
		{"2.1.0", "2.0.9", 1},
		{"3.0.0", "2.9.9", 1},
	}

	for _, tt := range tests {
		a, err := ParseVersion(tt.a)
		if err != nil {
			t.Fatalf("ParseVersion(%q): %v", tt.a, err)
		}
		b, err := ParseVersion(tt.b)
		if err != nil {
			t.Fatalf("ParseVersion(%q): %v", tt.b, err)
		}
		if got := a.Compare(b); got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		helperVersion string
		compatible    bool
		errorContains string
	}{
		// At the minimum - compatible.
		{"2.0.0", true, ""},

		// Newer than the minimum - compatible.
		{"2.7.0", true, ""},
		{"3.0.0", true, ""},

		// Older than the minimum - incompatible.
		{"1.9.9", false, "too old"},
		{"0.5.0", false, "too old"},

		// Invalid format.
		{"invalid", false, "failed to parse"},
		{"2.0", false, "failed to parse"},
	}

	for _, tt := range tests {
		compatible, err := IsCompatible(tt.helperVersion)
		if compatible != tt.compatible {
			t.Errorf("IsCompatible(%q) = %v, want %v", tt.helperVersion, compatible, tt.compatible)
		}
		if tt.errorContains != "" {
			if err == nil {
				t.Errorf("IsCompatible(%q) expected error containing %q", tt.helperVersion, tt.errorContains)
			} else if !strings.Contains(err.Error(), tt.errorContains) {
				t.Errorf("IsCompatible(%q) error = %v, want it to contain %q", tt.helperVersion, err, tt.errorContains)
			}
		}
	}
}
