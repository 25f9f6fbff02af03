package enums

import "fmt"

// MontageMode describes how the LED screen rig is mounted at the venue.
type MontageMode string

const (
	MontageModeRigging       MontageMode = "rigging"
	MontageModeSelfStructure MontageMode = "self_structure"
	MontageModeUndefined     MontageMode = "undefined"
)

var validMontageModes = []MontageMode{
	MontageModeRigging,
	MontageModeSelfStructure,
	MontageModeUndefined,
}

// String implements fmt.Stringer.
func (m MontageMode) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MontageMode.
func (m MontageMode) IsValid() bool {
	for _, candidate := range validMontageModes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMontageMode converts raw input into a MontageMode.
func ParseMontageMode(value string) (MontageMode, error) {
	for _, candidate := range validMontageModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid montage mode %q", value)
}
