package enums

import "fmt"

// QuantityMode distinguishes items counted per unit from items whose quantity
// tracks a continuous area measurement.
type QuantityMode string

const (
	QuantityModeUnit QuantityMode = "unit"
	QuantityModeArea QuantityMode = "area"
)

var validQuantityModes = []QuantityMode{
	QuantityModeUnit,
	QuantityModeArea,
}

// String implements fmt.Stringer.
func (q QuantityMode) String() string {
	return string(q)
}

// IsValid reports whether the value is a known QuantityMode.
func (q QuantityMode) IsValid() bool {
	for _, candidate := range validQuantityModes {
		if candidate == q {
			return true
		}
	}
	return false
}

// ParseQuantityMode converts raw input into a QuantityMode.
func ParseQuantityMode(value string) (QuantityMode, error) {
	for _, candidate := range validQuantityModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid quantity mode %q", value)
}
