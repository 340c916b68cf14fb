package enums

import "fmt"

// Shift identifies a warehouse working shift.
type Shift string

const (
	ShiftDay   Shift = "day"
	ShiftNight Shift = "night"
)

var validShifts = []Shift{ShiftDay, ShiftNight}

func (s Shift) String() string {
	return string(s)
}

// IsValid reports whether the value is a known Shift.
func (s Shift) IsValid() bool {
	for _, candidate := range validShifts {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseShift converts raw input into a Shift.
func ParseShift(value string) (Shift, error) {
	for _, candidate := range validShifts {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shift %q", value)
}
