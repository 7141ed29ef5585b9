package utils

import (
	"strconv"
	"strings"
)

// ToNullInt normalizes a textual quantity from an imported spreadsheet.
// Empty values mean "absent" and map to nil rather than zero; anything that
// does not parse as an integer is treated the same way.
func ToNullInt(val string) *int {
	s := strings.TrimSpace(val)
	if s == "" {
		return nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &i
}

// ToYesNo normalizes the two-valued textual convention used by the source
// spreadsheets: "Yes" (any casing) is true, everything else is false.
func ToYesNo(val string) bool {
	return strings.EqualFold(strings.TrimSpace(val), "yes")
}

// IntOrZero unwraps a nullable quantity for counter arithmetic.
func IntOrZero(val *int) int {
	if val == nil {
		return 0
	}
	return *val
}
