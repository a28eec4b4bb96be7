package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/vital/internal/domain"
)

// validateOptionalDate accepts blank or a YYYY-MM-DD date.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	return domain.ValidateDate(s)
}

// validateOptionalFloat accepts blank or a non-negative decimal number.
func validateOptionalFloat(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// validateOptionalInt accepts blank or a non-negative integer.
func validateOptionalInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative whole number")
	}
	return nil
}

// parsedFloat reads a validated optional float; blank yields the default.
func parsedFloat(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// parsedInt reads a validated optional int; blank yields the default.
func parsedInt(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
