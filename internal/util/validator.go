package util

import (
	"fmt"
	"strconv"
	"time"
)

// ParseAmount parses a form amount that must be strictly positive.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %f", v)
	}
	return v, nil
}

// ParseBudgetAmount parses a form amount that may be zero but not negative.
func ParseBudgetAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("amount must not be negative, got %f", v)
	}
	return v, nil
}

// ParseDayOfMonth parses a recurring-rule day, valid range 1-31.
func ParseDayOfMonth(s string) (int, error) {
	d, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q: %w", s, err)
	}
	if d < 1 || d > 31 {
		return 0, fmt.Errorf("day out of range [1,31], got %d", d)
	}
	return d, nil
}

// ValidateMonthKey checks a "YYYY-MM" month filter value.
func ValidateMonthKey(s string) error {
	if s == "" {
		return fmt.Errorf("month is empty")
	}
	if _, err := time.Parse("2006-01", s); err != nil {
		return fmt.Errorf("invalid month format: %w", err)
	}
	return nil
}
