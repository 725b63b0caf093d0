package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/saqi004/calories/models"
)

// ErrParse is the kind of every ParseError.
var ErrParse = errors.New("invalid numeric input")

// ParseError reports numeric text that could not be parsed for Field.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s %q", ErrParse.Error(), e.Field, e.Value)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// ParseGender normalizes case and surrounding space. Membership is checked
// by the calculator, not here.
func ParseGender(raw string) models.Gender {
	return models.Gender(strings.ToLower(strings.TrimSpace(raw)))
}

// ParseActivityLevel normalizes like ParseGender and also accepts the
// spaced and hyphenated spellings of very_active.
func ParseActivityLevel(raw string) models.ActivityLevel {
	n := strings.ToLower(strings.TrimSpace(raw))
	n = strings.Join(strings.Fields(n), " ")
	switch n {
	case "very active", "very-active":
		return models.VeryActive
	}
	return models.ActivityLevel(n)
}

func ParseWeight(raw string) (float64, error) { return parseFloat("weight", raw) }

func ParseHeight(raw string) (float64, error) { return parseFloat("height", raw) }

// ParseAge accepts whole years only.
func ParseAge(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Field: "age", Value: raw, Err: err}
	}
	return n, nil
}

func parseFloat(field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Field: field, Value: raw, Err: err}
	}
	return v, nil
}

// ValidateRanges is the sanity check the HTTP API applies before computing.
// The calculator itself accepts any finite numbers.
func ValidateRanges(in models.BiometricInput) error {
	switch {
	case in.WeightKg <= 0:
		return errors.New("weight_kg must be positive")
	case in.HeightCm <= 0:
		return errors.New("height_cm must be positive")
	case in.AgeYears < 0:
		return errors.New("age_years must not be negative")
	}
	return nil
}
