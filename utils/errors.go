package utils

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCategory is the kind of every InvalidCategoryError.
var ErrInvalidCategory = errors.New("invalid category")

// InvalidCategoryError reports a gender or activity level outside its
// enumeration. Value is the text exactly as it was supplied.
type InvalidCategoryError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidCategoryError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("%s: %s %q", ErrInvalidCategory.Error(), e.Field, e.Value)
	}
	return fmt.Sprintf("%s: %s %q (expected one of %s)", ErrInvalidCategory.Error(), e.Field, e.Value, quoteJoin(e.Allowed))
}

func (e *InvalidCategoryError) Unwrap() error { return ErrInvalidCategory }

func quoteJoin(vals []string) string {
	return "'" + strings.Join(vals, "', '") + "'"
}
