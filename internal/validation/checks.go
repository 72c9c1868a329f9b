package validation

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var (
	hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbColorPattern = regexp.MustCompile(`^rgba?\(`)
	hslColorPattern = regexp.MustCompile(`^hsla?\(`)
	sizeFuncPattern = regexp.MustCompile(`^(calc|clamp|min|max|var)\(`)
	sizeUnitPattern = regexp.MustCompile(`^-?\d+(\.\d+)?(px|rem|em|%|vw|vh|vmin|vmax|ch|ex)?$`)
	namedColors     = []string{"transparent", "inherit", "currentcolor", "white", "black", "red", "green", "blue"}
	sizeKeywords    = []string{"auto", "inherit", "initial", "unset", "none", "0"}
)

// IsColor reports whether value is a hex, rgb(a), hsl(a), var() or basic
// named color.
func IsColor(value string) bool {
	switch {
	case hexColorPattern.MatchString(value),
		rgbColorPattern.MatchString(value),
		hslColorPattern.MatchString(value),
		strings.HasPrefix(value, "var("):
		return true
	}
	return slices.Contains(namedColors, strings.ToLower(value))
}

// IsSizeValue reports whether value is a length, a bare number, a sizing
// keyword or a CSS math function.
func IsSizeValue(value string) bool {
	if slices.Contains(sizeKeywords, value) {
		return true
	}
	return sizeFuncPattern.MatchString(value) || sizeUnitPattern.MatchString(value)
}

// CheckColor verifies value is an accepted color.
func CheckColor(value string) error {
	if err := instance().Var(value, "css_color"); err != nil {
		return fmt.Errorf("invalid color: %s", value)
	}
	return nil
}

// CheckSize verifies value is an accepted size.
func CheckSize(value string) error {
	if err := instance().Var(value, "css_size"); err != nil {
		return fmt.Errorf("invalid size value: %s", value)
	}
	return nil
}
