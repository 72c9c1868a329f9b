package validation

import "github.com/alexisbeaulieu97/proppanel/internal/control"

// Result captures the outcome of checking one CSS property of one control.
type Result struct {
	Control  control.Type
	Property string
	Value    string
	Passed   bool
	Message  string
	Error    error
}
