package payment

import (
	"errors"
	"regexp"
	"strings"
)

var upiRegex = regexp.MustCompile(`^[\w.-]+@[\w.-]+$`)

var ErrInvalidUPI = errors.New("enter a valid UPI ID (e.g. name@bank)")

// NormalizeUPI lower-cases a handle the way the form does as the user
// types.
func NormalizeUPI(id string) string {
	return strings.ToLower(id)
}

// ValidateUPI checks the local@domain shape of a UPI handle. Whether the
// handle actually exists is not checked.
func ValidateUPI(id string) error {
	if !upiRegex.MatchString(id) {
		return ErrInvalidUPI
	}
	return nil
}

// Form collects a UPI handle and hands the validated value to the
// caller's callback on submit. Loading, when set by the caller, disables
// submit and swaps the submit label.
type Form struct {
	value    string
	errMsg   string
	Loading  bool
	onSubmit func(id string)
}

func NewForm(onSubmit func(id string)) *Form {
	return &Form{onSubmit: onSubmit}
}

// Input replaces the field value, normalized to lower case, and clears
// any displayed validation error.
func (f *Form) Input(s string) {
	f.value = NormalizeUPI(s)
	f.errMsg = ""
}

func (f *Form) Value() string { return f.value }

// Err returns the visible validation message, empty when the field has
// no error.
func (f *Form) Err() string { return f.errMsg }

// SubmitLabel is the visible label of the submit action.
func (f *Form) SubmitLabel() string {
	if f.Loading {
		return "Processing..."
	}
	return "Pay Now"
}

// Submit re-validates the field. On failure it sets the visible error
// and does not invoke the callback; on success it invokes the callback
// with the normalized handle and leaves the field as is. Reports whether
// the callback ran.
func (f *Form) Submit() bool {
	if f.Loading {
		return false
	}
	if err := ValidateUPI(f.value); err != nil {
		f.errMsg = err.Error()
		return false
	}
	if f.onSubmit != nil {
		f.onSubmit(f.value)
	}
	return true
}
