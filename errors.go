package number

import (
	"errors"
	"strings"
)

var (
	// ErrNoNumber is returned by [ParsePrefix] when the input does not
	// start with a number in any supported syntax.
	ErrNoNumber       = errors.New("no number")
	errUndefinedOrder = errors.New("undefined order")
)

// ParseError is returned by [Parse] when the input is not a float,
// a fraction, or a standard form.
// It carries the failure of every attempted syntax.
type ParseError struct {
	Decimal      error // the float64 failure
	Fraction     error // the fraction failure
	StandardForm error // the standard form failure
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("cannot parse number:")
	b.WriteString("\n\tas decimal: ")
	b.WriteString(errString(e.Decimal))
	b.WriteString("\n\tas fraction: ")
	b.WriteString(errString(e.Fraction))
	b.WriteString("\n\tas standard form: ")
	b.WriteString(errString(e.StandardForm))
	return b.String()
}

// Unwrap returns the non-nil failures, so that [errors.Is] and
// [errors.As] can inspect each of them.
func (e *ParseError) Unwrap() []error {
	errs := make([]error, 0, 3)
	for _, err := range []error{e.Decimal, e.Fraction, e.StandardForm} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func errString(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
