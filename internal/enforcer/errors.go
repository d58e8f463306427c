package enforcer

import (
	"fmt" // fmt is used to render the error messages
)

///////////////////////////////////////////////////////////////////////////////
// Error types
///////////////////////////////////////////////////////////////////////////////

// UnsupportedFormatError reports a format type outside the supported set.
// It carries the offending value so callers and logs can show exactly what
// was asked for.
type UnsupportedFormatError struct {
	FormatType string // FormatType is the unrecognized identifier the caller supplied
}

// NewUnsupportedFormatError is an initializer function for
// UnsupportedFormatError.
func NewUnsupportedFormatError(formatType string) *UnsupportedFormatError {
	return &UnsupportedFormatError{FormatType: formatType}
}

// Error makes UnsupportedFormatError satisfy the error interface. The
// message names the supported types so the user does not have to look
// them up.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("invalid format type %q, supported types are: %v", e.FormatType, SupportedFormats())
}

// InvalidCountError reports a batch-mode count that is not a positive
// integer. It is raised before any generation is attempted.
type InvalidCountError struct {
	Count int // Count is the rejected value
}

// NewInvalidCountError is an initializer function for InvalidCountError.
func NewInvalidCountError(count int) *InvalidCountError {
	return &InvalidCountError{Count: count}
}

// Error makes InvalidCountError satisfy the error interface.
func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("count must be a positive integer when no input data is provided, got %d", e.Count)
}

// GenerationError reports that the synthetic-data provider failed to produce
// a value for a (format type, locale) pair. The underlying cause is opaque to
// this package; it is wrapped unchanged so errors.Is/As still reach it.
type GenerationError struct {
	FormatType string // FormatType is the format being generated when the failure happened
	Locale     string // Locale is the locale identifier in effect
	Err        error  // Err is the provider's underlying error
}

// NewGenerationError is an initializer function for GenerationError.
func NewGenerationError(formatType, locale string, err error) *GenerationError {
	return &GenerationError{FormatType: formatType, Locale: locale, Err: err}
}

// Error makes GenerationError satisfy the error interface.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate %s value for locale %s: %v", e.FormatType, e.Locale, e.Err)
}

// Unwrap exposes the provider's underlying error to errors.Is and errors.As.
func (e *GenerationError) Unwrap() error {
	return e.Err
}
