package enforcer

import (
	"log/slog" // slog writes the structured diagnostic stream
	"sort"     // sort keeps the supported-format listing stable

	// This import path must match the module path from go.mod. The provider
	// package is the locale-aware synthetic-data source; this package only
	// decides which of its capabilities to call.
	"data_format_enforcer/internal/provider"
)

///////////////////////////////////////////////////////////////////////////////
// Format types and the dispatch table
///////////////////////////////////////////////////////////////////////////////

// The supported format type identifiers, exactly as they appear on the
// command line.
const (
	FormatPhoneNumber      = "phone_number"
	FormatZipCode          = "zip_code"
	FormatEmail            = "email"
	FormatSSN              = "ssn"
	FormatCreditCardNumber = "credit_card_number"
)

// FormatterFunc is a zero-argument generator capability. It is bound to a
// (format type, locale) pair when the enforcer is built and returns a fresh
// value on every call.
type FormatterFunc func() (string, error)

// formatters maps each supported format type to a selector that picks the
// matching capability off a provider. Keeping this as a table means adding
// a format type is one entry here plus a provider method, with no new
// branching at the call sites.
var formatters = map[string]func(*provider.Provider) FormatterFunc{
	FormatPhoneNumber:      func(p *provider.Provider) FormatterFunc { return p.PhoneNumber },
	FormatZipCode:          func(p *provider.Provider) FormatterFunc { return p.Postcode },
	FormatEmail:            func(p *provider.Provider) FormatterFunc { return p.Email },
	FormatSSN:              func(p *provider.Provider) FormatterFunc { return p.SSN },
	FormatCreditCardNumber: func(p *provider.Provider) FormatterFunc { return p.CreditCardNumber },
}

// SupportedFormats returns the supported format type identifiers in sorted
// order. It is used for validation messages and help text.
func SupportedFormats() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsSupported reports whether formatType is one of the supported
// identifiers, without touching the provider.
func IsSupported(formatType string) bool {
	_, ok := formatters[formatType]
	return ok
}

///////////////////////////////////////////////////////////////////////////////
// Enforcer
///////////////////////////////////////////////////////////////////////////////

// Enforcer enforces data format consistency for one format type and locale:
// whatever goes in, what comes out always matches the format's grammar. It
// holds exactly one resolved formatter capability and nothing else, so it is
// safe to call any number of times and every call is independent.
type Enforcer struct {
	formatType string        // formatType is the identifier this enforcer was built for
	locale     string        // locale is the caller-supplied locale identifier
	formatter  FormatterFunc // formatter is the capability resolved from the dispatch table
}

// NewEnforcer is the initializer function for Enforcer. It resolves
// formatType against the dispatch table, then initializes the provider for
// the given locale and binds the matching capability.
//
// An unrecognized format type fails immediately with UnsupportedFormatError,
// before the provider is ever constructed. A locale the provider cannot
// serve fails with GenerationError; that failure is opaque here — the
// enforcer does not distinguish locale problems from other provider errors.
// Both failure paths log a diagnostic in addition to returning the error.
func NewEnforcer(formatType, locale string) (*Enforcer, error) {
	selector, ok := formatters[formatType]
	if !ok {
		slog.Error("unsupported format type", "format_type", formatType, "supported", SupportedFormats())
		return nil, NewUnsupportedFormatError(formatType)
	}

	p, err := provider.New(locale)
	if err != nil {
		slog.Error("provider initialization failed", "format_type", formatType, "locale", locale, "err", err)
		return nil, NewGenerationError(formatType, locale, err)
	}

	return &Enforcer{
		formatType: formatType,
		locale:     locale,
		formatter:  selector(p),
	}, nil
}

// FormatType returns the identifier this enforcer was built for.
func (e *Enforcer) FormatType() string {
	return e.formatType
}

// EnforceFormat produces one value matching the enforcer's format.
//
// Quirk, preserved deliberately: the data argument is accepted and then
// ignored. The existing behavior replaces whatever the caller supplied with
// a freshly generated value rather than conforming the input to the target
// format, and that behavior is kept faithfully until product intent says
// otherwise. Do not "fix" this without reading DESIGN.md first.
//
// On provider failure the error is logged and returned as a GenerationError;
// no partial value is ever produced.
func (e *Enforcer) EnforceFormat(data string) (string, error) {
	_ = data // input is discarded, see the quirk note above

	value, err := e.formatter()
	if err != nil {
		slog.Error("error enforcing format", "format_type", e.formatType, "locale", e.locale, "err", err)
		return "", NewGenerationError(e.formatType, e.locale, err)
	}
	return value, nil
}
