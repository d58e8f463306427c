package provider

import (
	"fmt"     // fmt is used to build human-readable error messages
	"strings" // strings is used to normalize locale identifiers and email local parts

	"github.com/brianvoe/gofakeit/v6" // gofakeit generates realistic-looking fake data
	"github.com/lucasjones/reggen"    // reggen renders random strings from regex patterns
	"golang.org/x/text/language"      // language parses and matches locale tags
)

///////////////////////////////////////////////////////////////////////////////
// Provider
///////////////////////////////////////////////////////////////////////////////

// Provider produces freshly generated, locale-correct values. Each method is
// a zero-argument capability: it takes no input and returns a new random
// string shaped for the provider's locale. A Provider keeps no state between
// calls other than its locale tables and its random source, so repeated calls
// are independent.
type Provider struct {
	locale string          // locale is the canonical tag the caller's identifier resolved to, e.g. "en-US"
	data   *LocaleData     // data holds the pattern and domain tables for that locale
	faker  *gofakeit.Faker // faker is an instance faker so we never touch gofakeit's global seed
}

// New is the initializer function for Provider. It resolves the given locale
// identifier against the supported set and binds the matching data tables.
//
// The identifier is accepted in either BCP 47 form ("en-US") or POSIX form
// ("en_US"). Base-language tags such as "de" fall back to their default
// region ("de-DE"). Identifiers that do not parse, or that parse but match
// no supported locale, fail here — this is the only locale validation in the
// program; callers pass their locale through untouched.
func New(locale string) (*Provider, error) {
	// language.Parse wants hyphens, while POSIX-style identifiers use an
	// underscore. Normalizing here keeps both spellings working.
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	// Match against the supported tags. We require at least High confidence
	// so "fr" resolves to fr-FR but "zh-CN" is rejected instead of being
	// silently served en-US data.
	_, index, conf := localeMatcher.Match(tag)
	if conf < language.High {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}

	canonical := supportedTags[index].String()
	data, ok := locales[canonical]
	if !ok {
		// Every supported tag has a table entry; reaching this means the
		// two lists in locales.go drifted apart.
		return nil, fmt.Errorf("no locale data for %q", canonical)
	}

	return &Provider{
		locale: canonical,
		data:   data,
		// Seed 0 tells gofakeit to pick a random seed, so every process
		// run produces different values.
		faker: gofakeit.New(0),
	}, nil
}

// Locale returns the canonical tag this provider was bound to.
func (p *Provider) Locale() string {
	return p.locale
}

///////////////////////////////////////////////////////////////////////////////
// Capabilities, one per supported format
///////////////////////////////////////////////////////////////////////////////

// PhoneNumber returns a phone number formatted the way numbers are commonly
// written in the provider's locale.
func (p *Provider) PhoneNumber() (string, error) {
	return p.fromPattern(p.data.PhonePatterns)
}

// Postcode returns a postal (zip) code valid in shape for the locale.
func (p *Provider) Postcode() (string, error) {
	return p.fromPattern(p.data.PostcodePatterns)
}

// SSN returns the locale's equivalent of a social security number: the US
// SSN for en-US, the National Insurance number for en-GB, the CPF for pt-BR,
// and so on. Only the shape is enforced; check digits are not computed.
func (p *Provider) SSN() (string, error) {
	return p.fromPattern(p.data.NationalIDPatterns)
}

// Email returns an email address on a mail domain common in the locale.
// The local part is built from a fake username or a fake first.last pair.
func (p *Provider) Email() (string, error) {
	var local string
	if p.faker.Bool() {
		local = emailLocalPart(p.faker.Username())
	} else {
		local = emailLocalPart(p.faker.FirstName()) + "." + emailLocalPart(p.faker.LastName())
	}
	domain := p.faker.RandomString(p.data.EmailDomains)
	return local + "@" + domain, nil
}

// CreditCardNumber returns a card number with a valid issuer prefix and
// length. Card numbering is an international scheme, so this capability is
// the one place the locale tables are not consulted.
func (p *Provider) CreditCardNumber() (string, error) {
	return p.faker.CreditCardNumber(nil), nil
}

///////////////////////////////////////////////////////////////////////////////
// Internal helpers
///////////////////////////////////////////////////////////////////////////////

// fromPattern picks one of the given regex patterns at random and renders a
// random string matching it. All patterns in the locale tables are fully
// bounded, so the reggen repetition limit of 1 never comes into play.
func (p *Provider) fromPattern(patterns []string) (string, error) {
	pattern := p.faker.RandomString(patterns)
	value, err := reggen.Generate(pattern, 1)
	if err != nil {
		return "", fmt.Errorf("failed to generate value for pattern %q: %w", pattern, err)
	}
	return value, nil
}

// emailLocalPart lowercases a name fragment and strips anything that is not
// a letter or digit, so the assembled address stays plain ASCII.
func emailLocalPart(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "user"
	}
	return b.String()
}
