package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAcceptsPOSIXAndBCP47Spellings(t *testing.T) {
	for _, locale := range []string{"en_US", "en-US"} {
		p, err := New(locale)
		assert.Nil(t, err, locale)
		assert.Equal(t, "en-US", p.Locale(), locale)
	}
}

func TestNewBaseLanguageFallsBackToDefaultRegion(t *testing.T) {
	cases := map[string]string{
		"en": "en-US",
		"de": "de-DE",
		"fr": "fr-FR",
		"pt": "pt-BR",
	}
	for locale, want := range cases {
		p, err := New(locale)
		assert.Nil(t, err, locale)
		assert.Equal(t, want, p.Locale(), locale)
	}
}

func TestNewRejectsUnsupportedLocale(t *testing.T) {
	for _, locale := range []string{"zz_ZZ", "zh_CN", "ko"} {
		p, err := New(locale)
		assert.Nil(t, p, locale)
		assert.Error(t, err, locale)
	}
}

func TestNewRejectsMalformedLocale(t *testing.T) {
	p, err := New("not a locale!!")
	assert.Nil(t, p)
	assert.Error(t, err)
}

func TestPhoneNumberMatchesUSGrammar(t *testing.T) {
	p, err := New("en_US")
	assert.Nil(t, err)

	// Run enough iterations to hit every pattern in the table.
	for i := 0; i < 25; i++ {
		value, err := p.PhoneNumber()
		assert.Nil(t, err)
		assert.Regexp(t, `^(\(\d{3}\) \d{3}-\d{4}|\d{3}-\d{3}-\d{4}|\+1-\d{3}-\d{3}-\d{4})$`, value)
	}
}

func TestPostcodeMatchesLocaleGrammar(t *testing.T) {
	cases := map[string]string{
		"en_US": `^\d{5}(-\d{4})?$`,
		"de_DE": `^\d{5}$`,
		"nl_NL": `^[1-9]\d{3} [A-Z]{2}$`,
		"pt_BR": `^\d{5}-\d{3}$`,
	}
	for locale, want := range cases {
		p, err := New(locale)
		assert.Nil(t, err, locale)
		for i := 0; i < 10; i++ {
			value, err := p.Postcode()
			assert.Nil(t, err, locale)
			assert.Regexp(t, want, value, locale)
		}
	}
}

func TestSSNMatchesLocaleGrammar(t *testing.T) {
	cases := map[string]string{
		"en_US": `^[0-8]\d{2}-\d{2}-\d{4}$`,
		"en_GB": `^[A-Z]{2} \d{2} \d{2} \d{2} [A-D]$`,
		"pt_BR": `^\d{3}\.\d{3}\.\d{3}-\d{2}$`,
	}
	for locale, want := range cases {
		p, err := New(locale)
		assert.Nil(t, err, locale)
		for i := 0; i < 10; i++ {
			value, err := p.SSN()
			assert.Nil(t, err, locale)
			assert.Regexp(t, want, value, locale)
		}
	}
}

func TestEmailUsesLocaleDomains(t *testing.T) {
	p, err := New("de_DE")
	assert.Nil(t, err)

	domains := map[string]bool{}
	for _, d := range p.data.EmailDomains {
		domains[d] = true
	}

	for i := 0; i < 25; i++ {
		value, err := p.Email()
		assert.Nil(t, err)
		assert.Regexp(t, `^[a-z0-9]+(\.[a-z0-9]+)?@[a-z0-9.\-]+$`, value)

		parts := splitEmail(value)
		assert.True(t, domains[parts[1]], "unexpected domain in %q", value)
	}
}

// splitEmail is a tiny test helper that splits on the single "@".
func splitEmail(s string) [2]string {
	for i := 0; i < len(s); i++ {
		if s[i] == '@' {
			return [2]string{s[:i], s[i+1:]}
		}
	}
	return [2]string{s, ""}
}

func TestCreditCardNumberIsAllDigits(t *testing.T) {
	p, err := New("en_US")
	assert.Nil(t, err)

	for i := 0; i < 10; i++ {
		value, err := p.CreditCardNumber()
		assert.Nil(t, err)
		assert.Regexp(t, `^\d{12,19}$`, value)
	}
}

func TestEveryLocaleServesEveryCapability(t *testing.T) {
	for _, tag := range supportedTags {
		p, err := New(tag.String())
		assert.Nil(t, err, tag.String())

		capabilities := []func() (string, error){
			p.PhoneNumber, p.Postcode, p.Email, p.SSN, p.CreditCardNumber,
		}
		for _, capability := range capabilities {
			value, err := capability()
			assert.Nil(t, err, tag.String())
			assert.NotEmpty(t, value, tag.String())
		}
	}
}

func TestEmailLocalPartSanitization(t *testing.T) {
	assert.Equal(t, "oconner", emailLocalPart("O'Conner"))
	assert.Equal(t, "jdoe42", emailLocalPart("JDoe42"))
	assert.Equal(t, "user", emailLocalPart("!!!"))
}
