package provider

import (
	"golang.org/x/text/language" // language gives us well-defined locale tags instead of raw strings
)

///////////////////////////////////////////////////////////////////////////////
// Locale data tables
///////////////////////////////////////////////////////////////////////////////

// LocaleData holds everything the provider needs to produce values that look
// correct for one locale. Pattern fields are regular expressions that are fed
// to reggen, which walks the expression and emits a random string matching it.
// Keeping the locale differences in data rather than code means adding a new
// locale is one table entry, with no new logic.
type LocaleData struct {
	PhonePatterns      []string // PhonePatterns are regexes for locally formatted phone numbers
	PostcodePatterns   []string // PostcodePatterns are regexes for postal / zip codes
	NationalIDPatterns []string // NationalIDPatterns are regexes for the local SSN equivalent (NINO, CPF, ...)
	EmailDomains       []string // EmailDomains are mail domains commonly seen in this locale
}

// NewLocaleData is an initializer function for LocaleData.
// It exists so locale entries are always built the same way, even though the
// table below fills every field explicitly.
func NewLocaleData(phone, postcode, nationalID, domains []string) *LocaleData {
	return &LocaleData{
		PhonePatterns:      phone,
		PostcodePatterns:   postcode,
		NationalIDPatterns: nationalID,
		EmailDomains:       domains,
	}
}

// locales maps a canonical BCP 47 tag string (as produced by language.Tag.String,
// for example "en-US") to its data tables. Callers may still pass POSIX-style
// identifiers like "en_US"; tag parsing normalizes the separator.
var locales = map[string]*LocaleData{
	"en-US": {
		PhonePatterns: []string{
			`\([2-9]\d{2}\) [2-9]\d{2}-\d{4}`,
			`[2-9]\d{2}-[2-9]\d{2}-\d{4}`,
			`\+1-[2-9]\d{2}-[2-9]\d{2}-\d{4}`,
		},
		PostcodePatterns: []string{
			`\d{5}`,
			`\d{5}-\d{4}`,
		},
		// US Social Security Numbers never start with a 9 (that range is
		// reserved for ITINs).
		NationalIDPatterns: []string{
			`[0-8]\d{2}-\d{2}-\d{4}`,
		},
		EmailDomains: []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com"},
	},
	"en-GB": {
		PhonePatterns: []string{
			`07\d{3} \d{6}`,
			`\+44 7\d{3} \d{6}`,
			`01\d{2} \d{3} \d{4}`,
		},
		PostcodePatterns: []string{
			`[A-PR-UWYZ][A-HK-Y]?[1-9] [0-9][ABD-HJLNP-UW-Z]{2}`,
			`[A-PR-UWYZ][A-HK-Y][1-9][0-9] [0-9][ABD-HJLNP-UW-Z]{2}`,
		},
		// National Insurance number, e.g. "QQ 12 34 56 C".
		NationalIDPatterns: []string{
			`[A-CEGHJ-PR-TW-Z]{2} \d{2} \d{2} \d{2} [A-D]`,
		},
		EmailDomains: []string{"gmail.com", "yahoo.co.uk", "btinternet.com", "outlook.com"},
	},
	"en-CA": {
		PhonePatterns: []string{
			`\([2-9]\d{2}\) [2-9]\d{2}-\d{4}`,
			`\+1-[2-9]\d{2}-[2-9]\d{2}-\d{4}`,
		},
		PostcodePatterns: []string{
			`[ABCEGHJ-NPRSTVXY][0-9][A-Z] [0-9][A-Z][0-9]`,
		},
		// Social Insurance Number.
		NationalIDPatterns: []string{
			`\d{3}-\d{3}-\d{3}`,
		},
		EmailDomains: []string{"gmail.com", "yahoo.ca", "hotmail.com", "outlook.com"},
	},
	"de-DE": {
		PhonePatterns: []string{
			`\+49 1[5-7]\d \d{7}`,
			`01[5-7]\d \d{7}`,
			`0[3-9]\d{2} \d{6}`,
		},
		PostcodePatterns: []string{
			`[0-9]{5}`,
		},
		// Steuerliche Identifikationsnummer, 11 digits, never leading zero.
		NationalIDPatterns: []string{
			`[1-9]\d{10}`,
		},
		EmailDomains: []string{"gmx.de", "web.de", "t-online.de", "gmail.com"},
	},
	"fr-FR": {
		PhonePatterns: []string{
			`0[1-7] \d{2} \d{2} \d{2} \d{2}`,
			`\+33 [1-7] \d{2} \d{2} \d{2} \d{2}`,
		},
		PostcodePatterns: []string{
			`\d{5}`,
		},
		// numéro de sécurité sociale: sex digit, year, month, then the
		// remaining location/order/key digits.
		NationalIDPatterns: []string{
			`[12] \d{2} (0[1-9]|1[0-2]) \d{2} \d{3} \d{3} \d{2}`,
		},
		EmailDomains: []string{"orange.fr", "free.fr", "laposte.net", "gmail.com"},
	},
	"es-ES": {
		PhonePatterns: []string{
			`[67]\d{2} \d{3} \d{3}`,
			`\+34 [67]\d{2} \d{3} \d{3}`,
		},
		PostcodePatterns: []string{
			`(0[1-9]|[1-4]\d|5[0-2])\d{3}`,
		},
		// DNI: 8 digits plus a control letter.
		NationalIDPatterns: []string{
			`\d{8}[TRWAGMYFPDXBNJZSQVHLCKE]`,
		},
		EmailDomains: []string{"gmail.com", "hotmail.es", "yahoo.es", "outlook.es"},
	},
	"it-IT": {
		PhonePatterns: []string{
			`3\d{2} \d{3} \d{4}`,
			`\+39 3\d{2} \d{3} \d{4}`,
		},
		PostcodePatterns: []string{
			`\d{5}`,
		},
		// Codice fiscale, shape only (the real check character is derived).
		NationalIDPatterns: []string{
			`[A-Z]{6}\d{2}[ABCDEHLMPRST]\d{2}[A-Z]\d{3}[A-Z]`,
		},
		EmailDomains: []string{"gmail.com", "libero.it", "virgilio.it", "outlook.it"},
	},
	"nl-NL": {
		PhonePatterns: []string{
			`06 \d{8}`,
			`\+31 6 \d{8}`,
		},
		PostcodePatterns: []string{
			`[1-9]\d{3} [A-Z]{2}`,
		},
		// Burgerservicenummer.
		NationalIDPatterns: []string{
			`[1-9]\d{8}`,
		},
		EmailDomains: []string{"gmail.com", "ziggo.nl", "kpnmail.nl", "hotmail.nl"},
	},
	"pt-BR": {
		PhonePatterns: []string{
			`\(\d{2}\) 9\d{4}-\d{4}`,
			`\(\d{2}\) [2-5]\d{3}-\d{4}`,
		},
		PostcodePatterns: []string{
			`\d{5}-\d{3}`,
		},
		// CPF.
		NationalIDPatterns: []string{
			`\d{3}\.\d{3}\.\d{3}-\d{2}`,
		},
		EmailDomains: []string{"gmail.com", "uol.com.br", "bol.com.br", "outlook.com.br"},
	},
}

///////////////////////////////////////////////////////////////////////////////
// Locale tag matching
///////////////////////////////////////////////////////////////////////////////

// supportedTags lists the locales above as parsed tags, in matcher priority
// order. en-US comes first so a bare "en" resolves to the US tables.
var supportedTags = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("en-GB"),
	language.MustParse("en-CA"),
	language.MustParse("de-DE"),
	language.MustParse("fr-FR"),
	language.MustParse("es-ES"),
	language.MustParse("it-IT"),
	language.MustParse("nl-NL"),
	language.MustParse("pt-BR"),
}

// localeMatcher matches a caller-supplied tag against the supported set.
// It lets base-language tags such as "de" fall back to "de-DE" without us
// hand-rolling the fallback rules.
var localeMatcher = language.NewMatcher(supportedTags)
