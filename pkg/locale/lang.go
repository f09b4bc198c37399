package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

// DefaultLanguage is the tag of the locale built into package datetime.
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the preference list Negotiate is willing to parse.
const maxAcceptLanguageLength = 4096

// Canonical returns the canonical BCP 47 form of tag ("de-de" becomes "de-DE").
func Canonical(tag string) (string, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidTag, tag, err)
	}
	return t.String(), nil
}

// candidates lists the keys tried for tag, most specific first: the canonical tag,
// then its base language when that differs.
func candidates(tag string) ([]string, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTag, tag, err)
	}

	keys := []string{t.String()}
	if base, conf := t.Base(); conf != language.No {
		if b := base.String(); b != keys[0] {
			keys = append(keys, b)
		}
	}
	return keys, nil
}

// preferences parses an Accept-Language style list ("de-CH,de;q=0.9,en;q=0.8")
// into tags ordered by weight.
func preferences(list string) []string {
	if len(list) > maxAcceptLanguageLength {
		list = list[:maxAcceptLanguageLength]
	}
	tags, _, err := language.ParseAcceptLanguage(list)
	if err != nil {
		return nil
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.String()
	}
	return out
}
