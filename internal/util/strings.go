package util //nolint:revive // package name util hosts shared text helpers used by services and handlers

import (
	"strings"
	"unicode"
	"unicode/utf8"

	apperrors "github.com/trifall/link-shortener-ui/internal/errors"
)

// errorDelimiter separates an error prefix ("validate key") from its detail.
const errorDelimiter = ": "

// Capitalize upper-cases the first letter of text.
// In error mode only the detail after the first ": " is capitalized and the
// prefix is left untouched; text without the delimiter is returned unchanged.
func Capitalize(text string, errorMode bool) string {
	if text == "" {
		return ""
	}
	if !errorMode {
		return upperFirst(text)
	}
	idx := strings.Index(text, errorDelimiter)
	if idx < 0 {
		return text
	}
	split := idx + len(errorDelimiter)
	return text[:split] + upperFirst(text[split:])
}

// FormatIdentifierError turns a backend error token such as "invalid_url" into
// a display label ("Invalid URL"). Only the first space-delimited word is
// transformed; the remainder is appended untouched.
func FormatIdentifierError(identifier string) (string, error) {
	if identifier == "" {
		return "", apperrors.Contract("identifier", "Input must be a non-empty string")
	}

	first, rest, hasRest := strings.Cut(identifier, " ")
	if first == "" {
		return rest, nil
	}

	var formatted string
	if strings.Contains(first, "_") {
		segments := strings.Split(first, "_")
		for i, seg := range segments {
			if strings.Contains(strings.ToLower(seg), "url") {
				segments[i] = strings.ToUpper(seg)
				continue
			}
			segments[i] = upperFirst(seg)
		}
		// empty segments from repeated underscores stay as extra spaces
		formatted = strings.Join(segments, " ")
	} else {
		formatted = upperFirst(first)
	}

	if hasRest {
		return formatted + " " + rest, nil
	}
	return formatted, nil
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
