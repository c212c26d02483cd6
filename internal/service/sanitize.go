package service

import (
	"strings"

	apperrors "github.com/trifall/link-shortener-ui/internal/errors"
)

// Messages shown to the operator when a passkey is rejected locally.
const (
	msgPasskeyRequired   = "Passkey is required"
	msgInvalidCharacters = "Invalid characters detected"
)

// Characters and sequences rejected anywhere in a trimmed passkey.
var (
	unsafeChars     = `'";\`
	unsafeSequences = []string{"--", ".."}
)

// Sanitize trims surrounding whitespace from raw and rejects empty or
// structurally unsafe input. It never rewrites the key: the returned string is
// the trimmed input, unchanged.
func Sanitize(raw string) (string, error) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", apperrors.EmptyInput(msgPasskeyRequired)
	}
	if strings.ContainsAny(key, unsafeChars) {
		return "", apperrors.UnsafeInput(msgInvalidCharacters)
	}
	for _, seq := range unsafeSequences {
		if strings.Contains(key, seq) {
			return "", apperrors.UnsafeInput(msgInvalidCharacters)
		}
	}
	return key, nil
}
