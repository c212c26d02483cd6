// Package passkey contains domain-level types for backend-issued keys,
// validation outcomes, persisted preferences and toast notifications.
// It is pure and free of framework/adapter concerns.
package passkey

import (
	"fmt"
	"strings"
	"time"
)

// KeyRecord is a backend-issued credential as returned by the validation endpoint.
// Timestamps are opaque strings owned by the backend.
type KeyRecord struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	IsActive  bool   `json:"is_active"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// IsValid reports whether the record describes a usable session.
// IsAdmin and UpdatedAt do not participate.
func (k KeyRecord) IsValid() bool {
	return k.IsActive && k.Key != "" && k.Name != "" && k.CreatedAt != ""
}

// Redacted returns a copy with all but the last four characters of Key masked,
// for responses and logs that must not carry the secret.
func (k KeyRecord) Redacted() KeyRecord {
	const visible = 4
	if n := len(k.Key); n > visible {
		k.Key = strings.Repeat("*", n-visible) + k.Key[n-visible:]
	} else if n > 0 {
		k.Key = strings.Repeat("*", n)
	}
	return k
}

// ValidateKeyResponse is the JSON body of POST /api/v1/keys/validate.
type ValidateKeyResponse struct {
	Message string     `json:"message,omitempty"`
	Key     *KeyRecord `json:"key,omitempty"`
}

// ValidationResult is the outcome of one validation attempt.
// Data is set only when Success is true; Error only when it is false.
type ValidationResult struct {
	Success bool                 `json:"success"`
	Error   string               `json:"error,omitempty"`
	Data    *ValidateKeyResponse `json:"data,omitempty"`
}

// Succeeded builds a successful result carrying the parsed backend body.
func Succeeded(data *ValidateKeyResponse) ValidationResult {
	return ValidationResult{Success: true, Data: data}
}

// Failed builds a failed result carrying a display-ready message.
func Failed(message string) ValidationResult {
	return ValidationResult{Success: false, Error: message}
}

// Record returns the validated key record, or false when the result is a failure.
func (r ValidationResult) Record() (KeyRecord, bool) {
	if !r.Success || r.Data == nil || r.Data.Key == nil {
		return KeyRecord{}, false
	}
	return *r.Data.Key, true
}

// Settings is the persisted user preference record.
type Settings struct {
	SaveKey bool `json:"saveKey"`
}

// ToastType is the visual category of a toast notification.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastInfo    ToastType = "info"
	ToastWarning ToastType = "warning"
)

// DefaultToastDuration is how long a toast stays visible when no duration is given.
const DefaultToastDuration = 5 * time.Second

// Valid reports whether t is one of the known toast types.
func (t ToastType) Valid() bool {
	switch t {
	case ToastSuccess, ToastError, ToastInfo, ToastWarning:
		return true
	default:
		return false
	}
}

// ParseToastType parses a toast type name case-insensitively.
// An empty string yields ToastSuccess.
func ParseToastType(s string) (ToastType, error) {
	v := ToastType(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return ToastSuccess, nil
	}
	if !v.Valid() {
		return "", fmt.Errorf("invalid toast type: %q (valid options: success, error, info, warning)", s)
	}
	return v, nil
}

// ToastState is the observable state of the toast surface.
type ToastState struct {
	ID       string        `json:"id,omitempty"`
	Show     bool          `json:"show"`
	Text     string        `json:"text"`
	Duration time.Duration `json:"-"`
	Type     ToastType     `json:"type"`
}

// DurationMillis returns Duration in whole milliseconds, the unit UIs schedule with.
func (s ToastState) DurationMillis() int64 {
	return s.Duration.Milliseconds()
}
