package config

import "time"

// PasskeyConfig tunes passkey persistence and notifications.
type PasskeyConfig struct {
	// DefaultSaveKey is the saveKey preference used before the operator
	// chooses one. Remembering a bearer key is opt-in.
	DefaultSaveKey bool `env:"PASSKEY_DEFAULT_SAVE_KEY" envDefault:"false"`

	// ToastDuration is how long notifications stay visible by default.
	ToastDuration time.Duration `env:"PASSKEY_TOAST_DURATION" envDefault:"5s"`
}

// Sanitize restores the default toast duration when it is not positive.
func (p *PasskeyConfig) Sanitize() {
	if p.ToastDuration <= 0 {
		p.ToastDuration = 5 * time.Second
	}
}
