package ports

import (
	"context"

	"github.com/trifall/link-shortener-ui/internal/domain/passkey"
)

// KeyValidator checks a raw passkey against the link-shortener backend.
// Implementations never return transport failures as errors; every outcome
// is folded into the ValidationResult.
type KeyValidator interface {
	Validate(ctx context.Context, rawKey string) passkey.ValidationResult
}
