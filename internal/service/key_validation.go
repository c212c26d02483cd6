package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/trifall/link-shortener-ui/internal/domain/passkey"
	apperrors "github.com/trifall/link-shortener-ui/internal/errors"
	"github.com/trifall/link-shortener-ui/internal/ports"
	"github.com/trifall/link-shortener-ui/internal/util"
)

// ValidatePath is the backend route that checks a passkey.
const ValidatePath = "/api/v1/keys/validate"

const (
	msgInvalidPasskey   = "Invalid passkey"
	msgValidationFailed = "Validation failed"
	msgTransportFailed  = "Failed to validate passkey. Please try again."

	maxValidateResponseBytes = 1 << 20
)

var _ ports.KeyValidator = (*KeyValidationClient)(nil)

// KeyValidationClientOptions groups dependencies for KeyValidationClient.
type KeyValidationClientOptions struct {
	BaseURL    string       // Required: backend origin, e.g. https://sho.rt
	HTTPClient *http.Client // Optional: defaults to http.DefaultClient
	Logger     *slog.Logger // Optional: structured logger
}

// KeyValidationClient asks the link-shortener backend whether a passkey is
// valid. Every outcome, including transport failures, is folded into a
// passkey.ValidationResult.
type KeyValidationClient struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewKeyValidationClient constructs a new KeyValidationClient.
func NewKeyValidationClient(opts KeyValidationClientOptions) (*KeyValidationClient, error) {
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		return nil, errors.New("backend base URL is required")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeContract, "invalid backend base URL %q", base)
	}

	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &KeyValidationClient{
		endpoint: strings.TrimRight(base, "/") + ValidatePath,
		client:   client,
		logger:   logger.With("component", "key_validation_client"),
	}, nil
}

// Endpoint returns the absolute validation URL.
func (c *KeyValidationClient) Endpoint() string {
	return c.endpoint
}

// Validate sanitizes rawKey and, when it passes, performs one POST to the
// validation endpoint with the key in the Authorization header. The context
// is the only way to abandon an in-flight request; there is no retry.
func (c *KeyValidationClient) Validate(ctx context.Context, rawKey string) passkey.ValidationResult {
	key, err := Sanitize(rawKey)
	if err != nil {
		c.logger.WarnContext(ctx, "passkey rejected locally",
			"category", "input", "code", apperrors.GetCode(err))
		return passkey.Failed(inputMessage(err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, http.NoBody)
	if err != nil {
		return c.transportFailure(ctx, err)
	}
	req.Header.Set("Authorization", key)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return c.transportFailure(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxValidateResponseBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.rejected(ctx, resp.StatusCode, body, readErr)
	}

	var parsed passkey.ValidateKeyResponse
	if readErr != nil {
		return c.protocolFailure(ctx, resp.StatusCode, readErr)
	}
	if decodeErr := json.Unmarshal(body, &parsed); decodeErr != nil {
		return c.protocolFailure(ctx, resp.StatusCode, decodeErr)
	}
	if parsed.Key == nil || parsed.Key.Key == "" {
		return c.protocolFailure(ctx, resp.StatusCode, apperrors.Protocol("response has no key"))
	}

	c.logger.DebugContext(ctx, "passkey validated", "name", parsed.Key.Name, "is_admin", parsed.Key.IsAdmin)
	return passkey.Succeeded(&parsed)
}

// rejected maps a non-2xx response to a failure. A backend-provided message
// wins; anything else reads as an invalid key.
func (c *KeyValidationClient) rejected(ctx context.Context, status int, body []byte, readErr error) passkey.ValidationResult {
	message := msgInvalidPasskey
	if readErr == nil {
		var parsed passkey.ValidateKeyResponse
		if json.Unmarshal(body, &parsed) == nil && parsed.Message != "" {
			message = util.Capitalize(parsed.Message, true)
		}
	}
	c.logger.WarnContext(ctx, "passkey rejected by backend",
		"category", "rejected", "status", status)
	return passkey.Failed(message)
}

func (c *KeyValidationClient) protocolFailure(ctx context.Context, status int, err error) passkey.ValidationResult {
	c.logger.WarnContext(ctx, "validation response violated contract",
		"category", "protocol", "status", status, "error", err)
	return passkey.Failed(msgValidationFailed)
}

func (c *KeyValidationClient) transportFailure(ctx context.Context, err error) passkey.ValidationResult {
	c.logger.WarnContext(ctx, "validation request failed",
		"category", "transport", "error", err)
	return passkey.Failed(transportMessage(err))
}

func inputMessage(err error) string {
	if apperrors.IsEmptyInput(err) {
		return msgPasskeyRequired
	}
	return msgInvalidCharacters
}

// transportMessage strips the method and URL that *url.Error prepends and
// normalizes what is left for display.
func transportMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		err = urlErr.Err
	}
	if msg := util.Capitalize(err.Error(), true); msg != "" {
		return msg
	}
	return msgTransportFailed
}
