package service

import (
	"context"
	"time"

	"github.com/trifall/link-shortener-ui/internal/domain/passkey"
	"github.com/trifall/link-shortener-ui/internal/observability/statsd"
	"github.com/trifall/link-shortener-ui/internal/ports"
)

// Metric names emitted for each validation attempt.
const (
	MetricValidate         = "passkey.validate"
	MetricValidateDuration = "passkey.validate.duration"
)

// Validation outcomes used as the "result" tag.
const (
	outcomeValid    = "valid"
	outcomeInactive = "inactive"
	outcomeFailed   = "failed"
)

var _ ports.KeyValidator = (*InstrumentedValidator)(nil)

// InstrumentedValidator counts and times validations performed by another
// KeyValidator. Keys never appear in metric names or tags.
type InstrumentedValidator struct {
	inner ports.KeyValidator
	sink  statsd.Sink
	now   func() time.Time
}

// NewInstrumentedValidator wraps inner. A nil sink disables metrics.
func NewInstrumentedValidator(inner ports.KeyValidator, sink statsd.Sink) *InstrumentedValidator {
	return &InstrumentedValidator{inner: inner, sink: sink, now: time.Now}
}

// Validate delegates to the wrapped validator and records the outcome.
func (v *InstrumentedValidator) Validate(ctx context.Context, rawKey string) passkey.ValidationResult {
	start := v.now()
	res := v.inner.Validate(ctx, rawKey)
	if v.sink == nil {
		return res
	}

	tags := map[string]string{"result": validationOutcome(res)}
	v.sink.Count(MetricValidate, 1, tags)
	v.sink.Timing(MetricValidateDuration, v.now().Sub(start), tags)
	return res
}

func validationOutcome(res passkey.ValidationResult) string {
	rec, ok := res.Record()
	switch {
	case !ok:
		return outcomeFailed
	case rec.IsValid():
		return outcomeValid
	default:
		return outcomeInactive
	}
}
