package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trifall/link-shortener-ui/internal/domain/passkey"
	"github.com/trifall/link-shortener-ui/internal/mocks"
	"go.uber.org/mock/gomock"
)

type recordedMetric struct {
	name  string
	kind  string
	value float64
	tags  map[string]string
}

type recordingSink struct {
	mu      sync.Mutex
	metrics []recordedMetric
}

func (s *recordingSink) Count(name string, value int64, tags map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = append(s.metrics, recordedMetric{name: name, kind: "c", value: float64(value), tags: tags})
}

func (s *recordingSink) Timing(name string, value time.Duration, tags map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = append(s.metrics, recordedMetric{name: name, kind: "ms", value: float64(value.Milliseconds()), tags: tags})
}

func TestInstrumentedValidator_RecordsOutcome(t *testing.T) {
	inactive := validRecord()
	inactive.IsActive = false

	tests := []struct {
		name   string
		result passkey.ValidationResult
		want   string
	}{
		{name: "valid", result: succeeded(validRecord()), want: "valid"},
		{name: "inactive", result: succeeded(inactive), want: "inactive"},
		{name: "failed", result: passkey.Failed("Invalid passkey"), want: "failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inner := mocks.NewMockKeyValidator(ctrl)
			inner.EXPECT().Validate(gomock.Any(), "abc123").Return(tt.result)

			sink := &recordingSink{}
			v := NewInstrumentedValidator(inner, sink)
			ticks := []time.Time{time.Unix(0, 0), time.Unix(0, int64(40*time.Millisecond))}
			v.now = func() time.Time {
				next := ticks[0]
				ticks = ticks[1:]
				return next
			}

			got := v.Validate(context.Background(), "abc123")

			assert.Equal(t, tt.result, got)
			assert.Equal(t, []recordedMetric{
				{name: MetricValidate, kind: "c", value: 1, tags: map[string]string{"result": tt.want}},
				{name: MetricValidateDuration, kind: "ms", value: 40, tags: map[string]string{"result": tt.want}},
			}, sink.metrics)
		})
	}
}

func TestInstrumentedValidator_NilSinkPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockKeyValidator(ctrl)
	inner.EXPECT().Validate(gomock.Any(), "abc123").Return(succeeded(validRecord()))

	got := NewInstrumentedValidator(inner, nil).Validate(context.Background(), "abc123")

	rec, ok := got.Record()
	assert.True(t, ok)
	assert.Equal(t, "ops", rec.Name)
}
