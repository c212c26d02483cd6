package config

import "strings"

// MetricsConfig points validation metrics at a StatsD agent.
type MetricsConfig struct {
	// StatsdAddress is host:port of the agent. Empty disables metrics.
	StatsdAddress string `env:"METRICS_STATSD_ADDR" envDefault:""`

	// Prefix is prepended to every metric name.
	Prefix string `env:"METRICS_PREFIX" envDefault:"linkadmin"`
}

// IsEnabled reports whether an agent address is configured.
func (m MetricsConfig) IsEnabled() bool {
	return strings.TrimSpace(m.StatsdAddress) != ""
}
