package app

import "github.com/jsamuelsen11/sprintboard/internal/platform/telemetry"

// Option configures a service.
type Option func(*settings)

type settings struct {
	metrics *telemetry.Metrics
}

// WithMetrics records access denials and bulk move outcomes on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *settings) { s.metrics = m }
}

func applyOptions(opts []Option) settings {
	var s settings
	for _, o := range opts {
		o(&s)
	}
	return s
}
