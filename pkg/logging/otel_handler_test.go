package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/log"
)

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  log.Severity
	}{
		{"debug", slog.LevelDebug, log.SeverityDebug},
		{"below info stays debug", slog.LevelInfo - 1, log.SeverityDebug},
		{"info", slog.LevelInfo, log.SeverityInfo},
		{"notice buckets as info", slog.LevelInfo + 2, log.SeverityInfo},
		{"warn", slog.LevelWarn, log.SeverityWarn},
		{"error", slog.LevelError, log.SeverityError},
		{"above error stays error", slog.LevelError + 4, log.SeverityError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, severityFor(tt.level))
		})
	}
}
