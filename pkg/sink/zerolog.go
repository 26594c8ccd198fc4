//go:build gotracy_zerolog

package sink

import (
	"os"

	"github.com/rs/zerolog"
)

// zerologSink is the facility selected by building with -tags
// gotracy_zerolog, the Go analogue of the original's CONFIG_GLIB
// compile-time switch: trace lines and diagnostics both go through a
// single structured logger instead of bare fprintf.
type zerologSink struct {
	logger zerolog.Logger
}

func newZerologSink() zerologSink {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}
	return zerologSink{logger: zerolog.New(w).With().Timestamp().Logger()}
}

func (z zerologSink) Line(s string) {
	z.logger.Info().Msg(s)
}

func (z zerologSink) Diagnostic(format string, args ...any) {
	z.logger.Warn().Msgf(format, args...)
}

func init() {
	std = newZerologSink()
}
