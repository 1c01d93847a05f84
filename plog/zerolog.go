package plog

import "github.com/rs/zerolog"

// ZerologSink renders Events through a zerolog.Logger, one structured debug
// line per event. This is the sink cmd/parsekit wires up when --verbose-log
// is set.
type ZerologSink struct {
	logger zerolog.Logger
}

// NewZerologSink wraps logger as a Sink.
func NewZerologSink(logger zerolog.Logger) *ZerologSink {
	return &ZerologSink{logger: logger}
}

// Log implements Sink.
func (s *ZerologSink) Log(e Event) {
	s.logger.Debug().
		Str("session", e.Session).
		Str("symbol", e.Symbol).
		Int("pos", e.Position).
		Str("outcome", e.Outcome).
		Str("level", e.Level.String()).
		Msg(e.Message())
}
