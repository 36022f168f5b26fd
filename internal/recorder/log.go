package recorder

import (
	"errors"

	"github.com/rs/zerolog"
)

// LogRecorder writes each snapshot as a structured info event.
type LogRecorder struct {
	logger zerolog.Logger
}

// NewLogRecorder derives a component logger from the given one.
func NewLogRecorder(logger zerolog.Logger) *LogRecorder {
	return &LogRecorder{logger: logger.With().Str("component", "recorder").Logger()}
}

func (r *LogRecorder) RecordStatistics(snap *Snapshot) error {
	if snap == nil {
		return errors.New("nil snapshot")
	}
	r.logger.Info().
		Str("book", snap.BookName).
		Int("count", snap.GradeCount).
		Float64("average", snap.Stats.Average).
		Float64("high", snap.Stats.High).
		Float64("low", snap.Stats.Low).
		Msg("statistics computed")
	return nil
}

func (r *LogRecorder) Close() error {
	r.logger.Debug().Msg("closing log recorder")
	return nil
}
