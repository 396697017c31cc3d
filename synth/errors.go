package synth

import "errors"

var (
	// ErrUnknownNoteSymbol is returned when a note name is not one of the
	// twelve chromatic symbols. Matching is exact and case-sensitive.
	ErrUnknownNoteSymbol = errors.New("unknown note symbol")

	// ErrLengthMismatch is returned when two buffers of different length are
	// combined. It always indicates a programming error in the caller.
	ErrLengthMismatch = errors.New("sample buffer length mismatch")

	ErrInvalidDuration  = errors.New("invalid duration")
	ErrInvalidTimeShift = errors.New("invalid time shift")
	ErrInvalidOvertones = errors.New("invalid overtone count")
)
