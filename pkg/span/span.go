// Package span attaches archived time intervals to summary tabs.
//
// An archived tab covers an immutable closed-open GPS interval [Start, End)
// together with a processing mode label. The span is purely descriptive at
// this level: plot producers use it as a hint for cache and reuse decisions.
package span

import (
	"fmt"

	"github.com/duncanmmacleod/gwsumm/pkg/errors"
)

// Span is a closed-open GPS time interval with a processing mode.
// The zero value is not usable; construct spans with New.
type Span struct {
	Start int64  // GPS start time (inclusive)
	End   int64  // GPS end time (exclusive)
	Mode  string // processing mode label, forwarded opaquely to producers
}

// New creates a span covering [start, end) with the given mode.
// It fails with ErrCodeInvalidSpan when start > end.
func New(start, end int64, mode string) (*Span, error) {
	if start > end {
		return nil, errors.New(errors.ErrCodeInvalidSpan,
			"invalid span: start %d after end %d", start, end)
	}
	return &Span{Start: start, End: end, Mode: mode}, nil
}

// Contains reports whether t falls within the closed-open interval.
func (s *Span) Contains(t int64) bool {
	return t >= s.Start && t < s.End
}

// Duration returns the length of the interval in seconds.
func (s *Span) Duration() int64 {
	return s.End - s.Start
}

// String returns the interval in [start, end) notation.
func (s *Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}
