package usecase

import (
	"strings"
	"time"

	"usernotes-srv/internal/notes"
)

const dateOnlyLayout = "2006-01-02"

// parseNoteDate resolves a note's created date to an instant. Date-only
// values are local midnight of that calendar day, never UTC midnight,
// so a day range never shifts across timezones. Full timestamps keep
// their instant and are compared by the local calendar day they fall in.
func parseNoteDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	if len(value) == len(dateOnlyLayout) {
		t, err := time.ParseInLocation(dateOnlyLayout, value, loc)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.In(loc), true
		}
	}

	return time.Time{}, false
}

// inDateRange reports whether the note date falls inside the range.
// Bounds are whole local days: start is local midnight, end runs to the
// last instant of its day. A missing bound places no constraint on that
// side. An unparsable note date fails closed.
func (uc *implUseCase) inDateRange(noteDate string, r notes.DateRange) bool {
	if r.IsEmpty() {
		return true
	}

	t, ok := parseNoteDate(noteDate, uc.loc)
	if !ok {
		return false
	}

	if start := strings.TrimSpace(r.Start); start != "" {
		lower, err := time.ParseInLocation(dateOnlyLayout, start, uc.loc)
		if err != nil {
			return false
		}
		if t.Before(lower) {
			return false
		}
	}

	if end := strings.TrimSpace(r.End); end != "" {
		upper, err := time.ParseInLocation(dateOnlyLayout, end, uc.loc)
		if err != nil {
			return false
		}
		// Inclusive whole-day semantics: anything before the next
		// local midnight is in range.
		if !t.Before(upper.AddDate(0, 0, 1)) {
			return false
		}
	}

	return true
}
