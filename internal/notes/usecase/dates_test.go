package usecase

import (
	"testing"
	"time"

	"usernotes-srv/internal/notes"
	"usernotes-srv/pkg/log"
)

func newTestUseCase(loc *time.Location) *implUseCase {
	return &implUseCase{l: log.NewNop(), loc: loc}
}

func TestInDateRange(t *testing.T) {
	day := notes.DateRange{Start: "2024-01-05", End: "2024-01-05"}

	t.Run("empty range places no constraint", func(t *testing.T) {
		uc := newTestUseCase(time.UTC)
		if !uc.inDateRange("2024-01-05", notes.DateRange{}) {
			t.Error("empty range should match any date")
		}
	})

	t.Run("date-only value inside single-day range", func(t *testing.T) {
		uc := newTestUseCase(time.UTC)
		if !uc.inDateRange("2024-01-05", day) {
			t.Error("expected 2024-01-05 inside its own day range")
		}
		if uc.inDateRange("2024-01-06", day) {
			t.Error("2024-01-06 must be outside the range")
		}
	})

	t.Run("utc instant compared by local calendar day", func(t *testing.T) {
		// 2024-01-05T23:00:00Z is still Jan 5 in UTC-5.
		west := time.FixedZone("UTC-5", -5*3600)
		if !newTestUseCase(west).inDateRange("2024-01-05T23:00:00Z", day) {
			t.Error("instant falls on local Jan 5, expected in range")
		}

		// The same instant is already Jan 6 in UTC+2.
		east := time.FixedZone("UTC+2", 2*3600)
		if newTestUseCase(east).inDateRange("2024-01-05T23:00:00Z", day) {
			t.Error("instant falls on local Jan 6, expected out of range")
		}
	})

	t.Run("end bound is inclusive to end of day", func(t *testing.T) {
		uc := newTestUseCase(time.UTC)
		if !uc.inDateRange("2024-01-05T23:59:59Z", day) {
			t.Error("last second of the end day must be in range")
		}
		if uc.inDateRange("2024-01-06T00:00:00Z", day) {
			t.Error("first instant of the next day must be out of range")
		}
	})

	t.Run("partial bounds are valid filters", func(t *testing.T) {
		uc := newTestUseCase(time.UTC)
		onlyStart := notes.DateRange{Start: "2024-01-05"}
		if !uc.inDateRange("2030-12-31", onlyStart) {
			t.Error("no end bound, any later date is in range")
		}
		if uc.inDateRange("2024-01-04", onlyStart) {
			t.Error("date before start must be out of range")
		}

		onlyEnd := notes.DateRange{End: "2024-01-05"}
		if !uc.inDateRange("2020-01-01", onlyEnd) {
			t.Error("no start bound, any earlier date is in range")
		}
		if uc.inDateRange("2024-01-06", onlyEnd) {
			t.Error("date after end must be out of range")
		}
	})

	t.Run("unparsable note date fails closed", func(t *testing.T) {
		uc := newTestUseCase(time.UTC)
		if uc.inDateRange("not-a-date", day) {
			t.Error("unparsable date must be excluded")
		}
		if uc.inDateRange("", day) {
			t.Error("missing date must be excluded when a range is active")
		}
	})
}
