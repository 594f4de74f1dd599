package usecase

import (
	"context"

	"usernotes-srv/internal/model"
	"usernotes-srv/internal/notes"
)

// Select returns the notes of the user matching the criteria. The
// filters are conjunctive: text first, then date, then creator. With no
// active filter it returns an empty slice, a deliberate guard against
// matching everything by omission.
func (uc *implUseCase) Select(ctx context.Context, user *model.UserRecord, criteria notes.SearchCriteria) []model.Note {
	if user == nil || len(user.Notes) == 0 || !criteria.Active() {
		return []model.Note{}
	}

	matching := make([]model.Note, 0, len(user.Notes))
	for _, note := range user.Notes {
		if criteria.HasText() && !matchesText(note.Text, criteria) {
			continue
		}
		if criteria.HasDate() && !uc.inDateRange(note.CreatedDate, criteria.DateRange) {
			continue
		}
		if criteria.HasCreators() && !creatorIn(note.CreatedBy, criteria.Creators) {
			continue
		}
		if criteria.SegmentType != "" && note.SegmentType != criteria.SegmentType {
			continue
		}
		matching = append(matching, note)
	}

	return matching
}

func creatorIn(createdBy string, creators []string) bool {
	for _, c := range creators {
		if createdBy == c {
			return true
		}
	}
	return false
}
