package user

import "usernotes-srv/internal/model"

// LoadSetInput identifies a platform set used as job intake.
type LoadSetInput struct {
	SetID string
}

// LoadUsersInput carries an explicit ID list intake (uploaded file).
type LoadUsersInput struct {
	UserIDs []string
}

// Summary categorizes the loaded records for the job overview.
type Summary struct {
	Total        int `json:"total"`
	WithNotes    int `json:"with_notes"`
	WithoutNotes int `json:"without_notes"`
	LoadErrors   int `json:"load_errors"`
}

// LoadOutput is a fully loaded intake: set identity (when set-driven),
// the fetched records including load-error placeholders, and the
// category counts.
type LoadOutput struct {
	SetInfo *model.SetInfo
	Users   []model.UserRecord
	Summary Summary
}

// Summarize computes category counts over loaded records. Records with
// a load error are excluded from the with/without split.
func Summarize(users []model.UserRecord) Summary {
	s := Summary{Total: len(users)}
	for i := range users {
		switch {
		case users[i].LoadError != "":
			s.LoadErrors++
		case len(users[i].Notes) > 0:
			s.WithNotes++
		default:
			s.WithoutNotes++
		}
	}
	return s
}
