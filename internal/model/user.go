package model

import (
	"encoding/json"
	"strings"
)

// UserRecord is a platform user record. Only the identity and note
// fields are lifted out; everything else rides along in extra so the
// full record can be written back unchanged except for the notes.
type UserRecord struct {
	PrimaryID string
	FullName  string
	FirstName string
	LastName  string
	Notes     []Note

	// LoadError is set on placeholder records for set members whose
	// full record could not be fetched. Records with a load error are
	// excluded from all processing.
	LoadError string

	extra map[string]json.RawMessage
}

const (
	userKeyPrimaryID = "primary_id"
	userKeyNotes     = "user_note"
	userKeyFullName  = "full_name"
	userKeyFirstName = "first_name"
	userKeyLastName  = "last_name"
	userKeyLoadError = "error"
)

// DisplayName returns the best available human-readable name.
func (u *UserRecord) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}
	return u.PrimaryID
}

// Clone returns a deep copy of the record including all notes and
// passthrough fields.
func (u *UserRecord) Clone() UserRecord {
	out := UserRecord{
		PrimaryID: u.PrimaryID,
		FullName:  u.FullName,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		LoadError: u.LoadError,
	}
	if u.Notes != nil {
		out.Notes = make([]Note, len(u.Notes))
		for i := range u.Notes {
			out.Notes[i] = u.Notes[i].Clone()
		}
	}
	if u.extra != nil {
		out.extra = make(map[string]json.RawMessage, len(u.extra))
		for k, v := range u.extra {
			out.extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return out
}

// NewLoadErrorRecord builds a placeholder record for a set member whose
// full record could not be retrieved.
func NewLoadErrorRecord(primaryID, loadErr string) UserRecord {
	return UserRecord{
		PrimaryID: primaryID,
		Notes:     []Note{},
		LoadError: loadErr,
	}
}

func (u *UserRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*u = UserRecord{}
	str := func(key string, dst *string) error {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		if string(v) != "null" {
			if err := json.Unmarshal(v, dst); err != nil {
				return err
			}
		}
		delete(raw, key)
		return nil
	}

	if err := str(userKeyPrimaryID, &u.PrimaryID); err != nil {
		return err
	}
	if err := str(userKeyFullName, &u.FullName); err != nil {
		return err
	}
	if err := str(userKeyFirstName, &u.FirstName); err != nil {
		return err
	}
	if err := str(userKeyLastName, &u.LastName); err != nil {
		return err
	}
	if err := str(userKeyLoadError, &u.LoadError); err != nil {
		return err
	}
	if v, ok := raw[userKeyNotes]; ok {
		if string(v) != "null" {
			if err := json.Unmarshal(v, &u.Notes); err != nil {
				return err
			}
		}
		delete(raw, userKeyNotes)
	}

	if len(raw) > 0 {
		u.extra = raw
	}
	return nil
}

func (u UserRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(u.extra)+6)
	for k, v := range u.extra {
		out[k] = v
	}

	put := func(key string, val interface{}) error {
		b, err := json.Marshal(val)
		if err != nil {
			return err
		}
		out[key] = b
		return nil
	}

	if err := put(userKeyPrimaryID, u.PrimaryID); err != nil {
		return nil, err
	}
	notes := u.Notes
	if notes == nil {
		notes = []Note{}
	}
	if err := put(userKeyNotes, notes); err != nil {
		return nil, err
	}
	if u.FullName != "" {
		if err := put(userKeyFullName, u.FullName); err != nil {
			return nil, err
		}
	}
	if u.FirstName != "" {
		if err := put(userKeyFirstName, u.FirstName); err != nil {
			return nil, err
		}
	}
	if u.LastName != "" {
		if err := put(userKeyLastName, u.LastName); err != nil {
			return nil, err
		}
	}
	if u.LoadError != "" {
		if err := put(userKeyLoadError, u.LoadError); err != nil {
			return nil, err
		}
	}

	return json.Marshal(out)
}
