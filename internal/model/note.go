package model

import "encoding/json"

// NoteType is a coded note type with a display description.
type NoteType struct {
	Value string `json:"value"`
	Desc  string `json:"desc"`
}

// SegmentType values carried on platform notes.
const (
	SegmentInternal = "Internal"
	SegmentExternal = "External"
)

// DefaultNoteTypes is the fallback catalog used when the platform
// does not expose a note type code table.
var DefaultNoteTypes = []NoteType{
	{Value: "LIBRARY", Desc: "Library"},
	{Value: "ADDRESS", Desc: "Address"},
	{Value: "ERP", Desc: "ERP"},
	{Value: "POPUP", Desc: "General"},
	{Value: "CIRCULATION", Desc: "Circulation"},
	{Value: "BARCODE", Desc: "Barcode"},
	{Value: "REGISTAR", Desc: "Registrar"},
	{Value: "OTHER", Desc: "Other"},
}

// NoteKey is the content-based identity of a note. Two notes with equal
// keys are the same note even when they are distinct copies, since the
// working record may be a clone of the record the search pass examined.
type NoteKey struct {
	Text        string
	CreatedDate string
	CreatedBy   string
}

// Note is a single free-text note attached to a user record. Fields the
// engine never touches are preserved verbatim in extra so an update
// never drops platform data it does not understand.
type Note struct {
	Text         string
	Type         *NoteType
	UserViewable *bool
	PopupNote    bool
	CreatedBy    string
	CreatedDate  string
	SegmentType  string

	extra map[string]json.RawMessage
}

// Known JSON keys lifted out of the passthrough map.
const (
	noteKeyText         = "note_text"
	noteKeyType         = "note_type"
	noteKeyUserViewable = "user_viewable"
	noteKeyPopup        = "popup_note"
	noteKeyCreatedBy    = "created_by"
	noteKeyCreatedDate  = "created_date"
	noteKeySegmentType  = "segment_type"
)

// Key returns the composite natural key of the note.
func (n *Note) Key() NoteKey {
	return NoteKey{
		Text:        n.Text,
		CreatedDate: n.CreatedDate,
		CreatedBy:   n.CreatedBy,
	}
}

// Clone returns a deep copy of the note, passthrough fields included.
func (n *Note) Clone() Note {
	out := Note{
		Text:        n.Text,
		PopupNote:   n.PopupNote,
		CreatedBy:   n.CreatedBy,
		CreatedDate: n.CreatedDate,
		SegmentType: n.SegmentType,
	}
	if n.Type != nil {
		t := *n.Type
		out.Type = &t
	}
	if n.UserViewable != nil {
		v := *n.UserViewable
		out.UserViewable = &v
	}
	if n.extra != nil {
		out.extra = make(map[string]json.RawMessage, len(n.extra))
		for k, v := range n.extra {
			out.extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return out
}

func (n *Note) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*n = Note{}
	if v, ok := raw[noteKeyText]; ok {
		if err := json.Unmarshal(v, &n.Text); err != nil {
			return err
		}
		delete(raw, noteKeyText)
	}
	if v, ok := raw[noteKeyType]; ok {
		if string(v) != "null" {
			n.Type = &NoteType{}
			if err := json.Unmarshal(v, n.Type); err != nil {
				return err
			}
		}
		delete(raw, noteKeyType)
	}
	if v, ok := raw[noteKeyUserViewable]; ok {
		if string(v) != "null" {
			n.UserViewable = new(bool)
			if err := json.Unmarshal(v, n.UserViewable); err != nil {
				return err
			}
		}
		delete(raw, noteKeyUserViewable)
	}
	if v, ok := raw[noteKeyPopup]; ok {
		if err := json.Unmarshal(v, &n.PopupNote); err != nil {
			return err
		}
		delete(raw, noteKeyPopup)
	}
	if v, ok := raw[noteKeyCreatedBy]; ok {
		if err := json.Unmarshal(v, &n.CreatedBy); err != nil {
			return err
		}
		delete(raw, noteKeyCreatedBy)
	}
	if v, ok := raw[noteKeyCreatedDate]; ok {
		if err := json.Unmarshal(v, &n.CreatedDate); err != nil {
			return err
		}
		delete(raw, noteKeyCreatedDate)
	}
	if v, ok := raw[noteKeySegmentType]; ok {
		if string(v) != "null" {
			if err := json.Unmarshal(v, &n.SegmentType); err != nil {
				return err
			}
		}
		delete(raw, noteKeySegmentType)
	}

	if len(raw) > 0 {
		n.extra = raw
	}
	return nil
}

func (n Note) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(n.extra)+7)
	for k, v := range n.extra {
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

	if err := put(noteKeyText, n.Text); err != nil {
		return nil, err
	}
	if err := put(noteKeyPopup, n.PopupNote); err != nil {
		return nil, err
	}
	if n.Type != nil {
		if err := put(noteKeyType, n.Type); err != nil {
			return nil, err
		}
	}
	if n.UserViewable != nil {
		if err := put(noteKeyUserViewable, *n.UserViewable); err != nil {
			return nil, err
		}
	}
	if n.CreatedBy != "" {
		if err := put(noteKeyCreatedBy, n.CreatedBy); err != nil {
			return nil, err
		}
	}
	if n.CreatedDate != "" {
		if err := put(noteKeyCreatedDate, n.CreatedDate); err != nil {
			return nil, err
		}
	}
	if n.SegmentType != "" {
		if err := put(noteKeySegmentType, n.SegmentType); err != nil {
			return nil, err
		}
	}

	return json.Marshal(out)
}
