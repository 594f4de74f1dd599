package model

// CodeDesc is a coded platform value with a display description.
type CodeDesc struct {
	Value string `json:"value"`
	Desc  string `json:"desc"`
}

// SetInfo describes a platform set used as job intake.
type SetInfo struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Content *CodeDesc `json:"content,omitempty"`
	Type    *CodeDesc `json:"type,omitempty"`

	NumberOfMembers int `json:"number_of_members,omitempty"`
}

// SetMember is one entry of a set's member listing.
type SetMember struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// IsUserContent reports whether the set holds user records.
func (s *SetInfo) IsUserContent() bool {
	return s.Content != nil && s.Content.Value == "USER"
}
