package http

import (
	"usernotes-srv/internal/model"
)

type noteTypeResp struct {
	Value string `json:"value"`
	Desc  string `json:"desc"`
}

type noteTypesResp struct {
	NoteTypes []noteTypeResp `json:"note_types"`
}

func newNoteTypesResp(types []model.NoteType) noteTypesResp {
	resp := noteTypesResp{NoteTypes: make([]noteTypeResp, 0, len(types))}
	for _, t := range types {
		resp.NoteTypes = append(resp.NoteTypes, noteTypeResp{
			Value: t.Value,
			Desc:  t.Desc,
		})
	}
	return resp
}
