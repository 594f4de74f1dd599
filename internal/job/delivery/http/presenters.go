package http

import (
	"time"

	"usernotes-srv/internal/job"
	"usernotes-srv/internal/model"
	"usernotes-srv/internal/notes"
	"usernotes-srv/pkg/paginator"
)

// =====================================================
// Request DTOs
// =====================================================

type parameterReq struct {
	ID     string `json:"id" binding:"required"`
	Action string `json:"action,omitempty"`

	TextSearch    *textSearchReq    `json:"text_search,omitempty"`
	DateRange     *dateRangeReq     `json:"date_range,omitempty"`
	CreatorSearch *creatorSearchReq `json:"creator_search,omitempty"`
	PopupSettings *popupSettingsReq `json:"popup_settings,omitempty"`
	UserViewable  *userViewableReq  `json:"user_viewable,omitempty"`
	NoteType      *noteTypeReq      `json:"note_type,omitempty"`
}

type textSearchReq struct {
	Text          string `json:"text"`
	CaseSensitive bool   `json:"case_sensitive"`
	MatchMode     string `json:"match_mode,omitempty"`
	IgnoreAccents *bool  `json:"ignore_accents,omitempty"`
}

type dateRangeReq struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type creatorSearchReq struct {
	SelectedCreators []string `json:"selected_creators"`
}

type popupSettingsReq struct {
	MakePopup    bool `json:"make_popup"`
	DisablePopup bool `json:"disable_popup"`
}

type userViewableReq struct {
	MakeUserViewable *bool `json:"make_user_viewable"`
}

type noteTypeReq struct {
	Value string `json:"value" binding:"required"`
	Desc  string `json:"desc"`
}

type intakeReq struct {
	SetID   string   `json:"set_id,omitempty"`
	UserIDs []string `json:"user_ids,omitempty"`
}

type previewReq struct {
	Parameters []parameterReq `json:"parameters"`
	Intake     intakeReq      `json:"intake" binding:"required"`
}

type createReq struct {
	Parameters []parameterReq `json:"parameters" binding:"required"`
	Intake     intakeReq      `json:"intake" binding:"required"`
}

func (r parameterReq) toParameter() job.Parameter {
	p := job.Parameter{ID: r.ID, Action: r.Action}

	if r.TextSearch != nil {
		p.TextSearch = &job.TextSearchValue{
			Text:          r.TextSearch.Text,
			CaseSensitive: r.TextSearch.CaseSensitive,
			MatchMode:     notes.MatchMode(r.TextSearch.MatchMode),
			IgnoreAccents: r.TextSearch.IgnoreAccents,
		}
	}
	if r.DateRange != nil {
		p.DateRange = &notes.DateRange{
			Start: r.DateRange.StartDate,
			End:   r.DateRange.EndDate,
		}
	}
	if r.CreatorSearch != nil {
		p.CreatorSearch = &job.CreatorSearchValue{
			SelectedCreators: r.CreatorSearch.SelectedCreators,
		}
	}
	if r.PopupSettings != nil {
		p.PopupSettings = &job.PopupSettingsValue{
			MakePopup:    r.PopupSettings.MakePopup,
			DisablePopup: r.PopupSettings.DisablePopup,
		}
	}
	if r.UserViewable != nil {
		p.UserViewable = &job.UserViewableValue{
			MakeUserViewable: r.UserViewable.MakeUserViewable,
		}
	}
	if r.NoteType != nil {
		p.NoteType = &model.NoteType{Value: r.NoteType.Value, Desc: r.NoteType.Desc}
	}

	return p
}

func toParameters(reqs []parameterReq) []job.Parameter {
	out := make([]job.Parameter, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.toParameter())
	}
	return out
}

func (r intakeReq) toIntake() job.Intake {
	return job.Intake{SetID: r.SetID, UserIDs: r.UserIDs}
}

// =====================================================
// Response DTOs
// =====================================================

type menuOptionResp struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

type summaryResp struct {
	Total        int `json:"total"`
	WithNotes    int `json:"with_notes"`
	WithoutNotes int `json:"without_notes"`
	LoadErrors   int `json:"load_errors"`
}

type setInfoResp struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	NumberOfMembers int    `json:"number_of_members,omitempty"`
}

type previewResp struct {
	Parameters       []job.Parameter  `json:"parameters"`
	AvailableOptions []menuOptionResp `json:"available_options"`
	CanExecute       bool             `json:"can_execute"`
	BlockingReasons  []string         `json:"blocking_reasons,omitempty"`
	Summary          summaryResp      `json:"summary"`
	SetInfo          *setInfoResp     `json:"set_info,omitempty"`
}

type createResp struct {
	RunID  string `json:"run_id"`
	Status string `json:"status"`
}

type runResp struct {
	ID            string `json:"id"`
	SetID         string `json:"set_id,omitempty"`
	SetName       string `json:"set_name,omitempty"`
	Status        string `json:"status"`
	Action        string `json:"action"`
	TotalUsers    int    `json:"total_users"`
	Processed     int    `json:"processed"`
	ModifiedUsers int    `json:"modified_users"`
	FailedUsers   int    `json:"failed_users"`
	NoMatchUsers  int    `json:"no_match_users"`
	ErrorMessage  string `json:"error_message,omitempty"`
	StartedAt     string `json:"started_at,omitempty"`
	CompletedAt   string `json:"completed_at,omitempty"`
}

type listResp struct {
	Runs      []runResp                   `json:"runs"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type noteLogEntryResp struct {
	Before  model.Note  `json:"before"`
	After   *model.Note `json:"after,omitempty"`
	Deleted bool        `json:"deleted"`
}

type processLogResp struct {
	UserID           string             `json:"user_id"`
	NoMatchingNotes  bool               `json:"no_matching_notes"`
	Notes            []noteLogEntryResp `json:"notes"`
	UpdateSuccessful *bool              `json:"update_successful,omitempty"`
	UpdateError      string             `json:"update_error,omitempty"`
}

type logsResp struct {
	Logs      []processLogResp            `json:"logs"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newPreviewResp(output job.PreviewOutput) previewResp {
	resp := previewResp{
		Parameters:      output.Parameters,
		CanExecute:      output.CanExecute,
		BlockingReasons: output.BlockingReasons,
		Summary: summaryResp{
			Total:        output.Summary.Total,
			WithNotes:    output.Summary.WithNotes,
			WithoutNotes: output.Summary.WithoutNotes,
			LoadErrors:   output.Summary.LoadErrors,
		},
	}

	resp.AvailableOptions = make([]menuOptionResp, len(output.AvailableOptions))
	for i, opt := range output.AvailableOptions {
		resp.AvailableOptions[i] = menuOptionResp{
			ID:          opt.ID,
			Category:    opt.Category,
			Label:       opt.Label,
			Description: opt.Description,
			Available:   opt.Available,
		}
	}

	if output.SetInfo != nil {
		resp.SetInfo = &setInfoResp{
			ID:              output.SetInfo.ID,
			Name:            output.SetInfo.Name,
			NumberOfMembers: output.SetInfo.NumberOfMembers,
		}
	}

	return resp
}

func newRunResp(run model.JobRun) runResp {
	resp := runResp{
		ID:            run.ID,
		SetID:         run.SetID,
		SetName:       run.SetName,
		Status:        string(run.Status),
		Action:        run.Action,
		TotalUsers:    run.TotalUsers,
		Processed:     run.Processed,
		ModifiedUsers: run.ModifiedUsers,
		FailedUsers:   run.FailedUsers,
		NoMatchUsers:  run.NoMatchUsers,
		ErrorMessage:  run.ErrorMessage,
	}
	if run.StartedAt != nil {
		resp.StartedAt = run.StartedAt.Format(time.RFC3339)
	}
	if run.CompletedAt != nil {
		resp.CompletedAt = run.CompletedAt.Format(time.RFC3339)
	}
	return resp
}

func (h *handler) newListResp(output job.ListOutput) listResp {
	resp := listResp{
		Runs:      make([]runResp, len(output.Runs)),
		Paginator: output.Paginator.ToResponse(),
	}
	for i, run := range output.Runs {
		resp.Runs[i] = newRunResp(run)
	}
	return resp
}

func (h *handler) newLogsResp(output job.GetLogsOutput) logsResp {
	resp := logsResp{
		Logs:      make([]processLogResp, len(output.Logs)),
		Paginator: output.Paginator.ToResponse(),
	}
	for i, l := range output.Logs {
		entry := processLogResp{
			UserID:           l.UserID,
			NoMatchingNotes:  l.NoMatchingNotes,
			Notes:            make([]noteLogEntryResp, len(l.Notes)),
			UpdateSuccessful: l.UpdateSuccessful,
			UpdateError:      l.UpdateError,
		}
		for j, n := range l.Notes {
			entry.Notes[j] = noteLogEntryResp{
				Before:  n.Before,
				After:   n.After,
				Deleted: n.Deleted,
			}
		}
		resp.Logs[i] = entry
	}
	return resp
}
