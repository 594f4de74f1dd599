package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"usernotes-srv/internal/model"
)

// csvHeader is the fixed column set of the result report. Every row
// carries all columns; rows leave the columns that do not apply empty.
var csvHeader = []string{
	"type",
	"userId",
	"noteAction",
	"noteText",
	"beforePopup",
	"afterPopup",
	"beforeUserViewable",
	"afterUserViewable",
	"beforeType",
	"afterType",
	"created_date",
	"created_by",
	"updateSuccessful",
	"updateError",
	"jobStartTime",
	"jobEndTime",
	"totalUsersProcessed",
	"usersWithChanges",
	"jobConfiguration",
}

// Row type markers.
const (
	rowJobInfo      = "JOB_INFO"
	rowNoMatches    = "NO_MATCHES"
	rowNoteDeleted  = "NOTE_DELETED"
	rowNoteModified = "NOTE_MODIFIED"
)

// buildRows turns a run and its process logs into report rows: one
// JOB_INFO row, then one NO_MATCHES row per user without matches or
// one row per note change.
func buildRows(run model.JobRun, logs []model.UserProcessLog) [][]string {
	rows := make([][]string, 0, len(logs)+1)
	rows = append(rows, jobInfoRow(run, logs))

	for _, l := range logs {
		if l.NoMatchingNotes {
			rows = append(rows, noMatchesRow(l))
			continue
		}
		for _, entry := range l.Notes {
			rows = append(rows, noteRow(l, entry))
		}
	}

	return rows
}

func jobInfoRow(run model.JobRun, logs []model.UserProcessLog) []string {
	row := emptyRow()
	row[0] = rowJobInfo
	if run.StartedAt != nil {
		row[14] = run.StartedAt.UTC().Format(time.RFC3339)
	}
	if run.CompletedAt != nil {
		row[15] = run.CompletedAt.UTC().Format(time.RFC3339)
	}
	row[16] = strconv.Itoa(len(logs))
	row[17] = strconv.Itoa(usersWithChanges(logs))
	row[18] = string(run.Params)
	return row
}

func noMatchesRow(l model.UserProcessLog) []string {
	row := emptyRow()
	row[0] = rowNoMatches
	row[1] = l.UserID
	row[2] = "No matching notes found"
	row[12] = yesNo(l.UpdateSuccessful != nil && *l.UpdateSuccessful)
	row[13] = l.UpdateError
	return row
}

func noteRow(l model.UserProcessLog, entry model.NoteLogEntry) []string {
	row := emptyRow()
	if entry.Deleted {
		row[0] = rowNoteDeleted
		row[2] = "Deleted"
	} else {
		row[0] = rowNoteModified
		row[2] = "Modified"
	}
	row[1] = l.UserID
	row[3] = entry.Before.Text
	row[4] = yesNo(entry.Before.PopupNote)
	row[6] = yesNo(entry.Before.UserViewable != nil && *entry.Before.UserViewable)
	if entry.Before.Type != nil {
		row[8] = entry.Before.Type.Desc
	}
	row[10] = entry.Before.CreatedDate
	row[11] = entry.Before.CreatedBy

	if !entry.Deleted && entry.After != nil {
		row[5] = yesNo(entry.After.PopupNote)
		row[7] = yesNo(entry.After.UserViewable != nil && *entry.After.UserViewable)
		if entry.After.Type != nil {
			row[9] = entry.After.Type.Desc
		}
	}

	row[12] = yesNo(l.UpdateSuccessful != nil && *l.UpdateSuccessful)
	row[13] = l.UpdateError
	return row
}

func usersWithChanges(logs []model.UserProcessLog) int {
	count := 0
	for _, l := range logs {
		if !l.NoMatchingNotes && len(l.Notes) > 0 {
			count++
		}
	}
	return count
}

func emptyRow() []string {
	return make([]string, len(csvHeader))
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// renderCSV joins header and rows into the final file content. Fields
// are quoted only when they contain a comma, quote or newline, with
// quotes doubled inside quoted fields.
func renderCSV(rows [][]string) string {
	var b strings.Builder
	writeLine(&b, csvHeader)
	for _, row := range rows {
		b.WriteByte('\n')
		writeLine(&b, row)
	}
	return b.String()
}

func writeLine(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(csvField(f))
	}
}

func csvField(v string) string {
	if !strings.ContainsAny(v, ",\"\n") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// reportFileName names the report after the set and the generation day.
func reportFileName(setID string, now time.Time) string {
	if setID == "" {
		setID = "unknown-set"
	}
	return fmt.Sprintf("note-processing-results-%s-%s.csv", setID, now.UTC().Format("2006-01-02"))
}
