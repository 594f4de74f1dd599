package usecase

import (
	"strings"
	"testing"
	"time"

	"usernotes-srv/internal/model"
)

func boolPtr(v bool) *bool { return &v }

func finishedRun() model.JobRun {
	start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Minute)
	return model.JobRun{
		ID:          "r1",
		SetID:       "set-42",
		Status:      model.RunStatusCompleted,
		Params:      []byte(`[{"id":"action","action":"delete"}]`),
		StartedAt:   &start,
		CompletedAt: &end,
	}
}

func TestBuildRows(t *testing.T) {
	run := finishedRun()
	logs := []model.UserProcessLog{
		{
			UserID: "u1",
			Notes: []model.NoteLogEntry{
				{
					Before: model.Note{
						Text:         "overdue book",
						PopupNote:    true,
						UserViewable: boolPtr(true),
						Type:         &model.NoteType{Value: "CIRCULATION", Desc: "Circulation"},
						CreatedBy:    "exl_impl",
						CreatedDate:  "2024-01-15T10:00:00Z",
					},
					Deleted: true,
				},
			},
			UpdateSuccessful: boolPtr(true),
		},
		{
			UserID:          "u2",
			NoMatchingNotes: true,
		},
		{
			UserID: "u3",
			Notes: []model.NoteLogEntry{
				{
					Before: model.Note{Text: "old", PopupNote: false, Type: &model.NoteType{Value: "OTHER", Desc: "Other"}},
					After:  &model.Note{Text: "old", PopupNote: true, Type: &model.NoteType{Value: "CIRCULATION", Desc: "Circulation"}},
				},
			},
			UpdateSuccessful: boolPtr(false),
			UpdateError:      "platform said no",
		},
	}

	rows := buildRows(run, logs)

	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4 (job info + 3 detail rows)", len(rows))
	}

	info := rows[0]
	if info[0] != rowJobInfo {
		t.Errorf("rows[0] type = %q, want %q", info[0], rowJobInfo)
	}
	if info[14] != "2024-03-10T09:00:00Z" || info[15] != "2024-03-10T09:02:00Z" {
		t.Errorf("job times = %q / %q", info[14], info[15])
	}
	if info[16] != "3" {
		t.Errorf("totalUsersProcessed = %q, want 3", info[16])
	}
	if info[17] != "2" {
		t.Errorf("usersWithChanges = %q, want 2", info[17])
	}
	if !strings.Contains(info[18], `"action"`) {
		t.Errorf("jobConfiguration = %q, want the stored parameter JSON", info[18])
	}

	deleted := rows[1]
	if deleted[0] != rowNoteDeleted || deleted[1] != "u1" || deleted[2] != "Deleted" {
		t.Errorf("deleted row = %v", deleted[:3])
	}
	if deleted[3] != "overdue book" || deleted[4] != "Yes" || deleted[6] != "Yes" || deleted[8] != "Circulation" {
		t.Errorf("deleted before columns = %v", deleted[3:9])
	}
	// After columns stay empty for deletions.
	if deleted[5] != "" || deleted[7] != "" || deleted[9] != "" {
		t.Errorf("deleted after columns = %v, want empty", []string{deleted[5], deleted[7], deleted[9]})
	}
	if deleted[12] != "Yes" {
		t.Errorf("updateSuccessful = %q, want Yes", deleted[12])
	}

	noMatch := rows[2]
	if noMatch[0] != rowNoMatches || noMatch[1] != "u2" || noMatch[2] != "No matching notes found" {
		t.Errorf("no-match row = %v", noMatch[:3])
	}

	modified := rows[3]
	if modified[0] != rowNoteModified || modified[2] != "Modified" {
		t.Errorf("modified row = %v", modified[:3])
	}
	if modified[4] != "No" || modified[5] != "Yes" {
		t.Errorf("popup columns = before %q after %q, want No/Yes", modified[4], modified[5])
	}
	if modified[8] != "Other" || modified[9] != "Circulation" {
		t.Errorf("type columns = before %q after %q", modified[8], modified[9])
	}
	if modified[12] != "No" || modified[13] != "platform said no" {
		t.Errorf("update columns = %q / %q", modified[12], modified[13])
	}
}

func TestRenderCSV(t *testing.T) {
	t.Run("header first", func(t *testing.T) {
		content := renderCSV(nil)
		if !strings.HasPrefix(content, "type,userId,noteAction") {
			t.Errorf("content starts with %q", content[:30])
		}
	})

	t.Run("quoting", func(t *testing.T) {
		tcs := map[string]struct {
			in   string
			want string
		}{
			"plain":         {in: "hello", want: "hello"},
			"comma":         {in: "a,b", want: `"a,b"`},
			"quote":         {in: `say "hi"`, want: `"say ""hi"""`},
			"newline":       {in: "a\nb", want: "\"a\nb\""},
			"empty":         {in: "", want: ""},
			"leading space": {in: " x", want: " x"},
		}
		for name, tc := range tcs {
			t.Run(name, func(t *testing.T) {
				if got := csvField(tc.in); got != tc.want {
					t.Errorf("csvField(%q) = %q, want %q", tc.in, got, tc.want)
				}
			})
		}
	})

	t.Run("row joined by commas", func(t *testing.T) {
		row := emptyRow()
		row[0] = rowNoMatches
		row[1] = "u1"
		content := renderCSV([][]string{row})

		lines := strings.Split(content, "\n")
		if len(lines) != 2 {
			t.Fatalf("got %d lines, want 2", len(lines))
		}
		if !strings.HasPrefix(lines[1], "NO_MATCHES,u1,") {
			t.Errorf("row line = %q", lines[1])
		}
	})
}

func TestReportFileName(t *testing.T) {
	now := time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC)

	if got := reportFileName("set-42", now); got != "note-processing-results-set-42-2024-03-10.csv" {
		t.Errorf("reportFileName = %q", got)
	}
	if got := reportFileName("", now); got != "note-processing-results-unknown-set-2024-03-10.csv" {
		t.Errorf("reportFileName without set = %q", got)
	}
}
