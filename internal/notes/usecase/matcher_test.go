package usecase

import (
	"testing"

	"usernotes-srv/internal/notes"
)

func TestMatchesText(t *testing.T) {
	t.Run("blank query never matches", func(t *testing.T) {
		criteria := notes.SearchCriteria{Text: "   "}
		if matchesText("anything at all", criteria) {
			t.Error("blank query should never match")
		}
	})

	t.Run("substring default mode", func(t *testing.T) {
		criteria := notes.SearchCriteria{Text: "overdue"}
		if !matchesText("Account blocked: overdue items", criteria) {
			t.Error("expected substring match")
		}
		if matchesText("Account in good standing", criteria) {
			t.Error("unexpected match")
		}
	})

	t.Run("accent folding matches resume against résumé", func(t *testing.T) {
		criteria := notes.SearchCriteria{Text: "resume", IgnoreAccents: true}
		if !matchesText("This note mentions résumé and summary", criteria) {
			t.Error("folded forms are equal, expected match")
		}
	})

	t.Run("accents significant when not ignored", func(t *testing.T) {
		criteria := notes.SearchCriteria{Text: "resume", IgnoreAccents: false}
		if matchesText("résumé", criteria) {
			t.Error("accents differ and IgnoreAccents is off, expected no match")
		}
	})

	t.Run("case folding is on by default", func(t *testing.T) {
		criteria := notes.SearchCriteria{Text: "OVERDUE"}
		if !matchesText("overdue fees waived", criteria) {
			t.Error("expected case-insensitive match")
		}

		criteria.CaseSensitive = true
		if matchesText("overdue fees waived", criteria) {
			t.Error("expected case-sensitive mismatch")
		}
	})

	t.Run("unrecognized locale degrades instead of failing", func(t *testing.T) {
		criteria := notes.SearchCriteria{Text: "OVERDUE", Locale: "no-such-locale-xx"}
		if !matchesText("overdue", criteria) {
			t.Error("unknown locale must fall back to plain fold")
		}
	})

	t.Run("whole word does not match inside larger word", func(t *testing.T) {
		criteria := notes.SearchCriteria{
			Text:          "resume",
			MatchMode:     notes.MatchWholeWord,
			IgnoreAccents: true,
		}
		if matchesText("plural resumes should not match in whole word mode", criteria) {
			t.Error("whole word must not match a larger word")
		}
		if !matchesText("foo résumé bar", criteria) {
			t.Error("expected whole word match with accent folding")
		}
		if !matchesText("résumé", criteria) {
			t.Error("expected whole word match at string edges")
		}
	})

	t.Run("whole word treats special characters literally", func(t *testing.T) {
		criteria := notes.SearchCriteria{Text: "a.b", MatchMode: notes.MatchWholeWord}
		if !matchesText("see a.b here", criteria) {
			t.Error("expected literal match of a.b")
		}
		if matchesText("see axb here", criteria) {
			t.Error("dot must not act as a wildcard")
		}
	})

	t.Run("exact requires full equality after folding", func(t *testing.T) {
		criteria := notes.SearchCriteria{Text: "Overdue Items", MatchMode: notes.MatchExact}
		if !matchesText("overdue items", criteria) {
			t.Error("expected exact match after case folding")
		}
		if matchesText("overdue items today", criteria) {
			t.Error("exact mode must not match a superstring")
		}
	})
}
