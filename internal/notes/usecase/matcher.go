package usecase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"usernotes-srv/internal/notes"
)

// stripMarks removes combining marks after canonical decomposition, so
// "résumé" folds to "resume".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// foldText normalizes s for comparison under the criteria: canonical
// decomposition, optional accent stripping, optional locale-aware case
// folding. An unrecognized locale degrades to the locale-agnostic fold
// and never errors.
func foldText(s string, criteria notes.SearchCriteria) string {
	out := norm.NFD.String(s)

	if criteria.IgnoreAccents {
		if stripped, _, err := transform.String(stripMarks, out); err == nil {
			out = stripped
		}
	}

	if !criteria.CaseSensitive {
		tag := language.Und
		if criteria.Locale != "" {
			if parsed, err := language.Parse(criteria.Locale); err == nil {
				tag = parsed
			}
		}
		out = cases.Lower(tag).String(out)
	}

	return out
}

// matchesText reports whether noteText matches the criteria's query
// under the configured mode. A blank query never matches.
func matchesText(noteText string, criteria notes.SearchCriteria) bool {
	query := strings.TrimSpace(criteria.Text)
	if query == "" {
		return false
	}

	foldedText := foldText(noteText, criteria)
	foldedQuery := foldText(query, criteria)

	switch criteria.MatchMode {
	case notes.MatchExact:
		return foldedText == foldedQuery
	case notes.MatchWholeWord:
		return containsWholeWord(foldedText, foldedQuery)
	default:
		return strings.Contains(foldedText, foldedQuery)
	}
}

// containsWholeWord reports whether query occurs in text bounded on
// both sides by non-letter, non-digit runes (or the string edges). The
// query is taken literally; no pattern syntax applies.
func containsWholeWord(text, query string) bool {
	if query == "" {
		return false
	}

	for start := 0; ; {
		idx := strings.Index(text[start:], query)
		if idx < 0 {
			return false
		}
		idx += start

		if boundaryBefore(text, idx) && boundaryAfter(text, idx+len(query)) {
			return true
		}
		start = idx + 1
	}
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:idx])
	return !unicode.IsLetter(r) && !unicode.IsNumber(r)
}

func boundaryAfter(text string, idx int) bool {
	if idx >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[idx:])
	return !unicode.IsLetter(r) && !unicode.IsNumber(r)
}
