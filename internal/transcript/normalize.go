package transcript

import (
	"regexp"
	"strings"

	"github.com/NishchayBhardwaj/English-Communication-System/internal/api"
)

// noQuestionsSentinel is the backend's literal marker for an empty question
// field; it must produce no entries, not even the header.
const noQuestionsSentinel = "No questions generated"

const questionsHeader = "Follow-up Questions:"

var numberedItem = regexp.MustCompile(`\d+\.\s`)

// FromAnalysis maps a live-analysis result onto ordered transcript entries.
// Absent fields emit nothing. The user's own utterance (typed text or the
// returned transcription) is appended by the caller, not here.
func FromAnalysis(res *api.AnalysisResult) []Entry {
	if res == nil {
		return nil
	}

	var entries []Entry

	if v, ok := pairValue(res.LanguageAnalysis, 0); ok {
		entries = append(entries, Entry{
			Role: RoleAssistant,
			Text: "Grammar Analysis: " + v,
		})
	}

	if v, ok := pairValue(res.PerformanceAnalysis, 0); ok {
		entries = append(entries, Entry{
			Role:  RoleAssistant,
			Text:  "Scores: \n" + v,
			Class: ClassScoreBox,
		})
	}
	if v, ok := pairValue(res.PerformanceAnalysis, 2); ok {
		entries = append(entries, Entry{
			Role:  RoleAssistant,
			Text:  "Improvement Suggestions: " + v,
			Class: ClassSuggestionBox,
		})
	}

	entries = append(entries, questionEntries(res.InterviewQuestions)...)
	return entries
}

// FromHistory maps a persisted session record onto ordered transcript
// entries: user utterance first, then scores, suggestions and follow-up
// questions in that order.
func FromHistory(rec *api.HistoryRecord) []Entry {
	if rec == nil {
		return nil
	}

	var entries []Entry

	text := rec.InputText
	if text == "" {
		text = rec.TranscribedText
	}
	if text != "" {
		entries = append(entries, User(text))
	}

	if strings.TrimSpace(rec.Scores) != "" {
		entries = append(entries, Entry{
			Role:  RoleAssistant,
			Text:  "Scores:\n" + rec.Scores,
			Class: ClassScoreBox,
		})
	}

	entries = append(entries, suggestionEntries(rec.Suggestions)...)
	entries = append(entries, questionEntries(rec.FollowUpQuestions)...)
	return entries
}

// pairValue extracts the value of the [label, value] pair at idx, tolerating
// nil pair slots and short pairs from the backend.
func pairValue(pairs [][]string, idx int) (string, bool) {
	if idx >= len(pairs) {
		return "", false
	}
	pair := pairs[idx]
	if len(pair) < 2 {
		return "", false
	}
	return pair[1], true
}

// suggestionEntries splits a stored Suggestions blob into its revised-version
// block and its "- " bullet lines, emitting each present form as its own
// entry.
func suggestionEntries(raw string) []Entry {
	var revised, bullets []string
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "- ") {
			bullets = append(bullets, trimmed)
		} else {
			revised = append(revised, trimmed)
		}
	}

	var entries []Entry
	if len(revised) > 0 {
		entries = append(entries, Entry{
			Role:  RoleAssistant,
			Text:  "Suggestions:\n" + strings.Join(revised, "\n"),
			Class: ClassSuggestionBox,
		})
	}
	if len(bullets) > 0 {
		entries = append(entries, Entry{
			Role:  RoleAssistant,
			Text:  "Suggestions:\n" + strings.Join(bullets, "\n"),
			Class: ClassSuggestionBox,
		})
	}
	return entries
}

// questionEntries renders a question field as one header entry followed by
// one entry per question. The sentinel string and empty collections emit
// nothing at all.
func questionEntries(q api.QuestionList) []Entry {
	items := q.Items
	if items == nil {
		raw := strings.TrimSpace(q.Raw)
		if raw == "" || raw == noQuestionsSentinel {
			return nil
		}
		items = splitNumbered(raw)
	}

	var cleaned []string
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}

	entries := []Entry{{
		Role:  RoleAssistantHeader,
		Text:  questionsHeader,
		Class: ClassQuestionHeader,
	}}
	for _, item := range cleaned {
		entries = append(entries, Entry{
			Role:  RoleAssistant,
			Text:  item,
			Class: ClassQuestionItem,
		})
	}
	return entries
}

// splitNumbered splits a "1. ... 2. ..." string into items, keeping the
// numbering. A string without the pattern is one item.
func splitNumbered(raw string) []string {
	locs := numberedItem.FindAllStringIndex(raw, -1)
	if len(locs) == 0 {
		return []string{raw}
	}

	var items []string
	for i, loc := range locs {
		end := len(raw)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		items = append(items, raw[loc[0]:end])
	}
	return items
}
