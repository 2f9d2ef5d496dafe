package transcript

import (
	"github.com/NishchayBhardwaj/English-Communication-System/internal/api"
)

// WelcomeText opens every new session's transcript.
const WelcomeText = "Welcome to the English Communication Assessment Tool! " +
	"You can type or speak to begin your assessment."

// Store is the ordered transcript log for the active session, together with
// the session id, report and raw analysis result the session has produced.
// Entries are never edited or removed in place; the whole store is reset on
// a new chat or replaced wholesale when a past session is loaded.
type Store struct {
	entries []Entry
	chatID  string
	report  string
	result  *api.AnalysisResult
}

// NewStore creates a store for a fresh, unsaved session. The transcript
// begins with the welcome entry.
func NewStore() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Append adds entries to the end of the transcript, preserving their order.
func (s *Store) Append(entries ...Entry) {
	s.entries = append(s.entries, entries...)
}

// Reset replaces the transcript with the single welcome entry and clears
// the session id, report and result.
func (s *Store) Reset() {
	s.entries = []Entry{System(WelcomeText)}
	s.chatID = ""
	s.report = ""
	s.result = nil
}

// Replace substitutes the whole session with a loaded historical one. No
// merging with the prior transcript takes place.
func (s *Store) Replace(chatID string, entries []Entry, report string, result *api.AnalysisResult) {
	s.entries = append([]Entry(nil), entries...)
	s.chatID = chatID
	s.report = report
	s.result = result
}

// SetReport records the session report. An empty report argument is ignored
// so a later submission without a report keeps the previous one, matching
// the original screen's behavior.
func (s *Store) SetReport(report string) {
	if report != "" {
		s.report = report
	}
}

// SetResult retains the raw analysis result for chart export.
func (s *Store) SetResult(result *api.AnalysisResult) {
	if result != nil {
		s.result = result
	}
}

// Entries returns the transcript in timeline order. The returned slice is a
// copy; the store's log cannot be mutated through it.
func (s *Store) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Len returns the number of transcript entries.
func (s *Store) Len() int { return len(s.entries) }

// ChatID returns the persisted session id, or "" for a new session.
func (s *Store) ChatID() string { return s.chatID }

// Report returns the current session report, or "".
func (s *Store) Report() string { return s.report }

// Result returns the retained raw analysis result, or nil.
func (s *Store) Result() *api.AnalysisResult { return s.result }
