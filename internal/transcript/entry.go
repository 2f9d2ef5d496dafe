// Package transcript holds the conversation timeline: the entry model, the
// append-only session store, and the normalizer that maps backend payload
// shapes onto ordered entries.
package transcript

// Role identifies the speaker of a transcript entry.
type Role string

const (
	RoleUser            Role = "user"
	RoleAssistant       Role = "assistant"
	RoleAssistantHeader Role = "assistant-header"
)

// Rendering group tags. They affect presentation only, never ordering.
const (
	ClassScoreBox       = "score-box"
	ClassSuggestionBox  = "suggestion-box"
	ClassQuestionItem   = "question-item"
	ClassQuestionHeader = "question-header"
)

// Entry is one immutable line of the conversation timeline. Insertion order
// is the timeline order.
type Entry struct {
	Role  Role
	Text  string
	Class string
}

// System returns an assistant-role advisory entry (welcome text, recording
// notices, error notices).
func System(text string) Entry {
	return Entry{Role: RoleAssistant, Text: text}
}

// User returns a user-role entry.
func User(text string) Entry {
	return Entry{Role: RoleUser, Text: text}
}
