package app

import (
	"github.com/NishchayBhardwaj/English-Communication-System/internal/api"
	"github.com/NishchayBhardwaj/English-Communication-System/internal/archive"
)

// healthCheckedMsg carries the result of the startup health probe.
type healthCheckedMsg struct {
	Err error
}

// analysisMsg carries the outcome of a text or audio submission.
type analysisMsg struct {
	Result    *api.AnalysisResult
	Err       error
	FromAudio bool
}

// sessionsListedMsg carries a refreshed session directory listing.
type sessionsListedMsg struct {
	Items []api.HistorySummary
}

// sessionLoadedMsg carries one fetched past session, or the (already
// logged) failure to fetch it.
type sessionLoadedMsg struct {
	ID     string
	Record *api.HistoryRecord
	Err    error
}

// sessionDeletedMsg reports a deletion attempt.
type sessionDeletedMsg struct {
	ID  string
	Err error
}

// journalReadyMsg delivers the opened local archive and its new session id.
type journalReadyMsg struct {
	Store     *archive.Store
	SessionID string
}

// journalSessionMsg delivers a fresh local archive session id after a reset
// or session switch.
type journalSessionMsg struct {
	SessionID string
}

// chartsSavedMsg reports a chart export from the report overlay.
type chartsSavedMsg struct {
	Paths []string
}
