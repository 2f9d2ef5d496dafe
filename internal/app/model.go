package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/NishchayBhardwaj/English-Communication-System/internal/api"
	"github.com/NishchayBhardwaj/English-Communication-System/internal/archive"
	"github.com/NishchayBhardwaj/English-Communication-System/internal/config"
	"github.com/NishchayBhardwaj/English-Communication-System/internal/history"
	"github.com/NishchayBhardwaj/English-Communication-System/internal/record"
	"github.com/NishchayBhardwaj/English-Communication-System/internal/transcript"
	"github.com/NishchayBhardwaj/English-Communication-System/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// PanelFocus tracks which panel has keyboard focus.
type PanelFocus int

const (
	FocusSessions PanelFocus = iota
	FocusChat
)

// phase is the conversation controller's state: at most one of a recording
// or a submission is active at a time, and session switches are only
// permitted while idle.
type phase int

const (
	phaseIdle phase = iota
	phaseRecording
	phaseSubmitting
)

// Advisory system messages, matching the assessment screen's wording.
const (
	healthFailText       = "Unable to connect to the assessment service. Please try again later."
	micFailText          = "Could not access microphone. Please check permissions and try again."
	recordingStartedText = "Recording started. Speak clearly and then press ctrl+r again to stop."
	processingSpeechText = "Processing your speech..."
	textErrText          = "Sorry, there was an error processing your message. Please try again."
	speechErrText        = "Sorry, there was an error processing your speech. Please try again."
)

// Model is the root bubbletea model: the conversation controller plus the
// sessions sidebar and report overlay around it.
type Model struct {
	cfg       *config.Config
	client    *api.Client
	store     *transcript.Store
	recorder  *record.Recorder
	directory *history.Directory
	newDevice func() record.Device
	logf      func(format string, args ...any)

	// Conversation state
	phase phase
	input string

	// Sessions sidebar
	sessions        []api.HistorySummary
	selectedSession int

	// Local archive journal
	journal    *archive.Store
	journalID  string
	journalSeq int

	// UI state
	focusedPanel     PanelFocus
	showReport       bool
	width            int
	height           int
	transcriptScroll int
	transcriptLive   bool
	statusText       string
}

// New creates the model wired to the configured backend.
func New(cfg *config.Config) Model {
	client := api.NewClient(cfg.Server.BaseURL)
	logf := newFileLogger(cfg.Log.Path)

	return Model{
		cfg:       cfg,
		client:    client,
		store:     transcript.NewStore(),
		recorder:  record.New(),
		directory: history.NewDirectory(client, logf),
		newDevice: func() record.Device {
			return &record.FFmpegDevice{Input: cfg.Audio.Device}
		},
		logf:           logf,
		focusedPanel:   FocusChat,
		transcriptLive: true,
		statusText:     "Checking assessment service...",
	}
}

// newFileLogger returns a logger writing to the given file, or a no-op when
// path is empty. Stdout belongs to bubbletea while the program runs.
func newFileLogger(path string) func(string, ...any) {
	if path == "" {
		return func(string, ...any) {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return func(string, ...any) {}
	}
	logger := log.New(f, "", log.LstdFlags)
	return logger.Printf
}

// Init fires the startup health probe, the directory fetch and the journal
// open. All three are fire-and-forget; their failures never block input.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		checkHealthCmd(m.client),
		listSessionsCmd(m.directory),
		openJournalCmd(m.cfg, m.logf),
	)
}

// checkHealthCmd probes the backend root once on startup.
func checkHealthCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		return healthCheckedMsg{Err: client.CheckHealth(context.Background())}
	}
}

// submitTextCmd posts one typed utterance for analysis.
func submitTextCmd(client *api.Client, text string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.ProcessText(context.Background(), text)
		return analysisMsg{Result: result, Err: err}
	}
}

// submitAudioCmd uploads a finalized recording payload for analysis.
func submitAudioCmd(client *api.Client, payload []byte) tea.Cmd {
	return func() tea.Msg {
		result, err := client.ProcessSpeech(context.Background(), payload)
		return analysisMsg{Result: result, Err: err, FromAudio: true}
	}
}

// listSessionsCmd refreshes the sidebar from the backend directory.
func listSessionsCmd(directory *history.Directory) tea.Cmd {
	return func() tea.Msg {
		return sessionsListedMsg{Items: directory.List(context.Background())}
	}
}

// loadSessionCmd fetches one past session's full payload.
func loadSessionCmd(directory *history.Directory, id string) tea.Cmd {
	return func() tea.Msg {
		rec, err := directory.Load(context.Background(), id)
		return sessionLoadedMsg{ID: id, Record: rec, Err: err}
	}
}

// deleteSessionCmd requests deletion of one past session.
func deleteSessionCmd(directory *history.Directory, id string) tea.Cmd {
	return func() tea.Msg {
		return sessionDeletedMsg{ID: id, Err: directory.Delete(context.Background(), id)}
	}
}

// openJournalCmd opens the local archive and begins its first session.
// Failures are logged and the journal stays disabled.
func openJournalCmd(cfg *config.Config, logf func(string, ...any)) tea.Cmd {
	return func() tea.Msg {
		if cfg.Archive.Disabled {
			return nil
		}
		path := cfg.Archive.Path
		if path == "" {
			path = archive.DefaultPath()
		}
		store, err := archive.Open(path)
		if err != nil {
			logf("open archive: %v", err)
			return nil
		}
		id, err := store.BeginSession()
		if err != nil {
			logf("begin archive session: %v", err)
			store.Close()
			return nil
		}
		return journalReadyMsg{Store: store, SessionID: id}
	}
}

// newJournalSessionCmd starts a fresh local archive session, optionally
// linking it to a backend chat id.
func newJournalSessionCmd(store *archive.Store, chatID string, logf func(string, ...any)) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		id, err := store.BeginSession()
		if err != nil {
			logf("begin archive session: %v", err)
			return nil
		}
		if chatID != "" {
			if err := store.SetChatID(id, chatID); err != nil {
				logf("%v", err)
			}
		}
		return journalSessionMsg{SessionID: id}
	}
}

// journalAppend returns a command journaling the given entries and advances
// the local sequence counter. Call on the model being returned.
func (m *Model) journalAppend(entries []transcript.Entry) tea.Cmd {
	if m.journal == nil || m.journalID == "" || len(entries) == 0 {
		return nil
	}
	store, id, seq, logf := m.journal, m.journalID, m.journalSeq, m.logf
	m.journalSeq += len(entries)
	return func() tea.Msg {
		if err := store.AppendEntries(id, seq, entries); err != nil {
			logf("%v", err)
		}
		return nil
	}
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case healthCheckedMsg:
		if msg.Err != nil {
			m.store.Append(transcript.System(healthFailText))
			m.statusText = "Service unreachable"
		} else {
			m.statusText = "Ready"
		}
		return m, nil

	case analysisMsg:
		return m.handleAnalysis(msg)

	case sessionsListedMsg:
		m.sessions = msg.Items
		if m.selectedSession >= len(m.sessions) {
			m.selectedSession = max(0, len(m.sessions)-1)
		}
		return m, nil

	case sessionLoadedMsg:
		if msg.Err != nil {
			// Already logged; the current transcript stays untouched.
			return m, nil
		}
		entries := transcript.FromHistory(msg.Record)
		var result *api.AnalysisResult
		if msg.Record.Report != "" || msg.Record.Charts != nil {
			result = &api.AnalysisResult{Report: msg.Record.Report, Charts: msg.Record.Charts}
		}
		m.store.Replace(msg.ID, entries, msg.Record.Report, result)
		m.showReport = false
		m.focusedPanel = FocusChat
		m.transcriptLive = true
		return m, newJournalSessionCmd(m.journal, msg.ID, m.logf)

	case sessionDeletedMsg:
		if msg.Err != nil {
			// List stays stale until the next successful refresh.
			return m, nil
		}
		return m, listSessionsCmd(m.directory)

	case journalReadyMsg:
		m.journal = msg.Store
		m.journalID = msg.SessionID
		m.journalSeq = 0
		return m, nil

	case journalSessionMsg:
		m.journalID = msg.SessionID
		m.journalSeq = 0
		return m, nil

	case chartsSavedMsg:
		if len(msg.Paths) == 0 {
			m.statusText = "No charts to save"
		} else {
			m.statusText = fmt.Sprintf("Saved %s", strings.Join(msg.Paths, ", "))
		}
		return m, nil
	}

	return m, nil
}

// handleAnalysis applies a submission outcome: one error entry on failure,
// the normalized entries plus report/result on success. Either way the
// controller returns to idle.
func (m Model) handleAnalysis(msg analysisMsg) (tea.Model, tea.Cmd) {
	m.phase = phaseIdle
	m.statusText = "Ready"

	if msg.Err != nil {
		if msg.FromAudio {
			m.store.Append(transcript.System(speechErrText))
		} else {
			m.store.Append(transcript.System(textErrText))
		}
		return m, nil
	}

	var entries []transcript.Entry
	if msg.FromAudio && msg.Result.TranscribedText != "" {
		entries = append(entries, transcript.User(msg.Result.TranscribedText))
	}
	entries = append(entries, transcript.FromAnalysis(msg.Result)...)

	m.store.Append(entries...)
	m.store.SetReport(msg.Result.Report)
	m.store.SetResult(msg.Result)

	if !msg.FromAudio {
		m.input = ""
	}
	m.transcriptLive = true

	journalCmd := m.journalAppend(entries)
	var reportCmd tea.Cmd
	if m.journal != nil && m.journalID != "" && msg.Result.Report != "" {
		store, id, report, logf := m.journal, m.journalID, msg.Result.Report, m.logf
		reportCmd = func() tea.Msg {
			if err := store.SetReport(id, report); err != nil {
				logf("%v", err)
			}
			return nil
		}
	}
	return m, tea.Batch(journalCmd, reportCmd)
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyQuit:
		if m.recorder.Recording() {
			if err := m.recorder.Abort(); err != nil {
				m.logf("release capture device: %v", err)
			}
		}
		if m.journal != nil {
			m.journal.Close()
		}
		return m, tea.Quit

	case KeyTab:
		if m.focusedPanel == FocusSessions {
			m.focusedPanel = FocusChat
		} else {
			m.focusedPanel = FocusSessions
		}
		return m, nil

	case KeyToggleRecord:
		return m.toggleRecording()

	case KeyNewChat:
		if m.phase != phaseIdle {
			return m, nil
		}
		m.store.Reset()
		m.showReport = false
		m.transcriptLive = true
		return m, newJournalSessionCmd(m.journal, "", m.logf)

	case KeyToggleReport:
		if m.store.Report() != "" {
			m.showReport = !m.showReport
		}
		return m, nil

	case KeyEsc:
		m.showReport = false
		return m, nil

	case KeySaveCharts:
		if m.showReport {
			return m, saveChartsCmd(m.store.Result(), m.chartDir())
		}
		return m, nil

	case KeyDeleteChat:
		if m.focusedPanel == FocusSessions && m.phase == phaseIdle &&
			m.selectedSession < len(m.sessions) {
			return m, deleteSessionCmd(m.directory, m.sessions[m.selectedSession].ID)
		}
		return m, nil

	case KeyEnter:
		if m.focusedPanel == FocusSessions {
			if m.phase != phaseIdle || m.selectedSession >= len(m.sessions) {
				return m, nil
			}
			return m, loadSessionCmd(m.directory, m.sessions[m.selectedSession].ID)
		}
		return m.submitText()

	case KeyBackspace:
		if m.canType() && len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
		return m, nil

	case KeyUp:
		if m.focusedPanel == FocusSessions {
			if m.selectedSession > 0 {
				m.selectedSession--
			}
		} else {
			if m.transcriptLive {
				m.transcriptLive = false
				m.transcriptScroll = m.maxTranscriptScroll()
			}
			if m.transcriptScroll > 0 {
				m.transcriptScroll--
			}
		}
		return m, nil

	case KeyDown:
		if m.focusedPanel == FocusSessions {
			if m.selectedSession < len(m.sessions)-1 {
				m.selectedSession++
			}
		} else {
			maxScroll := m.maxTranscriptScroll()
			m.transcriptScroll++
			if m.transcriptScroll >= maxScroll {
				m.transcriptScroll = maxScroll
				m.transcriptLive = true
			}
		}
		return m, nil

	case " ":
		if m.canType() {
			m.input += " "
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes && m.canType() {
		m.input += string(msg.Runes)
	}
	return m, nil
}

// canType reports whether the text input accepts characters: chat focus,
// no recording, no submission in flight.
func (m Model) canType() bool {
	return m.focusedPanel == FocusChat && m.phase == phaseIdle
}

// toggleRecording drives the record lifecycle: idle starts a capture,
// recording stops it and immediately submits the finalized payload.
func (m Model) toggleRecording() (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseSubmitting:
		return m, nil

	case phaseRecording:
		payload, err := m.recorder.Stop()
		if err != nil {
			m.logf("release capture device: %v", err)
		}
		m.phase = phaseSubmitting
		m.statusText = "Processing speech..."
		m.store.Append(transcript.System(processingSpeechText))
		return m, submitAudioCmd(m.client, payload)

	default:
		if err := m.recorder.Start(m.newDevice(), record.DefaultConfig()); err != nil {
			m.logf("start recording: %v", err)
			m.store.Append(transcript.System(micFailText))
			return m, nil
		}
		m.phase = phaseRecording
		m.statusText = "Recording"
		m.store.Append(transcript.System(recordingStartedText))
		return m, nil
	}
}

// submitText validates and submits the typed input. Empty or
// whitespace-only input performs no call and no transcript mutation. The
// input line is kept until the submission succeeds, so a failure can be
// retried by resubmitting.
func (m Model) submitText() (tea.Model, tea.Cmd) {
	if m.phase != phaseIdle {
		return m, nil
	}
	text := m.input
	if strings.TrimSpace(text) == "" {
		return m, nil
	}

	userEntry := transcript.User(text)
	m.store.Append(userEntry)
	m.phase = phaseSubmitting
	m.statusText = "Processing..."
	m.transcriptLive = true

	journalCmd := m.journalAppend([]transcript.Entry{userEntry})
	return m, tea.Batch(submitTextCmd(m.client, text), journalCmd)
}

// chartDir is where exported charts land: next to the archive journal.
func (m Model) chartDir() string {
	if m.cfg != nil && m.cfg.Archive.Path != "" {
		return filepath.Dir(m.cfg.Archive.Path)
	}
	return filepath.Dir(archive.DefaultPath())
}

// Layout helpers.

func (m Model) maxTranscriptScroll() int {
	totalLines := m.store.Len()
	visible := m.chatVisibleLines()
	if totalLines <= visible {
		return 0
	}
	return totalLines - visible
}

func (m Model) chatVisibleLines() int {
	if m.height == 0 {
		return 20
	}
	// Reserve: header(1) + status(1) + dividers(2) + input(1) + footer(1) + padding
	reserved := 7
	return max(5, m.height-reserved)
}

func (m Model) sessionsPanelWidth() int {
	if m.width == 0 {
		return 28
	}
	return max(20, m.width*28/100)
}

func (m Model) chatPanelWidth() int {
	if m.width == 0 {
		return 60
	}
	return max(30, m.width-m.sessionsPanelWidth()-3)
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderStatusBar())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))

	if m.showReport && m.store.Report() != "" {
		sections = append(sections, m.renderReport())
	} else {
		sections = append(sections, m.renderMainContent())
	}

	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderInputLine())
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := ui.TitleStyle.Render("ENGLISH COMMUNICATION ASSESSMENT")
	var session string
	if id := m.store.ChatID(); id != "" {
		session = ui.DimStyle.Render(" / session " + id)
	}
	return title + session
}

func (m Model) renderStatusBar() string {
	var dot string
	switch m.phase {
	case phaseRecording:
		dot = ui.RecordingDotStyle.Render("● REC")
	case phaseSubmitting:
		dot = ui.ProcessingStyle.Render("⟳ PROCESSING")
	default:
		dot = ui.IdleDotStyle.Render("○ IDLE")
	}

	var report string
	if m.store.Report() != "" {
		report = "  " + ui.ReportTitleStyle.Render("[report available]")
	}

	return dot + "  " + ui.DimStyle.Render(m.statusText) + report
}

func (m Model) renderMainContent() string {
	sessionsW := m.sessionsPanelWidth()
	chatW := m.chatPanelWidth()
	contentH := m.chatVisibleLines()

	sessionsPanel := m.renderSessionsPanel(sessionsW, contentH)
	chatPanel := m.renderChatPanel(chatW, contentH)

	divider := ui.DividerStyle.Render("│")

	sessionLines := strings.Split(sessionsPanel, "\n")
	chatLines := strings.Split(chatPanel, "\n")

	var rows []string
	for i := 0; i < contentH; i++ {
		var left, right string
		if i < len(sessionLines) {
			left = sessionLines[i]
		}
		left = padRight(left, sessionsW)
		if i < len(chatLines) {
			right = chatLines[i]
		}
		rows = append(rows, left+divider+right)
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderSessionsPanel(width, height int) string {
	var header string
	if m.focusedPanel == FocusSessions {
		header = ui.PanelTitleActiveStyle.Render(fmt.Sprintf("SESSIONS (%d)", len(m.sessions)))
	} else {
		header = ui.PanelTitleStyle.Render(fmt.Sprintf("SESSIONS (%d)", len(m.sessions)))
	}

	lines := []string{header}

	if len(m.sessions) == 0 {
		lines = append(lines, ui.DimStyle.Render("  No past sessions"))
		lines = append(lines, ui.DimStyle.Render("  ctrl+n starts a new chat"))
	} else {
		for i, s := range m.sessions {
			label := s.Title
			if label == "" {
				label = s.Timestamp
			}
			if label == "" {
				label = s.ID
			}

			marker := "  "
			if s.ID == m.store.ChatID() {
				marker = "* "
			}

			var line string
			if i == m.selectedSession && m.focusedPanel == FocusSessions {
				line = ui.SelectedStyle.Render("> " + marker + label)
			} else {
				line = "  " + marker + label
			}
			lines = append(lines, truncateToWidth(line, width))
		}
	}

	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderChatPanel(width, height int) string {
	var badge string
	if m.transcriptLive {
		badge = ui.DimStyle.Render(" LIVE")
	} else {
		badge = ui.SuggestionStyle.Render(" SCROLL")
	}

	var header string
	if m.focusedPanel == FocusChat {
		header = ui.PanelTitleActiveStyle.Render("TRANSCRIPT") + badge
	} else {
		header = ui.PanelTitleStyle.Render("TRANSCRIPT") + badge
	}

	lines := []string{header}
	contentHeight := height - 1

	textWidth := max(10, width-8)
	var displayLines []string
	for _, e := range m.store.Entries() {
		displayLines = append(displayLines, renderEntry(e, textWidth)...)
	}

	start := 0
	if m.transcriptLive {
		if len(displayLines) > contentHeight {
			start = len(displayLines) - contentHeight
		}
	} else {
		start = m.transcriptScroll
	}
	if start < 0 {
		start = 0
	}
	end := min(start+contentHeight, len(displayLines))

	for i := start; i < end; i++ {
		lines = append(lines, "  "+displayLines[i])
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// renderEntry renders one transcript entry as wrapped, styled lines.
func renderEntry(e transcript.Entry, textWidth int) []string {
	var label string
	style := lipgloss.NewStyle()

	switch e.Role {
	case transcript.RoleUser:
		label = ui.UserLabelStyle.Render("[You] ")
	case transcript.RoleAssistantHeader:
		label = ui.AssistantLabelStyle.Render("[AI]  ")
		style = ui.QuestionHeaderStyle
	default:
		label = ui.AssistantLabelStyle.Render("[AI]  ")
	}

	switch e.Class {
	case transcript.ClassScoreBox:
		style = ui.ScoreBoxStyle
	case transcript.ClassSuggestionBox:
		style = ui.SuggestionStyle
	case transcript.ClassQuestionItem:
		style = ui.QuestionItemStyle
	}

	wrapped := wrapText(e.Text, textWidth)
	out := []string{label + style.Render(wrapped[0])}
	for _, wl := range wrapped[1:] {
		out = append(out, "      "+style.Render(wl))
	}
	return out
}

func (m Model) renderInputLine() string {
	switch m.phase {
	case phaseRecording:
		return ui.RecordingDotStyle.Render("● ") +
			ui.DimStyle.Render("recording, text input disabled")
	case phaseSubmitting:
		return ui.ProcessingStyle.Render("⟳ ") +
			ui.DimStyle.Render("waiting for the assessment service...")
	}

	prompt := ui.InputPromptStyle.Render("> ")
	if m.focusedPanel != FocusChat {
		return prompt + ui.DimStyle.Render(m.input)
	}
	return prompt + m.input + ui.InputPromptStyle.Render("▌")
}

func (m Model) renderReport() string {
	height := m.chatVisibleLines()
	width := max(20, m.width-4)

	lines := []string{ui.ReportTitleStyle.Render("ASSESSMENT REPORT")}
	for _, paragraph := range strings.Split(m.store.Report(), "\n") {
		for _, wl := range wrapText(paragraph, width) {
			lines = append(lines, "  "+wl)
		}
	}

	if result := m.store.Result(); result != nil && result.Charts != nil {
		lines = append(lines, "")
		lines = append(lines, ui.DimStyle.Render("  Charts available: ctrl+s saves them as PNG files"))
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	var parts []string

	if m.phase == phaseRecording {
		parts = append(parts, ui.FooterKeyStyle.Render("ctrl+r")+ui.FooterDescStyle.Render(" Stop"))
	} else {
		parts = append(parts, ui.FooterKeyStyle.Render("ctrl+r")+ui.FooterDescStyle.Render(" Record"))
	}
	parts = append(parts, ui.FooterKeyStyle.Render("Enter")+ui.FooterDescStyle.Render(" Send/Open"))
	parts = append(parts, ui.FooterKeyStyle.Render("Tab")+ui.FooterDescStyle.Render(" Focus"))
	parts = append(parts, ui.FooterKeyStyle.Render("ctrl+n")+ui.FooterDescStyle.Render(" New"))
	parts = append(parts, ui.FooterKeyStyle.Render("ctrl+d")+ui.FooterDescStyle.Render(" Delete"))
	if m.store.Report() != "" {
		parts = append(parts, ui.FooterKeyStyle.Render("ctrl+o")+ui.FooterDescStyle.Render(" Report"))
	}
	parts = append(parts, ui.FooterKeyStyle.Render("ctrl+c")+ui.FooterDescStyle.Render(" Quit"))

	return strings.Join(parts, "  ")
}

// Helpers

func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

func truncateToWidth(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) > width-1 {
		return string(runes[:width-1]) + "…"
	}
	return s
}

func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		var current string
		for _, word := range strings.Fields(paragraph) {
			if current == "" {
				current = word
			} else if len(current)+1+len(word) <= width {
				current += " " + word
			} else {
				lines = append(lines, current)
				current = word
			}
		}
		if current != "" {
			lines = append(lines, current)
		} else {
			lines = append(lines, "")
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
