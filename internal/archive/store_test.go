package archive

import (
	"path/filepath"
	"testing"

	"github.com/NishchayBhardwaj/English-Communication-System/internal/transcript"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "archive.sqlite"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndReadBack(t *testing.T) {
	store := openTestStore(t)

	id, err := store.BeginSession()
	if err != nil {
		t.Fatalf("BeginSession: %v", err)
	}

	first := []transcript.Entry{
		transcript.System(transcript.WelcomeText),
		transcript.User("i am fine"),
	}
	if err := store.AppendEntries(id, 0, first); err != nil {
		t.Fatalf("AppendEntries: %v", err)
	}

	second := []transcript.Entry{
		{Role: transcript.RoleAssistant, Text: "Scores: \nFluency: 80", Class: transcript.ClassScoreBox},
	}
	if err := store.AppendEntries(id, len(first), second); err != nil {
		t.Fatalf("AppendEntries: %v", err)
	}

	rows, err := store.EntriesForSession(id)
	if err != nil {
		t.Fatalf("EntriesForSession: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	for i, r := range rows {
		if r.Seq != i {
			t.Errorf("row %d seq = %d", i, r.Seq)
		}
	}
	if rows[1].Role != string(transcript.RoleUser) || rows[1].Text != "i am fine" {
		t.Errorf("row 1 = %+v", rows[1])
	}
	if rows[2].Class != transcript.ClassScoreBox {
		t.Errorf("row 2 class = %q", rows[2].Class)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	store := openTestStore(t)

	a, _ := store.BeginSession()
	b, _ := store.BeginSession()

	store.AppendEntries(a, 0, []transcript.Entry{transcript.User("session a")})
	store.AppendEntries(b, 0, []transcript.Entry{transcript.User("session b")})

	rows, err := store.EntriesForSession(a)
	if err != nil {
		t.Fatalf("EntriesForSession: %v", err)
	}
	if len(rows) != 1 || rows[0].Text != "session a" {
		t.Errorf("rows = %+v, want only session a's entry", rows)
	}
}

func TestAppendEmptyIsNoOp(t *testing.T) {
	store := openTestStore(t)
	id, _ := store.BeginSession()

	if err := store.AppendEntries(id, 0, nil); err != nil {
		t.Errorf("AppendEntries(nil): %v", err)
	}
	rows, _ := store.EntriesForSession(id)
	if len(rows) != 0 {
		t.Errorf("rows = %d, want 0", len(rows))
	}
}

func TestSetReportAndChatID(t *testing.T) {
	store := openTestStore(t)
	id, _ := store.BeginSession()

	if err := store.SetReport(id, "Communication Assessment Report"); err != nil {
		t.Fatalf("SetReport: %v", err)
	}
	if err := store.SetChatID(id, "65a1"); err != nil {
		t.Fatalf("SetChatID: %v", err)
	}

	var report, chatID string
	row := store.db.QueryRow(`SELECT report, chatId FROM sessions WHERE id = ?`, id)
	if err := row.Scan(&report, &chatID); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if report != "Communication Assessment Report" || chatID != "65a1" {
		t.Errorf("report = %q chatId = %q", report, chatID)
	}
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "archive.sqlite")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	store.Close()
}
