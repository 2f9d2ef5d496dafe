package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NishchayBhardwaj/English-Communication-System/internal/api"
)

func newDirectory(t *testing.T, handler http.Handler) (*Directory, *[]string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var logged []string
	logf := func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}
	return NewDirectory(api.NewClient(srv.URL), logf), &logged
}

func TestListReturnsSummaries(t *testing.T) {
	dir, logged := newDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]api.HistorySummary{
			{ID: "65a1", Title: "Monday practice"},
			{ID: "65a2"},
		})
	}))

	items := dir.List(context.Background())
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if len(*logged) != 0 {
		t.Errorf("unexpected log lines: %v", *logged)
	}
}

func TestListFailureYieldsEmptyList(t *testing.T) {
	dir, logged := newDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	items := dir.List(context.Background())
	if len(items) != 0 {
		t.Errorf("items = %v, want empty on failure", items)
	}
	if len(*logged) != 1 || !strings.Contains((*logged)[0], "list") {
		t.Errorf("logged = %v, want one list failure line", *logged)
	}
}

func TestLoadReturnsRecord(t *testing.T) {
	dir, _ := newDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.HistoryRecord{ID: "65a1", InputText: "hello"})
	}))

	rec, err := dir.Load(context.Background(), "65a1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec.InputText != "hello" {
		t.Errorf("input_text = %q", rec.InputText)
	}
}

func TestLoadFailureIsLogged(t *testing.T) {
	dir, logged := newDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	if _, err := dir.Load(context.Background(), "missing"); err == nil {
		t.Error("expected error")
	}
	if len(*logged) != 1 {
		t.Errorf("logged = %v, want one line", *logged)
	}
}

func TestDeleteFailureLeavesCallerStale(t *testing.T) {
	dir, logged := newDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := dir.Delete(context.Background(), "65a1")
	if err == nil {
		t.Fatal("expected error")
	}
	var derr *api.DirectoryError
	if !errors.As(err, &derr) || derr.Op != "delete" {
		t.Errorf("err = %v, want delete DirectoryError", err)
	}
	if len(*logged) != 1 {
		t.Errorf("logged = %v, want one line", *logged)
	}
}
