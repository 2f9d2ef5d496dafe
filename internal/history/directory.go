// Package history is the session directory: listing, loading and deleting
// backend-persisted assessment sessions. Its failures are logged, never
// surfaced into the active transcript.
package history

import (
	"context"

	"github.com/NishchayBhardwaj/English-Communication-System/internal/api"
)

// Directory wraps the chat-histories operations of the backend client.
type Directory struct {
	client *api.Client
	logf   func(format string, args ...any)
}

// NewDirectory creates a directory over the given client. logf receives
// failure lines; nil disables logging.
func NewDirectory(client *api.Client, logf func(string, ...any)) *Directory {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Directory{client: client, logf: logf}
}

// List fetches all known sessions. Failure is non-fatal: it is logged and
// an empty list is returned, so the directory simply appears empty.
func (d *Directory) List(ctx context.Context) []api.HistorySummary {
	items, err := d.client.ListHistories(ctx)
	if err != nil {
		d.logf("%v", &api.DirectoryError{Op: "list", Err: err})
		return nil
	}
	return items
}

// Load fetches one session's full payload. The error is logged here and
// returned so the caller can keep the current transcript untouched.
func (d *Directory) Load(ctx context.Context, id string) (*api.HistoryRecord, error) {
	rec, err := d.client.GetHistory(ctx, id)
	if err != nil {
		derr := &api.DirectoryError{Op: "load", Err: err}
		d.logf("%v", derr)
		return nil, derr
	}
	return rec, nil
}

// Delete requests deletion of one session. On failure the error is logged
// and returned; the caller leaves its list stale rather than removing the
// entry optimistically. On success the caller refreshes via List.
func (d *Directory) Delete(ctx context.Context, id string) error {
	if err := d.client.DeleteHistory(ctx, id); err != nil {
		derr := &api.DirectoryError{Op: "delete", Err: err}
		d.logf("%v", derr)
		return derr
	}
	return nil
}
