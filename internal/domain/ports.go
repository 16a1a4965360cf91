package domain

import "context"

// LogService is the backend surface the front end consumes. The real
// implementation is an HTTP client; tests substitute fakes.
type LogService interface {
	// Today returns the log for the current date. A day with nothing
	// logged yet comes back as an empty (but non-nil) DailyLog.
	Today(ctx context.Context) (*DailyLog, error)
	// All returns every daily log the backend holds.
	All(ctx context.Context) ([]DailyLog, error)
	// Submit posts a new food entry. A rejected entry returns a
	// *ValidationError; the caller refetches on success.
	Submit(ctx context.Context, entry NewEntry) error
	// Delete removes the item with the given server-assigned ID.
	Delete(ctx context.Context, dataID string) error
}

// PreferenceStore persists the small set of choices that survive a
// restart: the color theme and the first-run marker.
type PreferenceStore interface {
	Load() (Preferences, error)
	Save(Preferences) error
}

// Preferences is everything the app remembers between runs.
type Preferences struct {
	Theme        string `json:"theme"` // "light" or "dark"
	FirstRunDone bool   `json:"first_run_done"`
}
