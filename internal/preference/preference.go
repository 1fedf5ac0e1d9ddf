package preference

import (
	"context"
	"errors"
)

// Storage keys, kept compatible with the values a browser store would hold.
const (
	KeyThemeEnabled = "themeEnabled"
	KeyClickCount   = "clickCount"
)

// ErrUnavailable reports that the backing store cannot be reached.
var ErrUnavailable = errors.New("preference store unavailable")

// Preferences is the hydrated view of a visitor's persisted scalars.
type Preferences struct {
	ThemeEnabled bool `json:"themeEnabled"`
	ClickCount   int  `json:"clickCount"`
}

// Store is a per-visitor string key-value store.
// Get reports ok=false for a key that was never written.
type Store interface {
	Get(ctx context.Context, visitorID, key string) (value string, ok bool, err error)
	GetMany(ctx context.Context, visitorID string, keys []string) (map[string]string, error)
	Set(ctx context.Context, visitorID, key, value string) error
	// Increment atomically adds one to a counter key and returns the new
	// value. A missing or non-numeric value counts as 0.
	Increment(ctx context.Context, visitorID, key string) (int, error)
}
