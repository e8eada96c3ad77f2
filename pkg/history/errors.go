package history

import "errors"

// ErrNotFound is returned by Get for unknown or evicted IDs.
var ErrNotFound = errors.New("history: entry not found")
