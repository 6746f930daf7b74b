// Package lifecycle holds shared timing constants for component start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook, e.g. a DB ping or server shutdown.
const DefaultTimeout = 10 * time.Second
