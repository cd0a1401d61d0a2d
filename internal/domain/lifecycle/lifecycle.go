// Package lifecycle holds shared timeouts for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of infrastructure components.
const DefaultTimeout = 30 * time.Second
