// Package lifecycle holds shared timeouts for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (DB ping, server shutdown, publisher close).
const DefaultTimeout = 15 * time.Second
