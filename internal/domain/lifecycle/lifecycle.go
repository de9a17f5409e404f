// Package lifecycle holds process lifecycle settings shared by deliveries.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and clients.
const DefaultTimeout = 10 * time.Second
