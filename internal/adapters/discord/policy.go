// internal/adapters/discord/policy.go
// Minimal privilege check based on OWNER_IDS env.

package discord

import (
	"os"
	"strings"
	"sync"
)

var (
	ownerOnce sync.Once
	ownerIDs  = map[string]struct{}{}
)

func loadOwnersFromEnv() {
	raw := os.Getenv("OWNER_IDS")
	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ownerIDs[id] = struct{}{}
		}
	}
}

// IsOwner returns true if userID is one of the configured bot owners.
// Owners can force-end any match regardless of who hosts it.
func IsOwner(userID string) bool {
	ownerOnce.Do(loadOwnersFromEnv)
	_, ok := ownerIDs[userID]
	return ok
}
