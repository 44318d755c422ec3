// Package id generates the ULID strings used to tag ingestion requests
// in logs and export snapshots.
package id

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New returns a ULID string. IDs are lexicographically sortable by
// generation time, and the monotonic entropy keeps IDs minted within the
// same millisecond in order.
func New() string {
	mu.Lock()
	defer mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), entropy).String()
}
