package storage

import (
	"database/sql"
	"sync"
)

// Keys used by the tracker.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeyStats       = "stats"
)

// store persists key/value pairs in the kv table.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
