package storage

// Storage is the client-local key/value store. Values are opaque strings; callers
// decide on the encoding (see LoadJSON and SaveJSON).
type Storage interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set writes value under key, replacing any previous value wholly.
	Set(key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}
