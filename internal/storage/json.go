package storage

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
)

// LoadJSON decodes the value stored under key. It reports false with the zero
// value of T when the key is absent or its value does not decode cleanly into T:
// a malformed value counts as no data, even when part of it would have decoded.
// Only read failures are returned as errors.
func LoadJSON[T any](s Storage, key string) (T, bool, error) {
	var zero T
	raw, ok, err := s.Get(key)
	if err != nil {
		return zero, false, err
	}
	if !ok {
		return zero, false, nil
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Warn("Ignoring malformed stored value", "key", key, "error", err)
		return zero, false, nil
	}
	return v, true, nil
}

// SaveJSON encodes v and writes it under key.
func SaveJSON(s Storage, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode key %q: %w", key, err)
	}
	return s.Set(key, string(data))
}
