package session

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/sessions"
)

// Values are stored as JSON strings so the gob-encoded session map only ever
// holds strings and no types need gob registration.

// GetJSON decodes the value under key into v. It reports false when the key
// is absent.
func GetJSON(s *sessions.Session, key string, v any) (bool, error) {
	raw, ok := s.Values[key].(string)
	if !ok || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode session value %q: %w", key, err)
	}
	return true, nil
}

// SetJSON stores v under key.
func SetJSON(s *sessions.Session, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode session value %q: %w", key, err)
	}
	s.Values[key] = string(b)
	return nil
}

// Delete removes key from s.
func Delete(s *sessions.Session, key string) {
	delete(s.Values, key)
}
