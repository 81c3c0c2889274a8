// Package identity normalizes learner names and maps them to storage keys
// that are safe as path segments in both the local and remote stores.
package identity

import (
	"errors"
	"net/url"
	"strings"
)

// MaxNameLen caps learner names, in runes.
const MaxNameLen = 20

var (
	ErrEmptyName   = errors.New("name is empty")
	ErrNameTooLong = errors.New("name is too long")
)

// Normalize trims a raw name and validates it. The returned name is the
// canonical identity: case- and byte-sensitive, used verbatim as the join
// key between the local and remote stores.
func Normalize(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrEmptyName
	}
	if len([]rune(name)) > MaxNameLen {
		return "", ErrNameTooLong
	}
	return name, nil
}

// EncodeKey maps a name to a storage key. Percent-escaping alone leaves
// "." intact, but the remote store reserves it in document keys, so dots
// get a second escaping pass. The mapping is injective: escaped input
// like "a%2Eb" percent-escapes its "%" first and cannot collide with the
// key produced for "a.b".
func EncodeKey(name string) string {
	return strings.ReplaceAll(url.QueryEscape(name), ".", "%2E")
}

// DecodeKey recovers the exact original name from a storage key.
func DecodeKey(key string) (string, error) {
	name, err := url.QueryUnescape(key)
	if err != nil {
		return "", err
	}
	return name, nil
}
