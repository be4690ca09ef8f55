package guid

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmpty     = errors.New("guid cannot be empty")
	ErrMalformed = errors.New("guid must be 32 hexadecimal digits in 8-4-4-4-12 form")
)

// groupLens is the canonical hyphenated GUID shape.
var groupLens = [...]int{8, 4, 4, 4, 12}

// Normalize validates raw against the canonical GUID grammar and
// returns the lower-cased hyphenated form used as a lookup key.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmpty
	}
	if !canonicalShape(trimmed) {
		return "", ErrMalformed
	}

	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return "", ErrMalformed
	}
	return parsed.String(), nil
}

// canonicalShape rejects the alternate encodings uuid.Parse tolerates,
// such as braced, URN-prefixed, or unhyphenated forms.
func canonicalShape(s string) bool {
	if len(s) != 36 {
		return false
	}
	groups := strings.Split(s, "-")
	if len(groups) != len(groupLens) {
		return false
	}
	for i, group := range groups {
		if len(group) != groupLens[i] {
			return false
		}
	}
	return true
}
