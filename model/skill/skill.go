package skill

import (
	"errors"
	"strings"
)

// ErrInvalid is returned when a raw skill token is empty or whitespace only.
var ErrInvalid = errors.New("skill: invalid skill")

// Skill is a normalized capability tag used for matching. Two skills are equal
// when their normalized forms are equal; no fuzzy or synonym matching applies.
type Skill string

// Normalize canonicalises a raw token: surrounding whitespace is trimmed,
// internal whitespace runs collapse to a single space and the result is
// case-folded.
func Normalize(raw string) (Skill, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return "", ErrInvalid
	}
	return Skill(strings.ToLower(strings.Join(fields, " "))), nil
}

// String returns the normalized token.
func (s Skill) String() string { return string(s) }
