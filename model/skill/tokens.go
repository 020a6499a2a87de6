package skill

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes
const (
	whitespaceCode = iota
	commaCode
	quotedCode
	tokenCode
)

// Token definitions
var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	commaToken      = parsly.NewToken(commaCode, ",", matcher.NewByte(','))
	quotedToken     = parsly.NewToken(quotedCode, "QuotedSkill", newQuotedMatcher())
	tokenToken      = parsly.NewToken(tokenCode, "Skill", newTokenMatcher())
)

// Custom matchers
func newQuotedMatcher() parsly.Matcher {
	return &quotedMatcher{}
}

func newTokenMatcher() parsly.Matcher {
	return &tokenMatcher{}
}

// quotedMatcher matches a double quoted token including both quotes.
type quotedMatcher struct{}

func (m *quotedMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	if pos >= size || input[pos] != '"' {
		return 0
	}

	for i := pos + 1; i < size; i++ {
		if input[i] == '"' {
			return i - pos + 1
		}
	}
	return 0
}

// tokenMatcher matches everything up to the next comma.
type tokenMatcher struct{}

func (m *tokenMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	if pos >= size {
		return 0
	}

	matched := 0
	for i := pos; i < size; i++ {
		if input[i] == ',' {
			break
		}
		matched++
	}
	return matched
}
