package skill

import (
	"github.com/viant/parsly"
)

// ParseList parses a comma separated skill list in the format accepted at the
// task creation boundary, e.g. `UI/UX, Figma, "Quality, Control"`. Tokens may
// be double quoted so that a skill can contain a comma. Every token is
// normalized; an empty list or an empty token is an error.
func ParseList(input []byte) (Set, error) {
	cursor := parsly.NewCursor("", input, 0)
	result := Set{}
	for {
		matched := cursor.MatchAfterOptional(whitespaceToken, quotedToken, tokenToken)
		var text string
		switch matched.Code {
		case quotedCode:
			text = matched.Text(cursor)
			text = text[1 : len(text)-1]
		case tokenCode:
			text = matched.Text(cursor)
		default:
			return nil, cursor.NewError(quotedToken, tokenToken)
		}

		sk, err := Normalize(text)
		if err != nil {
			return nil, err
		}
		result[sk] = struct{}{}

		matched = cursor.MatchAfterOptional(whitespaceToken, commaToken)
		if matched.Code != commaCode {
			break
		}
	}
	if len(result) == 0 {
		return nil, ErrInvalid
	}
	return result, nil
}
