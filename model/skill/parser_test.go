package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseList(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expected    []Skill
		shouldError bool
	}{
		{
			description: "comma separated list",
			input:       "UI/UX, Figma, Adobe XD",
			expected:    []Skill{"adobe xd", "figma", "ui/ux"},
		},
		{
			description: "single token",
			input:       "Welding",
			expected:    []Skill{"welding"},
		},
		{
			description: "quoted token containing comma",
			input:       `PLC-Programming, "Quality, Control"`,
			expected:    []Skill{"plc-programming", "quality, control"},
		},
		{
			description: "duplicates collapse",
			input:       "Figma, figma, FIGMA",
			expected:    []Skill{"figma"},
		},
		{
			description: "empty input",
			input:       "",
			shouldError: true,
		},
		{
			description: "whitespace only",
			input:       "   ",
			shouldError: true,
		},
		{
			description: "empty token between commas",
			input:       "Figma, , Sketch",
			shouldError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := ParseList([]byte(tc.input))
			if tc.shouldError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual.Sorted())
		})
	}
}
