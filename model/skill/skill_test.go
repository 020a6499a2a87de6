package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expected    Skill
		shouldError bool
	}{
		{
			description: "plain token",
			input:       "Figma",
			expected:    "figma",
		},
		{
			description: "surrounding whitespace",
			input:       "  Welding \t",
			expected:    "welding",
		},
		{
			description: "internal whitespace collapsed",
			input:       "Blueprint   Reading",
			expected:    "blueprint reading",
		},
		{
			description: "mixed case with punctuation",
			input:       "UI/UX",
			expected:    "ui/ux",
		},
		{
			description: "empty input",
			input:       "",
			shouldError: true,
		},
		{
			description: "whitespace only",
			input:       "   \t ",
			shouldError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := Normalize(tc.input)
			if tc.shouldError {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestSetOperations(t *testing.T) {
	required, err := ParseSet("UI/UX", "Figma")
	assert.NoError(t, err)
	candidate, err := ParseSet("figma", "Sketch", "Web Design")
	assert.NoError(t, err)

	matched := required.Intersect(candidate)
	assert.Equal(t, []Skill{"figma"}, matched.Sorted())

	union := required.Union(candidate)
	assert.Equal(t, 4, union.Len())

	missing := required.Diff(candidate)
	assert.Equal(t, []Skill{"ui/ux"}, missing.Sorted())

	clone := required.Clone()
	clone.Add("prototyping")
	assert.False(t, required.Has("prototyping"))
	assert.True(t, clone.Has("prototyping"))
}

func TestSetJSON(t *testing.T) {
	set, err := ParseSet("Welding", "Hydraulics", "CNC-Operation")
	assert.NoError(t, err)

	data, err := set.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `["cnc-operation","hydraulics","welding"]`, string(data))

	var decoded Set
	assert.NoError(t, decoded.UnmarshalJSON(data))
	assert.Equal(t, set, decoded)
}
