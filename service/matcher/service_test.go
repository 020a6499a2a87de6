package matcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talentgrid/allocator/model/skill"
)

func TestScore(t *testing.T) {
	testCases := []struct {
		description string
		required    []string
		candidate   []string
		expectScore float64
		expectMatch []string
	}{
		{
			description: "full match",
			required:    []string{"welding", "hydraulics"},
			candidate:   []string{"hydraulics", "welding", "electrical"},
			expectScore: 1.0,
			expectMatch: []string{"hydraulics", "welding"},
		},
		{
			description: "partial match",
			required:    []string{"welding", "hydraulics", "plc-programming", "robotics"},
			candidate:   []string{"welding"},
			expectScore: 0.25,
			expectMatch: []string{"welding"},
		},
		{
			description: "no match",
			required:    []string{"welding"},
			candidate:   []string{"carpentry"},
			expectScore: 0,
			expectMatch: []string{},
		},
		{
			description: "empty required",
			required:    []string{},
			candidate:   []string{"welding"},
			expectScore: 0,
			expectMatch: []string{},
		},
		{
			description: "empty candidate",
			required:    []string{"welding"},
			candidate:   []string{},
			expectScore: 0,
			expectMatch: []string{},
		},
	}

	for _, testCase := range testCases {
		required, err := skill.ParseSet(testCase.required...)
		assert.NoError(t, err, testCase.description)
		candidate, err := skill.ParseSet(testCase.candidate...)
		assert.NoError(t, err, testCase.description)

		score, matched := Score(required, candidate)
		assert.Equal(t, testCase.expectScore, score, testCase.description)
		expected, _ := skill.ParseSet(testCase.expectMatch...)
		assert.Equal(t, expected.Sorted(), matched.Sorted(), testCase.description)
	}
}

func TestScoreSelf(t *testing.T) {
	required, err := skill.ParseSet("welding", "hydraulics", "cnc-operation")
	assert.NoError(t, err)
	score, matched := Score(required, required)
	assert.Equal(t, 1.0, score)
	assert.Equal(t, required.Sorted(), matched.Sorted())
}

func TestCoOccurrenceSuggest(t *testing.T) {
	provider := NewCoOccurrence()
	required, err := skill.ParseSet("hydraulics")
	assert.NoError(t, err)

	suggested, err := provider.Suggest(context.Background(), required)
	assert.NoError(t, err)
	assert.True(t, suggested.Has(skill.Skill("pneumatics")))
	assert.True(t, suggested.Has(skill.Skill("motor-repair")))
	// suggestions never echo the required skills back
	assert.False(t, suggested.Has(skill.Skill("hydraulics")))
}

func TestCoOccurrenceSuggestUnknownSkill(t *testing.T) {
	provider := NewCoOccurrence()
	required, err := skill.ParseSet("underwater-basket-weaving")
	assert.NoError(t, err)

	suggested, err := provider.Suggest(context.Background(), required)
	assert.NoError(t, err)
	assert.Equal(t, 0, suggested.Len())
}

func TestNopSuggest(t *testing.T) {
	required, err := skill.ParseSet("welding")
	assert.NoError(t, err)
	suggested, err := Nop{}.Suggest(context.Background(), required)
	assert.NoError(t, err)
	assert.Equal(t, 0, suggested.Len())
}

func TestNewCoOccurrenceWithInvalid(t *testing.T) {
	_, err := NewCoOccurrenceWith(map[string][]string{"": {"welding"}})
	assert.Error(t, err)
}
