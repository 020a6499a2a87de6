// Package matcher computes skill match scores and complementary skill
// suggestions. Scoring is pure and order-independent; suggestion generation
// hides behind a pluggable provider so that a real recommendation model can
// be substituted without touching the allocation engine.
package matcher

import (
	"github.com/talentgrid/allocator/model/skill"
)

// Score computes the match between a task's required skills and a single
// candidate's skill set. It returns a score in [0, 1] (the fraction of
// required skills the candidate holds) together with the matched subset.
// With no required skills the score is 0; callers treat that case as a hard
// error upstream, allocation without requirements is meaningless.
func Score(required, candidate skill.Set) (float64, skill.Set) {
	matched := required.Intersect(candidate)
	if required.Len() == 0 {
		return 0, matched
	}
	return float64(matched.Len()) / float64(required.Len()), matched
}
