package skill

import (
	"encoding/json"
	"sort"
)

// Set is an unordered collection of skills, unique by normalized form.
type Set map[Skill]struct{}

// NewSet creates a set from already normalized skills.
func NewSet(skills ...Skill) Set {
	ret := make(Set, len(skills))
	for _, s := range skills {
		ret[s] = struct{}{}
	}
	return ret
}

// ParseSet normalizes each raw token and collects the results. The first
// invalid token aborts with an error.
func ParseSet(raw ...string) (Set, error) {
	ret := make(Set, len(raw))
	for _, r := range raw {
		s, err := Normalize(r)
		if err != nil {
			return nil, err
		}
		ret[s] = struct{}{}
	}
	return ret, nil
}

// Add inserts a skill.
func (s Set) Add(sk Skill) { s[sk] = struct{}{} }

// Has returns true when the set contains sk.
func (s Set) Has(sk Skill) bool {
	_, ok := s[sk]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int { return len(s) }

// Intersect returns members present in both sets.
func (s Set) Intersect(other Set) Set {
	ret := Set{}
	for sk := range s {
		if other.Has(sk) {
			ret[sk] = struct{}{}
		}
	}
	return ret
}

// Union returns members present in either set.
func (s Set) Union(other Set) Set {
	ret := make(Set, len(s)+len(other))
	for sk := range s {
		ret[sk] = struct{}{}
	}
	for sk := range other {
		ret[sk] = struct{}{}
	}
	return ret
}

// Diff returns members of s that are absent from other.
func (s Set) Diff(other Set) Set {
	ret := Set{}
	for sk := range s {
		if !other.Has(sk) {
			ret[sk] = struct{}{}
		}
	}
	return ret
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	ret := make(Set, len(s))
	for sk := range s {
		ret[sk] = struct{}{}
	}
	return ret
}

// Sorted returns the members in lexicographic order; useful for deterministic
// output and tests.
func (s Set) Sorted() []Skill {
	ret := make([]Skill, 0, len(s))
	for sk := range s {
		ret = append(ret, sk)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

// MarshalJSON encodes the set as a sorted array so that serialized form is
// stable across runs.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array of raw tokens, normalizing each member.
func (s *Set) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ret, err := ParseSet(raw...)
	if err != nil {
		return err
	}
	*s = ret
	return nil
}
