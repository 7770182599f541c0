// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package rangemap

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
)

// A MapRange is a single remapping rule. It maps each value Source+k to
// Dest+k for 0 <= k < Length.
type MapRange struct {
	Dest   uint64
	Source uint64
	Length uint64
}

// SourceInterval returns the interval of values remapped by r.
func (r MapRange) SourceInterval() Interval {
	return Interval{Start: r.Source, End: r.Source + r.Length}
}

// Check reports an error if r is empty, or if either end of r does not fit
// in a uint64.
func (r MapRange) Check() error {
	switch {
	case r.Length == 0:
		return errors.New("rule has zero length")
	case r.Source > math.MaxUint64-r.Length:
		return fmt.Errorf("source range %d+%d overflows", r.Source, r.Length)
	case r.Dest > math.MaxUint64-r.Length:
		return fmt.Errorf("destination range %d+%d overflows", r.Dest, r.Length)
	}
	return nil
}

// Map reports the value id maps to under r, and whether r covers id.
func (r MapRange) Map(id uint64) (uint64, bool) {
	if !r.SourceInterval().Contains(id) {
		return id, false
	}
	return id - r.Source + r.Dest, true
}

// Extract removes from s the values covered by r, and returns a new set
// containing those values as remapped by r.
func (r MapRange) Extract(s *Set) *Set {
	src := r.SourceInterval()
	hit := s.Intersect(src)
	s.Remove(src)

	// Translation by a constant offset preserves order and disjointness.
	for i, iv := range hit.ivs {
		hit.ivs[i] = iv.Shift(r.Source, r.Dest)
	}
	return hit
}

// A Mapper is a named mapping stage, consisting of a collection of rules.
// Values not covered by any rule map to themselves.
//
// The source intervals of the rules are expected not to overlap (see
// Validate). If they do, the first rule covering a value takes precedence,
// for both Map and MapSet.
type Mapper struct {
	Name   string
	Ranges []MapRange
}

// Map returns the value id maps to under m.
func (m *Mapper) Map(id uint64) uint64 {
	for _, r := range m.Ranges {
		if v, ok := r.Map(id); ok {
			return v
		}
	}
	return id
}

// MapSet returns the set of values that the values of s map to under m.
// The input set is not modified.
func (m *Mapper) MapSet(s *Set) *Set {
	work := s.Clone()
	out := new(Set)
	for _, r := range m.Ranges {
		out.AddSet(r.Extract(work))
	}

	// Whatever no rule claimed maps to itself.
	out.AddSet(work)
	return out
}

// Validate reports an error if any rule of m is invalid, or if the source
// intervals of any two rules overlap.
func (m *Mapper) Validate() error {
	for _, r := range m.Ranges {
		if err := r.Check(); err != nil {
			return err
		}
	}
	rs := slices.SortedFunc(slices.Values(m.Ranges), func(a, b MapRange) int {
		return cmp.Compare(a.Source, b.Source)
	})
	for i := 1; i < len(rs); i++ {
		if prev, cur := rs[i-1].SourceInterval(), rs[i].SourceInterval(); prev.Overlaps(cur) {
			return fmt.Errorf("source %v overlaps source %v", prev, cur)
		}
	}
	return nil
}

// A Chain is a sequence of mapping stages applied in order.
// An empty chain maps every value to itself.
type Chain []*Mapper

// Map returns the value id maps to after passing through every stage of c.
func (c Chain) Map(id uint64) uint64 {
	for _, m := range c {
		id = m.Map(id)
	}
	return id
}

// MapSet returns the set of values that s maps to after passing through
// every stage of c. The input set is not modified.
func (c Chain) MapSet(s *Set) *Set {
	out := s.Clone()
	for _, m := range c {
		out = m.MapSet(out)
	}
	return out
}
