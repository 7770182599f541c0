// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package rangemap implements sets of integer intervals and chains of
// interval remappings over them.
//
// A MapRange remaps the half-open interval [Source, Source+Length) onto
// [Dest, Dest+Length). A Mapper is a collection of such rules in which every
// value not covered by a rule maps to itself. A Chain applies a sequence of
// mappers in order.
//
// Mappers apply either to single values (Map) or to whole sets of intervals
// (MapSet). The set form never enumerates the values of its intervals, so it
// is suitable for intervals spanning billions of values.
package rangemap

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// ErrEmptySet is reported when the minimum of an empty set is requested.
var ErrEmptySet = errors.New("empty interval set")

// An Interval is a half-open range of values [Start, End).
// An interval with End <= Start is empty.
type Interval struct {
	Start uint64 // inclusive
	End   uint64 // exclusive
}

// Len reports the number of values in iv.
func (iv Interval) Len() uint64 {
	if iv.End <= iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

// Empty reports whether iv contains no values.
func (iv Interval) Empty() bool { return iv.End <= iv.Start }

// Contains reports whether x is in iv.
func (iv Interval) Contains(x uint64) bool { return iv.Start <= x && x < iv.End }

// Overlaps reports whether iv and o have any values in common.
func (iv Interval) Overlaps(o Interval) bool { return iv.Start < o.End && o.Start < iv.End }

// Intersect returns the interval of values common to iv and o.
// If they do not overlap, the result is empty.
func (iv Interval) Intersect(o Interval) Interval {
	if iv.Start < o.Start {
		iv.Start = o.Start
	}
	if iv.End > o.End {
		iv.End = o.End
	}
	if iv.End < iv.Start {
		iv.End = iv.Start
	}
	return iv
}

// Shift returns iv translated so that the value from moves to to. The caller
// must ensure the result does not wrap.
func (iv Interval) Shift(from, to uint64) Interval {
	return Interval{Start: iv.Start - from + to, End: iv.End - from + to}
}

func (iv Interval) String() string { return fmt.Sprintf("[%d,%d)", iv.Start, iv.End) }

// A Set is a collection of values represented as sorted, disjoint, non-adjacent
// intervals. The zero value is an empty set ready for use.
type Set struct {
	ivs []Interval
}

// NewSet constructs a set containing the union of the given intervals.
func NewSet(ivs ...Interval) *Set {
	s := new(Set)
	for _, iv := range ivs {
		s.Add(iv)
	}
	return s
}

// Add adds the values of iv to s. Intervals of s that overlap or abut iv are
// merged with it.
func (s *Set) Add(iv Interval) {
	if iv.Empty() {
		return
	}
	ivs := s.ivs

	// i is the first interval that ends at or after the new one starts, and
	// so may need to merge with it. j is the first interval that starts after
	// the new one ends. Thus ivs[i:j] all merge with iv.
	i := sort.Search(len(ivs), func(k int) bool { return ivs[k].End >= iv.Start })
	j := sort.Search(len(ivs), func(k int) bool { return ivs[k].Start > iv.End })
	if i < j {
		iv.Start = min(iv.Start, ivs[i].Start)
		iv.End = max(iv.End, ivs[j-1].End)
	}
	s.ivs = slices.Replace(ivs, i, j, iv)
}

// AddSet adds all the values of o to s.
func (s *Set) AddSet(o *Set) {
	for _, iv := range o.ivs {
		s.Add(iv)
	}
}

// Remove removes the values of iv from s.
func (s *Set) Remove(iv Interval) {
	if iv.Empty() {
		return
	}
	ivs := s.ivs

	// ivs[i:j] are exactly the intervals that overlap iv.
	i := sort.Search(len(ivs), func(k int) bool { return ivs[k].End > iv.Start })
	j := sort.Search(len(ivs), func(k int) bool { return ivs[k].Start >= iv.End })
	if i >= j {
		return
	}
	var keep []Interval
	if lo := ivs[i]; lo.Start < iv.Start {
		keep = append(keep, Interval{Start: lo.Start, End: iv.Start})
	}
	if hi := ivs[j-1]; hi.End > iv.End {
		keep = append(keep, Interval{Start: iv.End, End: hi.End})
	}
	s.ivs = slices.Replace(ivs, i, j, keep...)
}

// Intersect returns a new set containing the values of s that are in iv.
// The receiver is not modified.
func (s *Set) Intersect(iv Interval) *Set {
	out := new(Set)
	if iv.Empty() {
		return out
	}
	ivs := s.ivs
	i := sort.Search(len(ivs), func(k int) bool { return ivs[k].End > iv.Start })
	for ; i < len(ivs) && ivs[i].Start < iv.End; i++ {
		out.ivs = append(out.ivs, ivs[i].Intersect(iv))
	}
	return out
}

// Contains reports whether x is in s.
func (s *Set) Contains(x uint64) bool {
	i := sort.Search(len(s.ivs), func(k int) bool { return s.ivs[k].End > x })
	return i < len(s.ivs) && s.ivs[i].Start <= x
}

// Size reports the total number of values in s.
func (s *Set) Size() uint64 {
	var n uint64
	for _, iv := range s.ivs {
		n += iv.Len()
	}
	return n
}

// Len reports the number of disjoint intervals in s.
func (s *Set) Len() int { return len(s.ivs) }

// IsEmpty reports whether s contains no values.
func (s *Set) IsEmpty() bool { return len(s.ivs) == 0 }

// Min returns the smallest value in s, or ErrEmptySet if s is empty.
func (s *Set) Min() (uint64, error) {
	if len(s.ivs) == 0 {
		return 0, ErrEmptySet
	}
	return s.ivs[0].Start, nil
}

// Intervals returns a copy of the intervals of s in increasing order.
// It returns nil if s is empty.
func (s *Set) Intervals() []Interval {
	if len(s.ivs) == 0 {
		return nil
	}
	return slices.Clone(s.ivs)
}

// Clone returns a copy of s that shares no storage with it.
func (s *Set) Clone() *Set { return &Set{ivs: slices.Clone(s.ivs)} }

func (s *Set) String() string {
	parts := make([]string, len(s.ivs))
	for i, iv := range s.ivs {
		parts[i] = iv.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}
