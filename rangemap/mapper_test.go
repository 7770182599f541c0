// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package rangemap_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/advent"
	"github.com/creachadair/advent/rangemap"
	"github.com/google/go-cmp/cmp"
)

const testAlmanac = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4`

func mustParse(t *testing.T, text string) *rangemap.Almanac {
	t.Helper()
	a, err := rangemap.ParseAlmanac(text)
	if err != nil {
		t.Fatalf("ParseAlmanac: unexpected error: %v", err)
	}
	return a
}

func TestParseAlmanac(t *testing.T) {
	a := mustParse(t, testAlmanac)
	if diff := cmp.Diff([]uint64{79, 14, 55, 13}, a.Seeds); diff != "" {
		t.Errorf("Seeds: (-want, +got)\n%s", diff)
	}
	var names []string
	for _, m := range a.Chain {
		names = append(names, m.Name)
	}
	if diff := cmp.Diff([]string{
		"seed-to-soil", "soil-to-fertilizer", "fertilizer-to-water", "water-to-light",
		"light-to-temperature", "temperature-to-humidity", "humidity-to-location",
	}, names); diff != "" {
		t.Errorf("Stage names: (-want, +got)\n%s", diff)
	}
	if diff := cmp.Diff([]rangemap.MapRange{
		{Dest: 50, Source: 98, Length: 2},
		{Dest: 52, Source: 50, Length: 48},
	}, a.Chain[0].Ranges); diff != "" {
		t.Errorf("First stage: (-want, +got)\n%s", diff)
	}
}

func TestAlmanacCanonical(t *testing.T) {
	a := mustParse(t, testAlmanac)

	// Each seed through the chain, per the worked example.
	for seed, want := range map[uint64]uint64{79: 82, 14: 43, 55: 86, 13: 35} {
		if got := a.Chain.Map(seed); got != want {
			t.Errorf("Map(%d): got %d, want %d", seed, got, want)
		}
	}
	if got, err := a.LowestLocation(); err != nil || got != 35 {
		t.Errorf("LowestLocation: got %d, %v; want 35, nil", got, err)
	}

	seeds, err := a.SeedRanges()
	if err != nil {
		t.Fatalf("SeedRanges: unexpected error: %v", err)
	}
	if diff := cmp.Diff([]rangemap.Interval{{Start: 55, End: 68}, {Start: 79, End: 93}}, seeds.Intervals()); diff != "" {
		t.Errorf("SeedRanges: (-want, +got)\n%s", diff)
	}
	if got, err := a.LowestRangeLocation(); err != nil || got != 46 {
		t.Errorf("LowestRangeLocation: got %d, %v; want 46, nil", got, err)
	}
}

func TestMapSetPreservesSize(t *testing.T) {
	a := mustParse(t, testAlmanac)
	inputs := []*rangemap.Set{
		rangemap.NewSet(iv{0, 1}),
		rangemap.NewSet(iv{55, 68}, iv{79, 93}),
		rangemap.NewSet(iv{0, 200}),
		rangemap.NewSet(iv{3, 17}, iv{40, 60}, iv{90, 1000}),
		rangemap.NewSet(iv{1 << 40, 1<<40 + 5_000_000_000}),
	}
	for _, in := range inputs {
		s := in
		for _, m := range a.Chain {
			out := m.MapSet(s)
			if out.Size() != s.Size() {
				t.Errorf("%s.MapSet(%v): size %d, want %d", m.Name, s, out.Size(), s.Size())
			}
			s = out
		}
	}
}

func TestMapSetAgreesWithMap(t *testing.T) {
	a := mustParse(t, testAlmanac)
	for _, m := range a.Chain {
		for x := uint64(0); x < 120; x++ {
			got, err := m.MapSet(rangemap.NewSet(iv{x, x + 1})).Min()
			if err != nil {
				t.Fatalf("%s.MapSet({%d}): unexpected error: %v", m.Name, x, err)
			}
			if want := m.Map(x); got != want {
				t.Errorf("%s: MapSet({%d}) = %d, Map(%d) = %d", m.Name, x, got, x, want)
			}
		}
	}

	// The same holds for the whole chain, and mapping a whole interval at once
	// yields exactly the image of its individual values.
	in := rangemap.NewSet(iv{0, 120})
	out := a.Chain.MapSet(in)
	want := new(rangemap.Set)
	for x := uint64(0); x < 120; x++ {
		y := a.Chain.Map(x)
		want.Add(iv{y, y + 1})
	}
	if diff := cmp.Diff(want.Intervals(), out.Intervals()); diff != "" {
		t.Errorf("Chain.MapSet: (-want, +got)\n%s", diff)
	}
	if in.Size() != 120 {
		t.Errorf("Chain.MapSet modified its input: %v", in)
	}
}

func TestIdentityFallback(t *testing.T) {
	m := &rangemap.Mapper{Name: "one", Ranges: []rangemap.MapRange{
		{Dest: 500, Source: 10, Length: 1},
	}}

	// A rule of length 1 moves exactly one value.
	for x, want := range map[uint64]uint64{0: 0, 9: 9, 10: 500, 11: 11, 500: 500, 1 << 63: 1 << 63} {
		if got := m.Map(x); got != want {
			t.Errorf("Map(%d): got %d, want %d", x, got, want)
		}
	}
	got := m.MapSet(rangemap.NewSet(iv{5, 15}))
	if diff := cmp.Diff([]rangemap.Interval{{5, 10}, {11, 15}, {500, 501}}, got.Intervals()); diff != "" {
		t.Errorf("MapSet: (-want, +got)\n%s", diff)
	}

	out := m.MapSet(rangemap.NewSet(iv{20, 30}))
	if diff := cmp.Diff([]rangemap.Interval{{20, 30}}, out.Intervals()); diff != "" {
		t.Errorf("MapSet outside all rules: (-want, +got)\n%s", diff)
	}
}

func TestEmptyChain(t *testing.T) {
	var chain rangemap.Chain
	if got := chain.Map(12345); got != 12345 {
		t.Errorf("Map: got %d, want 12345", got)
	}
	in := rangemap.NewSet(iv{3, 9}, iv{20, 21})
	if diff := cmp.Diff(in.Intervals(), chain.MapSet(in).Intervals()); diff != "" {
		t.Errorf("MapSet: (-want, +got)\n%s", diff)
	}

	empty := &rangemap.Mapper{Name: "empty"}
	if got := empty.Map(7); got != 7 {
		t.Errorf("Empty mapper Map: got %d, want 7", got)
	}
}

func TestChainDeterministic(t *testing.T) {
	a := mustParse(t, testAlmanac)
	seeds, err := a.SeedRanges()
	if err != nil {
		t.Fatalf("SeedRanges: %v", err)
	}
	first := a.Chain.MapSet(seeds)
	second := a.Chain.MapSet(seeds)
	if diff := cmp.Diff(first.Intervals(), second.Intervals()); diff != "" {
		t.Errorf("Second application differs: (-first, +second)\n%s", diff)
	}
	if a.Chain.Map(79) != a.Chain.Map(79) {
		t.Error("Map is not deterministic")
	}
}

func TestOverlappingRules(t *testing.T) {
	m := &rangemap.Mapper{Name: "overlap", Ranges: []rangemap.MapRange{
		{Dest: 100, Source: 0, Length: 10},
		{Dest: 200, Source: 5, Length: 10},
	}}
	if err := m.Validate(); err == nil {
		t.Error("Validate: got nil, want error for overlapping rules")
	}

	// Unvalidated mappers still agree between the two paths: the first rule wins.
	for x := uint64(0); x < 20; x++ {
		got, _ := m.MapSet(rangemap.NewSet(iv{x, x + 1})).Min()
		if want := m.Map(x); got != want {
			t.Errorf("MapSet({%d}) = %d, Map(%d) = %d", x, got, x, want)
		}
	}
}

func TestParseAlmanacErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"NoSeeds", "seeds:\n\na-to-b map:\n1 2 3\n", 1},
		{"BadHeader", "seeds: 1 2\n\nmap\n1 2 3\n", 3},
		{"MissingMap", "seeds: 1 2\n\na-to-b\n1 2 3\n", 3},
		{"TwoFields", "seeds: 1 2\n\na-to-b map:\n1 2\n", 4},
		{"FourFields", "seeds: 1 2\n\na-to-b map:\n1 2 3 4\n", 4},
		{"NonNumeric", "seeds: 1 2\n\na-to-b map:\n1 x 3\n", 4},
		{"ZeroLength", "seeds: 1 2\n\na-to-b map:\n1 2 0\n", 4},
		{"Overflow", "seeds: 1 2\n\na-to-b map:\n1 18446744073709551615 2\n", 4},
		{"NoRules", "seeds: 1 2\n\na-to-b map:\n", 3},
		{"Overlap", "seeds: 1 2\n\na-to-b map:\n0 0 10\n50 5 10\n", 3},
		{"TrailingText", "seeds: 1 2 x\n", 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a, err := rangemap.ParseAlmanac(test.input)
			var perr *advent.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("ParseAlmanac: got %+v, %v; want *ParseError", a, err)
			}
			if perr.Line != test.line {
				t.Errorf("Error line: got %d, want %d (%v)", perr.Line, test.line, err)
			}
		})
	}

	t.Run("OddSeeds", func(t *testing.T) {
		a := mustParse(t, "seeds: 1 2 3\n")
		if _, err := a.SeedRanges(); err == nil || !strings.Contains(err.Error(), "odd") {
			t.Errorf("SeedRanges: got %v, want odd-count error", err)
		}
		if got, err := a.LowestLocation(); err != nil || got != 1 {
			t.Errorf("LowestLocation with empty chain: got %d, %v; want 1, nil", got, err)
		}
	})
}
