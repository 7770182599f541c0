// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package day8 solves "Haunted Wasteland": following left/right instructions
// through a network of nodes.
package day8

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/creachadair/advent"
)

// Title is the name of the puzzle.
const Title = "Haunted Wasteland"

//go:embed input.txt
var input string

// Solver implements puzzle.Solver for day 8.
type Solver struct{}

func (Solver) Input() string { return input }

// Part1 counts the steps from AAA to ZZZ.
func (Solver) Part1(input string) (int64, error) {
	m, err := parseMap(input)
	if err != nil {
		return 0, err
	}
	if _, ok := m.Nodes["AAA"]; !ok {
		return 0, fmt.Errorf("no start node %q", "AAA")
	}
	seen := make(map[state]bool)
	s := state{node: "AAA"}
	var steps int64
	for s.node != "ZZZ" {
		if seen[s] {
			return 0, fmt.Errorf("node %q is unreachable from %q", "ZZZ", "AAA")
		}
		seen[s] = true
		if s, err = m.step(s); err != nil {
			return 0, err
		}
		steps++
	}
	return steps, nil
}

// Part2 counts the steps until walks started simultaneously from every node
// ending in A are all at nodes ending in Z.
//
// Each walk eventually repeats a (node, instruction) state, after which it
// cycles with some period p. The answer is the smallest multiple of the least
// common multiple of the periods that is no earlier than any walk enters its
// cycle. Walks that never visit a Z node at a multiple of their period are
// reported as errors.
//
// This assumes that the walks meet on Z nodes only at common multiples of
// their periods, as in the puzzle inputs, where each walk's sole Z node in
// its cycle falls at the end of the cycle. For other graphs the walks may
// coincide on Z nodes sooner (for instance, at the start of a cycle or at
// other Z nodes within it), and that earlier step is not found.
func (Solver) Part2(input string) (int64, error) {
	m, err := parseMap(input)
	if err != nil {
		return 0, err
	}
	var starts []string
	for _, name := range m.order {
		if strings.HasSuffix(name, "A") {
			starts = append(starts, name)
		}
	}
	if len(starts) == 0 {
		return 0, fmt.Errorf("no start nodes")
	}
	period, entry := int64(1), int64(0)
	for _, start := range starts {
		c, err := m.findCycle(start)
		if err != nil {
			return 0, err
		}
		period = lcm(period, c.period)
		entry = max(entry, c.entry)
	}
	// The smallest multiple of period no earlier than every cycle entry.
	return (entry + period - 1) / period * period, nil
}

// A Map is a list of instructions and a network of nodes.
type Map struct {
	Steps string               // each 'L' or 'R'
	Nodes map[string][2]string // name → (left, right)

	order []string // node names in input order
}

type state struct {
	node string
	pos  int // index into Steps
}

func (m *Map) step(s state) (state, error) {
	next, ok := m.Nodes[s.node]
	if !ok {
		return s, fmt.Errorf("unknown node %q", s.node)
	}
	dir := 0
	if m.Steps[s.pos] == 'R' {
		dir = 1
	}
	return state{node: next[dir], pos: (s.pos + 1) % len(m.Steps)}, nil
}

type cycle struct {
	entry  int64 // the step at which the cycle is first entered
	period int64
}

func (m *Map) findCycle(start string) (cycle, error) {
	seen := make(map[state]int64)
	var zs []int64
	s := state{node: start}
	for i := int64(0); ; i++ {
		if first, ok := seen[s]; ok {
			c := cycle{entry: first, period: i - first}
			for _, z := range zs {
				if z >= first && z%c.period == 0 {
					return c, nil
				}
			}
			return cycle{}, fmt.Errorf("walk from %q does not reach a Z node at a multiple of its period %d", start, c.period)
		}
		seen[s] = i
		if strings.HasSuffix(s.node, "Z") {
			zs = append(zs, i)
		}
		var err error
		if s, err = m.step(s); err != nil {
			return cycle{}, err
		}
	}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) int64 { return a / gcd(a, b) * b }

func parseMap(input string) (*Map, error) {
	c := advent.Locate(input)
	advent.Blanks()(c)
	start := c.Mark()
	steps, _ := advent.TakeTill(" \t\r\n")(c)
	if steps == "" {
		return nil, c.Errorf("missing instructions")
	}
	if i := strings.IndexFunc(steps, func(r rune) bool { return r != 'L' && r != 'R' }); i >= 0 {
		c.Reset(start + i)
		return nil, c.Errorf("invalid instruction %q", steps[i])
	}
	if _, err := advent.EndOfLine()(c); err != nil {
		return nil, err
	}
	nodes, err := advent.Lines(advent.Parser[advent.Spanned[node]](parseNode))(c)
	if err != nil {
		return nil, err
	}
	m := &Map{Steps: steps, Nodes: make(map[string][2]string)}
	for _, n := range nodes {
		if _, ok := m.Nodes[n.Value.name]; ok {
			return nil, &advent.ParseError{
				LineCol: c.LineCol(c.Line(n.Loc.Line).Pos),
				Err:     fmt.Errorf("duplicate node %q", n.Value.name),
			}
		}
		m.Nodes[n.Value.name] = n.Value.next
		m.order = append(m.order, n.Value.name)
	}
	return m, nil
}

type node struct {
	name string
	next [2]string
}

// parseNode parses "AAA = (BBB, CCC)", and reports the location of the line.
func parseNode(c *advent.Cursor) (advent.Spanned[node], error) {
	return advent.Located(advent.Parser[node](func(c *advent.Cursor) (node, error) {
		name, err := label(c)
		if err != nil {
			return node{}, err
		}
		if err := punct(c, "="); err != nil {
			return node{}, err
		} else if err := punct(c, "("); err != nil {
			return node{}, err
		}
		left, err := label(c)
		if err != nil {
			return node{}, err
		} else if err := punct(c, ","); err != nil {
			return node{}, err
		}
		right, err := label(c)
		if err != nil {
			return node{}, err
		} else if err := punct(c, ")"); err != nil {
			return node{}, err
		}
		return node{name: name, next: [2]string{left, right}}, nil
	}))(c)
}

func label(c *advent.Cursor) (string, error) {
	advent.Spaces()(c)
	return advent.Word()(c)
}

func punct(c *advent.Cursor, s string) error {
	advent.Spaces()(c)
	_, err := advent.Literal(s)(c)
	return err
}
