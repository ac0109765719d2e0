package commands

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Entry is one scheduled command line.
type Entry struct {
	Tick int
	Line string
}

// Script is a list of command lines ordered by the tick they run on.
type Script []Entry

// ParseScript reads one entry per line in the form "<tick>: cmd <name> [args]". A line without
// a tick prefix runs on tick 0. Blank lines and lines starting with '#' are skipped. Entries keep
// their file order within a tick.
func ParseScript(r io.Reader) (Script, error) {
	var s Script
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e := Entry{Line: line}
		if head, rest, ok := strings.Cut(line, ":"); ok && !strings.HasPrefix(line, prefix) {
			tick, err := strconv.Atoi(strings.TrimSpace(head))
			if err != nil || tick < 0 {
				return nil, fmt.Errorf("script line %d: bad tick %q", n, head)
			}
			e.Tick = tick
			e.Line = strings.TrimSpace(rest)
		}
		_, isCmd, err := Parse(e.Line)
		if !isCmd {
			return nil, fmt.Errorf("script line %d: expected %q prefix", n, strings.TrimSpace(prefix))
		}
		if err != nil {
			return nil, fmt.Errorf("script line %d: %w", n, err)
		}
		s = append(s, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	slices.SortStableFunc(s, func(a, b Entry) int { return a.Tick - b.Tick })
	return s, nil
}

// Due returns the entries scheduled for tick.
func (s Script) Due(tick int) []Entry {
	var out []Entry
	for _, e := range s {
		if e.Tick == tick {
			out = append(out, e)
		}
	}
	return out
}

// Run executes every entry due on tick against reg and stops at the first error.
func (s Script) Run(reg *Registry, tick int) error {
	for _, e := range s.Due(tick) {
		if _, err := reg.Line(e.Line); err != nil {
			return fmt.Errorf("tick %d %q: %w", tick, e.Line, err)
		}
	}
	return nil
}
