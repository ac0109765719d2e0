// Package mapgen turns character grids into level objects. Grids are read from text files or
// generated from fractal value noise.
package mapgen

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Cell types understood by Build.
const (
	Empty      = ' '
	Wall       = 'x'
	Floor      = '.' // floor with a coin above it
	Finish     = 'e'
	Prop       = 'p' // floor with a loose crate
	SlopeUp    = '/'
	SlopeDown  = '\\'
	Obstacle   = 'o' // patrolling block
	Start      = 's'
	PlainFloor = '_'
	// floor with a coin, under a pendulum that starts on the west or east side
	PendulumLeft  = 'l'
	PendulumRight = 'r'
)

// Grid is a rectangular character map. Row 0 is the northmost (smallest Z) row.
type Grid struct {
	Width, Height int
	Cells         []byte
}

// NewGrid returns a grid of the given size filled with Empty.
func NewGrid(width, height int) Grid {
	cells := make([]byte, width*height)
	for i := range cells {
		cells[i] = Empty
	}
	return Grid{Width: width, Height: height, Cells: cells}
}

// At returns the cell at column x, row y, or Empty outside the grid.
func (g Grid) At(x, y int) byte {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return Empty
	}
	return g.Cells[y*g.Width+x]
}

// Set writes the cell at column x, row y. Writes outside the grid are ignored.
func (g Grid) Set(x, y int, c byte) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return
	}
	g.Cells[y*g.Width+x] = c
}

// String renders the grid in the format ParseGrid reads, trailing blanks trimmed.
func (g Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		b.WriteString(strings.TrimRight(string(g.Cells[y*g.Width:(y+1)*g.Width]), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseGrid reads one row per line. Short rows are padded with Empty; lines starting with '#'
// are comments. Unknown cell characters are an error.
func ParseGrid(r io.Reader) (Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), " \r")
		if strings.HasPrefix(line, "#") {
			continue
		}
		for i := 0; i < len(line); i++ {
			if !known(line[i]) {
				return Grid{}, fmt.Errorf("grid line %d col %d: unknown cell %q", n, i+1, line[i])
			}
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return Grid{}, fmt.Errorf("read grid: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	g := NewGrid(width, len(rows))
	for y, row := range rows {
		copy(g.Cells[y*width:], row)
	}
	return g, nil
}

func known(c byte) bool {
	switch c {
	case Empty, Wall, Floor, Finish, Prop, SlopeUp, SlopeDown, Obstacle, Start, PlainFloor,
		PendulumLeft, PendulumRight:
		return true
	}
	return false
}
