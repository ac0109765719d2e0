package terminal

import (
	"errors"
	"strings"
	"testing"

	"entity-engine/internal/commands"
	"entity-engine/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit(t *testing.T) {
	log := logger.New("", "info")
	reg := commands.NewRegistry()
	ran := 0
	reg.Register("shuffle", "", nil, func([]string) error { ran++; return nil })
	reg.Register("fail", "", nil, func([]string) error { return errors.New("boom") })
	term := New(log, reg)

	term.Submit("cmd shuffle")
	term.Submit("hello there")
	term.Submit("cmd fail")
	term.Submit("")

	assert.Equal(t, 1, ran)
	lines := log.Lines()
	require.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[0], "> cmd shuffle"))
	assert.True(t, strings.HasSuffix(lines[1], "> hello there"))
	assert.True(t, strings.HasSuffix(lines[3], "] boom"))
	assert.False(t, term.IsOpen())
}

func TestTrimLastRune(t *testing.T) {
	assert.Equal(t, "", trimLastRune(""))
	assert.Equal(t, "ab", trimLastRune("abc"))
	assert.Equal(t, "caf", trimLastRune("café"))
}

func TestVisibleLines(t *testing.T) {
	var lines []string
	for i := 0; i < maxLinesOnScreen+5; i++ {
		lines = append(lines, "line")
	}
	lines = append(lines, strings.Repeat("x", maxLineLen+10))
	got := visibleLines(lines)
	require.Len(t, got, maxLinesOnScreen)
	last := got[len(got)-1]
	assert.Len(t, last, maxLineLen)
	assert.True(t, strings.HasSuffix(last, "..."))
}
