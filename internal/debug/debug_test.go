package debug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaysStartHidden(t *testing.T) {
	d := New(nil)
	d.refresh(60)
	assert.Empty(t, d.rightLines())
}

func TestRefreshCachesText(t *testing.T) {
	d := New(nil)
	d.ShowFPS = true
	d.ShowMemAlloc = true

	d.refresh(60)
	lines := d.rightLines()
	require.Len(t, lines, 2)
	assert.Equal(t, "FPS: 60", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Mem: "))

	d.refresh(30)
	assert.Equal(t, "FPS: 60", d.rightLines()[0], "text is only refreshed every interval")

	for i := 0; i < updateInterval; i++ {
		d.refresh(30)
	}
	assert.Equal(t, "FPS: 30", d.rightLines()[0])
}
