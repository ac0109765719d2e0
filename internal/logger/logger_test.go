package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogStampsAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sim.txt")
	l := New(path, "info")
	l.Log("first")
	l.Logf("score %d", 3)

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] first$`, lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "] score 3"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, lines[0]+"\n"+lines[1]+"\n", string(data))
}

func TestLinesIsACopy(t *testing.T) {
	l := New("", "info")
	l.Log("a")
	got := l.Lines()
	got[0] = "mutated"
	assert.NotEqual(t, "mutated", l.Lines()[0])
}

func TestSlogWritesThroughLog(t *testing.T) {
	l := New("", "info")
	l.Slog().Info("coin collected", "score", 2, "object", "Coin")
	l.Slog().Debug("hidden")

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `level=INFO msg="coin collected" score=2 object=Coin`)
	assert.NotContains(t, lines[0], "time=")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}
