package logbook

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrea/retireplan/internal/logging"
)

func newTestLogbook(t *testing.T, level string) *Logbook {
	t.Helper()
	logger, err := logging.New(t.TempDir(), level)
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })
	return New(logger)
}

func TestTailReturnsRecentLinesAndTotal(t *testing.T) {
	book := newTestLogbook(t, "info")
	for i := 0; i < 5; i++ {
		book.Info("entry-%d", i)
	}
	lines, total := book.Tail(3)
	assert.Equal(t, 5, total)
	require.Len(t, lines, 3)
	for idx, want := range []string{"entry-2", "entry-3", "entry-4"} {
		assert.Contains(t, lines[idx], want)
	}
}

func TestTailIsBoundedButCountsEverything(t *testing.T) {
	book := newTestLogbook(t, "info")
	n := logging.RecentCapacity + 10
	for i := 0; i < n; i++ {
		book.Info("entry-%d", i)
	}
	lines, total := book.Tail(logging.RecentCapacity * 2)
	assert.Equal(t, n, total)
	require.Len(t, lines, logging.RecentCapacity)
	assert.Contains(t, lines[0], "entry-10")
	assert.Contains(t, lines[len(lines)-1], fmt.Sprintf("entry-%d", n-1))
}

func TestTailOnlySeesThisSession(t *testing.T) {
	dir := t.TempDir()
	first, err := logging.New(dir, "info")
	require.NoError(t, err)
	New(first).Info("from an earlier run")
	require.NoError(t, first.Close())

	second, err := logging.New(dir, "info")
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })
	book := New(second)
	book.Info("fresh")

	lines, total := book.Tail(10)
	assert.Equal(t, 1, total)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "fresh")
}

func TestLevelsAreFilteredAndLabelled(t *testing.T) {
	book := newTestLogbook(t, "info")
	book.Debug("hidden")
	book.Warn("careful")
	book.Error("broken")
	lines, total := book.Tail(10)
	require.Equal(t, 2, total, "lines: %q", lines)
	assert.Contains(t, lines[0], "WARN")
	assert.Contains(t, lines[1], "ERROR")
}

func TestWithAddsFields(t *testing.T) {
	book := newTestLogbook(t, "debug").With("flow", "abc")
	book.Debug("step changed")
	lines, _ := book.Tail(1)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "DEBUG")
	assert.Contains(t, lines[0], `"flow": "abc"`)
}

func TestNilLoggerDropsEntries(t *testing.T) {
	book := New(nil)
	book.Info("nowhere")
	lines, total := book.Tail(5)
	assert.Nil(t, lines)
	assert.Zero(t, total)

	var missing *Logbook
	missing.Info("still fine")
	assert.Empty(t, missing.Path())
	assert.Nil(t, missing.With("k", "v"))
}
