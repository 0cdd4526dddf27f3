//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeywordFilter(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	entries := append(NumberedCatalog("Alpha", 3), NumberedCatalog("Beta", 3)...)
	catalogPath, err := tf.WriteCatalog("promos.toml", entries)
	require.NoError(t, err, "Failed to write catalog")

	err = tf.StartApp("--catalog", catalogPath)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Alpha 01"), "Alpha should be listed")
	require.True(t, tf.SeePlain("Beta 01"), "Beta should be listed")
	require.True(t, tf.SeePlain("showing 1-6 of 6"), "Should count every activity")

	// Typing applies the keyword after the debounce, without Enter
	require.NoError(t, tf.Search("beta"))
	require.NoError(t, tf.WaitForE(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), "?keyword=beta")
	}, 3*time.Second, "keyword should be applied while typing"))
	require.True(t, tf.SeePlain("showing 1-3 of 3"), "Only beta activities should remain")

	// Esc restores the keyword from before the prompt opened
	require.NoError(t, tf.SendKeys(KeyEsc))
	require.True(t, tf.OutputContainsPlain("showing 1-6 of 6", 3*time.Second), "Escape should restore the full list")
}

func TestStatusFilterAndReset(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	catalogPath, err := tf.WriteCatalog("promos.toml", NumberedCatalog("Promo", 9))
	require.NoError(t, err, "Failed to write catalog")

	err = tf.StartApp("--catalog", catalogPath)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("showing 1-9 of 9"), "Should list every activity")

	require.NoError(t, tf.SendKeys("4"))
	require.True(t, tf.SeePlain("?status=ended"), "Status key should update the query")
	require.True(t, tf.SeePlain("showing 1-3 of 3"), "Only ended activities should remain")

	require.NoError(t, tf.SendKeys("R"))
	require.True(t, tf.SeePlain("Filters reset"), "Reset should be confirmed")
	require.True(t, tf.SeePlain("(no filters)"), "Query should be empty after reset")
}

func TestInitialQueryFlag(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	catalogPath, err := tf.WriteCatalog("promos.toml", NumberedCatalog("Promo", 25))
	require.NoError(t, err, "Failed to write catalog")

	// Page 9 does not exist and is clamped to the last page
	err = tf.StartApp("--catalog", catalogPath, "--query", "page=9")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("page 3/3"), "Out of range page should be clamped")
	require.True(t, tf.SeePlain("showing 21-25 of 25"), "Last page should be shown")
}
