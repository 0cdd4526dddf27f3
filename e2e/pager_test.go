//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDetailPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	catalogPath, err := tf.WriteCatalog("promos.toml", NumberedCatalog("Promo", 2))
	require.NoError(t, err, "Failed to write catalog")

	err = tf.StartApp("--catalog", catalogPath)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Promo 01"), "Should list activities")

	// Open the detail pager for the first activity
	tf.Enter()
	require.True(t, tf.OutputContainsPlain("promo-01", 3*time.Second), "Pager should show the activity ID")

	// Quit pager and ensure TUI again
	tf.Quit()
	require.True(t, tf.SeePlain("promodeck"), "Should return to main TUI after closing pager")
}

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp()
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.Help()
	require.True(t, tf.OutputContainsPlain("Cycle page size", 3*time.Second), "Help pager should list the keys")

	tf.Quit()
	require.True(t, tf.SeePlain("promodeck"), "Should return to main TUI after closing help")
}
