//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeyboardNavigation(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	catalogPath, err := tf.WriteCatalog("promos.toml", NumberedCatalog("Promo", 10))
	require.NoError(t, err, "Failed to write catalog")

	err = tf.StartApp("--catalog", catalogPath)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("promodeck"), "Should show promodeck title")

	// Get initial state
	initialOutput := tf.Snapshot()

	// Send navigation commands
	tf.Down()

	// Wait for navigation to take effect (output should change)
	require.True(t, tf.WaitFor(func(s string) bool {
		return s != initialOutput
	}, time.Second), "Navigation should change output")

	// Going to the bottom scrolls the last card into view
	require.NoError(t, tf.SendKeys("G"))
	require.True(t, tf.SeePlain("Promo 10"), "Last activity should be visible")
	require.True(t, tf.SeePlain("more above"), "Scroll indicator should show hidden cards")
}

func TestPaging(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	catalogPath, err := tf.WriteCatalog("promos.toml", NumberedCatalog("Promo", 25))
	require.NoError(t, err, "Failed to write catalog")

	err = tf.StartApp("--catalog", catalogPath, "--layout", "compact")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("page 1/3"), "Should start on the first page")

	require.NoError(t, tf.SendKeys("]"))
	require.True(t, tf.SeePlain("?page=2"), "Next page should update the query")
	require.True(t, tf.SeePlain("showing 11-20 of 25"), "Second page should be shown")

	require.NoError(t, tf.SendKeys("z"))
	require.True(t, tf.SeePlain("?pageSize=20"), "Page size change should reset the page")
	require.True(t, tf.SeePlain("showing 1-20 of 25"), "Larger page should be shown")
}
