//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CatalogEntry is one activity written by WriteCatalog
type CatalogEntry struct {
	ID     string
	Title  string
	Status string
	Start  string // YYYY-MM-DD
	End    string // YYYY-MM-DD
}

// CreateTestWorkspace creates a temporary directory that also serves as $HOME
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	workspace, err := os.MkdirTemp("", "promodeck-e2e-*")
	if err != nil {
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}
	tf.workspace = workspace
	return workspace, nil
}

// WriteCatalog writes a TOML catalog into the workspace and returns its path
func (tf *TUITestFramework) WriteCatalog(name string, entries []CatalogEntry) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "[[activities]]\nid = %q\ntitle = %q\nstatus = %q\ntype = \"discount\"\ncategory = \"Retail\"\nstart_time = %q\nend_time = %q\n\n",
			e.ID, e.Title, e.Status, e.Start, e.End)
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write catalog: %w", err)
	}
	return path, nil
}

// NumberedCatalog returns n activities titled "<prefix> NN" with statuses cycling active, upcoming, ended
func NumberedCatalog(prefix string, n int) []CatalogEntry {
	statuses := []string{"active", "upcoming", "ended"}
	out := make([]CatalogEntry, n)
	for i := range out {
		day := i%28 + 1
		out[i] = CatalogEntry{
			ID:     fmt.Sprintf("%s-%02d", strings.ToLower(prefix), i+1),
			Title:  fmt.Sprintf("%s %02d", prefix, i+1),
			Status: statuses[i%3],
			Start:  fmt.Sprintf("2025-03-%02d", day),
			End:    fmt.Sprintf("2025-04-%02d", day),
		}
	}
	return out
}

// ConfigPath returns where the app stores its config under the isolated workspace
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, ".config", "promodeck", "config.toml")
}
