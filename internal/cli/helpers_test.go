package cli

import (
	"os"
	"path/filepath"
	"testing"
)

// writeStudyConfig writes a minimal config with an isolated state dir.
func writeStudyConfig(t *testing.T) string {
	t.Helper()
	return writeStudyConfigData(t, "version: 1\nstate_dir: \""+filepath.ToSlash(t.TempDir())+"\"\n")
}

func writeStudyConfigData(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
