package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetBeforeInitializeIsNoop(t *testing.T) {
	// Must not panic or create files.
	Get(CategoryUI).Info("dropped on the floor")
	Sync()
}

func TestInitializeCreatesLogFile(t *testing.T) {
	dir := t.TempDir()
	if err := Initialize(dir, true); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	defer Sync()

	Get(CategoryBoot).Infof("booted in %s", dir)
	Get(CategoryPage).Debug("carousel armed")
	Sync()

	path := filepath.Join(dir, ".vitrine", "logs", "vitrine.log")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Errorf("log file empty after Sync")
	}
}

func TestInitializeRequiresWorkspace(t *testing.T) {
	if err := Initialize("", false); err == nil {
		t.Errorf("expected error for empty workspace path")
	}
}
