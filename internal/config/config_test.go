package config

import (
	"path/filepath"
	"testing"
)

func TestLoadHonorsEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NYXSHELL_DATA_DIR", dir)

	cfg := Load()
	if cfg.DataDir != dir {
		t.Fatalf("expected data dir %q, got %q", dir, cfg.DataDir)
	}
	if cfg.DBPath() != filepath.Join(dir, "shell.db") {
		t.Fatalf("unexpected db path: %s", cfg.DBPath())
	}
}

func TestDefaultDataDirNotEmpty(t *testing.T) {
	if DefaultDataDir() == "" {
		t.Fatal("default data dir should never be empty")
	}
}

func TestPersistDataDirRejectsEmpty(t *testing.T) {
	if err := PersistDataDir("   "); err == nil {
		t.Fatal("expected error for blank data dir")
	}
}
