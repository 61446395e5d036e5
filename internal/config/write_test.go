package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteConfig(t *testing.T) {
	cfg := DefaultConfig()
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")
	if err := Write(path, cfg); err != nil {
		t.Fatalf("write config: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v", info.Mode().Perm())
	}
}

func TestWriteRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Redaction.Detectors.Addresses = true
	cfg.Redaction.RedactionChar = "▓"
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Write(path, cfg); err != nil {
		t.Fatalf("write config: %v", err)
	}
	loaded, found, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found {
		t.Fatalf("expected found = true")
	}
	if !loaded.Redaction.Detectors.Addresses || loaded.Redaction.RedactionChar != "▓" {
		t.Fatalf("redaction = %+v", loaded.Redaction)
	}
}

func TestWriteRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Version = 0
	if err := Write(filepath.Join(t.TempDir(), "config.yaml"), cfg); err == nil {
		t.Fatalf("expected validation error")
	}
	if err := Write("", DefaultConfig()); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
