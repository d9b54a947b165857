package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// chdirTemp runs the loader from an empty directory so no real config
// file leaks into the test.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_ENV", "test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.UploadMaxBytes != 50<<20 {
		t.Errorf("UploadMaxBytes = %d, want %d", cfg.UploadMaxBytes, 50<<20)
	}
	if cfg.Retention != 10*time.Minute {
		t.Errorf("Retention = %v, want 10m", cfg.Retention)
	}
	if cfg.StrictJoin {
		t.Error("StrictJoin defaults to true")
	}
}

func TestLoadFileOverrides(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("CONFIG_ENV", "test")

	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "port: 9000\nretention: 5m\nstrict_join: true\n"
	if err := os.WriteFile(filepath.Join(dir, "config", "config.test.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if cfg.Retention != 5*time.Minute {
		t.Errorf("Retention = %v, want 5m", cfg.Retention)
	}
	if !cfg.StrictJoin {
		t.Error("StrictJoin not overridden")
	}
}

// A config file that cannot unmarshal must surface an error; main
// refuses to start on it instead of running on a nil config.
func TestLoadUnmarshalError(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("CONFIG_ENV", "test")

	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "port: not-a-number\n"
	if err := os.WriteFile(filepath.Join(dir, "config", "config.test.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load() returned nil error for an unparsable config")
	}
}
