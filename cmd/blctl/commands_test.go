package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/openblusb/blctl/internal/config"
)

// writeTestConfig points the registry at a temporary config file and reloads
// it, so preference-driven behavior can be exercised without touching the
// user's real configuration
func writeTestConfig(t *testing.T, body string) {
	t.Helper()
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("config dir is not driven by XDG_CONFIG_HOME on this platform")
	}

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfgDir := filepath.Join(dir, "blctl")
	if err := os.MkdirAll(cfgDir, 0700); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(body), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := config.ReloadRegistry(); err != nil {
		t.Fatalf("ReloadRegistry() error = %v", err)
	}
}

func TestNameLookupFlag(t *testing.T) {
	writeTestConfig(t, "version: 1\n")
	useNames = true
	defer func() { useNames = false }()

	if nameLookup() == nil {
		t.Fatal("nameLookup() = nil with --names set")
	}
}

func TestNameLookupRegistryDefault(t *testing.T) {
	writeTestConfig(t, "version: 1\npreferences:\n  confirm_flash: true\n  named_output: true\n")
	useNames = false

	if nameLookup() == nil {
		t.Fatal("nameLookup() = nil with named_output enabled in the registry")
	}
}

func TestNameLookupDisabled(t *testing.T) {
	writeTestConfig(t, "version: 1\npreferences:\n  confirm_flash: true\n")
	useNames = false

	if nameLookup() != nil {
		t.Fatal("nameLookup() returned a naming function with names disabled everywhere")
	}
}
