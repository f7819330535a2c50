package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}
	if !strings.Contains(configDir, "blctl") {
		t.Errorf("GetConfigDir() = %v, should contain 'blctl'", configDir)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}
	if reg.Devices == nil {
		t.Error("NewRegistry().Devices should not be nil")
	}
	if reg.Preferences == nil {
		t.Fatal("NewRegistry().Preferences should not be nil")
	}
	if !reg.Preferences.ConfirmFlash {
		t.Error("NewRegistry().Preferences.ConfirmFlash should be true by default")
	}
}

func TestRegistryEnsureDevice(t *testing.T) {
	reg := NewRegistry()

	dev := reg.EnsureDevice("/dev/ttyACM0")
	if dev == nil {
		t.Fatal("EnsureDevice() returned nil")
	}
	if again := reg.EnsureDevice("/dev/ttyACM0"); again != dev {
		t.Error("EnsureDevice() should return the same entry for the same port")
	}
	if len(reg.Devices) != 1 {
		t.Errorf("len(Devices) = %d, want 1", len(reg.Devices))
	}
}

func TestRegistryRecordFlash(t *testing.T) {
	reg := NewRegistry()

	reg.RecordFlash("/dev/ttyACM0", "modelm.txt", 2)

	dev := reg.Devices["/dev/ttyACM0"]
	if dev == nil {
		t.Fatal("RecordFlash() did not create the device entry")
	}
	if dev.LastLayout != "modelm.txt" {
		t.Errorf("LastLayout = %q, want modelm.txt", dev.LastLayout)
	}
	if dev.LastLayers != 2 {
		t.Errorf("LastLayers = %d, want 2", dev.LastLayers)
	}
	if dev.LastSeen.IsZero() {
		t.Error("LastSeen should be set")
	}
	if reg.Preferences.DefaultPort != "/dev/ttyACM0" {
		t.Errorf("DefaultPort = %q, want /dev/ttyACM0", reg.Preferences.DefaultPort)
	}
}

func TestRegistryYAMLRoundTrip(t *testing.T) {
	reg := NewRegistry()
	reg.Devices["/dev/ttyACM0"] = &Device{
		Nickname:   "Office Model M",
		LastSeen:   time.Now().Truncate(time.Second),
		LastLayout: "modelm.txt",
		LastLayers: 3,
	}
	reg.Preferences.DefaultPort = "/dev/ttyACM0"

	data, err := yaml.Marshal(reg)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}

	var loaded Registry
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}

	dev := loaded.Devices["/dev/ttyACM0"]
	if dev == nil {
		t.Fatal("round trip lost the device entry")
	}
	if dev.Nickname != "Office Model M" || dev.LastLayout != "modelm.txt" || dev.LastLayers != 3 {
		t.Errorf("round trip mangled device metadata: %+v", dev)
	}
	if loaded.Preferences.DefaultPort != "/dev/ttyACM0" {
		t.Errorf("DefaultPort = %q, want /dev/ttyACM0", loaded.Preferences.DefaultPort)
	}
}

func TestRegistrySave(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("save test relies on XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	reg := NewRegistry()
	reg.RecordFlash("/dev/ttyACM0", "modelm.txt", 1)
	if err := reg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "/dev/ttyACM0") {
		t.Error("saved config does not contain the recorded port")
	}
	if !strings.HasPrefix(string(data), "# blctl Configuration File") {
		t.Error("saved config is missing the header comment")
	}
}
