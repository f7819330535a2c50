package config

import "time"

// Registry represents the entire user configuration file.
// It stores user-defined metadata for keyboards and application preferences.
type Registry struct {
	Version     int                `yaml:"version"`
	Devices     map[string]*Device `yaml:"devices,omitempty"` // Keyed by serial port path
	Preferences *Preferences       `yaml:"preferences,omitempty"`
}

// Device represents user-defined metadata for a single keyboard controller.
// It is keyed by the controller's serial port path in the Registry.
type Device struct {
	Nickname   string    `yaml:"nickname,omitempty"`    // User-friendly name (e.g., "Office Model M")
	LastSeen   time.Time `yaml:"last_seen,omitempty"`   // Last successful transport operation
	LastLayout string    `yaml:"last_layout,omitempty"` // Path of the last layout file flashed
	LastLayers int       `yaml:"last_layers,omitempty"` // Layer count of the last flashed layout
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	DefaultPort  string `yaml:"default_port,omitempty"` // Serial port used when --port is omitted
	ConfirmFlash bool   `yaml:"confirm_flash"`          // Prompt before writing to the controller
	NamedOutput  bool   `yaml:"named_output"`           // Render key names instead of raw codes by default
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Devices: make(map[string]*Device),
		Preferences: &Preferences{
			ConfirmFlash: true,
		},
	}
}

// EnsureDevice returns the metadata entry for a serial port, creating it if
// this is the first time the port has been used.
func (r *Registry) EnsureDevice(port string) *Device {
	if r.Devices == nil {
		r.Devices = make(map[string]*Device)
	}
	dev, ok := r.Devices[port]
	if !ok {
		dev = &Device{}
		r.Devices[port] = dev
	}
	return dev
}

// RecordFlash updates a device entry after a successful layout write.
func (r *Registry) RecordFlash(port, layoutPath string, layers int) {
	dev := r.EnsureDevice(port)
	dev.LastSeen = time.Now()
	dev.LastLayout = layoutPath
	dev.LastLayers = layers
	if r.Preferences == nil {
		r.Preferences = &Preferences{ConfirmFlash: true}
	}
	r.Preferences.DefaultPort = port
}
