// Package config manages the blctl user configuration file.
//
// The registry is a YAML file at the platform configuration directory
// (~/.config/blctl/config.yaml on Linux) holding client-side metadata the
// keyboard itself does not store: the default serial port, per-keyboard
// nicknames, and what was last flashed where. Saves are atomic (write to a
// temporary file, then rename) so a crash never corrupts the registry.
//
// Loading is lazy and cached; Save persists the in-memory state back to
// disk:
//
//	reg, err := config.LoadRegistry()
//	if err != nil {
//	    return err
//	}
//	reg.RecordFlash("/dev/ttyACM0", "layout.txt", 2)
//	if err := reg.Save(); err != nil {
//	    return err
//	}
package config
