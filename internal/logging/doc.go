// Package logging provides structured logging for blctl.
//
// This package wraps zap with convenience functions for the logging patterns
// used throughout the tool. CLI commands are silent by default; set
// BLCTL_LOG_LEVEL to "debug", "info", "warn", or "error" to see output:
//
//	BLCTL_LOG_LEVEL=debug blctl write layout.txt --port /dev/ttyACM0
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Layout written",
//	    zap.String("port", "/dev/ttyACM0"),
//	    zap.Int("layer_count", 2),
//	)
//
// LogRawBytes adds hex and ASCII dumps of a byte buffer at debug level,
// which is the quickest way to inspect an encoded layout blob or a serial
// frame on the wire.
//
// All logging functions are safe for concurrent use.
package logging
