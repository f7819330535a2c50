package device

import (
	"encoding/binary"
	"fmt"
)

// Wire framing for the controller's serial configuration channel
const (
	FrameSync  = 0xB5 // Start-of-frame marker
	HeaderSize = 4    // Sync + command + 2-byte length
	MaxPayload = 65535
)

// Command bytes understood by the controller
const (
	CmdWriteLayout = 0x01 // Host -> device: payload is the encoded layout blob
	CmdReadLayout  = 0x02 // Host -> device: empty payload, device replies with a layout frame
)

// Status bytes the controller returns after a write command
const (
	StatusOK        = 0x00
	StatusBadLength = 0x01 // Payload length disagreed with its layer count
	StatusFlashFail = 0x02 // Controller could not commit the layout to flash
)

// Frame is a single message on the configuration channel
type Frame struct {
	Cmd     byte   // Command byte
	Payload []byte // Command payload (may be empty)
}

// BuildFrame assembles the wire representation of a frame: sync byte,
// command byte, 2-byte little-endian payload length, payload.
func BuildFrame(cmd byte, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayload {
		return nil, fmt.Errorf("frame payload too large: %d bytes (maximum %d)", len(payload), MaxPayload)
	}

	data := make([]byte, HeaderSize+len(payload))
	data[0] = FrameSync
	data[1] = cmd
	binary.LittleEndian.PutUint16(data[2:4], uint16(len(payload)))
	copy(data[HeaderSize:], payload)
	return data, nil
}

// ParseHeader validates a frame header and returns the command byte and
// payload length
func ParseHeader(hdr []byte) (cmd byte, length int, err error) {
	if len(hdr) < HeaderSize {
		return 0, 0, fmt.Errorf("frame header too short: %d bytes (minimum %d)", len(hdr), HeaderSize)
	}
	if hdr[0] != FrameSync {
		return 0, 0, fmt.Errorf("invalid sync byte: 0x%02x (expected 0x%02x)", hdr[0], FrameSync)
	}
	return hdr[1], int(binary.LittleEndian.Uint16(hdr[2:4])), nil
}

// ParseFrame parses a complete frame from raw bytes
func ParseFrame(data []byte) (*Frame, error) {
	cmd, length, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if len(data) != HeaderSize+length {
		return nil, fmt.Errorf("frame length mismatch: %d payload bytes present, header declares %d",
			len(data)-HeaderSize, length)
	}
	return &Frame{Cmd: cmd, Payload: data[HeaderSize:]}, nil
}

// StatusError converts a controller status byte into an error, nil for StatusOK
func StatusError(status byte) error {
	switch status {
	case StatusOK:
		return nil
	case StatusBadLength:
		return fmt.Errorf("device rejected layout: payload length mismatch (status 0x%02x)", status)
	case StatusFlashFail:
		return fmt.Errorf("device failed to write layout to flash (status 0x%02x)", status)
	default:
		return fmt.Errorf("device returned unknown status 0x%02x", status)
	}
}
