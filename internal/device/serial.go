package device

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
	"go.uber.org/zap"
)

// Transport delivers encoded layout blobs to a controller and reads the
// currently flashed layout back
type Transport interface {
	// WriteLayout sends an encoded layout blob to the device. layerCount
	// must match the blob's layer count header.
	WriteLayout(data []byte, layerCount int) error
	// ReadLayout reads the currently flashed layout blob from the device
	ReadLayout() ([]byte, error)
	// Close releases the underlying connection
	Close() error
}

// readTimeout bounds every response read. Layout transfers are a few
// kilobytes at most, so a slow reply means the device is gone.
const readTimeout = 5 * time.Second

// SerialTransport talks to the controller over its serial configuration
// channel
type SerialTransport struct {
	rw     io.ReadWriteCloser
	logger *zap.Logger
}

// OpenSerial opens the named serial port at the controller's fixed settings
// (115200 8N1) and returns a transport bound to it
func OpenSerial(portName string, logger *zap.Logger) (*SerialTransport, error) {
	mode := &serial.Mode{
		BaudRate: 115200,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("could not open serial port %s: %w", portName, err)
	}
	if err := port.SetReadTimeout(readTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("could not set read timeout on %s: %w", portName, err)
	}

	logger.Debug("Serial port opened",
		zap.String("port", portName),
		zap.Int("baud_rate", mode.BaudRate),
	)
	return newTransport(port, logger), nil
}

// newTransport wraps an already-open connection. Split out so the exchange
// logic is testable without hardware.
func newTransport(rw io.ReadWriteCloser, logger *zap.Logger) *SerialTransport {
	return &SerialTransport{rw: rw, logger: logger}
}

// readFull reads exactly len(buf) bytes from the port. The serial library
// reports an expired read timeout as (0, nil), which io.ReadFull would spin
// on forever, so a zero-byte read is treated as the device not answering.
func (t *SerialTransport) readFull(buf []byte) error {
	total := 0
	for total < len(buf) {
		n, err := t.rw.Read(buf[total:])
		total += n
		if total == len(buf) {
			return nil
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("no reply from device within %s", readTimeout)
		}
	}
	return nil
}

// WriteLayout implements Transport
func (t *SerialTransport) WriteLayout(data []byte, layerCount int) error {
	if len(data) < 2 {
		return fmt.Errorf("layout blob too short: %d bytes", len(data))
	}
	if header := int(binary.LittleEndian.Uint16(data[0:2])); header != layerCount {
		return fmt.Errorf("layer count mismatch: blob header says %d, caller says %d", header, layerCount)
	}

	frame, err := BuildFrame(CmdWriteLayout, data)
	if err != nil {
		return err
	}

	t.logger.Debug("Writing layout",
		zap.Int("layer_count", layerCount),
		zap.Int("blob_bytes", len(data)),
	)
	if _, err := t.rw.Write(frame); err != nil {
		return fmt.Errorf("failed to send layout: %w", err)
	}

	var status [1]byte
	if err := t.readFull(status[:]); err != nil {
		return fmt.Errorf("no status reply from device: %w", err)
	}
	if err := StatusError(status[0]); err != nil {
		return err
	}

	t.logger.Info("Layout written",
		zap.Int("layer_count", layerCount),
		zap.Int("blob_bytes", len(data)),
	)
	return nil
}

// ReadLayout implements Transport
func (t *SerialTransport) ReadLayout() ([]byte, error) {
	frame, err := BuildFrame(CmdReadLayout, nil)
	if err != nil {
		return nil, err
	}
	if _, err := t.rw.Write(frame); err != nil {
		return nil, fmt.Errorf("failed to send read command: %w", err)
	}

	raw := make([]byte, HeaderSize)
	if err := t.readFull(raw); err != nil {
		return nil, fmt.Errorf("no reply header from device: %w", err)
	}
	_, length, err := ParseHeader(raw)
	if err != nil {
		return nil, err
	}

	raw = append(raw, make([]byte, length)...)
	if err := t.readFull(raw[HeaderSize:]); err != nil {
		return nil, fmt.Errorf("short layout reply from device: %w", err)
	}

	reply, err := ParseFrame(raw)
	if err != nil {
		return nil, err
	}
	if reply.Cmd != CmdReadLayout {
		return nil, fmt.Errorf("unexpected reply command 0x%02x (expected 0x%02x)", reply.Cmd, CmdReadLayout)
	}

	t.logger.Debug("Layout read", zap.Int("blob_bytes", len(reply.Payload)))
	return reply.Payload, nil
}

// Close implements Transport
func (t *SerialTransport) Close() error {
	return t.rw.Close()
}
