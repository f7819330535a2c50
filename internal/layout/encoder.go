package layout

import (
	"encoding/binary"
	"fmt"
)

// Wire format: a sequence of 16-bit little-endian values regardless of host
// byte order. The first value is the layer count, followed by every cell of
// every layer in layer, row, column order. This is the blob the firmware's
// layout write command consumes.

// EncodedSize returns the number of bytes Encode produces for the given
// layer count
func EncodedSize(layerCount int) int {
	return 2 + 2*layerCount*KeysPerLayer
}

// Encode serializes the matrix to its wire representation. Encoding cannot
// fail: a Matrix only exists after a successful parse or decode.
func (m *Matrix) Encode() []byte {
	data := make([]byte, EncodedSize(m.LayerCount()))
	binary.LittleEndian.PutUint16(data[0:2], uint16(m.LayerCount()))
	n := 2
	for layer := range m.layers {
		for row := 0; row < NumRows; row++ {
			for col := 0; col < NumCols; col++ {
				binary.LittleEndian.PutUint16(data[n:n+2], m.layers[layer][row][col])
				n += 2
			}
		}
	}
	return data
}

// Decode reconstructs a Matrix from its wire representation, as read back
// from the controller. The buffer length must match the layer count header
// exactly.
func Decode(data []byte) (*Matrix, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("layout blob too short: %d bytes (minimum 2)", len(data))
	}
	layerCount := int(binary.LittleEndian.Uint16(data[0:2]))
	if layerCount > MaxLayers {
		return nil, fmt.Errorf("layout blob claims %d layers, device supports at most %d", layerCount, MaxLayers)
	}
	if want := EncodedSize(layerCount); len(data) != want {
		return nil, fmt.Errorf("layout blob length mismatch: %d bytes for %d layers (expected %d)",
			len(data), layerCount, want)
	}

	m := &Matrix{layers: make([]layerGrid, layerCount)}
	n := 2
	for layer := 0; layer < layerCount; layer++ {
		for row := 0; row < NumRows; row++ {
			for col := 0; col < NumCols; col++ {
				m.layers[layer][row][col] = binary.LittleEndian.Uint16(data[n : n+2])
				n += 2
			}
		}
	}
	return m, nil
}
