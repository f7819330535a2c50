package layout

// Matrix dimensions of the BlUSB controller. The firmware scans a fixed
// 8-row by 20-column key matrix and supports up to 6 layers.
const (
	NumRows   = 8
	NumCols   = 20
	MaxLayers = 6
)

// KeysPerLayer is the number of key positions in one complete layer
const KeysPerLayer = NumRows * NumCols

// layerGrid holds the key codes for a single layer in row-major order
type layerGrid [NumRows][NumCols]uint16

// Matrix is the in-memory representation of a keyboard layout: one or more
// layers of 16-bit key codes. A Matrix is only ever produced by a successful
// Parse or Decode, so its shape is always valid and it is read-only for
// callers.
type Matrix struct {
	layers []layerGrid
}

// LayerCount returns the number of complete layers in the layout
func (m *Matrix) LayerCount() int {
	return len(m.layers)
}

// At returns the key code at the given layer, row, and column (all 0-based).
// Panics if any index is out of bounds, matching slice semantics.
func (m *Matrix) At(layer, row, col int) uint16 {
	return m.layers[layer][row][col]
}
