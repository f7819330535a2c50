package layout

import (
	"fmt"
	"strings"
)

// Summary returns a one-line summary of the layout
func (m *Matrix) Summary() string {
	return fmt.Sprintf("%d layer(s), %dx%d matrix, %d key codes",
		m.LayerCount(), NumRows, NumCols, m.LayerCount()*KeysPerLayer)
}

// FormatGrid returns every layer rendered as a numeric grid with 1-based
// row and column headers
func (m *Matrix) FormatGrid() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Number of layers: %d\n\n", m.LayerCount()))
	for layer := range m.layers {
		b.WriteString(m.FormatLayer(layer))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatGridNamed renders every layer using name to label each key code
func (m *Matrix) FormatGridNamed(name func(uint16) string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Number of layers: %d\n\n", m.LayerCount()))
	for layer := range m.layers {
		b.WriteString(m.FormatLayerNamed(layer, name))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatLayer returns a single layer rendered as a numeric grid
func (m *Matrix) FormatLayer(layer int) string {
	return m.formatLayer(layer, nil)
}

// FormatLayerNamed renders a layer using name to label each key code.
// Codes for which name returns an empty string are rendered numerically.
func (m *Matrix) FormatLayerNamed(layer int, name func(uint16) string) string {
	return m.formatLayer(layer, name)
}

func (m *Matrix) formatLayer(layer int, name func(uint16) string) string {
	cell := func(code uint16) string {
		if name != nil {
			if n := name(code); n != "" {
				return n
			}
		}
		return fmt.Sprintf("%d", code)
	}

	// Column width follows the widest cell, with the same minimum the
	// original tool used for all-numeric output.
	width := 6
	for row := 0; row < NumRows; row++ {
		for col := 0; col < NumCols; col++ {
			if w := len(cell(m.layers[layer][row][col])) + 1; w > width {
				width = w
			}
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Layer %d\n\n", layer+1))
	b.WriteString("    ")
	for col := 0; col < NumCols; col++ {
		b.WriteString(fmt.Sprintf("%-*s", width, fmt.Sprintf("C%d", col+1)))
	}
	b.WriteString("\n")
	for row := 0; row < NumRows; row++ {
		b.WriteString(fmt.Sprintf("R%-3d", row+1))
		for col := 0; col < NumCols; col++ {
			b.WriteString(fmt.Sprintf("%-*s", width, cell(m.layers[layer][row][col])))
		}
		b.WriteString("\n")
	}

	return b.String()
}
