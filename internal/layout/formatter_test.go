package layout

import (
	"strings"
	"testing"
)

func TestSummary(t *testing.T) {
	m := mustParse(t, testLayer(100)+testLayer(1000))

	s := m.Summary()
	if !strings.Contains(s, "2 layer(s)") {
		t.Errorf("Summary() = %q, want layer count", s)
	}
	if !strings.Contains(s, "8x20") {
		t.Errorf("Summary() = %q, want matrix dimensions", s)
	}
}

func TestFormatGrid(t *testing.T) {
	m := mustParse(t, testLayer(100))

	out := m.FormatGrid()
	for _, want := range []string{
		"Number of layers: 1",
		"Layer 1",
		"C1", "C20",
		"R1", "R8",
		"100", // first cell
		"259", // last cell
	} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatGrid() missing %q", want)
		}
	}
	if strings.Contains(out, "C21") {
		t.Error("FormatGrid() rendered a column beyond the matrix width")
	}
}

func TestFormatLayerNamed(t *testing.T) {
	m := mustParse(t, testLayer(100))

	names := func(code uint16) string {
		if code == 100 {
			return "ESC"
		}
		return ""
	}

	out := m.FormatLayerNamed(0, names)
	if !strings.Contains(out, "ESC") {
		t.Error("FormatLayerNamed() did not use the name lookup")
	}
	if !strings.Contains(out, "101") {
		t.Error("FormatLayerNamed() should fall back to numeric for unnamed codes")
	}
}

func TestFormatGridMultipleLayers(t *testing.T) {
	m := mustParse(t, testLayer(100)+testLayer(1000))

	out := m.FormatGrid()
	if !strings.Contains(out, "Layer 1") || !strings.Contains(out, "Layer 2") {
		t.Error("FormatGrid() should render every layer")
	}
}
