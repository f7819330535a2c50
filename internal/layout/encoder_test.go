package layout

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
)

func mustParse(t *testing.T, input string) *Matrix {
	t.Helper()
	m, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return m
}

func TestEncodeEmptyMatrix(t *testing.T) {
	m := mustParse(t, "")

	data := m.Encode()
	if !bytes.Equal(data, []byte{0x00, 0x00}) {
		t.Errorf("Encode() = % x, want 00 00", data)
	}
}

func TestEncodeSingleLayer(t *testing.T) {
	m := mustParse(t, testLayer(100))

	data := m.Encode()
	if len(data) != EncodedSize(1) {
		t.Fatalf("len(Encode()) = %d, want %d", len(data), EncodedSize(1))
	}

	// Layer count header, little-endian
	if got := binary.LittleEndian.Uint16(data[0:2]); got != 1 {
		t.Errorf("layer count header = %d, want 1", got)
	}

	// Cells follow in layer, row, col order
	for row := 0; row < NumRows; row++ {
		for col := 0; col < NumCols; col++ {
			n := 2 + 2*(row*NumCols+col)
			want := uint16(100 + row*NumCols + col)
			if got := binary.LittleEndian.Uint16(data[n : n+2]); got != want {
				t.Errorf("cell (%d, %d) = %d, want %d", row, col, got, want)
			}
		}
	}
}

func TestEncodeLittleEndianByteOrder(t *testing.T) {
	// 0x1234 = 4660 must serialize low byte first regardless of host order
	m := mustParse(t, strings.Replace(testLayer(0), "0,", "4660,", 1))

	data := m.Encode()
	if data[2] != 0x34 || data[3] != 0x12 {
		t.Errorf("first cell bytes = %02x %02x, want 34 12", data[2], data[3])
	}
}

func TestEncodeDeterministic(t *testing.T) {
	input := testLayer(100) + testLayer(1000)

	a := mustParse(t, input).Encode()
	b := mustParse(t, input).Encode()
	if !bytes.Equal(a, b) {
		t.Error("Encode() is not deterministic for identical input")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"one layer", testLayer(100)},
		{"three layers", testLayer(100) + testLayer(1000) + testLayer(30000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := mustParse(t, tt.input)

			decoded, err := Decode(orig.Encode())
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if decoded.LayerCount() != orig.LayerCount() {
				t.Fatalf("LayerCount() = %d, want %d", decoded.LayerCount(), orig.LayerCount())
			}
			for layer := 0; layer < orig.LayerCount(); layer++ {
				for row := 0; row < NumRows; row++ {
					for col := 0; col < NumCols; col++ {
						if decoded.At(layer, row, col) != orig.At(layer, row, col) {
							t.Errorf("cell (%d, %d, %d) = %d, want %d", layer, row, col,
								decoded.At(layer, row, col), orig.At(layer, row, col))
						}
					}
				}
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty buffer", nil},
		{"one byte", []byte{0x01}},
		{"truncated payload", append([]byte{0x01, 0x00}, make([]byte, 10)...)},
		{"oversized payload", append([]byte{0x00, 0x00}, 0xff)},
		{
			"layer count beyond device maximum",
			func() []byte {
				data := make([]byte, EncodedSize(MaxLayers+1))
				binary.LittleEndian.PutUint16(data[0:2], MaxLayers+1)
				return data
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data); err == nil {
				t.Error("Decode() succeeded, want error")
			}
		})
	}
}
