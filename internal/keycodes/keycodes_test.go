package keycodes

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		code uint16
		want string
	}{
		{0, "NONE"},
		{4, "A"},
		{29, "Z"},
		{40, "ENTER"},
		{41, "ESC"},
		{44, "SPACE"},
		{58, "F1"},
		{69, "F12"},
		{224, "LCTRL"},
		{231, "RGUI"},
		{500, "500"},   // unnamed: decimal fallback
		{65535, "65535"},
	}

	for _, tt := range tests {
		if got := Name(tt.code); got != tt.want {
			t.Errorf("Name(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	if name, ok := Lookup(41); !ok || name != "ESC" {
		t.Errorf("Lookup(41) = %q, %v, want ESC, true", name, ok)
	}
	if _, ok := Lookup(500); ok {
		t.Error("Lookup(500) should report no name")
	}
}
