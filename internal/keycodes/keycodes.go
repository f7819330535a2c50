// Package keycodes maps BlUSB key code values to human-readable names.
//
// The firmware binds USB HID keyboard usage IDs to matrix positions, so the
// names here follow the HID usage table for the keyboard/keypad page. The
// mapping is a display convenience only; unknown codes simply render
// numerically.
package keycodes

import "strconv"

// names covers the usage IDs a Model M layout can realistically bind.
var names = map[uint16]string{
	0: "NONE",

	4: "A", 5: "B", 6: "C", 7: "D", 8: "E", 9: "F", 10: "G",
	11: "H", 12: "I", 13: "J", 14: "K", 15: "L", 16: "M", 17: "N",
	18: "O", 19: "P", 20: "Q", 21: "R", 22: "S", 23: "T", 24: "U",
	25: "V", 26: "W", 27: "X", 28: "Y", 29: "Z",

	30: "1", 31: "2", 32: "3", 33: "4", 34: "5",
	35: "6", 36: "7", 37: "8", 38: "9", 39: "0",

	40: "ENTER", 41: "ESC", 42: "BKSP", 43: "TAB", 44: "SPACE",
	45: "MINUS", 46: "EQUAL", 47: "LBRKT", 48: "RBRKT", 49: "BSLASH",
	50: "HASH", 51: "SEMI", 52: "QUOTE", 53: "GRAVE", 54: "COMMA",
	55: "DOT", 56: "SLASH", 57: "CAPS",

	58: "F1", 59: "F2", 60: "F3", 61: "F4", 62: "F5", 63: "F6",
	64: "F7", 65: "F8", 66: "F9", 67: "F10", 68: "F11", 69: "F12",

	70: "PRTSC", 71: "SCRLK", 72: "PAUSE",
	73: "INS", 74: "HOME", 75: "PGUP",
	76: "DEL", 77: "END", 78: "PGDN",
	79: "RIGHT", 80: "LEFT", 81: "DOWN", 82: "UP",

	83: "NUMLK", 84: "KPDIV", 85: "KPMUL", 86: "KPSUB", 87: "KPADD",
	88: "KPENT", 89: "KP1", 90: "KP2", 91: "KP3", 92: "KP4", 93: "KP5",
	94: "KP6", 95: "KP7", 96: "KP8", 97: "KP9", 98: "KP0", 99: "KPDOT",

	100: "INTL-BSLASH", 101: "APP",

	224: "LCTRL", 225: "LSHIFT", 226: "LALT", 227: "LGUI",
	228: "RCTRL", 229: "RSHIFT", 230: "RALT", 231: "RGUI",
}

// Name returns the HID usage name for a key code, or its decimal
// representation when the code has no name
func Name(code uint16) string {
	if name, ok := Lookup(code); ok {
		return name
	}
	return strconv.Itoa(int(code))
}

// Lookup returns the name for a key code and whether one is defined
func Lookup(code uint16) (string, bool) {
	name, ok := names[code]
	return name, ok
}
