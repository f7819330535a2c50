// Package layout parses BlUSB keyboard layout files and serializes them to
// the binary blob the controller firmware consumes.
//
// A layout file is a plain-text description of the key matrix: decimal key
// codes separated by commas, one matrix position per value, filling each
// layer left-to-right, top-to-bottom. Line breaks must fall on row
// boundaries. The controller matrix is fixed at 8 rows by 20 columns with up
// to 6 layers.
//
// # Parsing
//
// Parsing is a pure function from a character stream to a Matrix:
//
//	matrix, err := layout.ParseFile("layout.txt")
//	if err != nil {
//	    var pe *layout.ParseError
//	    if errors.As(err, &pe) {
//	        // pe.Kind, pe.Layer, pe.Key, pe.Offset locate the problem
//	    }
//	    return err
//	}
//
// All parse failures are fatal: a failed parse never yields a partial
// Matrix. Every ParseError carries the error kind, the 1-based layer and key
// index, and the byte offset of the offending character.
//
// # Encoding
//
// A Matrix encodes to a flat little-endian byte sequence: a 16-bit layer
// count followed by every cell as a 16-bit value in layer, row, column
// order. Decode is the strict inverse and is used to verify layouts read
// back from the device:
//
//	data := matrix.Encode()
//	again, err := layout.Decode(data)
package layout
