package layout

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// The layout file format, one key code per matrix position:
//
//	LAYOUT = LAYERS
//	LAYERS = KEYS
//	       | KEYS '\n' LAYERS
//	KEYS   = KEY ','
//	       | KEY
//	KEY    = DIGIT+
//	DIGIT  = [0-9]
//
// Keys fill the matrix left-to-right, top-to-bottom. A line break must fall
// on a row boundary; a layer is complete once NumRows rows have been filled.
// Whitespace between keys is otherwise insignificant.

// maxKeyDigits bounds the digit accumulator. Any real key code fits in five
// digits, so running past this almost always means a missing comma.
const maxKeyDigits = 18

// parseState is the lexer state: skipping whitespace between keys, or
// accumulating the digits of a key
type parseState int

const (
	stateWhitespace parseState = iota
	stateDigitAccumulate
)

// parser holds all state for a single Parse call. Nothing is shared between
// invocations.
type parser struct {
	state  parseState
	buf    []byte // digit accumulator for the current key
	offset int64  // bytes consumed from the source

	layers []layerGrid
	cur    layerGrid
	layer  int // 0-based index of the layer being filled
	row    int // 0-based row of the next cell
	col    int // 0-based column of the next cell
}

// ParseFile opens and parses a layout file. The file handle is released on
// every exit path.
func ParseFile(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newSourceError(fmt.Sprintf("could not open layout file %s", path), err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a layout description from r and returns the validated Matrix.
// On failure it returns a *ParseError identifying the error kind and the
// offending location; no partial Matrix is ever returned.
func Parse(r io.Reader) (*Matrix, error) {
	p := &parser{buf: make([]byte, 0, maxKeyDigits)}
	br := bufio.NewReader(r)
	for {
		ch, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newSourceError("could not read layout source", err)
		}
		p.offset++
		if err := p.step(ch); err != nil {
			return nil, err
		}
	}
	return p.finish()
}

// step consumes a single character and advances the state machine
func (p *parser) step(ch byte) error {
	switch p.state {
	case stateWhitespace:
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			// ignore
		case isDigit(ch):
			p.state = stateDigitAccumulate
			p.buf = append(p.buf, ch)
		default:
			return newUnexpectedCharacter(ch, p.layer+1, p.keyIndex(), p.offset)
		}

	case stateDigitAccumulate:
		switch {
		case isDigit(ch):
			if len(p.buf) >= maxKeyDigits {
				return newBufferOverflow("key value has too many digits, comma missing?",
					p.layer+1, p.keyIndex(), p.offset)
			}
			p.buf = append(p.buf, ch)
		case ch == ',':
			if err := p.commitKey(); err != nil {
				return err
			}
			p.advance()
			p.state = stateWhitespace
		case ch == '\n' || ch == '\r':
			if err := p.commitKey(); err != nil {
				return err
			}
			if p.col != NumCols-1 {
				return newMalformedLayer(
					fmt.Sprintf("invalid number of keys in row, actually %d, expected %d", p.col+1, NumCols),
					p.layer+1, p.keyIndex(), p.offset)
			}
			p.advance()
			p.state = stateWhitespace
		default:
			return newUnexpectedCharacter(ch, p.layer+1, p.keyIndex(), p.offset)
		}
	}
	return nil
}

// finish handles end of source: a pending key without a trailing line break
// is committed, then the trailing position must fall exactly on a layer
// boundary.
func (p *parser) finish() (*Matrix, error) {
	if len(p.buf) > 0 {
		if err := p.commitKey(); err != nil {
			return nil, err
		}
		p.advance()
	}
	if p.row != 0 || p.col != 0 {
		filled := p.row*NumCols + p.col
		return nil, newIncompleteLayout(
			fmt.Sprintf("not enough key entries for layer, actually %d, expected %d", filled, KeysPerLayer),
			p.layer+1, p.keyIndex(), p.offset)
	}
	return &Matrix{layers: p.layers}, nil
}

// commitKey converts the accumulated digits into a key code and stores it at
// the current matrix position. The accumulator is cleared on success.
func (p *parser) commitKey() error {
	if p.layer >= MaxLayers {
		return newMalformedLayer(
			fmt.Sprintf("too many layers, device supports at most %d", MaxLayers),
			p.layer+1, p.keyIndex(), p.offset)
	}
	key, err := strconv.ParseUint(string(p.buf), 10, 16)
	if err != nil {
		return newBufferOverflow(
			fmt.Sprintf("key value %s does not fit in 16 bits", p.buf),
			p.layer+1, p.keyIndex(), p.offset)
	}
	p.cur[p.row][p.col] = uint16(key)
	p.buf = p.buf[:0]
	return nil
}

// advance moves to the next matrix position, wrapping columns into rows and
// closing out the layer once its last cell has been filled
func (p *parser) advance() {
	p.col++
	if p.col < NumCols {
		return
	}
	p.col = 0
	p.row++
	if p.row < NumRows {
		return
	}
	p.row = 0
	p.layers = append(p.layers, p.cur)
	p.cur = layerGrid{}
	p.layer++
}

// keyIndex returns the 1-based, row-major index of the current key within
// its layer
func (p *parser) keyIndex() int {
	return p.row*NumCols + p.col + 1
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
