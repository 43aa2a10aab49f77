package lzw

import (
	"io"

	"github.com/mechiko/lzw/internal/log"
)

// bumpThreshold returns the dictionary size at which width should grow
// from width to width+1. GIF grows the instant the dictionary reaches
// 1<<width; TIFF grows one code earlier, per the TIFF early-change
// convention.
func bumpThreshold(width uint, increment int) uint16 {
	return uint16(1<<width - increment)
}

// countingWriter tallies bytes actually written to the sink, for the
// Stats summary log emitted at Close.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// variableEncoder is the shared GIF/TIFF encoder core: a greedy LZW match
// loop over an EncoderTrie, writing through a BitWriter whose code width
// grows as the dictionary fills, with CLEAR emitted whenever the
// dictionary saturates at width 12.
type variableEncoder struct {
	bw        *BitWriter
	sink      *countingWriter
	trie      *EncoderTrie
	codeWidth int
	increment int
	clearCode uint16
	eofCode   uint16
	width     uint
	current   int
	inBytes   int64
	clears    int
	closed    bool
}

func newVariableEncoder(w io.Writer, codeWidth int, order Order, increment int) (*variableEncoder, error) {
	sink := &countingWriter{w: w}
	e := &variableEncoder{
		bw:        NewBitWriter(sink, order),
		sink:      sink,
		trie:      &EncoderTrie{},
		codeWidth: codeWidth,
		increment: increment,
		clearCode: uint16(1 << uint(codeWidth)),
		current:   -1,
	}
	e.eofCode = e.clearCode + 1
	e.resetDict()
	if err := e.writeClear(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *variableEncoder) resetDict() {
	e.trie.Reset(e.codeWidth, true)
	e.width = uint(e.codeWidth) + 1
}

// writeClear writes the opening CLEAR code. Called once, eagerly, from
// the constructor, which is why newVariableEncoder itself returns an
// error.
func (e *variableEncoder) writeClear() error {
	log.Debug.Printf("lzw: clear at width %d", e.width)
	return e.bw.Write(e.width, e.clearCode)
}

func (e *variableEncoder) Write(p []byte) (int, error) {
	e.inBytes += int64(len(p))

	for _, b := range p {
		if int(b) >= e.trie.alphabet {
			return 0, &UnexpectedByteError{Value: b, Width: e.codeWidth}
		}

		if e.current < 0 {
			e.current = int(b)
			continue
		}

		if child, ok := e.trie.Find(uint16(e.current), b); ok {
			e.current = int(child)
			continue
		}

		if err := e.bw.Write(e.width, uint16(e.current)); err != nil {
			return 0, err
		}
		newCode := e.trie.Add(uint16(e.current), b)
		if err := e.bumpOrClear(newCode); err != nil {
			return 0, err
		}
		e.current = int(b)
	}

	return len(p), nil
}

func (e *variableEncoder) bumpOrClear(newCode uint16) error {
	threshold := bumpThreshold(e.width, e.increment)
	if newCode != threshold {
		return nil
	}
	if e.width < maxWidth {
		e.width++
		log.Debug.Printf("lzw: width bumped to %d", e.width)
		return nil
	}
	if err := e.bw.Write(maxWidth, e.clearCode); err != nil {
		return err
	}
	e.clears++
	log.Debug.Printf("lzw: dictionary full, clear #%d emitted", e.clears)
	e.resetDict()
	return nil
}

func (e *variableEncoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if e.current >= 0 {
		if err := e.bw.Write(e.width, uint16(e.current)); err != nil {
			return err
		}
	}
	if err := e.bw.Write(e.width, e.eofCode); err != nil {
		return err
	}
	if err := e.bw.Fill(); err != nil {
		return err
	}
	if err := e.bw.Flush(); err != nil {
		return err
	}

	log.Stats.Printf("lzw: encoded %d bytes into %d bytes, %d clears", e.inBytes, e.sink.n, e.clears)
	return nil
}

// variableDecoder is the shared GIF/TIFF decoder core: the inverse of
// variableEncoder, pulling codes through a BitReader and expanding them
// through a DecoderTable, growing width in lockstep with the encoder and
// re-synchronizing on CLEAR.
type variableDecoder struct {
	br        *BitReader
	dict      *DecoderTable
	codeWidth int
	increment int
	clearCode uint16
	eofCode   uint16
	width     uint
	next      uint16
	previous  int
	tableFull bool
	pending   []byte
	err       error
}

func newVariableDecoder(r io.Reader, codeWidth int, order Order, increment int) *variableDecoder {
	d := &variableDecoder{
		br:        NewBitReader(r, order),
		dict:      &DecoderTable{},
		codeWidth: codeWidth,
		increment: increment,
		clearCode: uint16(1 << uint(codeWidth)),
		previous:  -1,
	}
	d.eofCode = d.clearCode + 1
	d.resetDict()
	return d
}

func (d *variableDecoder) resetDict() {
	d.dict.Reset(d.codeWidth)
	d.width = uint(d.codeWidth) + 1
	d.next = d.clearCode + 2
	d.previous = -1
	d.tableFull = false
}

func (d *variableDecoder) Read(p []byte) (int, error) {
	for {
		if len(d.pending) > 0 {
			n := copy(p, d.pending)
			d.pending = d.pending[n:]
			return n, nil
		}
		if d.err != nil {
			return 0, d.err
		}
		d.fill()
	}
}

func (d *variableDecoder) fill() {
	code, err := d.br.Read(d.width)
	if err != nil {
		d.err = err
		return
	}

	if d.tableFull && code != d.clearCode && code != d.eofCode {
		d.err = ErrMissingClear
		return
	}

	switch code {
	case d.clearCode:
		log.Debug.Printf("lzw: clear observed")
		d.resetDict()
		return
	case d.eofCode:
		d.err = io.EOF
		return
	}

	var word []byte
	switch {
	case d.previous < 0:
		word = d.dict.stack[:1]
		d.dict.stack[0] = byte(code)
	case code > d.next:
		d.err = &UnexpectedCodeError{Code: code}
		return
	case code == d.next:
		word = d.dict.ExpandKwKwK(uint16(d.previous))
	default:
		word = d.dict.Expand(code)
	}

	d.pending = append(d.pending[:0], word...)

	if d.previous >= 0 {
		if d.next < dictCap {
			d.dict.Install(d.next, uint16(d.previous), word[0])
			d.next++
			if d.next == dictCap {
				d.tableFull = true
			} else if d.next == bumpThreshold(d.width, d.increment) && d.width < maxWidth {
				d.width++
				log.Debug.Printf("lzw: width bumped to %d", d.width)
			}
		} else {
			d.tableFull = true
		}
	}

	d.previous = int(code)
}

func (d *variableDecoder) Close() error {
	d.err = errClosed
	return nil
}
