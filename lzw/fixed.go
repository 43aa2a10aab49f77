package lzw

import (
	"bytes"
	"io"

	"github.com/mechiko/lzw/internal/log"
)

// fixedCodeWidth is the full-byte root alphabet the plain 12-bit variant
// always uses; unlike GIF it never shrinks this to negotiate a smaller
// alphabet.
const fixedCodeWidth = 8

// fixedEncoder writes every code at 12 bits, with no CLEAR and no EOI.
// The dictionary freezes once it reaches 4096 entries and compression
// continues against the frozen table rather than resetting.
type fixedEncoder struct {
	bw      *BitWriter
	trie    *EncoderTrie
	current int
	inBytes int64
	closed  bool
}

// NewFixedWriter returns a streaming Fixed-12 LZW encoder: every code is
// 12 bits wide, bit order is order, and there is no CLEAR or EOI framing.
// The caller must Close the writer to flush the final code and any
// partial byte.
func NewFixedWriter(w io.Writer, order Order) io.WriteCloser {
	trie := &EncoderTrie{}
	trie.Reset(fixedCodeWidth, false)
	return &fixedEncoder{
		bw:      NewBitWriter(w, order),
		trie:    trie,
		current: -1,
	}
}

func (e *fixedEncoder) Write(p []byte) (int, error) {
	e.inBytes += int64(len(p))

	for _, b := range p {
		if e.current < 0 {
			e.current = int(b)
			continue
		}

		if child, ok := e.trie.Find(uint16(e.current), b); ok {
			e.current = int(child)
			continue
		}

		if err := e.bw.Write(maxWidth, uint16(e.current)); err != nil {
			return 0, err
		}
		if e.trie.Len() < dictCap {
			e.trie.Add(uint16(e.current), b)
		}
		e.current = int(b)
	}

	return len(p), nil
}

func (e *fixedEncoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if e.current >= 0 {
		if err := e.bw.Write(maxWidth, uint16(e.current)); err != nil {
			return err
		}
	}
	if err := e.bw.Fill(); err != nil {
		return err
	}
	if err := e.bw.Flush(); err != nil {
		return err
	}
	log.Stats.Printf("lzw: encoded %d bytes (fixed-12)", e.inBytes)
	return nil
}

// fixedDecoder is the inverse of fixedEncoder: every code is read at 12
// bits, end-of-stream is sensed via BitReader.TryRead rather than an EOI
// marker, and the dictionary freezes at 4096 entries.
type fixedDecoder struct {
	br       *BitReader
	dict     *DecoderTable
	next     uint16
	previous int
	pending  []byte
	err      error
}

// NewFixedReader returns a streaming Fixed-12 LZW decoder matching
// NewFixedWriter's wire format.
func NewFixedReader(r io.Reader, order Order) io.ReadCloser {
	dict := &DecoderTable{}
	dict.Reset(fixedCodeWidth)
	return &fixedDecoder{
		br:       NewBitReader(r, order),
		dict:     dict,
		next:     1 << fixedCodeWidth,
		previous: -1,
	}
}

func (d *fixedDecoder) Read(p []byte) (int, error) {
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

func (d *fixedDecoder) fill() {
	code, ok, err := d.br.TryRead(maxWidth)
	if err != nil {
		d.err = err
		return
	}
	if !ok {
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

	if d.previous >= 0 && d.next < dictCap {
		d.dict.Install(d.next, uint16(d.previous), word[0])
		d.next++
	}

	d.previous = int(code)
}

func (d *fixedDecoder) Close() error {
	d.err = errClosed
	return nil
}

// EncodeFixed compresses data in one call and returns the compressed
// bytes.
func EncodeFixed(data []byte, order Order) ([]byte, error) {
	var buf bytes.Buffer
	wc := NewFixedWriter(&buf, order)
	if _, err := wc.Write(data); err != nil {
		return nil, err
	}
	if err := wc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeFixed decompresses a Fixed-12 LZW stream in one call.
func DecodeFixed(data []byte, order Order) ([]byte, error) {
	rc := NewFixedReader(bytes.NewReader(data), order)
	defer rc.Close()
	return io.ReadAll(rc)
}
