package lzw

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Order selects how codes are packed into bytes.
type Order int

const (
	// LSB packs the first code into the low bits of the first byte.
	LSB Order = iota

	// MSB packs the first code into the high bits of the first byte.
	MSB
)

// maxWidth is the widest code this package ever reads or writes.
const maxWidth = 12

// BitReader pulls fixed-width codes out of a byte source, LSB-first or
// MSB-first. It never reads more bytes from the source than a code
// requires.
type BitReader struct {
	order  Order
	r      io.ByteReader
	cursor uint
	buf    uint32
}

// NewBitReader wraps r for bit-level reads. If r does not implement
// io.ByteReader, reads are buffered through a bufio.Reader, matching
// compress/lzw's NewReader fallback.
func NewBitReader(r io.Reader, order Order) *BitReader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &BitReader{order: order, r: br}
}

// Read returns the next n-bit code (1 <= n <= 12). A short source is
// reported as io.ErrUnexpectedEOF: callers of Read always expect a
// complete stream (CLEAR/EOI framed or fully consumed up front).
func (b *BitReader) Read(n uint) (uint16, error) {
	code, ok, err := b.read(n)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, io.ErrUnexpectedEOF
	}
	return code, nil
}

// TryRead returns the next n-bit code, or ok == false if the source was
// exhausted before a code could be assembled. This is the sole entry
// point permitted to treat end-of-stream as success; only the Fixed-12
// decoder (which has no EOI marker) calls it.
func (b *BitReader) TryRead(n uint) (code uint16, ok bool, err error) {
	return b.read(n)
}

func (b *BitReader) read(n uint) (uint16, bool, error) {
	for b.cursor < n {
		by, err := b.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return 0, false, nil
			}
			return 0, false, errors.Wrap(err, "lzw: bit reader")
		}
		switch b.order {
		case LSB:
			b.buf |= uint32(by) << b.cursor
		case MSB:
			b.buf |= uint32(by) << (24 - b.cursor)
		}
		b.cursor += 8
	}

	mask := uint32(1)<<n - 1
	var code uint16
	switch b.order {
	case LSB:
		code = uint16(b.buf & mask)
		b.buf >>= n
	case MSB:
		shift := 32 - n
		code = uint16((b.buf >> shift) & mask)
		b.buf <<= n
	}
	b.cursor -= n
	return code, true, nil
}

// sinkWriter is a buffered, flushable byte sink.
type sinkWriter interface {
	io.ByteWriter
	Flush() error
}

// BitWriter appends fixed-width codes to a byte sink, LSB-first or
// MSB-first.
type BitWriter struct {
	order  Order
	w      sinkWriter
	cursor uint
	buf    uint32
}

// NewBitWriter wraps w for bit-level writes. If w does not already behave
// like a buffered, flushable sink it is wrapped in a bufio.Writer.
func NewBitWriter(w io.Writer, order Order) *BitWriter {
	sw, ok := w.(sinkWriter)
	if !ok {
		sw = bufio.NewWriter(w)
	}
	return &BitWriter{order: order, w: sw}
}

// Write appends the low n bits of code (1 <= n <= 12) to the sink.
func (b *BitWriter) Write(n uint, code uint16) error {
	mask := uint32(1)<<n - 1
	switch b.order {
	case LSB:
		b.buf |= (uint32(code) & mask) << b.cursor
	case MSB:
		shift := 32 - n - b.cursor
		b.buf |= (uint32(code) & mask) << shift
	}
	b.cursor += n

	for b.cursor >= 8 {
		var by byte
		switch b.order {
		case LSB:
			by = byte(b.buf)
			b.buf >>= 8
		case MSB:
			by = byte(b.buf >> 24)
			b.buf <<= 8
		}
		b.cursor -= 8
		if err := b.w.WriteByte(by); err != nil {
			return errors.Wrap(err, "lzw: bit writer")
		}
	}
	return nil
}

// Fill emits one final, zero-padded byte if any bits remain in the
// accumulator. It must be called exactly once, at end-of-stream.
func (b *BitWriter) Fill() error {
	if b.cursor == 0 {
		return nil
	}
	var by byte
	switch b.order {
	case LSB:
		by = byte(b.buf)
	case MSB:
		by = byte(b.buf >> 24)
	}
	b.buf = 0
	b.cursor = 0
	if err := b.w.WriteByte(by); err != nil {
		return errors.Wrap(err, "lzw: bit writer")
	}
	return nil
}

// Flush forwards to the underlying sink's Flush.
func (b *BitWriter) Flush() error {
	return errors.Wrap(b.w.Flush(), "lzw: bit writer")
}
