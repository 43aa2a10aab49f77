package lzw

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitReaderLSB(t *testing.T) {
	r := NewBitReader(bytes.NewReader([]byte{0x01}), LSB)
	code, err := r.Read(1)
	require.NoError(t, err)
	require.EqualValues(t, 1, code)
}

func TestBitReaderLSBColors(t *testing.T) {
	r := NewBitReader(bytes.NewReader([]byte{0x8C, 0x2D}), LSB)
	var got []uint16
	for _, w := range []uint{3, 3, 3, 3, 4} {
		code, err := r.Read(w)
		require.NoError(t, err)
		got = append(got, code)
	}
	require.Equal(t, []uint16{4, 1, 6, 6, 2}, got)
}

func TestBitReaderLSB12Bits(t *testing.T) {
	r := NewBitReader(bytes.NewReader([]byte{0xff, 0x0f}), LSB)
	code, err := r.Read(12)
	require.NoError(t, err)
	require.EqualValues(t, 0xfff, code)
}

func TestBitReaderLSB16Bits(t *testing.T) {
	// 16 bits exercises two codes back to back rather than a single call,
	// since Read is documented only for widths up to maxWidth.
	r := NewBitReader(bytes.NewReader([]byte{0xfa, 0xff}), LSB)
	low, err := r.Read(8)
	require.NoError(t, err)
	high, err := r.Read(8)
	require.NoError(t, err)
	require.EqualValues(t, 0xfffa, uint16(high)<<8|low)
}

func TestBitReaderMSB(t *testing.T) {
	r := NewBitReader(bytes.NewReader([]byte{0x80}), MSB)
	code, err := r.Read(1)
	require.NoError(t, err)
	require.EqualValues(t, 1, code)
}

func TestBitReaderMSBColors(t *testing.T) {
	r := NewBitReader(bytes.NewReader([]byte{0x87, 0x62}), MSB)
	var got []uint16
	for _, w := range []uint{3, 3, 3, 3, 4} {
		code, err := r.Read(w)
		require.NoError(t, err)
		got = append(got, code)
	}
	require.Equal(t, []uint16{4, 1, 6, 6, 2}, got)
}

func TestBitReaderMSB12Bits(t *testing.T) {
	r := NewBitReader(bytes.NewReader([]byte{0xff, 0xf0}), MSB)
	code, err := r.Read(12)
	require.NoError(t, err)
	require.EqualValues(t, 0xfff, code)
}

func TestBitReaderShortInput(t *testing.T) {
	r := NewBitReader(bytes.NewReader([]byte{0x01}), LSB)
	_, err := r.Read(12)
	require.Error(t, err)
}

func TestBitReaderTryReadEOF(t *testing.T) {
	r := NewBitReader(bytes.NewReader(nil), LSB)
	_, ok, err := r.TryRead(12)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBitWriterLSB(t *testing.T) {
	var buf bytes.Buffer
	w := NewBitWriter(&buf, LSB)
	require.NoError(t, w.Write(1, 0x1))
	require.NoError(t, w.Fill())
	require.NoError(t, w.Flush())
	require.Equal(t, []byte{0x01}, buf.Bytes())
}

func TestBitWriterLSBColors(t *testing.T) {
	var buf bytes.Buffer
	w := NewBitWriter(&buf, LSB)
	for _, c := range []struct {
		width uint
		code  uint16
	}{{3, 4}, {3, 1}, {3, 6}, {3, 6}, {4, 2}} {
		require.NoError(t, w.Write(c.width, c.code))
	}
	require.NoError(t, w.Fill())
	require.NoError(t, w.Flush())
	require.Equal(t, []byte{0x8C, 0x2D}, buf.Bytes())
}

func TestBitWriterLSB12Bits(t *testing.T) {
	var buf bytes.Buffer
	w := NewBitWriter(&buf, LSB)
	require.NoError(t, w.Write(12, 0xfff))
	require.NoError(t, w.Fill())
	require.NoError(t, w.Flush())
	require.Equal(t, []byte{0xff, 0x0f}, buf.Bytes())
}

func TestBitWriterMSB(t *testing.T) {
	var buf bytes.Buffer
	w := NewBitWriter(&buf, MSB)
	require.NoError(t, w.Write(1, 0x1))
	require.NoError(t, w.Fill())
	require.NoError(t, w.Flush())
	require.Equal(t, []byte{0x80}, buf.Bytes())
}

func TestBitWriterMSBColors(t *testing.T) {
	var buf bytes.Buffer
	w := NewBitWriter(&buf, MSB)
	for _, c := range []struct {
		width uint
		code  uint16
	}{{3, 4}, {3, 1}, {3, 6}, {3, 6}, {4, 2}} {
		require.NoError(t, w.Write(c.width, c.code))
	}
	require.NoError(t, w.Fill())
	require.NoError(t, w.Flush())
	require.Equal(t, []byte{0x87, 0x62}, buf.Bytes())
}

func TestBitWriterMSB12Bits(t *testing.T) {
	var buf bytes.Buffer
	w := NewBitWriter(&buf, MSB)
	require.NoError(t, w.Write(12, 0xfff))
	require.NoError(t, w.Fill())
	require.NoError(t, w.Flush())
	require.Equal(t, []byte{0xff, 0xf0}, buf.Bytes())
}

func TestBitRoundTripAllWidths(t *testing.T) {
	for _, order := range []Order{LSB, MSB} {
		for width := uint(2); width <= maxWidth; width++ {
			var buf bytes.Buffer
			w := NewBitWriter(&buf, order)
			codes := []uint16{0, 1, uint16(1<<width) - 1, uint16(1<<width) / 2}
			for _, c := range codes {
				require.NoError(t, w.Write(width, c))
			}
			require.NoError(t, w.Fill())
			require.NoError(t, w.Flush())

			r := NewBitReader(bytes.NewReader(buf.Bytes()), order)
			for _, want := range codes {
				got, err := r.Read(width)
				require.NoError(t, err)
				require.Equal(t, want, got)
			}
		}
	}
}
