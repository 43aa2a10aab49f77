package lzw

import (
	"bytes"
	"io"
)

// tiffCodeWidth is the TIFF baseline LZW predictor's fixed 8-bit root
// alphabet (PDF32000 7.4.4 / TIFF 6.0 §13 both inherit it from the GIF
// convention, pinned rather than left as a parameter).
const tiffCodeWidth = 8

// NewTIFFWriter returns a streaming TIFF-style LZW encoder: MSB-first bit
// packing, a leading CLEAR at width 9, and the TIFF early-change
// convention (width bumps one code earlier than GIF). The caller must
// Close the writer to flush the final code, EOI, and any partial byte.
func NewTIFFWriter(w io.Writer) io.WriteCloser {
	// tiffCodeWidth is always in range, so construction cannot fail.
	enc, _ := newVariableEncoder(w, tiffCodeWidth, MSB, 1)
	return enc
}

// NewTIFFReader returns a streaming TIFF-style LZW decoder matching
// NewTIFFWriter's wire format.
func NewTIFFReader(r io.Reader) io.ReadCloser {
	return newVariableDecoder(r, tiffCodeWidth, MSB, 1)
}

// EncodeTIFF compresses data in one call and returns the compressed bytes.
func EncodeTIFF(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	wc := NewTIFFWriter(&buf)
	if _, err := wc.Write(data); err != nil {
		return nil, err
	}
	if err := wc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeTIFF decompresses a TIFF-style LZW stream in one call.
func DecodeTIFF(data []byte) ([]byte, error) {
	rc := NewTIFFReader(bytes.NewReader(data))
	defer rc.Close()
	return io.ReadAll(rc)
}
