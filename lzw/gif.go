package lzw

import (
	"bytes"
	"io"
)

const (
	gifMinCodeWidth = 2
	gifMaxCodeWidth = 8
)

// NewGIFWriter returns a streaming GIF-style LZW encoder: LSB-first bit
// packing, a leading CLEAR at litWidth+1 bits, width growing the instant
// the dictionary reaches 1<<width, and a trailing EOI. litWidth must be
// in [2, 8]. The caller must Close the writer to flush the final code,
// EOI, and any partial byte.
func NewGIFWriter(w io.Writer, litWidth int) (io.WriteCloser, error) {
	if litWidth < gifMinCodeWidth || litWidth > gifMaxCodeWidth {
		return nil, &CodeWidthError{Width: litWidth}
	}
	return newVariableEncoder(w, litWidth, LSB, 0)
}

// NewGIFReader returns a streaming GIF-style LZW decoder matching
// NewGIFWriter's wire format. litWidth must be in [2, 8].
func NewGIFReader(r io.Reader, litWidth int) (io.ReadCloser, error) {
	if litWidth < gifMinCodeWidth || litWidth > gifMaxCodeWidth {
		return nil, &CodeWidthError{Width: litWidth}
	}
	return newVariableDecoder(r, litWidth, LSB, 0), nil
}

// EncodeGIF compresses data in one call and returns the compressed bytes.
func EncodeGIF(data []byte, litWidth int) ([]byte, error) {
	var buf bytes.Buffer
	wc, err := NewGIFWriter(&buf, litWidth)
	if err != nil {
		return nil, err
	}
	if _, err := wc.Write(data); err != nil {
		return nil, err
	}
	if err := wc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeGIF decompresses a GIF-style LZW stream in one call.
func DecodeGIF(data []byte, litWidth int) ([]byte, error) {
	rc, err := NewGIFReader(bytes.NewReader(data), litWidth)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
