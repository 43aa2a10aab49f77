// Package lzw implements the LZW compression algorithm as three wire
// variants over one variable-width engine: GIF-style (LSB-first, explicit
// CLEAR/EOI), TIFF-style (MSB-first, the TIFF early-change width-bump
// convention), and a plain fixed 12-bit-code variant with neither CLEAR
// nor EOI.
//
// It is derived from the classic LZW decoder/encoder shape found in
// compress/lzw and its PDF/TIFF-flavored forks, generalized to share one
// bit-packing and dictionary core across all three variants.
package lzw
