package lzw

// dictCap bounds the number of codes a DecoderTable can ever hold: codes
// are 12-bit values, so 4096 is the hard ceiling regardless of variant.
const dictCap = 1 << maxWidth

// DecoderTable is the decoder's half of the dictionary: three parallel
// fixed-size arrays (prefix, suffix, length) plus the byte buffer used to
// reconstruct one decoded word at a time. Keeping the fields separate
// rather than bundled into a node struct keeps the hot expand loop
// touching only the bytes it needs.
type DecoderTable struct {
	prefix [dictCap]uint16
	suffix [dictCap]byte
	length [dictCap]uint16
	stack  [dictCap]byte
}

// Reset reinitializes the root alphabet: codes [0, 2^codeWidth) decode to
// themselves. Higher codes are undefined until Install writes them.
func (d *DecoderTable) Reset(codeWidth int) {
	n := 1 << uint(codeWidth)
	for i := 0; i < n; i++ {
		d.suffix[i] = byte(i)
		d.length[i] = 1
	}
}

// Install records a new dictionary entry: the word at code next is the
// word at parent followed by firstByte, where firstByte is the first byte
// of the word that was just decoded (not parent's).
func (d *DecoderTable) Install(next, parent uint16, firstByte byte) {
	d.prefix[next] = parent
	d.suffix[next] = firstByte
	d.length[next] = d.length[parent] + 1
}

// Expand reconstructs the word for code onto the table's reconstruction
// stack and returns a view of it. The returned slice is only valid until
// the next call to Expand or ExpandKwKwK.
func (d *DecoderTable) Expand(code uint16) []byte {
	n := int(d.length[code])
	i := n - 1
	c := code
	for i > 0 {
		d.stack[i] = d.suffix[c]
		c = d.prefix[c]
		i--
	}
	d.stack[0] = d.suffix[c]
	return d.stack[:n]
}

// ExpandKwKwK handles the classic corner case: a code one past the last
// installed entry always decodes to the previous word followed by the
// previous word's own first byte. It expands previous onto the stack
// again, then writes that first byte one slot past its end.
func (d *DecoderTable) ExpandKwKwK(previous uint16) []byte {
	word := d.Expand(previous)
	n := len(word)
	d.stack[n] = word[0]
	return d.stack[:n+1]
}
