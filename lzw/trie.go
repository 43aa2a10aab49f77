package lzw

// childKind discriminates the three node shapes an EncoderTrie node can
// take on. NoChild and OneChild nodes allocate nothing beyond the node
// itself; only a node that branches a second time grows a row.
type childKind uint8

const (
	noChild childKind = iota
	oneChild
	manyChildren
)

// absentChild marks an empty slot in a ManyChildren row. 4096 codes never fill
// a uint16, so u16::MAX (mirrored here as the Go untyped max) can never
// collide with a real code and needs no reset between uses of a row.
const absentChild = 0xFFFF

type trieNode struct {
	kind childKind
	b    byte
	code uint16
	row  []uint16
}

// EncoderTrie is an arena-backed prefix trie mapping (parent code, next
// byte) to the code of their concatenation. Nodes live in a dense slice
// indexed by code value; the node at index i < alphabet size represents
// the one-byte word [i].
type EncoderTrie struct {
	alphabet int
	nodes    []trieNode
}

// Reset returns the trie to its initial state: 2^codeWidth empty root
// entries, plus two further empty entries for CLEAR/EOI if withReserved.
// The backing array is reused across calls when possible.
func (t *EncoderTrie) Reset(codeWidth int, withReserved bool) {
	t.alphabet = 1 << uint(codeWidth)
	n := t.alphabet
	if withReserved {
		n += 2
	}
	if cap(t.nodes) < n {
		t.nodes = make([]trieNode, n)
		return
	}
	t.nodes = t.nodes[:n]
	for i := range t.nodes {
		t.nodes[i] = trieNode{}
	}
}

// Len reports the number of codes currently in the trie.
func (t *EncoderTrie) Len() int {
	return len(t.nodes)
}

// Find reports the code for parent's concatenation with b, if it has
// already been added.
func (t *EncoderTrie) Find(parent uint16, b byte) (uint16, bool) {
	node := &t.nodes[parent]
	switch node.kind {
	case oneChild:
		if node.b == b {
			return node.code, true
		}
	case manyChildren:
		if c := node.row[b]; c != absentChild {
			return c, true
		}
	}
	return 0, false
}

// Add records parent's concatenation with b as a new dictionary entry and
// returns its code, which equals the number of entries before the call.
func (t *EncoderTrie) Add(parent uint16, b byte) uint16 {
	newCode := uint16(len(t.nodes))
	node := &t.nodes[parent]

	switch node.kind {
	case noChild:
		node.kind = oneChild
		node.b = b
		node.code = newCode
	case oneChild:
		row := make([]uint16, t.alphabet)
		for i := range row {
			row[i] = absentChild
		}
		row[node.b] = node.code
		row[b] = newCode
		node.kind = manyChildren
		node.row = row
	case manyChildren:
		node.row[b] = newCode
	}

	t.nodes = append(t.nodes, trieNode{})
	return newCode
}
