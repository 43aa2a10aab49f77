package lzw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncoderTrieRootFindMiss(t *testing.T) {
	var tr EncoderTrie
	tr.Reset(2, true)
	_, ok := tr.Find(0, 1)
	require.False(t, ok)
}

func TestEncoderTrieAddThenFind(t *testing.T) {
	var tr EncoderTrie
	tr.Reset(2, true)

	code := tr.Add(0, 1)
	require.EqualValues(t, 6, code) // 4 literals + clear + eof already occupy 0..5

	got, ok := tr.Find(0, 1)
	require.True(t, ok)
	require.Equal(t, code, got)

	_, ok = tr.Find(0, 2)
	require.False(t, ok)
}

func TestEncoderTrieManyChildren(t *testing.T) {
	var tr EncoderTrie
	tr.Reset(2, true)

	c1 := tr.Add(0, 1)
	c2 := tr.Add(0, 2)
	c3 := tr.Add(0, 3)

	got1, ok := tr.Find(0, 1)
	require.True(t, ok)
	require.Equal(t, c1, got1)

	got2, ok := tr.Find(0, 2)
	require.True(t, ok)
	require.Equal(t, c2, got2)

	got3, ok := tr.Find(0, 3)
	require.True(t, ok)
	require.Equal(t, c3, got3)
}

func TestEncoderTrieResetReusesBackingArray(t *testing.T) {
	var tr EncoderTrie
	tr.Reset(8, true)
	tr.Add(0, 1)
	tr.Add(0, 2)
	before := cap(tr.nodes)

	tr.Reset(8, true)
	require.Equal(t, before, cap(tr.nodes))
	require.Equal(t, 1<<8+2, tr.Len())

	_, ok := tr.Find(0, 1)
	require.False(t, ok, "reset must clear previously added children")
}

func TestEncoderTrieLenTracksAdds(t *testing.T) {
	var tr EncoderTrie
	tr.Reset(2, false)
	require.Equal(t, 4, tr.Len())
	tr.Add(0, 1)
	require.Equal(t, 5, tr.Len())
}
