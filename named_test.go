package binarch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamed_NameNeverSerialized(t *testing.T) {
	var tagged, plain Buffer

	w := NewWriter(&tagged)
	require.NoError(t, WriteNamed(w, MakeNamed("answer", int32(42))))

	w = NewWriter(&plain)
	require.NoError(t, Write(w, int32(42)))

	assert.Equal(t, plain.Bytes(), tagged.Bytes())
}

func TestNamed_ReadKeepsName(t *testing.T) {
	var buf Buffer
	w := NewWriter(&buf)
	require.NoError(t, WriteNamed(w, MakeNamed("score", float32(9.5))))

	r := NewReader(bytes.NewReader(buf.Bytes()))
	nv := MakeNamed("score", float32(0))
	require.NoError(t, ReadNamed(r, &nv))

	assert.Equal(t, "score", nv.Name)
	assert.Equal(t, float32(9.5), nv.Value)
}

func TestNamed_ReadErrorLeavesValue(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))

	nv := MakeNamed("missing", uint32(7))
	require.Error(t, ReadNamed(r, &nv))
	assert.Equal(t, uint32(7), nv.Value)
}
