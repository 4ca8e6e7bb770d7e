package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloneSlice(t *testing.T) {
	require := require.New(t)

	src := []byte{1, 2, 3}
	clone := CloneSlice(src, 0)
	require.Equal(src, clone)

	clone[0] = 9
	require.Equal(byte(1), src[0])

	require.Equal([]byte{1, 2, 3, 0}, CloneSlice(src, 4))
	require.Equal([]byte{1}, CloneSlice(src, 1))
}

func TestPtrDeref(t *testing.T) {
	require := require.New(t)

	p := Ptr(uint8(7))
	require.Equal(uint8(7), *p)
	require.Equal(uint8(7), Deref(p))

	var nilPtr *int16
	require.Equal(int16(0), Deref(nilPtr))
}
