package glbackend

import (
	"testing"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/stretchr/testify/require"
)

func writeLog(msg string, n int32) func(*uint8) {
	return func(buf *uint8) {
		dst := unsafe.Slice(buf, n)
		copy(dst, msg)
	}
}

func TestInfoLogTrimsDriverPadding(t *testing.T) {
	t.Parallel()

	msg := "0:3(1): error: syntax error\n"
	n := int32(len(msg) + 1)
	require.Equal(t, "0:3(1): error: syntax error", infoLog(n, writeLog(msg, n)))

	called := false
	require.Equal(t, "(no log)", infoLog(0, func(*uint8) { called = true }))
	require.False(t, called)
}

func TestStageName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "vertex", stageName(gl.VERTEX_SHADER))
	require.Equal(t, "fragment", stageName(gl.FRAGMENT_SHADER))
}
