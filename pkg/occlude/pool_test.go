package occlude

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTriangleBufReturnedEmpty(t *testing.T) {
	buf := getTriangleBuf()
	require.Equal(t, 0, len(*buf))
	*buf = append(*buf, [3]screenVertex{})
	require.Equal(t, 1, len(*buf))
	putTriangleBuf(buf)
}

func TestTriangleBufResetAfterReuse(t *testing.T) {
	buf := getTriangleBuf()
	*buf = append(*buf, [3]screenVertex{}, [3]screenVertex{})
	putTriangleBuf(buf)

	// The pool may or may not hand back the same backing array, but any
	// buffer it returns must report zero length.
	for i := 0; i < 8; i++ {
		b := getTriangleBuf()
		require.Equal(t, 0, len(*b))
		putTriangleBuf(b)
	}
}
