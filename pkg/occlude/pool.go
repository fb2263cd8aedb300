package occlude

import "sync"

// trianglePool reuses the [][3]screenVertex slices Projector.
// BuildTrianglesInto appends to, so Render and Cull don't allocate a
// fresh slice for every occluder or candidate triangle they process.
var trianglePool = sync.Pool{
	New: func() any {
		buf := make([][3]screenVertex, 0, 4)
		return &buf
	},
}

func getTriangleBuf() *[][3]screenVertex {
	buf := trianglePool.Get().(*[][3]screenVertex)
	*buf = (*buf)[:0]
	return buf
}

func putTriangleBuf(buf *[][3]screenVertex) {
	trianglePool.Put(buf)
}
