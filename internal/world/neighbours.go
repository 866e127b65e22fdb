package world

// ConnectedChunks borrows the six chunks sharing a face with the chunk being
// built. It owns nothing; entries left nil read as EmptyChunk.
type ConnectedChunks struct {
	Top    BlockReader
	Bottom BlockReader
	Px     BlockReader
	Nx     BlockReader
	Pz     BlockReader
	Nz     BlockReader
}

// NoNeighbours returns a bundle where every neighbour is the shared empty
// chunk, for chunks at the edge of the loaded world.
func NoNeighbours() ConnectedChunks {
	e := EmptyChunk()
	return ConnectedChunks{Top: e, Bottom: e, Px: e, Nx: e, Pz: e, Nz: e}
}

func orEmpty(r BlockReader) BlockReader {
	if r == nil {
		return EmptyChunk()
	}
	return r
}

// ConnectedBlocks holds the six face neighbours of one block.
type ConnectedBlocks struct {
	Top    BlockState
	Bottom BlockState
	Px     BlockState
	Nx     BlockState
	Pz     BlockState
	Nz     BlockState
}

// Neighbours resolves the face neighbours of chunk-local (x, y, z). Cells
// inside the chunk come from chunk; cells across a boundary come from the
// adjacent cell of the matching neighbour in conn.
func Neighbours(chunk BlockReader, conn ConnectedChunks, x, y, z int) ConnectedBlocks {
	const last = ChunkSize - 1
	var n ConnectedBlocks

	if y == last {
		n.Top = orEmpty(conn.Top).Get(x, 0, z)
	} else {
		n.Top = chunk.Get(x, y+1, z)
	}
	if y == 0 {
		n.Bottom = orEmpty(conn.Bottom).Get(x, last, z)
	} else {
		n.Bottom = chunk.Get(x, y-1, z)
	}

	if x == last {
		n.Px = orEmpty(conn.Px).Get(0, y, z)
	} else {
		n.Px = chunk.Get(x+1, y, z)
	}
	if x == 0 {
		n.Nx = orEmpty(conn.Nx).Get(last, y, z)
	} else {
		n.Nx = chunk.Get(x-1, y, z)
	}

	if z == last {
		n.Pz = orEmpty(conn.Pz).Get(x, y, 0)
	} else {
		n.Pz = chunk.Get(x, y, z+1)
	}
	if z == 0 {
		n.Nz = orEmpty(conn.Nz).Get(x, y, last)
	} else {
		n.Nz = chunk.Get(x, y, z-1)
	}
	return n
}
