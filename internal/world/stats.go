package world

import (
	"context"

	"chunkwalk/internal/parallel"
)

// Stats summarizes the loaded part of a world.
type Stats struct {
	Chunks  int
	Tiles   int
	Blocked int
}

// Stats counts loaded chunks and their blocking tiles. Chunks are scanned in parallel.
func (w *World) Stats(ctx context.Context) Stats {
	chunks := make([]*TileChunk, 0, len(w.chunks))
	for _, c := range w.chunks {
		chunks = append(chunks, c)
	}
	dim := int(w.params.ChunkDim)
	return Stats{
		Chunks:  len(chunks),
		Tiles:   len(chunks) * dim * dim,
		Blocked: parallel.Sum(ctx, chunks, (*TileChunk).CountBlocked),
	}
}
