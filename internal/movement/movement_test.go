package movement

import (
	"testing"

	"chunkwalk/internal/input"
	"chunkwalk/internal/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testWorld is a 1.4m-tile world with walls at the given tiles.
func testWorld(t *testing.T, walls ...[2]uint32) *world.World {
	t.Helper()
	b, err := world.NewBuilder(world.Params{ChunkDim: 256, TileSideInMeters: 1.4, TileSideInPixels: 60})
	require.NoError(t, err)
	for _, wall := range walls {
		require.NoError(t, b.SetTile(wall[0], wall[1], world.TileWall))
	}
	w, err := b.Build()
	require.NoError(t, err)
	return w
}

func seed() world.Position {
	return world.Position{AbsTileX: 3, AbsTileY: 3, OffsetX: 0.7, OffsetY: 0.7}
}

func TestStep_RejectsWhenRightSampleBlocked(t *testing.T) {
	w := testWorld(t, [2]uint32{4, 3})
	e := NewEntity(w, seed(), 0.75*1.4)
	before := e.Position()

	assert.Equal(t, Rejected, e.Step(w, 0.3, 0))
	assert.Equal(t, before, e.Position())

	// the same move is fine without the wall
	open := testWorld(t)
	e = NewEntity(open, seed(), 0.75*1.4)
	assert.Equal(t, Committed, e.Step(open, 0.3, 0))
	assert.InDelta(t, 1.0, e.Position().OffsetX, 1e-5)
}

func TestStep_AllOrNothing(t *testing.T) {
	w := testWorld(t, [2]uint32{2, 3})
	e := NewEntity(w, seed(), 0.75*1.4)
	before := e.Position()

	center, left, _ := e.Footprint(w, before.Offset(-0.3, 0.2))
	require.True(t, w.IsWorldPointEmpty(center))
	require.False(t, w.IsWorldPointEmpty(left))

	assert.Equal(t, Rejected, e.Step(w, -0.3, 0.2))
	assert.Equal(t, before, e.Position(), "no sliding along y either")
}

func TestStep_CommitAcrossTiles(t *testing.T) {
	w := testWorld(t)
	e := NewEntity(w, seed(), 0.75*1.4)

	assert.Equal(t, Committed, e.Step(w, 0, 1.0))
	p := e.Position()
	assert.Equal(t, uint32(4), p.AbsTileY)
	assert.InDelta(t, 0.3, p.OffsetY, 1e-5)
	assert.True(t, w.IsCanonical(p))
}

func TestStep_Idle(t *testing.T) {
	w := testWorld(t)
	e := NewEntity(w, seed(), 1)
	before := e.Position()
	assert.Equal(t, Idle, e.Step(w, 0, 0))
	assert.Equal(t, before, e.Position())
}

func TestNewEntity_NormalizesSeed(t *testing.T) {
	w := testWorld(t)
	e := NewEntity(w, world.Position{AbsTileX: 3, OffsetX: 5.0}, 1)
	assert.Equal(t, uint32(6), e.Position().AbsTileX)
	assert.InDelta(t, 0.8, e.Position().OffsetX, 1e-5)
	assert.InDelta(t, 0.5, e.HalfWidth, 1e-6)
}

type recordingSpace struct {
	*world.World
	queries []world.Position
}

func (r *recordingSpace) IsWorldPointEmpty(p world.Position) bool {
	r.queries = append(r.queries, p)
	return r.World.IsWorldPointEmpty(p)
}

func TestStep_SamplesCenterLeftRight(t *testing.T) {
	space := &recordingSpace{World: testWorld(t)}
	e := NewEntity(space, seed(), 1.0)
	require.Equal(t, Committed, e.Step(space, 0.1, 0))
	require.Len(t, space.queries, 3)
	assert.InDelta(t, 0.8, space.queries[0].OffsetX, 1e-5)
	assert.InDelta(t, 0.3, space.queries[1].OffsetX, 1e-5)
	assert.InDelta(t, 1.3, space.queries[2].OffsetX, 1e-5)
	for _, q := range space.queries {
		assert.Equal(t, uint32(3), q.AbsTileY)
	}
}

func TestMover_Update(t *testing.T) {
	w := testWorld(t)
	e := NewEntity(w, seed(), 1)
	m := Mover{Speed: 2}

	var c input.Controller
	c.ProcessKeyPress(input.MoveLeft, true)
	dx, dy := m.Delta(&c, 0.25)
	assert.InDelta(t, -0.5, dx, 1e-6)
	assert.Equal(t, float32(0), dy)

	assert.Equal(t, Committed, m.Update(w, e, &c, 0.25))
	assert.InDelta(t, 0.2, e.Position().OffsetX, 1e-5)

	c.ProcessKeyPress(input.MoveLeft, false)
	assert.Equal(t, Idle, m.Update(w, e, &c, 0.25))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "committed", Committed.String())
	assert.Equal(t, "rejected", Rejected.String())
	assert.Equal(t, "unknown", Outcome(9).String())
}
