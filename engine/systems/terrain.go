package systems

import (
	"github.com/1siamBot/iso-sandbox/engine/maplib"
)

// TileDelta is the new value of one tile produced by a tick
type TileDelta struct {
	X, Y   int
	Tile   maplib.Tile
	Source maplib.Effect
}

// TerrainSystem advances object effects. Each tick reads the grid as it
// was before the tick and writes every delta afterwards, so objects never
// see each other's changes from the same tick.
type TerrainSystem struct {
	// RaiseCap is how far above its owner an Obelisk may lift a neighbour
	RaiseCap  int
	TickCount uint64
}

func NewTerrainSystem() *TerrainSystem {
	return &TerrainSystem{RaiseCap: 2}
}

// Deltas computes the batch for one tick. Objects are visited in
// insertion order and neighbours in N, E, S, W order; ApplyDeltas writes
// in that order, so the last object touching a cell wins.
func (s *TerrainSystem) Deltas(g *maplib.Grid, objs *maplib.ObjectSet) []TileDelta {
	var out []TileDelta
	for _, obj := range objs.All() {
		owner := g.At(obj.X, obj.Y)
		if owner == nil {
			continue
		}
		for _, n := range g.Neighbors4(obj.X, obj.Y) {
			cur := *g.At(n.X, n.Y)
			next, ok := s.effect(obj.Effect, owner.Height, cur)
			if !ok {
				continue
			}
			out = append(out, TileDelta{X: n.X, Y: n.Y, Tile: next, Source: obj.Effect})
		}
	}
	return out
}

// effect returns the neighbour's next value and whether it changes
func (s *TerrainSystem) effect(e maplib.Effect, ownerHeight int, cur maplib.Tile) (maplib.Tile, bool) {
	switch e {
	case maplib.EffectRaiseTerrain:
		if cur.Height+1 > ownerHeight+s.RaiseCap {
			return cur, false
		}
		cur.Height++
		return cur, true
	case maplib.EffectLowerTerrain:
		if cur.Height <= 0 {
			return cur, false
		}
		cur.Height--
		return cur, true
	case maplib.EffectRaiseWater:
		if cur.Terrain == maplib.TerrainWater {
			return cur, false
		}
		return maplib.Tile{Terrain: maplib.TerrainWater, Height: ownerHeight}, true
	case maplib.EffectSpreadGrass:
		if cur.Terrain == maplib.TerrainGrass {
			return cur, false
		}
		cur.Terrain = maplib.TerrainGrass
		return cur, true
	}
	return cur, false
}

// ApplyDeltas writes a batch in order
func ApplyDeltas(g *maplib.Grid, deltas []TileDelta) {
	for _, d := range deltas {
		g.Set(d.X, d.Y, d.Tile)
	}
}

// Tick runs one mutation step and returns the number of deltas applied
func (s *TerrainSystem) Tick(g *maplib.Grid, objs *maplib.ObjectSet) int {
	deltas := s.Deltas(g, objs)
	ApplyDeltas(g, deltas)
	s.TickCount++
	return len(deltas)
}
