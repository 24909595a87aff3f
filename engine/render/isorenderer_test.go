package render

import (
	"image/color"
	"testing"

	"github.com/1siamBot/iso-sandbox/engine/core"
	"github.com/1siamBot/iso-sandbox/engine/maplib"
)

type recorded struct {
	op    string
	pts   []Point
	glyph string
	alpha float32
}

type recordingSurface struct {
	calls []recorded
}

func (s *recordingSurface) FillPolygon(pts []Point, _ color.RGBA, alpha float32) {
	s.calls = append(s.calls, recorded{op: "fill", pts: pts, alpha: alpha})
}

func (s *recordingSurface) StrokePolygon(pts []Point, _ color.RGBA, _ float32, alpha float32) {
	s.calls = append(s.calls, recorded{op: "stroke", pts: pts, alpha: alpha})
}

func (s *recordingSurface) DrawGlyph(glyph string, at Point, _ color.RGBA, alpha float32) {
	s.calls = append(s.calls, recorded{op: "glyph", pts: []Point{at}, glyph: glyph, alpha: alpha})
}

func flatGrid(n, h int) *maplib.Grid {
	g := maplib.NewGrid(n)
	for i := range g.Tiles {
		g.Tiles[i] = maplib.Tile{Terrain: maplib.TerrainGrass, Height: h}
	}
	return g
}

func countLayer(cmds []DrawCmd, l Layer) int {
	n := 0
	for _, c := range cmds {
		if c.Layer == l {
			n++
		}
	}
	return n
}

func TestBuildFrame_FlatGridWallsOnlyAtFrontEdges(t *testing.T) {
	r := NewIsoRenderer()
	cmds := r.BuildFrame(Scene{Grid: flatGrid(4, 1), Objects: maplib.NewObjectSet(4)})

	if n := countLayer(cmds, LayerTop); n != 16 {
		t.Fatalf("top faces = %d, want 16", n)
	}
	if n := countLayer(cmds, LayerRightWall); n != 4 {
		t.Fatalf("right walls = %d, want 4", n)
	}
	if n := countLayer(cmds, LayerLeftWall); n != 4 {
		t.Fatalf("left walls = %d, want 4", n)
	}
	for _, c := range cmds {
		if c.Layer == LayerRightWall && c.Cell.X != 3 {
			t.Fatalf("right wall on inner cell %v", c.Cell)
		}
		if c.Layer == LayerLeftWall && c.Cell.Y != 3 {
			t.Fatalf("left wall on inner cell %v", c.Cell)
		}
	}
}

func TestBuildFrame_NoWallsAtHeightZero(t *testing.T) {
	r := NewIsoRenderer()
	cmds := r.BuildFrame(Scene{Grid: maplib.NewGrid(4), Objects: maplib.NewObjectSet(4)})
	if len(cmds) != 16 {
		t.Fatalf("expected only 16 top faces, got %d commands", len(cmds))
	}
}

func TestBuildFrame_WallHeightIsDropToNeighbour(t *testing.T) {
	r := NewIsoRenderer()
	g := flatGrid(3, 1)
	g.Set(0, 0, maplib.Tile{Terrain: maplib.TerrainStone, Height: 4})
	cmds := r.BuildFrame(Scene{Grid: g, Objects: maplib.NewObjectSet(3)})

	found := 0
	for _, c := range cmds {
		if c.Cell != (maplib.Point{}) || c.Layer == LayerTop {
			continue
		}
		found++
		// points: corner, bottom, bottom+h, corner+h
		if h := c.Points[2].Y - c.Points[1].Y; h != 3*r.Proj.HeightStep {
			t.Fatalf("wall %d height %v px, want %v", c.Layer, h, 3*r.Proj.HeightStep)
		}
	}
	if found != 2 {
		t.Fatalf("expected two walls on (0,0), got %d", found)
	}
}

func TestBuildFrame_WallsFollowRotation(t *testing.T) {
	r := NewIsoRenderer()
	g := maplib.NewGrid(2)
	g.Set(0, 0, maplib.Tile{Terrain: maplib.TerrainStone, Height: 2})

	for rot := maplib.Rot0; rot <= maplib.Rot270; rot++ {
		cmds := r.BuildFrame(Scene{Grid: g, Objects: maplib.NewObjectSet(2), Rotation: rot})
		if n := countLayer(cmds, LayerRightWall) + countLayer(cmds, LayerLeftWall); n != 2 {
			t.Fatalf("rot %d: %d walls, want 2", rot, n)
		}
		// Walls are emitted right before the tile's own top face
		for i, c := range cmds {
			if c.Layer == LayerRightWall || c.Layer == LayerLeftWall {
				if c.Cell != (maplib.Point{}) {
					t.Fatalf("rot %d: wall on %v, want (0,0)", rot, c.Cell)
				}
				next := cmds[i+1]
				if next.Cell != c.Cell {
					t.Fatalf("rot %d: wall not followed by its own tile", rot)
				}
			}
		}
	}
}

func TestBuildFrame_TerrainThenHoverThenObjects(t *testing.T) {
	r := NewIsoRenderer()
	g := flatGrid(4, 1)
	objs := maplib.NewObjectSet(4)
	objs.Place(maplib.ObjTree, 1, 2)
	objs.Place(maplib.ObjFountain, 0, 0)
	cmds := r.BuildFrame(Scene{Grid: g, Objects: objs, Hover: core.Cell{X: 2, Y: 2, Valid: true}})

	last := cmds[len(cmds)-3:]
	if last[0].Layer != LayerHover || last[0].Cell != (maplib.Point{X: 2, Y: 2}) {
		t.Fatalf("expected hover outline before objects, got %+v", last[0])
	}
	if last[1].Glyph != ObjectGlyphs[maplib.ObjTree] || last[2].Glyph != ObjectGlyphs[maplib.ObjFountain] {
		t.Fatal("object glyphs should follow placement order")
	}
	for _, c := range cmds[:len(cmds)-3] {
		if c.Layer == LayerHover || c.Layer == LayerObject {
			t.Fatal("overlay emitted inside the terrain pass")
		}
	}
}

func TestBuildFrame_RowMajorViewOrder(t *testing.T) {
	r := NewIsoRenderer()
	g := maplib.NewGrid(3)
	cmds := r.BuildFrame(Scene{Grid: g, Objects: maplib.NewObjectSet(3), Rotation: maplib.Rot90})
	for i, c := range cmds {
		vx, vy := maplib.RotateCoords(c.Cell.X, c.Cell.Y, maplib.Rot90, 3)
		if vy*3+vx != i {
			t.Fatalf("command %d is view cell (%d,%d)", i, vx, vy)
		}
	}
}

func TestBuildFrame_ObjectAnchoredBelowApex(t *testing.T) {
	r := NewIsoRenderer()
	g := flatGrid(4, 2)
	objs := maplib.NewObjectSet(4)
	objs.Place(maplib.ObjObelisk, 3, 1)
	for rot := maplib.Rot0; rot <= maplib.Rot270; rot++ {
		cmds := r.BuildFrame(Scene{Grid: g, Objects: objs, Rotation: rot})
		glyph := cmds[len(cmds)-1]
		vx, vy := maplib.RotateCoords(3, 1, rot, 4)
		top := r.Proj.TileTop(vx, vy, 2)
		if glyph.At.X != top.X || glyph.At.Y != top.Y+r.Proj.HalfH {
			t.Fatalf("rot %d: glyph at %v, apex %v", rot, glyph.At, top)
		}
	}
}

func TestBuildFrame_DoesNotMutateScene(t *testing.T) {
	r := NewIsoRenderer()
	g := flatGrid(4, 1)
	objs := maplib.NewObjectSet(4)
	objs.Place(maplib.ObjExcavator, 1, 1)
	before := g.Heightmap()
	r.BuildFrame(Scene{Grid: g, Objects: objs, Hover: core.Cell{X: 1, Y: 1, Valid: true}})
	if g.Heightmap() != before || objs.Len() != 1 {
		t.Fatal("BuildFrame changed the scene")
	}
}

func TestDraw_ReplaysCommandsInOrder(t *testing.T) {
	r := NewIsoRenderer()
	g := maplib.NewGrid(2)
	g.Set(0, 0, maplib.Tile{Terrain: maplib.TerrainWater, Height: 0})
	objs := maplib.NewObjectSet(2)
	objs.Place(maplib.ObjTree, 1, 1)
	surf := &recordingSurface{}
	r.Draw(surf, Scene{Grid: g, Objects: objs})

	// 4 tiles x (fill + edge stroke) + 1 glyph
	if len(surf.calls) != 9 {
		t.Fatalf("got %d surface calls, want 9", len(surf.calls))
	}
	if surf.calls[0].op != "fill" || surf.calls[1].op != "stroke" {
		t.Fatal("top face should be filled then outlined")
	}
	if surf.calls[0].alpha != TerrainAlpha[maplib.TerrainWater] {
		t.Fatalf("water alpha = %v", surf.calls[0].alpha)
	}
	if got := surf.calls[8]; got.op != "glyph" || got.glyph != ObjectGlyphs[maplib.ObjTree] {
		t.Fatalf("last call = %+v, want tree glyph", got)
	}
}
