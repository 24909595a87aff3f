package render

import (
	"math/rand"
	"testing"

	"github.com/1siamBot/iso-sandbox/engine/maplib"
)

func testProjection() Projection {
	return NewProjection(64, 32, 8, 544, 100)
}

func TestProjection_GridToScreen(t *testing.T) {
	p := NewProjection(64, 32, 8, 544, 0)
	tests := []struct {
		vx, vy int
		sx, sy float64
	}{
		{0, 0, 544, 0},
		{1, 0, 576, 16},
		{0, 1, 512, 16},
		{15, 15, 544, 480},
		{15, 0, 1024, 240},
	}
	for _, tc := range tests {
		sx, sy := p.GridToScreen(tc.vx, tc.vy)
		if sx != tc.sx || sy != tc.sy {
			t.Fatalf("GridToScreen(%d,%d) = (%v,%v), want (%v,%v)", tc.vx, tc.vy, sx, sy, tc.sx, tc.sy)
		}
	}
}

func TestProjection_TileTopRaisesWithHeight(t *testing.T) {
	p := testProjection()
	base := p.TileTop(3, 4, 0)
	raised := p.TileTop(3, 4, 2)
	if raised.X != base.X || base.Y-raised.Y != 16 {
		t.Fatalf("height 2 should lift the apex by 16px: base %v raised %v", base, raised)
	}
}

func TestScreenToGrid_CentreOfEveryTileAllRotations(t *testing.T) {
	p := testProjection()
	g := maplib.Generate(16, 3, rand.New(rand.NewSource(3)))
	for rot := maplib.Rot0; rot <= maplib.Rot270; rot++ {
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				vx, vy := maplib.RotateCoords(x, y, rot, 16)
				c := p.TileCenter(vx, vy, g.HeightAt(x, y))
				gx, gy, ok := p.ScreenToGrid(g, rot, c.X, c.Y)
				if !ok || gx != x || gy != y {
					t.Fatalf("rot %d: centre of (%d,%d) picked (%d,%d) ok=%v", rot, x, y, gx, gy, ok)
				}
			}
		}
	}
}

func TestScreenToGrid_Miss(t *testing.T) {
	p := testProjection()
	g := maplib.Generate(16, 3, rand.New(rand.NewSource(3)))
	for _, pt := range []Point{{0, 0}, {5, 5}, {1080, 640}, {-50, 300}} {
		if _, _, ok := p.ScreenToGrid(g, maplib.Rot0, pt.X, pt.Y); ok {
			t.Fatalf("point %v should miss the map", pt)
		}
	}
}

func TestScreenToGrid_DiamondEdgeIsExclusive(t *testing.T) {
	p := testProjection()
	g := maplib.NewGrid(1)
	c := p.TileCenter(0, 0, 0)
	if _, _, ok := p.ScreenToGrid(g, maplib.Rot0, c.X+p.HalfW, c.Y); ok {
		t.Fatal("right corner should not count as inside")
	}
	if _, _, ok := p.ScreenToGrid(g, maplib.Rot0, c.X+p.HalfW-1, c.Y); !ok {
		t.Fatal("just inside the right corner should hit")
	}
	if _, _, ok := p.ScreenToGrid(g, maplib.Rot0, c.X+p.HalfW/2+1, c.Y+p.HalfH/2+1); ok {
		t.Fatal("just outside the lower-right edge should miss")
	}
}

func TestScreenToGrid_FollowsHeight(t *testing.T) {
	p := testProjection()
	g := maplib.NewGrid(4)
	g.Set(2, 2, maplib.Tile{Terrain: maplib.TerrainStone, Height: 1})
	c := p.TileCenter(2, 2, 1)
	x, y, ok := p.ScreenToGrid(g, maplib.Rot0, c.X, c.Y)
	if !ok || x != 2 || y != 2 {
		t.Fatalf("raised tile centre picked (%d,%d) ok=%v", x, y, ok)
	}
}

func TestScreenToGrid_FirstRowMajorMatchWins(t *testing.T) {
	// A tall tile in front reaches over the tile behind it; the back
	// tile comes first in row-major order and wins the pick.
	p := testProjection()
	g := maplib.NewGrid(4)
	g.Set(1, 1, maplib.Tile{Terrain: maplib.TerrainStone, Height: 4})
	c := p.TileCenter(0, 0, 0)
	x, y, ok := p.ScreenToGrid(g, maplib.Rot0, c.X, c.Y)
	if !ok || x != 0 || y != 0 {
		t.Fatalf("picked (%d,%d) ok=%v, want (0,0)", x, y, ok)
	}
}
