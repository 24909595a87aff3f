package render

import (
	"math"

	"github.com/1siamBot/iso-sandbox/engine/maplib"
)

// Point is a screen position in pixels
type Point struct {
	X, Y float64
}

// Projection maps view-space tile coordinates to screen pixels. View
// space is grid space after maplib.RotateCoords.
type Projection struct {
	HalfW, HalfH float64 // half tile width and height
	HeightStep   float64 // pixels per unit of tile height
	OriginX      float64 // horizontal centre offset
	OriginY      float64 // top margin
}

// NewProjection creates a projection for the given tile size
func NewProjection(tileW, tileH, heightStep int, originX, originY float64) Projection {
	return Projection{
		HalfW:      float64(tileW) / 2,
		HalfH:      float64(tileH) / 2,
		HeightStep: float64(heightStep),
		OriginX:    originX,
		OriginY:    originY,
	}
}

// GridToScreen returns the top apex of the height-0 diamond at (vx, vy)
func (p Projection) GridToScreen(vx, vy int) (float64, float64) {
	sx := float64(vx-vy)*p.HalfW + p.OriginX
	sy := float64(vx+vy)*p.HalfH + p.OriginY
	return sx, sy
}

// TileTop returns the apex of the top face of a tile of the given height
func (p Projection) TileTop(vx, vy, height int) Point {
	sx, sy := p.GridToScreen(vx, vy)
	return Point{sx, sy - float64(height)*p.HeightStep}
}

// TileCenter returns the centre of the top face
func (p Projection) TileCenter(vx, vy, height int) Point {
	top := p.TileTop(vx, vy, height)
	return Point{top.X, top.Y + p.HalfH}
}

// Diamond returns the top face corners: top, right, bottom, left
func (p Projection) Diamond(vx, vy, height int) [4]Point {
	t := p.TileTop(vx, vy, height)
	return [4]Point{
		{t.X, t.Y},
		{t.X + p.HalfW, t.Y + p.HalfH},
		{t.X, t.Y + 2*p.HalfH},
		{t.X - p.HalfW, t.Y + p.HalfH},
	}
}

// inDiamond reports whether an offset from a diamond centre lies strictly
// inside it. The offset is mapped onto the rhombus axes, where the
// diamond becomes the open square |u| < 1, |v| < 1.
func (p Projection) inDiamond(dx, dy float64) bool {
	u := dx/p.HalfW + dy/p.HalfH
	v := dy/p.HalfH - dx/p.HalfW
	return math.Abs(u) < 1 && math.Abs(v) < 1
}

// ScreenToGrid picks the grid cell under a screen point. View cells are
// scanned row-major (vy, then vx), each at its height-adjusted position,
// and the first cell whose top face contains the point wins. The result
// is in grid coordinates; ok is false when nothing was hit.
func (p Projection) ScreenToGrid(g *maplib.Grid, rot maplib.Rotation, mx, my float64) (x, y int, ok bool) {
	n := g.Size
	for vy := 0; vy < n; vy++ {
		for vx := 0; vx < n; vx++ {
			gx, gy := maplib.UnrotateCoords(vx, vy, rot, n)
			c := p.TileCenter(vx, vy, g.HeightAt(gx, gy))
			if p.inDiamond(mx-c.X, my-c.Y) {
				return gx, gy, true
			}
		}
	}
	return 0, 0, false
}
