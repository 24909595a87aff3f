package render

import (
	"image/color"

	"github.com/1siamBot/iso-sandbox/engine/config"
	"github.com/1siamBot/iso-sandbox/engine/core"
	"github.com/1siamBot/iso-sandbox/engine/maplib"
)

// CmdKind is the closed set of draw commands
type CmdKind uint8

const (
	CmdFillPolygon CmdKind = iota
	CmdStrokePolygon
	CmdGlyph
)

// Layer tags what a command draws
type Layer uint8

const (
	LayerRightWall Layer = iota
	LayerLeftWall
	LayerTop
	LayerHover
	LayerObject
)

// DrawCmd is one drawing primitive. Fill polygons may also carry a stroke.
type DrawCmd struct {
	Kind        CmdKind
	Layer       Layer
	Cell        maplib.Point // grid coordinate the command belongs to
	Points      []Point
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float32
	Alpha       float32
	Glyph       string
	At          Point
}

// Surface is anything the renderer can draw onto
type Surface interface {
	FillPolygon(pts []Point, fill color.RGBA, alpha float32)
	StrokePolygon(pts []Point, stroke color.RGBA, width float32, alpha float32)
	DrawGlyph(glyph string, at Point, fill color.RGBA, alpha float32)
}

// Scene is the read-only input of a frame
type Scene struct {
	Grid     *maplib.Grid
	Objects  *maplib.ObjectSet
	Rotation maplib.Rotation
	Hover    core.Cell
}

// SceneOf snapshots the sandbox fields the renderer reads
func SceneOf(sb *core.Sandbox) Scene {
	return Scene{
		Grid:     sb.Grid,
		Objects:  sb.Objects,
		Rotation: sb.Rotation,
		Hover:    sb.Hover,
	}
}

// IsoRenderer turns a scene into draw commands
type IsoRenderer struct {
	Proj Projection
	// EdgeStroke outlines each top face; zero width disables it
	EdgeStroke      color.RGBA
	EdgeStrokeWidth float32
	EdgeAlpha       float32
}

// NewIsoRenderer creates a renderer using the configured tile geometry
func NewIsoRenderer() *IsoRenderer {
	return &IsoRenderer{
		Proj: NewProjection(config.TileWidth, config.TileHeight, config.HeightStep,
			float64(config.SurfaceWidth)/2, config.TopMargin),
		EdgeStroke:      config.OutlineColor,
		EdgeStrokeWidth: 1,
		EdgeAlpha:       0.3,
	}
}

// BuildFrame produces the commands for one frame, in paint order. There
// is no depth buffer, so the order is the occlusion contract:
//
//  1. terrain, view cells row-major (vy, then vx), back to front for this
//     camera; per cell the right wall, the left wall, then the top face
//  2. the hover outline
//  3. object glyphs in placement order
//
// BuildFrame only reads the scene.
func (r *IsoRenderer) BuildFrame(s Scene) []DrawCmd {
	g := s.Grid
	n := g.Size
	cmds := make([]DrawCmd, 0, n*n*2+s.Objects.Len()+1)

	for vy := 0; vy < n; vy++ {
		for vx := 0; vx < n; vx++ {
			gx, gy := maplib.UnrotateCoords(vx, vy, s.Rotation, n)
			tile := g.At(gx, gy)
			cmds = r.appendTile(cmds, s, vx, vy, maplib.Point{X: gx, Y: gy}, *tile)
		}
	}

	if s.Hover.Valid && g.InBounds(s.Hover.X, s.Hover.Y) {
		vx, vy := maplib.RotateCoords(s.Hover.X, s.Hover.Y, s.Rotation, n)
		d := r.Proj.Diamond(vx, vy, g.HeightAt(s.Hover.X, s.Hover.Y))
		cmds = append(cmds, DrawCmd{
			Kind:        CmdStrokePolygon,
			Layer:       LayerHover,
			Cell:        maplib.Point{X: s.Hover.X, Y: s.Hover.Y},
			Points:      d[:],
			Stroke:      config.HoverColor,
			StrokeWidth: 2,
			Alpha:       1,
		})
	}

	for _, obj := range s.Objects.All() {
		vx, vy := maplib.RotateCoords(obj.X, obj.Y, s.Rotation, n)
		top := r.Proj.TileTop(vx, vy, g.HeightAt(obj.X, obj.Y))
		cmds = append(cmds, DrawCmd{
			Kind:  CmdGlyph,
			Layer: LayerObject,
			Cell:  maplib.Point{X: obj.X, Y: obj.Y},
			Glyph: ObjectGlyphs[obj.Kind],
			Fill:  ObjectColors[obj.Kind],
			Alpha: 1,
			// Bottom-aligned glyph: its base sits on the top face's centre,
			// half a tile straight below the apex
			At: Point{top.X, top.Y + r.Proj.HalfH},
		})
	}
	return cmds
}

// appendTile emits the visible walls and the top face of one view cell.
// A wall is as tall as the drop to the view-space neighbour in front of
// it; off-grid neighbours count as height 0.
func (r *IsoRenderer) appendTile(cmds []DrawCmd, s Scene, vx, vy int, cell maplib.Point, tile maplib.Tile) []DrawCmd {
	g := s.Grid
	n := g.Size
	clr := terrainColor(tile.Terrain)
	alpha := terrainAlpha(tile.Terrain)
	d := r.Proj.Diamond(vx, vy, tile.Height)
	top, right, bottom, left := d[0], d[1], d[2], d[3]

	neighborHeight := func(nvx, nvy int) int {
		if nvx >= n || nvy >= n {
			return 0
		}
		gx, gy := maplib.UnrotateCoords(nvx, nvy, s.Rotation, n)
		return g.HeightAt(gx, gy)
	}

	if drop := tile.Height - neighborHeight(vx+1, vy); drop > 0 {
		h := float64(drop) * r.Proj.HeightStep
		cmds = append(cmds, DrawCmd{
			Kind:   CmdFillPolygon,
			Layer:  LayerRightWall,
			Cell:   cell,
			Points: []Point{right, bottom, {bottom.X, bottom.Y + h}, {right.X, right.Y + h}},
			Fill:   shade(clr, rightWallShade),
			Alpha:  alpha,
		})
	}
	if drop := tile.Height - neighborHeight(vx, vy+1); drop > 0 {
		h := float64(drop) * r.Proj.HeightStep
		cmds = append(cmds, DrawCmd{
			Kind:   CmdFillPolygon,
			Layer:  LayerLeftWall,
			Cell:   cell,
			Points: []Point{left, bottom, {bottom.X, bottom.Y + h}, {left.X, left.Y + h}},
			Fill:   shade(clr, leftWallShade),
			Alpha:  alpha,
		})
	}

	return append(cmds, DrawCmd{
		Kind:        CmdFillPolygon,
		Layer:       LayerTop,
		Cell:        cell,
		Points:      []Point{top, right, bottom, left},
		Fill:        clr,
		Alpha:       alpha,
		Stroke:      r.EdgeStroke,
		StrokeWidth: r.EdgeStrokeWidth,
	})
}

// Draw renders a scene onto a surface
func (r *IsoRenderer) Draw(dst Surface, s Scene) {
	Replay(dst, r.BuildFrame(s), r.EdgeAlpha)
}

// Replay sends commands to a surface in order. strokeAlpha applies to
// the outline of filled polygons.
func Replay(dst Surface, cmds []DrawCmd, strokeAlpha float32) {
	for _, c := range cmds {
		switch c.Kind {
		case CmdFillPolygon:
			dst.FillPolygon(c.Points, c.Fill, c.Alpha)
			if c.StrokeWidth > 0 {
				dst.StrokePolygon(c.Points, c.Stroke, c.StrokeWidth, c.Alpha*strokeAlpha)
			}
		case CmdStrokePolygon:
			dst.StrokePolygon(c.Points, c.Stroke, c.StrokeWidth, c.Alpha)
		case CmdGlyph:
			dst.DrawGlyph(c.Glyph, c.At, c.Fill, c.Alpha)
		}
	}
}
