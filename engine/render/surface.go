package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// EbitenSurface draws render commands onto an ebiten image
type EbitenSurface struct {
	Target   *ebiten.Image
	Face     *text.GoTextFace
	whiteImg *ebiten.Image
}

// NewEbitenSurface loads the glyph font at the given size
func NewEbitenSurface(glyphSize float64) (*EbitenSurface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load glyph font: %w", err)
	}
	whiteImg := ebiten.NewImage(3, 3)
	whiteImg.Fill(color.White)
	return &EbitenSurface{
		Face:     &text.GoTextFace{Source: src, Size: glyphSize},
		whiteImg: whiteImg,
	}, nil
}

// FillPolygon fills a convex polygon
func (s *EbitenSurface) FillPolygon(pts []Point, fill color.RGBA, alpha float32) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(fill.R) / 255
		vs[i].ColorG = float32(fill.G) / 255
		vs[i].ColorB = float32(fill.B) / 255
		vs[i].ColorA = float32(fill.A) / 255 * alpha
	}
	s.Target.DrawTriangles(vs, is, s.whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// StrokePolygon outlines a closed polygon
func (s *EbitenSurface) StrokePolygon(pts []Point, stroke color.RGBA, width float32, alpha float32) {
	clr := premultiply(stroke, alpha)
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(s.Target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}

// DrawGlyph draws text centred horizontally with its bottom at the anchor
func (s *EbitenSurface) DrawGlyph(glyph string, at Point, fill color.RGBA, alpha float32) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(fill)
	op.ColorScale.ScaleAlpha(alpha)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignEnd
	text.Draw(s.Target, glyph, s.Face, op)
}

// premultiply applies a global alpha to a straight-alpha colour
func premultiply(c color.RGBA, alpha float32) color.RGBA {
	a := float32(c.A) / 255 * alpha
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(255 * a),
	}
}
