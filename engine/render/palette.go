package render

import (
	"image/color"

	"github.com/1siamBot/iso-sandbox/engine/maplib"
)

// TerrainColors maps terrain types to top-face colours
var TerrainColors = map[maplib.TerrainType]color.RGBA{
	maplib.TerrainGrass: {34, 139, 34, 255},   // forest green
	maplib.TerrainWater: {30, 144, 255, 255},  // blue
	maplib.TerrainStone: {128, 128, 128, 255}, // gray
	maplib.TerrainSand:  {238, 214, 175, 255}, // sandy
}

// TerrainAlpha is the global alpha per terrain; water is translucent
var TerrainAlpha = map[maplib.TerrainType]float32{
	maplib.TerrainWater: 0.85,
}

// ObjectGlyphs maps object kinds to the glyph drawn on their cell
var ObjectGlyphs = map[maplib.ObjectKind]string{
	maplib.ObjFountain:  "≈",
	maplib.ObjExcavator: "▼",
	maplib.ObjObelisk:   "▲",
	maplib.ObjTree:      "♣",
}

// ObjectColors maps object kinds to glyph colours
var ObjectColors = map[maplib.ObjectKind]color.RGBA{
	maplib.ObjFountain:  {200, 240, 255, 255},
	maplib.ObjExcavator: {255, 160, 40, 255},
	maplib.ObjObelisk:   {230, 230, 240, 255},
	maplib.ObjTree:      {0, 90, 0, 255},
}

// Wall shading relative to the top face
const (
	rightWallShade = 0.75
	leftWallShade  = 0.55
)

func terrainColor(t maplib.TerrainType) color.RGBA {
	if clr, ok := TerrainColors[t]; ok {
		return clr
	}
	return color.RGBA{255, 0, 255, 255}
}

func terrainAlpha(t maplib.TerrainType) float32 {
	if a, ok := TerrainAlpha[t]; ok {
		return a
	}
	return 1
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
