package config

import (
	"image/color"
	"time"
)

// Grid and tile geometry
const (
	GridSize   = 16
	TileWidth  = 64
	TileHeight = 32
	HeightStep = 8 // pixels per unit of tile height

	// LakeRadius is the Manhattan radius (exclusive) of the generated lake
	LakeRadius = 3

	// TopMargin keeps raised back-row tiles inside the surface
	TopMargin = 100
)

// Surface size
const (
	SurfaceWidth  = (GridSize + 1) * TileWidth
	SurfaceHeight = GridSize*TileHeight/2 + 400
)

// Simulation timing
const (
	TickInterval = 500 * time.Millisecond
	MaxFrameTime = time.Second // cap per Update so a stall runs at most two ticks
	NoticeTTL    = 2 * time.Second
)

// Toolbar layout
const (
	ToolbarHeight = 36
	ButtonWidth   = 96
	ButtonHeight  = 24
	ButtonGap     = 8
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	HoverColor      = color.RGBA{255, 255, 0, 255}
	OutlineColor    = color.RGBA{0, 0, 0, 255}
	NoticeColor     = color.RGBA{0, 0, 0, 200}
	ButtonColor     = color.RGBA{60, 60, 100, 255}
	ButtonActive    = color.RGBA{60, 140, 60, 255}
	ButtonBorder    = color.RGBA{100, 100, 160, 255}
)
