package maplib

import (
	"fmt"
	"math/rand"
	"strings"
)

// TerrainType defines the terrain of a tile
type TerrainType uint8

const (
	TerrainGrass TerrainType = iota
	TerrainWater
	TerrainStone
	TerrainSand
)

func (t TerrainType) String() string {
	switch t {
	case TerrainGrass:
		return "Grass"
	case TerrainWater:
		return "Water"
	case TerrainStone:
		return "Stone"
	case TerrainSand:
		return "Sand"
	}
	return "Unknown"
}

// Tile represents a single map tile
type Tile struct {
	Terrain TerrainType
	Height  int // elevation in height steps, never negative
}

// Grid is a square tile map stored row-major
type Grid struct {
	Size  int
	Tiles []Tile
}

// NewGrid creates an n×n grid of height-0 grass
func NewGrid(n int) *Grid {
	return &Grid{
		Size:  n,
		Tiles: make([]Tile, n*n),
	}
}

// Generate fills an n×n grid with grass of height 1 or 2 and carves a
// diamond lake of height-0 water around the centre.
func Generate(n, lakeRadius int, rng *rand.Rand) *Grid {
	g := NewGrid(n)
	for i := range g.Tiles {
		g.Tiles[i] = Tile{Terrain: TerrainGrass, Height: 1 + rng.Intn(2)}
	}

	c := n / 2
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if abs(x-c)+abs(y-c) < lakeRadius {
				g.Tiles[y*n+x] = Tile{Terrain: TerrainWater, Height: 0}
			}
		}
	}
	return g
}

// At returns a pointer to the tile at (x, y)
func (g *Grid) At(x, y int) *Tile {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.Tiles[y*g.Size+x]
}

// Set overwrites the tile at (x, y); off-grid writes are ignored
func (g *Grid) Set(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	if t.Height < 0 {
		t.Height = 0
	}
	g.Tiles[y*g.Size+x] = t
}

// InBounds checks if coordinates are within grid bounds
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Size && y < g.Size
}

// HeightAt returns the tile height, or 0 off-grid
func (g *Grid) HeightAt(x, y int) int {
	if t := g.At(x, y); t != nil {
		return t.Height
	}
	return 0
}

// Point is a grid coordinate
type Point struct {
	X, Y int
}

var neighborOffsets = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Neighbors4 returns the in-bounds orthogonal neighbours of (x, y) in
// north, east, south, west order. There is no wraparound.
func (g *Grid) Neighbors4(x, y int) []Point {
	out := make([]Point, 0, 4)
	for _, d := range neighborOffsets {
		nx, ny := x+d.X, y+d.Y
		if g.InBounds(nx, ny) {
			out = append(out, Point{nx, ny})
		}
	}
	return out
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{Size: g.Size, Tiles: make([]Tile, len(g.Tiles))}
	copy(c.Tiles, g.Tiles)
	return c
}

var terrainLetters = map[TerrainType]byte{
	TerrainGrass: 'g',
	TerrainWater: 'w',
	TerrainStone: 's',
	TerrainSand:  'a',
}

// Heightmap renders the grid as text, one row per line, each cell as a
// terrain letter followed by its height.
func (g *Grid) Heightmap() string {
	var b strings.Builder
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			t := g.Tiles[y*g.Size+x]
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%c%d", terrainLetters[t.Terrain], t.Height)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
