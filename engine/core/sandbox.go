package core

import (
	"math/rand"

	"github.com/1siamBot/iso-sandbox/engine/maplib"
	"github.com/1siamBot/iso-sandbox/engine/systems"
)

// Cell is an optional grid coordinate
type Cell struct {
	X, Y  int
	Valid bool
}

// Tool is the optional selected object kind
type Tool struct {
	Kind   maplib.ObjectKind
	Active bool
}

// Sandbox owns all simulation state: terrain, objects, view rotation,
// hover and tool selection. Everything runs on the ebiten update
// goroutine; a host that ticks and draws from different goroutines must
// guard a Sandbox with one mutex held for a full tick or a full draw.
type Sandbox struct {
	Grid     *maplib.Grid
	Objects  *maplib.ObjectSet
	Rotation maplib.Rotation
	Hover    Cell
	Tool     Tool
	Terrain  *systems.TerrainSystem

	size       int
	lakeRadius int
	rng        *rand.Rand
}

// NewSandbox creates and generates an n×n sandbox from the given RNG
func NewSandbox(n, lakeRadius int, rng *rand.Rand) *Sandbox {
	sb := &Sandbox{
		Objects:    maplib.NewObjectSet(n),
		Terrain:    systems.NewTerrainSystem(),
		size:       n,
		lakeRadius: lakeRadius,
		rng:        rng,
	}
	sb.Grid = maplib.Generate(n, lakeRadius, rng)
	return sb
}

func (sb *Sandbox) Size() int { return sb.size }

// Reset clears objects and tool selection and regenerates terrain.
// Rotation is kept.
func (sb *Sandbox) Reset() {
	sb.Objects.Clear()
	sb.Tool = Tool{}
	sb.Hover = Cell{}
	sb.Grid = maplib.Generate(sb.size, sb.lakeRadius, sb.rng)
}

// PlaceObject puts an object of the given kind on (x, y)
func (sb *Sandbox) PlaceObject(kind maplib.ObjectKind, x, y int) (maplib.PlacedObject, error) {
	return sb.Objects.Place(kind, x, y)
}

// Rotate turns the view by delta quarter turns
func (sb *Sandbox) Rotate(delta int) maplib.Rotation {
	sb.Rotation = sb.Rotation.Rotate(delta)
	return sb.Rotation
}

// SelectTool toggles the tool: picking the active kind deselects it
func (sb *Sandbox) SelectTool(kind maplib.ObjectKind) Tool {
	if sb.Tool.Active && sb.Tool.Kind == kind {
		sb.Tool = Tool{}
	} else {
		sb.Tool = Tool{Kind: kind, Active: true}
	}
	return sb.Tool
}

// Tick advances the terrain by one mutation step
func (sb *Sandbox) Tick() int {
	return sb.Terrain.Tick(sb.Grid, sb.Objects)
}
