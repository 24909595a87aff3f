package maplib

import "errors"

var (
	ErrAlreadyOccupied = errors.New("cell already occupied")
	ErrOutOfBounds     = errors.New("cell out of bounds")
)

// ObjectKind identifies a placeable object
type ObjectKind uint8

const (
	ObjFountain ObjectKind = iota
	ObjExcavator
	ObjObelisk
	ObjTree
)

// AllKinds lists every placeable kind in toolbar order
var AllKinds = []ObjectKind{ObjFountain, ObjExcavator, ObjObelisk, ObjTree}

func (k ObjectKind) String() string {
	switch k {
	case ObjFountain:
		return "Fountain"
	case ObjExcavator:
		return "Excavator"
	case ObjObelisk:
		return "Obelisk"
	case ObjTree:
		return "Tree"
	}
	return "Unknown"
}

// Effect is what an object does to its neighbours each tick
type Effect uint8

const (
	EffectRaiseWater Effect = iota
	EffectLowerTerrain
	EffectRaiseTerrain
	EffectSpreadGrass
	// EffectNone belongs to no placeable kind and changes nothing
	EffectNone
)

func (e Effect) String() string {
	switch e {
	case EffectRaiseWater:
		return "RaiseWater"
	case EffectLowerTerrain:
		return "LowerTerrain"
	case EffectRaiseTerrain:
		return "RaiseTerrain"
	case EffectSpreadGrass:
		return "SpreadGrass"
	case EffectNone:
		return "None"
	}
	return "Unknown"
}

// Effect returns the effect bound to the kind
func (k ObjectKind) Effect() Effect {
	switch k {
	case ObjFountain:
		return EffectRaiseWater
	case ObjExcavator:
		return EffectLowerTerrain
	case ObjObelisk:
		return EffectRaiseTerrain
	case ObjTree:
		return EffectSpreadGrass
	}
	return EffectNone
}

// PlacedObject is an object standing on a grid cell
type PlacedObject struct {
	X, Y   int
	Kind   ObjectKind
	Effect Effect
}

// ObjectSet holds placed objects in insertion order, one per cell
type ObjectSet struct {
	size    int
	objects []PlacedObject
	byCell  map[Point]int // cell -> index into objects
}

// NewObjectSet creates an empty set for an n×n grid
func NewObjectSet(n int) *ObjectSet {
	return &ObjectSet{
		size:   n,
		byCell: make(map[Point]int),
	}
}

// Place appends an object of the given kind at (x, y)
func (s *ObjectSet) Place(kind ObjectKind, x, y int) (PlacedObject, error) {
	if x < 0 || y < 0 || x >= s.size || y >= s.size {
		return PlacedObject{}, ErrOutOfBounds
	}
	p := Point{x, y}
	if _, ok := s.byCell[p]; ok {
		return PlacedObject{}, ErrAlreadyOccupied
	}
	obj := PlacedObject{X: x, Y: y, Kind: kind, Effect: kind.Effect()}
	s.byCell[p] = len(s.objects)
	s.objects = append(s.objects, obj)
	return obj, nil
}

// At returns the object at (x, y), if any
func (s *ObjectSet) At(x, y int) (PlacedObject, bool) {
	i, ok := s.byCell[Point{x, y}]
	if !ok {
		return PlacedObject{}, false
	}
	return s.objects[i], true
}

// All returns the objects in insertion order. The slice must not be modified.
func (s *ObjectSet) All() []PlacedObject {
	return s.objects
}

func (s *ObjectSet) Len() int { return len(s.objects) }

// Clear removes every object
func (s *ObjectSet) Clear() {
	s.objects = s.objects[:0]
	clear(s.byCell)
}
