package maplib

// Rotation is the view rotation in quarter turns: 0, 90, 180 or 270 degrees
type Rotation uint8

const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270
)

// Rotate steps the rotation by delta quarter turns, wrapping mod 4
func (r Rotation) Rotate(delta int) Rotation {
	v := (int(r) + delta) % 4
	if v < 0 {
		v += 4
	}
	return Rotation(v)
}

// Degrees returns the rotation angle
func (r Rotation) Degrees() int {
	return int(r%4) * 90
}

// RotateCoords maps a grid coordinate into view space for an n×n grid
func RotateCoords(x, y int, r Rotation, n int) (int, int) {
	m := n - 1
	switch r % 4 {
	case Rot90:
		return m - y, x
	case Rot180:
		return m - x, m - y
	case Rot270:
		return y, m - x
	}
	return x, y
}

// UnrotateCoords is the exact inverse of RotateCoords
func UnrotateCoords(vx, vy int, r Rotation, n int) (int, int) {
	m := n - 1
	switch r % 4 {
	case Rot90:
		return vy, m - vx
	case Rot180:
		return m - vx, m - vy
	case Rot270:
		return m - vy, vx
	}
	return vx, vy
}
