package maplib

import "testing"

func TestRotation_RoundTrip(t *testing.T) {
	const n = 16
	for r := Rot0; r <= Rot270; r++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				vx, vy := RotateCoords(x, y, r, n)
				if vx < 0 || vy < 0 || vx >= n || vy >= n {
					t.Fatalf("rot %d: (%d,%d) -> (%d,%d) left the grid", r, x, y, vx, vy)
				}
				gx, gy := UnrotateCoords(vx, vy, r, n)
				if gx != x || gy != y {
					t.Fatalf("rot %d: (%d,%d) -> (%d,%d) -> (%d,%d)", r, x, y, vx, vy, gx, gy)
				}
			}
		}
	}
}

func TestRotation_Formulas(t *testing.T) {
	const n = 16
	tests := []struct {
		r      Rotation
		wx, wy int
	}{
		{Rot0, 2, 5},
		{Rot90, 10, 2},
		{Rot180, 13, 10},
		{Rot270, 5, 13},
	}
	for _, tc := range tests {
		vx, vy := RotateCoords(2, 5, tc.r, n)
		if vx != tc.wx || vy != tc.wy {
			t.Fatalf("rot %d: got (%d,%d), want (%d,%d)", tc.r, vx, vy, tc.wx, tc.wy)
		}
	}
}

func TestRotation_FourStepsIsIdentity(t *testing.T) {
	for start := Rot0; start <= Rot270; start++ {
		r := start
		for i := 0; i < 4; i++ {
			r = r.Rotate(1)
		}
		if r != start {
			t.Fatalf("rotate right x4 from %d gave %d", start, r)
		}
		if start.Rotate(-1).Rotate(1) != start {
			t.Fatalf("left then right from %d is not identity", start)
		}
	}
	if Rot0.Rotate(-1) != Rot270 {
		t.Fatal("rotate left from 0 should wrap to 270")
	}
	if Rot270.Degrees() != 270 {
		t.Fatal("Rot270 should be 270 degrees")
	}
}
