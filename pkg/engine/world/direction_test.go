package world

import (
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestDirection_Opposite(t *testing.T) {
	cases := map[Direction]Direction{Up: Down, Right: Left, Down: Up, Left: Right}
	for d, want := range cases {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v.Opposite().Opposite() = %v, want %v", d, got, d)
		}
	}
}

func TestDirection_DeltaCancelsWithOpposite(t *testing.T) {
	for _, d := range AllDirections() {
		sum := d.Delta().Add(d.Opposite().Delta())
		if sum != (gruid.Point{}) {
			t.Errorf("%v.Delta() + opposite = %v, want zero", d, sum)
		}
	}
}

func TestDirection_InvalidIsUnchanged(t *testing.T) {
	d := Direction(7)
	if d.IsValid() {
		t.Fatal("Direction(7).IsValid() = true, want false")
	}
	if d.Opposite() != d {
		t.Errorf("Direction(7).Opposite() = %v, want unchanged", d.Opposite())
	}
	if d.String() != "Unknown" {
		t.Errorf("Direction(7).String() = %q, want \"Unknown\"", d.String())
	}
}

func TestBetween(t *testing.T) {
	a := gruid.Point{X: 1, Y: 1}
	for _, d := range AllDirections() {
		got, ok := Between(a, a.Add(d.Delta()))
		if !ok || got != d {
			t.Errorf("Between(%v, %v) = %v, %v; want %v, true", a, a.Add(d.Delta()), got, ok, d)
		}
	}
	if _, ok := Between(a, gruid.Point{X: 2, Y: 2}); ok {
		t.Error("Between on a diagonal returned ok = true")
	}
}

func TestColor_UnlockedIsNotALockColor(t *testing.T) {
	if Unlocked.IsLock() {
		t.Error("Unlocked.IsLock() = true, want false")
	}
	for _, c := range LockColors() {
		if !c.IsLock() {
			t.Errorf("%v.IsLock() = false, want true", c)
		}
	}
}
