package level

import (
	"errors"
	"testing"

	"codeberg.org/anaseto/gruid"

	"rogue/pkg/engine/world"
	"rogue/pkg/game/entities"
)

// rowLevel builds n rooms side by side on one grid row, each linked to the
// next through an open passage with a straight corridor.
func rowLevel(t *testing.T, n int) *Level {
	t.Helper()

	l := New()
	for i := 0; i < n; i++ {
		r := NewRoom(i, 0, i)
		r.TopLeft = gruid.Point{X: i*30 + 2, Y: 1}
		r.BottomRight = gruid.Point{X: i*30 + 20, Y: 8}
		l.AddRoom(r)
	}
	for i := 0; i+1 < n; i++ {
		a, b := l.Rooms[i], l.Rooms[i+1]
		Link(a, b, world.Right)
		p := l.AddPassage(NewPassage(i, i+1))
		a.Doors[world.Right] = &Door{Pos: gruid.Point{X: a.BottomRight.X, Y: 4}, Passage: p}
		b.Doors[world.Left] = &Door{Pos: gruid.Point{X: b.TopLeft.X, Y: 5}, Passage: p}
		mid := a.BottomRight.X + 5
		l.AddCorridor(&Corridor{
			Type:  StraightHorizontal,
			Rooms: [2]int{i, i + 1},
			Points: []gruid.Point{
				a.Doors[world.Right].Pos,
				{X: mid, Y: 4},
				{X: mid, Y: 5},
				b.Doors[world.Left].Pos,
			},
		})
	}
	return l
}

func TestLevel_ValidateAcceptsWellFormedLevel(t *testing.T) {
	l := rowLevel(t, 3)
	if err := l.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if !l.Reachable(0) {
		t.Error("Reachable(0) = false, want true")
	}
}

func TestLevel_ValidateRejectsBrokenReciprocity(t *testing.T) {
	l := rowLevel(t, 2)
	l.Rooms[1].Neighbors[world.Left] = NoRoom
	l.Rooms[1].Doors[world.Left] = nil

	err := l.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Validate() = %v, want ErrInvalid", err)
	}
}

func TestLevel_ValidateRejectsDoorOffWall(t *testing.T) {
	l := rowLevel(t, 2)
	l.Rooms[0].Doors[world.Right].Pos = l.Rooms[0].BottomRight

	if err := l.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Validate() with a corner door = %v, want ErrInvalid", err)
	}
}

func TestLevel_ValidateRejectsCorridorMismatch(t *testing.T) {
	l := rowLevel(t, 2)
	l.Corridors[0].Points[3] = gruid.Point{X: 99, Y: 99}

	if err := l.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Validate() = %v, want ErrInvalid", err)
	}
}

func TestLevel_ValidateRejectsKeyBehindOwnLock(t *testing.T) {
	l := rowLevel(t, 2)
	l.Passages[0].Lock(world.Blue)
	l.Rooms[1].AddEntity(entities.NewKey(nil, world.Blue, gruid.Point{X: 40, Y: 4}))

	if err := l.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Validate() = %v, want ErrInvalid", err)
	}
}

func TestLevel_SolvableNeedsReachableKey(t *testing.T) {
	l := rowLevel(t, 3)
	l.Passages[1].Lock(world.Blue)

	if l.Solvable(0) {
		t.Fatal("Solvable(0) without a key = true, want false")
	}
	if got := len(Collect(l, 0)); got != 2 {
		t.Errorf("Collect reached %d rooms, want 2", got)
	}

	key := entities.NewKey(nil, world.Blue, gruid.Point{X: 40, Y: 3})
	l.Rooms[1].AddEntity(key)
	if !l.Solvable(0) {
		t.Error("Solvable(0) with the key in room 1 = false, want true")
	}

	l.Rooms[1].RemoveEntity(key)
	l.Rooms[2].AddEntity(entities.NewKey(nil, world.Blue, gruid.Point{X: 70, Y: 3}))
	if l.Solvable(0) {
		t.Error("Solvable(0) with the key behind its lock = true, want false")
	}
}

func TestLevel_SolvableFollowsKeyChain(t *testing.T) {
	l := rowLevel(t, 4)
	l.Passages[1].Lock(world.Blue)
	l.Passages[2].Lock(world.Red)
	// Red key behind the blue door, blue key in the start room's neighbour.
	l.Rooms[1].AddEntity(entities.NewKey(nil, world.Blue, gruid.Point{X: 40, Y: 3}))
	l.Rooms[2].AddEntity(entities.NewKey(nil, world.Red, gruid.Point{X: 70, Y: 3}))

	if !l.Solvable(0) {
		t.Error("Solvable(0) = false, want true")
	}
	if l.Solvable(3) {
		t.Error("Solvable(3) = true, want false")
	}
}

func TestWalk_RespectsCrossPredicate(t *testing.T) {
	l := rowLevel(t, 3)
	l.Passages[0].Lock(world.Cyan)

	got := Walk(l, 0, func(p *Passage) bool { return p.Open })
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("Walk = %v, want [0]", got)
	}
	if got := Walk(l, 0, nil); len(got) != 3 {
		t.Errorf("Walk ignoring locks = %v, want all three rooms", got)
	}
	if got := Walk(l, 7, nil); got != nil {
		t.Errorf("Walk from a missing room = %v, want nil", got)
	}
}

func TestLevel_Lookups(t *testing.T) {
	l := rowLevel(t, 2)
	enemy := entities.New(nil, entities.Ogre, gruid.Point{X: 5, Y: 5})
	l.AddEnemy(enemy)

	if i, ok := l.RoomAt(gruid.Point{X: 35, Y: 3}); !ok || i != 1 {
		t.Errorf("RoomAt = %d, %v; want 1, true", i, ok)
	}
	if _, ok := l.RoomAt(gruid.Point{X: 25, Y: 3}); ok {
		t.Error("RoomAt between rooms returned ok = true")
	}
	door, p := l.DoorAt(gruid.Point{X: 20, Y: 4})
	if door == nil || p != l.Passages[0] {
		t.Errorf("DoorAt = %v, %v; want the first passage", door, p)
	}
	if got := l.EnemyAt(gruid.Point{X: 5, Y: 5}); got != enemy {
		t.Errorf("EnemyAt = %v, want %v", got, enemy)
	}
}

func TestRoom_FreeCellsAvoidDoorsAndEntities(t *testing.T) {
	l := rowLevel(t, 2)
	r := l.Rooms[0]
	taken := gruid.Point{X: 3, Y: 2}
	r.AddEntity(entities.New(nil, entities.Food, taken))

	cells := r.FreeCells()
	in := r.Interior()
	if want := in.Size().X*in.Size().Y - 2; len(cells) != want {
		t.Errorf("len(FreeCells()) = %d, want %d", len(cells), want)
	}
	for _, p := range cells {
		if p == taken {
			t.Errorf("FreeCells() contains occupied cell %v", p)
		}
		if p == (gruid.Point{X: 19, Y: 4}) {
			t.Errorf("FreeCells() contains cell %v next to a door", p)
		}
		if !p.In(in) {
			t.Errorf("FreeCells() contains %v outside the interior", p)
		}
	}
}

func TestRoom_RemoveKind(t *testing.T) {
	r := NewRoom(0, 0, 0)
	r.AddEntity(entities.NewKey(nil, world.Red, gruid.Point{X: 1}))
	r.AddEntity(entities.New(nil, entities.Food, gruid.Point{X: 2}))
	r.AddEntity(entities.NewKey(nil, world.Blue, gruid.Point{X: 3}))

	if n := r.RemoveKind(entities.Key); n != 2 {
		t.Errorf("RemoveKind(Key) = %d, want 2", n)
	}
	if len(r.Entities) != 1 || r.HasKey() {
		t.Errorf("entities after RemoveKind = %v", r.Entities)
	}
}

func TestCorridor_Cells(t *testing.T) {
	c := &Corridor{Points: []gruid.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}}}
	got := c.Cells()
	want := []gruid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}}
	if len(got) != len(want) {
		t.Fatalf("Cells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cells()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLevel_CloneIsDeep(t *testing.T) {
	l := rowLevel(t, 2)
	c, err := l.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	c.Passages[0].Lock(world.Green)
	if !l.Passages[0].Open {
		t.Error("locking the clone changed the original")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("clone Validate() = %v", err)
	}
}
