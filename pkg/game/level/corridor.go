package level

import "codeberg.org/anaseto/gruid"

// CorridorType is the shape of a corridor polyline.
type CorridorType int

// Corridor shapes
const (
	StraightHorizontal CorridorType = iota // left room to right room, S-shaped through a free column
	StraightVertical                       // top room to bottom room, S-shaped through a free row
	LeftTurn                               // L-shaped, bending left from the lower door
	RightTurn                              // L-shaped, bending right from the lower door
)

func (t CorridorType) String() string {
	switch t {
	case StraightHorizontal:
		return "StraightHorizontal"
	case StraightVertical:
		return "StraightVertical"
	case LeftTurn:
		return "LeftTurn"
	case RightTurn:
		return "RightTurn"
	default:
		return "Unknown"
	}
}

// Corridor joins two doors with an axis-aligned polyline. The first and last
// points are the door positions.
type Corridor struct {
	Type   CorridorType  `json:"type"`
	Rooms  [2]int        `json:"rooms"`
	Points []gruid.Point `json:"points"`
}

// Cells returns every cell the corridor passes through, both doors included,
// in walking order.
func (c *Corridor) Cells() []gruid.Point {
	if len(c.Points) == 0 {
		return nil
	}
	out := []gruid.Point{c.Points[0]}
	for i := 1; i < len(c.Points); i++ {
		from, to := c.Points[i-1], c.Points[i]
		step := gruid.Point{X: sign(to.X - from.X), Y: sign(to.Y - from.Y)}
		for p := from; p != to; {
			p = p.Add(step)
			out = append(out, p)
		}
	}
	return out
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
