package ebiten

// RenderFrame captures a snapshot of the session's current level for the
// next Draw call.
func (e *EbitenRenderer) RenderFrame() {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	s := e.session
	if s == nil || s.Current() == nil || len(s.Current().Rooms) == 0 {
		e.snapshot.valid = false
		return
	}

	e.snapshot.valid = true
	e.snapshot.level = s.Number
	e.snapshot.startRoom = s.StartRoom
	e.snapshot.player = s.Player
	e.snapshot.size, e.snapshot.tiles = tiles(s.Current(), s.Player)
}
