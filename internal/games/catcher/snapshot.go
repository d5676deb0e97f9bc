package catcher

import "github.com/vovakirdan/cat-catcher/internal/arcade"

// BodySnapshot is the position and velocity of one entity.
type BodySnapshot struct {
	Handle Handle
	X, Y   float64
	W, H   float64
	VX, VY float64
}

// Snapshot captures the complete game state for determinism testing and for
// frontends that draw the world themselves.
type Snapshot struct {
	Tick      int
	Phase     Phase
	Score     int
	Paused    bool
	Player    BodySnapshot
	Animation Animation
	Cats      []BodySnapshot // Creation order
	ScoreText string
	Banner    string
	Choices   []Choice
	Cursor    int
	WorldW    float64
	WorldH    float64
	FloorY    float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.ctrl.Session()
	snap := Snapshot{
		Tick:      g.ctrl.Ticks(),
		Phase:     s.Phase(),
		Score:     s.Score,
		Paused:    g.paused,
		Animation: g.anim,
		ScoreText: g.texts[SlotScore],
		Banner:    g.texts[SlotBanner],
		Choices:   append([]Choice(nil), g.ctrl.Choices()...),
		Cursor:    g.cursor,
		WorldW:    g.worldW,
		WorldH:    g.worldH,
		FloorY:    g.FloorY(),
	}

	for _, b := range g.world.Bodies() {
		bs := snapshotBody(b)
		switch b.Tag {
		case tagPlayer:
			snap.Player = bs
		case tagCat:
			snap.Cats = append(snap.Cats, bs)
		}
	}
	return snap
}

func snapshotBody(b *arcade.Body) BodySnapshot {
	return BodySnapshot{
		Handle: Handle(b.ID),
		X:      b.X,
		Y:      b.Y,
		W:      b.W,
		H:      b.H,
		VX:     b.VX,
		VY:     b.VY,
	}
}
