package catcher

import (
	"github.com/vovakirdan/cat-catcher/internal/arcade"
	"github.com/vovakirdan/cat-catcher/internal/core"
)

// Visual characters for rendering
const (
	StarChar   = '.'
	GroundChar = '▀'
	DirtChar   = '░'
	CatChar    = '@'
)

// Player sprite rows per animation. The bottom row sits on the floor.
var playerSprites = map[Animation][2]string{
	AnimTurn:  {" O ", "/|\\"},
	AnimLeft:  {"<O ", "/| "},
	AnimRight: {" O>", " |\\"},
}

// Render draws the game into dst, scaling world units to screen cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCenteredColored(dst.Height()/2, "Window too small", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue")
		return
	}

	g.renderBackground(dst)

	for _, b := range g.world.Bodies() {
		if b.Tag == tagCat {
			g.renderCat(dst, b)
		}
	}
	if player, ok := g.world.Body(arcade.BodyID(g.ctrl.Player())); ok {
		g.renderPlayer(dst, player)
	}

	dst.DrawTextColored(1, 0, g.texts[SlotScore], core.ColorBrightWhite)

	switch {
	case g.ctrl.Session().GameOver:
		g.renderWin(dst)
	case g.paused:
		g.renderOverlay(dst, []string{"PAUSED", "P to resume"}, core.ColorYellow)
	}
}

// cell converts a world position to a screen cell.
func (g *Game) cell(dst *core.Screen, x, y float64) (int, int) {
	return core.Scale(x, g.worldW, dst.Width()), core.Scale(y, g.worldH, dst.Height())
}

// renderBackground draws a fixed starfield and the ground.
func (g *Game) renderBackground(dst *core.Screen) {
	_, groundY := g.cell(dst, 0, g.FloorY())

	for y := 0; y < groundY; y++ {
		for x := 0; x < dst.Width(); x++ {
			// Cheap positional hash; the field does not move between frames
			if (x*7+y*13+x*y)%41 == 0 {
				dst.SetColored(x, y, StarChar, core.ColorDim)
			}
		}
	}

	dst.DrawHLineColored(0, groundY, dst.Width(), GroundChar, core.ColorGreen)
	for y := groundY + 1; y < dst.Height(); y++ {
		dst.DrawHLineColored(0, y, dst.Width(), DirtChar, core.ColorGray)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, b *arcade.Body) {
	sprite, ok := playerSprites[g.anim]
	if !ok {
		sprite = playerSprites[AnimTurn]
	}

	cx, _ := g.cell(dst, b.X, 0)
	// Nudge the bottom edge up so a body resting on the floor stays above it
	_, bottom := g.cell(dst, 0, b.Box().Bottom()-0.001)

	for row, line := range sprite {
		y := bottom - (len(sprite) - 1 - row)
		i := 0
		for _, r := range line {
			if r != ' ' {
				dst.SetColored(cx-1+i, y, r, core.ColorBrightYellow)
			}
			i++
		}
	}
}

func (g *Game) renderCat(dst *core.Screen, b *arcade.Body) {
	x, y := g.cell(dst, b.X, b.Y)
	dst.SetColored(x, y, CatChar, core.ColorOrange)
}

func (g *Game) renderWin(dst *core.Screen) {
	lines := []string{g.texts[SlotBanner], ""}
	for i, c := range g.ctrl.Choices() {
		prefix := "  "
		if i == g.cursor {
			prefix = "> "
		}
		lines = append(lines, prefix+c.Label())
	}
	lines = append(lines, "", "R restart  M menu")
	g.renderOverlay(dst, lines, core.ColorBrightGreen)
}

// renderOverlay draws a centered box with the given lines. The first line
// is highlighted.
func (g *Game) renderOverlay(dst *core.Screen, lines []string, c core.Color) {
	maxLen := 0
	for _, l := range lines {
		maxLen = core.Max(maxLen, len([]rune(l)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, c)

	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = c
		}
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, color)
	}
}
