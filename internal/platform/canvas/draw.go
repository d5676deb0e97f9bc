package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/cat-catcher/internal/core"
	"github.com/vovakirdan/cat-catcher/internal/games/catcher"
)

// Button geometry
const (
	buttonW   = 200
	buttonH   = 40
	buttonGap = 16
)

var (
	skyColor     = color.RGBA{0x10, 0x14, 0x2c, 0xff}
	starColor    = color.RGBA{0x9a, 0xa4, 0xc8, 0xff}
	groundColor  = color.RGBA{0x3c, 0x8c, 0x3c, 0xff}
	dirtColor    = color.RGBA{0x5a, 0x3c, 0x24, 0xff}
	playerColor  = color.RGBA{0xff, 0xe0, 0x40, 0xff}
	catColor     = color.RGBA{0xff, 0x8c, 0x1a, 0xff}
	buttonColor  = color.RGBA{0x30, 0x38, 0x6c, 0xff}
	borderColor  = color.RGBA{0xd0, 0xd4, 0xff, 0xff}
	overlayColor = color.RGBA{0x00, 0x00, 0x00, 0xa0}
)

var face = basicfont.Face7x13

// button is a clickable rectangle with a centered label.
type button struct {
	label      string
	x, y, w, h float64
	onClick    func()
}

func (b button) contains(x, y float64) bool {
	return core.NewBox(b.x+b.w/2, b.y+b.h/2, b.w, b.h).Contains(x, y)
}

// column stacks buttons horizontally centered in width, starting at top.
func column(width, top float64, buttons []button) []button {
	for i := range buttons {
		buttons[i].w, buttons[i].h = buttonW, buttonH
		buttons[i].x = (width - buttonW) / 2
		buttons[i].y = top + float64(i)*(buttonH+buttonGap)
	}
	return buttons
}

func hitButton(buttons []button, x, y float64) (button, bool) {
	for _, b := range buttons {
		if b.contains(x, y) {
			return b, true
		}
	}
	return button{}, false
}

// Draw renders the current scene.
func (a *App) Draw(screen *ebiten.Image) {
	w, h := a.screenSize()
	screen.Fill(skyColor)
	drawStars(screen, w, h)

	switch a.scene {
	case scenePlay:
		a.drawPlay(screen)
	case sceneCredits:
		y := 80
		for _, line := range a.opts.Config.Credits {
			drawCentered(screen, line, w, y, color.White)
			y += 24
		}
	default:
		drawCentered(screen, "CAT CATCHER", w, int(h/2)-60, catColor)
		drawCentered(screen, "Catch ten falling cats", w, int(h/2)-36, starColor)
	}

	for _, b := range a.buttons {
		drawButton(screen, b)
	}
}

func (a *App) drawPlay(screen *ebiten.Image) {
	s := a.snap
	sw, sh := a.screenSize()

	ground := float32(s.FloorY)
	vector.DrawFilledRect(screen, 0, ground, float32(sw), 6, groundColor, false)
	vector.DrawFilledRect(screen, 0, ground+6, float32(sw), float32(sh)-ground-6, dirtColor, false)

	for _, cat := range s.Cats {
		drawCat(screen, cat)
	}
	drawPlayer(screen, s.Player, s.Animation)

	text.Draw(screen, s.ScoreText, face, 16, 24, color.White)

	switch {
	case s.Phase == catcher.PhaseWon:
		vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(sh), overlayColor, false)
		drawCentered(screen, s.Banner, sw, int(sh/2)-20, playerColor)
	case s.Paused:
		drawCentered(screen, "PAUSED", sw, int(sh/2), playerColor)
		drawCentered(screen, "P to resume", sw, int(sh/2)+20, starColor)
	}
}

func drawStars(screen *ebiten.Image, w, h float64) {
	for y := 20.0; y < h; y += 60 {
		for x := 30.0; x < w; x += 90 {
			offset := float32(int(y/60)%2) * 45
			vector.DrawFilledRect(screen, float32(x)+offset, float32(y), 2, 2, starColor, false)
		}
	}
}

// drawPlayer draws the catcher, leaning toward the running direction.
func drawPlayer(screen *ebiten.Image, p catcher.BodySnapshot, anim catcher.Animation) {
	left, top := float32(p.X-p.W/2), float32(p.Y-p.H/2)
	w, h := float32(p.W), float32(p.H)

	vector.DrawFilledRect(screen, left+w/4, top+h/3, w/2, h*2/3, playerColor, false)
	headX := left + w/4
	switch anim {
	case catcher.AnimLeft:
		headX -= w / 8
	case catcher.AnimRight:
		headX += w / 8
	}
	vector.DrawFilledRect(screen, headX, top, w/2, h/3, playerColor, false)
	vector.StrokeRect(screen, left, top, w, h, 1, borderColor, false)
}

// drawCat draws a cat as a body with two ears.
func drawCat(screen *ebiten.Image, c catcher.BodySnapshot) {
	left, top := float32(c.X-c.W/2), float32(c.Y-c.H/2)
	w, h := float32(c.W), float32(c.H)

	vector.DrawFilledRect(screen, left, top+h/4, w, h*3/4, catColor, false)
	vector.DrawFilledRect(screen, left, top, w/4, h/4, catColor, false)
	vector.DrawFilledRect(screen, left+w*3/4, top, w/4, h/4, catColor, false)
}

func drawButton(screen *ebiten.Image, b button) {
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), buttonColor, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, borderColor, false)

	bounds := text.BoundString(face, b.label)
	x := int(b.x+b.w/2) - bounds.Dx()/2
	y := int(b.y+b.h/2) + bounds.Dy()/2
	text.Draw(screen, b.label, face, x, y, color.White)
}

func drawCentered(screen *ebiten.Image, s string, width float64, y int, clr color.Color) {
	if s == "" {
		return
	}
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, int(width/2)-bounds.Dx()/2, y, clr)
}
