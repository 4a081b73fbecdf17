package game

import (
	"math"
	"time"

	"github.com/silkroad-game/silkroad/internal/render"
	"github.com/silkroad-game/silkroad/internal/world"
)

const (
	cityOuterRadius = 4
	cityInnerRadius = 3
	caravanRadius   = 5
)

// drawMap draws the route map with the given cities marked and, when car
// is not nil, the caravan on top.
func (g *Game) drawMap(highlight []*world.City, car *Caravan) {
	s := g.ctrl.Screen()
	s.DrawDialogBox(g.mapImage)
	s.DrawDialogTitle(g.world.Title)

	bx, by, bw, bh := s.DialogBox()
	surf := s.Surface()
	for _, c := range highlight {
		x, y := bx+bw*c.X, by+bh*c.Y
		surf.FillCircle(x, y, cityOuterRadius, render.ColorBlack)
		surf.FillCircle(x, y, cityInnerRadius, render.ColorSkyBlue)
	}
	if car != nil {
		cx, cy := car.Position()
		surf.FillCircle(bx+bw*cx, by+bh*cy, caravanRadius, render.ColorCaravan)
	}
}

// blinkOn reports whether blinking marks are visible after elapsed, for a
// full on/off cycle of period. Marks start visible.
func blinkOn(elapsed, period time.Duration) bool {
	if period <= 0 {
		return true
	}
	return math.Sin(2*math.Pi*float64(elapsed)/float64(period)) >= 0
}
