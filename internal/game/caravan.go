package game

import (
	"errors"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/silkroad-game/silkroad/internal/world"
)

// ErrEndOfRoute is returned when departing from the last stop.
var ErrEndOfRoute = errors.New("caravan is at the end of its route")

// Position is a map location in normalized coordinates.
type Position struct {
	X, Y float64
}

// Leg is the caravan's progress along its route: the index of the stop it
// left (or rests at) and the fraction of the way to the next one.
type Leg struct {
	From      int
	Progress  float64
	Traveling bool
}

// Caravan moves a merchant's pack train along the character's stops.
type Caravan struct {
	ECS   *ecs.World
	Stops []*world.City

	entity ecs.Entity
	posMap *ecs.Map[Position]
	legMap *ecs.Map[Leg]
}

// NewCaravan places a caravan at the first of stops.
func NewCaravan(stops []*world.City) *Caravan {
	w := ecs.NewWorld(16)
	home := stops[0]
	entity := ecs.NewMap2[Position, Leg](w).NewEntity(
		&Position{X: home.X, Y: home.Y},
		&Leg{},
	)
	return &Caravan{
		ECS:    w,
		Stops:  stops,
		entity: entity,
		posMap: ecs.NewMap[Position](w),
		legMap: ecs.NewMap[Leg](w),
	}
}

// Position returns the caravan's map location.
func (c *Caravan) Position() (float64, float64) {
	pos := c.posMap.Get(c.entity)
	return pos.X, pos.Y
}

// Stop returns the index of the stop the caravan rests at or last left.
func (c *Caravan) Stop() int {
	return c.legMap.Get(c.entity).From
}

// City returns the stop the caravan rests at or last left.
func (c *Caravan) City() *world.City {
	return c.Stops[c.Stop()]
}

// Next returns the stop the caravan heads to next, or nil at the end.
func (c *Caravan) Next() *world.City {
	i := c.Stop() + 1
	if i >= len(c.Stops) {
		return nil
	}
	return c.Stops[i]
}

// Traveling reports whether the caravan is between stops.
func (c *Caravan) Traveling() bool {
	return c.legMap.Get(c.entity).Traveling
}

// AtEnd reports whether the caravan rests at its last stop.
func (c *Caravan) AtEnd() bool {
	return !c.Traveling() && c.Next() == nil
}

// Depart starts the leg to the next stop.
func (c *Caravan) Depart() error {
	if c.Next() == nil {
		return ErrEndOfRoute
	}
	leg := c.legMap.Get(c.entity)
	leg.Traveling = true
	leg.Progress = 0
	return nil
}

// Advance moves the caravan to fraction p of the current leg and reports
// whether it has arrived. p is clamped to [0, 1]; at 1 the caravan rests
// at the next stop.
func (c *Caravan) Advance(p float64) bool {
	leg := c.legMap.Get(c.entity)
	if !leg.Traveling {
		return true
	}
	p = math.Max(0, math.Min(1, p))
	from, to := c.Stops[leg.From], c.Stops[leg.From+1]

	pos := c.posMap.Get(c.entity)
	pos.X = from.X + (to.X-from.X)*p
	pos.Y = from.Y + (to.Y-from.Y)*p
	leg.Progress = p

	if p < 1 {
		return false
	}
	leg.From++
	leg.Progress = 0
	leg.Traveling = false
	return true
}

// LegMiles splits the route's total miles across legs in proportion to
// their map length and returns the share of the leg starting at stop i.
func (c *Caravan) LegMiles(total, i int) int {
	if i < 0 || i+1 >= len(c.Stops) {
		return 0
	}
	sum := 0.0
	for j := 0; j+1 < len(c.Stops); j++ {
		sum += dist(c.Stops[j], c.Stops[j+1])
	}
	if sum == 0 {
		return 0
	}
	return int(math.Round(float64(total) * dist(c.Stops[i], c.Stops[i+1]) / sum))
}

func dist(a, b *world.City) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
