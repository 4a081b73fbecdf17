package world

import (
	"sort"
	"strings"
)

// City is a market town on the route. X and Y are normalized map
// coordinates in [0, 1].
type City struct {
	Name string
	X, Y float64
}

// Good is a tradeable commodity. Prices maps a city name to the value of
// one unit there, in silver. Currency goods (silver, gold) pay for trades
// and have no weight.
type Good struct {
	Name     string
	Weight   int
	Currency bool
	Prices   map[string]int
}

// PriceAt returns the unit value of g at city.
func (g *Good) PriceAt(city *City) (int, bool) {
	p, ok := g.Prices[city.Name]
	return p, ok
}

// Character is a playable merchant.
type Character struct {
	Title              string
	Goods              []*Good
	ProductExplanation string
	Stops              []*City
	Distance           int // miles
	TravelDescription  string
	Story              string
	Capacity           int // lbs
}

// Products joins the character's goods the way a sentence would:
// "A", "A & B", or "A, B, & C".
func (c *Character) Products() string {
	names := make([]string, len(c.Goods))
	for i, g := range c.Goods {
		names[i] = g.Name
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " & " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", & " + names[len(names)-1]
}

// TravelList returns the stop names joined with hyphens.
func (c *Character) TravelList() string {
	names := make([]string, len(c.Stops))
	for i, s := range c.Stops {
		names[i] = s.Name
	}
	return strings.Join(names, "-")
}

// Home is the first stop, where the journey starts.
func (c *Character) Home() *City {
	return c.Stops[0]
}

// World is the validated game data.
type World struct {
	Title      string
	Cities     []*City
	Goods      []*Good
	Characters []*Character

	cities map[string]*City
	goods  map[string]*Good
}

// City looks up a city by name.
func (w *World) City(name string) (*City, bool) {
	c, ok := w.cities[name]
	return c, ok
}

// Good looks up a good by name.
func (w *World) Good(name string) (*Good, bool) {
	g, ok := w.goods[name]
	return g, ok
}

// Currencies returns the currency goods ordered by ascending value.
func (w *World) Currencies() []*Good {
	var out []*Good
	for _, g := range w.Goods {
		if g.Currency {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FaceValue() < out[j].FaceValue()
	})
	return out
}

// PurchasableAt returns the non-currency goods with a price at city, in
// world order.
func (w *World) PurchasableAt(city *City) []*Good {
	var out []*Good
	for _, g := range w.Goods {
		if g.Currency {
			continue
		}
		if _, ok := g.PriceAt(city); ok {
			out = append(out, g)
		}
	}
	return out
}

// FaceValue is the worth of one unit in silver when g is used as money:
// its highest listed price. Coins are priced the same everywhere.
func (g *Good) FaceValue() int {
	v := 0
	for _, p := range g.Prices {
		v = max(v, p)
	}
	return v
}
