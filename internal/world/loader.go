package world

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

// ErrInvalidWorld wraps every validation failure reported by LoadWorld.
var ErrInvalidWorld = errors.New("invalid world")

// worldDoc is the YAML shape of a world file.
type worldDoc struct {
	Title      string         `yaml:"title"`
	Cities     []cityDoc      `yaml:"cities"`
	Goods      []goodDoc      `yaml:"goods"`
	Characters []characterDoc `yaml:"characters"`
}

type cityDoc struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

type goodDoc struct {
	Name     string         `yaml:"name"`
	Weight   int            `yaml:"weight"`
	Currency bool           `yaml:"currency,omitempty"`
	Prices   map[string]int `yaml:"prices"`
}

type characterDoc struct {
	Title       string   `yaml:"title"`
	Goods       []string `yaml:"goods"`
	Explanation string   `yaml:"explanation"`
	Stops       []string `yaml:"stops"`
	Distance    int      `yaml:"distance"`
	Travel      string   `yaml:"travel"`
	Story       string   `yaml:"story"`
	Capacity    int      `yaml:"capacity"`
}

// LoadWorld parses and validates a world from YAML bytes. Goods and stops
// are referenced by name; a misspelt name is reported with the closest
// known one.
func LoadWorld(data []byte) (*World, error) {
	var doc worldDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse world: %w", err)
	}

	w := &World{
		Title:  doc.Title,
		cities: make(map[string]*City, len(doc.Cities)),
		goods:  make(map[string]*Good, len(doc.Goods)),
	}

	if len(doc.Cities) == 0 {
		return nil, fmt.Errorf("%w: no cities", ErrInvalidWorld)
	}
	for _, cd := range doc.Cities {
		if cd.Name == "" {
			return nil, fmt.Errorf("%w: city without a name", ErrInvalidWorld)
		}
		if _, dup := w.cities[cd.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate city %q", ErrInvalidWorld, cd.Name)
		}
		if cd.X < 0 || cd.X > 1 || cd.Y < 0 || cd.Y > 1 {
			return nil, fmt.Errorf("%w: city %q at (%v, %v) is off the map", ErrInvalidWorld, cd.Name, cd.X, cd.Y)
		}
		c := &City{Name: cd.Name, X: cd.X, Y: cd.Y}
		w.Cities = append(w.Cities, c)
		w.cities[c.Name] = c
	}

	for _, gd := range doc.Goods {
		if gd.Name == "" {
			return nil, fmt.Errorf("%w: good without a name", ErrInvalidWorld)
		}
		if _, dup := w.goods[gd.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate good %q", ErrInvalidWorld, gd.Name)
		}
		if gd.Weight < 0 {
			return nil, fmt.Errorf("%w: good %q has negative weight", ErrInvalidWorld, gd.Name)
		}
		for city, price := range gd.Prices {
			if _, ok := w.cities[city]; !ok {
				return nil, fmt.Errorf("%w: good %q: %s", ErrInvalidWorld, gd.Name, unknown("city", city, w.cityNames()))
			}
			if price < 0 {
				return nil, fmt.Errorf("%w: good %q has a negative price at %s", ErrInvalidWorld, gd.Name, city)
			}
		}
		g := &Good{Name: gd.Name, Weight: gd.Weight, Currency: gd.Currency, Prices: gd.Prices}
		w.Goods = append(w.Goods, g)
		w.goods[g.Name] = g
	}

	if len(doc.Characters) == 0 {
		return nil, fmt.Errorf("%w: no characters", ErrInvalidWorld)
	}
	for _, chd := range doc.Characters {
		ch, err := w.resolveCharacter(chd)
		if err != nil {
			return nil, fmt.Errorf("%w: character %q: %v", ErrInvalidWorld, chd.Title, err)
		}
		w.Characters = append(w.Characters, ch)
	}
	return w, nil
}

func (w *World) resolveCharacter(d characterDoc) (*Character, error) {
	if d.Title == "" {
		return nil, errors.New("missing title")
	}
	if len(d.Stops) == 0 {
		return nil, errors.New("no stops")
	}
	if d.Capacity <= 0 {
		return nil, fmt.Errorf("capacity %d must be positive", d.Capacity)
	}
	ch := &Character{
		Title:              d.Title,
		ProductExplanation: strings.TrimSuffix(d.Explanation, "."),
		Distance:           d.Distance,
		TravelDescription:  strings.TrimSuffix(d.Travel, "."),
		Story:              d.Story,
		Capacity:           d.Capacity,
	}
	for _, name := range d.Goods {
		g, ok := w.goods[name]
		if !ok {
			return nil, errors.New(unknown("good", name, w.goodNames()))
		}
		ch.Goods = append(ch.Goods, g)
	}
	for _, name := range d.Stops {
		c, ok := w.cities[name]
		if !ok {
			return nil, errors.New(unknown("city", name, w.cityNames()))
		}
		ch.Stops = append(ch.Stops, c)
	}
	return ch, nil
}

func (w *World) cityNames() []string {
	names := make([]string, len(w.Cities))
	for i, c := range w.Cities {
		names[i] = c.Name
	}
	return names
}

func (w *World) goodNames() []string {
	names := make([]string, len(w.Goods))
	for i, g := range w.Goods {
		names[i] = g.Name
	}
	return names
}

// unknown describes a name that matched nothing, suggesting the closest
// candidate when one is near enough.
func unknown(kind, name string, candidates []string) string {
	msg := fmt.Sprintf("unknown %s %q", kind, name)
	if s := suggest(name, candidates); s != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", s)
	}
	return msg
}

func suggest(name string, candidates []string) string {
	type match struct {
		name string
		dist int
	}
	in := strings.ToLower(name)
	var matches []match
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(in, strings.ToLower(cand))
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		matches = append(matches, match{cand, dist})
	}
	if len(matches) == 0 {
		return ""
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].dist < matches[j].dist
	})
	return matches[0].name
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
