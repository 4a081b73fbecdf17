package game

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/silkroad-game/silkroad/internal/config"
	"github.com/silkroad-game/silkroad/internal/input"
	"github.com/silkroad-game/silkroad/internal/render"
	"github.com/silkroad-game/silkroad/internal/ui"
)

const (
	enter = input.KeyEnter
	up    = input.KeyArrowUp
	down  = input.KeyArrowDown
)

type session struct {
	t      *testing.T
	rec    *render.Recorder
	state  *input.InputState
	poller *input.Poller
	game   *Game
	done   chan error
	cancel context.CancelFunc
}

// startGame runs the main menu on its own goroutine.
func startGame(t *testing.T) *session {
	t.Helper()
	rec := render.NewRecorder(1000, 700)
	state := input.NewInputState()
	poller := input.NewPoller(state)
	screen := render.NewScreen(rec, render.NewScrollBackdrop(), render.DefaultMetrics())
	ctrl := ui.NewController(screen, poller, ui.DefaultSettings())

	g := New(ctrl, testWorld(t), nil, config.Default().Game)
	epoch := time.Unix(0, 0)
	g.now = func() time.Time { return epoch }

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	s := &session{t: t, rec: rec, state: state, poller: poller, game: g, done: make(chan error, 1), cancel: cancel}
	go func() { s.done <- g.Run(ctx) }()
	return s
}

func (s *session) press(keys ...input.Key) {
	s.t.Helper()
	for _, k := range keys {
		deadline := time.Now().Add(2 * time.Second)
		for s.poller.Pending() == 0 {
			if time.Now().After(deadline) {
				s.t.Fatalf("game never waited for %q", k)
			}
			time.Sleep(time.Millisecond)
		}
		s.poller.Tick()
		s.poller.Tick()
		s.state.Press(k)
		s.poller.Tick()
		s.state.Release(k)
	}
}

func (s *session) wait() error {
	s.t.Helper()
	select {
	case err := <-s.done:
		return err
	case <-time.After(2 * time.Second):
		s.t.Fatalf("game did not return")
	}
	return nil
}

func (s *session) drew(text string) bool {
	for _, op := range s.rec.Texts() {
		if strings.Contains(op.Text, text) {
			return true
		}
	}
	return false
}

func TestRunQuit(t *testing.T) {
	s := startGame(t)
	s.press(up, enter)
	if err := s.wait(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !s.drew("The Silk Road Game") {
		t.Fatalf("main menu title not drawn")
	}
}

func TestRunCancelled(t *testing.T) {
	s := startGame(t)
	s.press(down) // wait until the menu is up
	s.cancel()
	if err := s.wait(); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestJourney(t *testing.T) {
	s := startGame(t)

	s.press(enter)                     // Play
	s.press(enter)                     // Indian Spice Dealer
	s.press(input.Keys("Ana")...)      // name
	s.press(enter)                     // confirm name
	s.press(enter, enter, enter)       // map, inventory, market intro
	s.press(enter, enter, enter)       // Delhi: Rice, Buy, 1
	s.press(enter)                     // receipt
	s.press(up, enter)                 // leave market
	s.press(enter, enter)              // travel, arrival in Tehran
	s.press(enter, down, enter, enter) // Tehran: Rice, Sell, 1
	s.press(enter)                     // receipt
	s.press(up, enter)                 // leave market
	s.press(enter, enter)              // travel, arrival in Baghdad
	s.press(up, enter)                 // leave market
	s.press(enter, enter)              // summary pages
	s.press(up, enter)                 // quit

	if err := s.wait(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	m := s.game.Merchant()
	if m.Name != "Ana" || m.Character.Title != "Indian Spice Dealer" {
		t.Fatalf("unexpected merchant %s the %s", m.Name, m.Character.Title)
	}
	if m.Caravan.City().Name != "Baghdad" || !m.Caravan.AtEnd() {
		t.Fatalf("caravan should rest in Baghdad, got %s", m.Caravan.City().Name)
	}
	if m.StartingWealth != 110 || m.Inventory.Wealth() != 112 {
		t.Fatalf("expected 110 -> 112 silver, got %d -> %d", m.StartingWealth, m.Inventory.Wealth())
	}
	if m.Journal.Count(EntryTrade) != 2 || m.Journal.Count(EntryTravel) != 2 {
		t.Fatalf("unexpected journal %+v", m.Journal.Entries)
	}
	for _, want := range []string{
		"Bought 1 Rice for 3 silver in Delhi.",
		"Sold 1 Rice for 5 silver in Tehran.",
		"Arrived in Baghdad",
		"Journey's End",
		"A profit of 2 silver!",
	} {
		if !s.drew(want) {
			t.Fatalf("expected %q on screen", want)
		}
	}
}

func TestJourneyMapHighlightsStops(t *testing.T) {
	s := startGame(t)
	s.press(enter, enter)
	s.press(enter) // empty name
	s.press(enter) // leave the map

	if s.game.Merchant().Name != defaultName {
		t.Fatalf("an empty name should fall back to %q", defaultName)
	}
	// Three stops, each an outer and an inner dot, drawn at least once.
	var sky int
	for _, op := range s.rec.Ops() {
		if op.Kind == render.OpCircle && op.Color == render.ColorSkyBlue {
			sky++
		}
	}
	if sky < 3 {
		t.Fatalf("expected the three stops highlighted, got %d dots", sky)
	}
	s.cancel()
	s.wait()
}

func TestCharacterDifferences(t *testing.T) {
	s := startGame(t)
	s.press(enter)     // Play
	s.press(up, enter) // Find out the differences
	s.press(enter, enter, enter)

	for _, want := range []string{
		"1. Indian Spice Dealer",
		"Goods: Pepper, Cardamom, & Cinnamon (Spices were",
		"Travel: Shanghai-Beijing-Bukhara-Samarkand (~1924 miles,",
		"3. Byzantine Merchant",
	} {
		if !s.drew(want) {
			t.Fatalf("expected %q on screen", want)
		}
	}
	s.press(down) // back at the character menu
	s.cancel()
	s.wait()
}

func TestAboutResources(t *testing.T) {
	s := startGame(t)
	s.press(down, enter)         // Learn about the silk road
	s.press(enter, enter, enter) // three pages
	s.press(down, enter)         // Wikipedia
	s.press(enter)               // link dialog
	s.press(up, enter)           // return to main menu
	s.press(up, enter)           // quit

	if err := s.wait(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !s.drew("https://en.wikipedia.org/wiki/Silk_Road") {
		t.Fatalf("resource link not shown")
	}
}

func TestLowerFirst(t *testing.T) {
	for in, want := range map[string]string{
		"":                "",
		"Along the coast": "along the coast",
		"Übers Gebirge":   "übers Gebirge",
		"Éphèse by sea":   "éphèse by sea",
		"already lower":   "already lower",
	} {
		if got := lowerFirst(in); got != want {
			t.Fatalf("lowerFirst(%q) = %q, want %q", in, got, want)
		}
	}
}
