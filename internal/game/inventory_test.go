package game

import (
	"errors"
	"testing"

	"github.com/silkroad-game/silkroad/assets"
	"github.com/silkroad-game/silkroad/internal/world"
)

func testWorld(t *testing.T) *world.World {
	t.Helper()
	data, err := assets.Data.ReadFile(assets.WorldFile)
	if err != nil {
		t.Fatalf("read world: %v", err)
	}
	w, err := world.LoadWorld(data)
	if err != nil {
		t.Fatalf("LoadWorld: %v", err)
	}
	return w
}

func good(t *testing.T, w *world.World, name string) *world.Good {
	t.Helper()
	g, ok := w.Good(name)
	if !ok {
		t.Fatalf("no good %q", name)
	}
	return g
}

func purse(t *testing.T, w *world.World, silver, gold int) *Inventory {
	t.Helper()
	inv := NewInventory(w, 100)
	if err := inv.Add(good(t, w, "Silver"), silver); err != nil {
		t.Fatalf("add silver: %v", err)
	}
	if err := inv.Add(good(t, w, "Gold"), gold); err != nil {
		t.Fatalf("add gold: %v", err)
	}
	return inv
}

func TestInventoryWeight(t *testing.T) {
	w := testWorld(t)
	inv := purse(t, w, 10, 10)
	if inv.Weight() != 0 {
		t.Fatalf("coins should weigh nothing, got %d", inv.Weight())
	}
	wine := good(t, w, "Wine")
	if err := inv.Add(wine, 30); err != nil {
		t.Fatalf("add wine: %v", err)
	}
	if inv.Weight() != 90 || inv.Free() != 10 {
		t.Fatalf("expected 90 lbs carried and 10 free, got %d / %d", inv.Weight(), inv.Free())
	}
	if err := inv.Add(wine, 4); !errors.Is(err, ErrOverCapacity) {
		t.Fatalf("expected ErrOverCapacity, got %v", err)
	}
	if inv.Count(wine) != 30 {
		t.Fatalf("failed add must not change the count, got %d", inv.Count(wine))
	}
}

func TestInventoryRemove(t *testing.T) {
	w := testWorld(t)
	inv := NewInventory(w, 100)
	tea := good(t, w, "Tea")
	if err := inv.Add(tea, 3); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := inv.Remove(tea, 4); !errors.Is(err, ErrNotEnoughGoods) {
		t.Fatalf("expected ErrNotEnoughGoods, got %v", err)
	}
	if err := inv.Remove(tea, 3); err != nil || inv.Count(tea) != 0 {
		t.Fatalf("remove all: err=%v count=%d", err, inv.Count(tea))
	}
}

func TestPaySilverFirst(t *testing.T) {
	w := testWorld(t)
	inv := purse(t, w, 10, 10)
	if err := inv.Pay(7); err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if s, g := inv.Count(good(t, w, "Silver")), inv.Count(good(t, w, "Gold")); s != 3 || g != 10 {
		t.Fatalf("expected 3 silver 10 gold, got %d / %d", s, g)
	}
}

func TestPayBreaksGold(t *testing.T) {
	w := testWorld(t)
	inv := purse(t, w, 3, 5)
	if err := inv.Pay(25); err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if s, g := inv.Count(good(t, w, "Silver")), inv.Count(good(t, w, "Gold")); s != 8 || g != 2 {
		t.Fatalf("expected 8 silver 2 gold, got %d / %d", s, g)
	}
	if inv.Wealth() != 28 {
		t.Fatalf("expected 28 silver left, got %d", inv.Wealth())
	}
}

func TestPayInsufficient(t *testing.T) {
	w := testWorld(t)
	inv := purse(t, w, 5, 1)
	if err := inv.Pay(16); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if inv.Wealth() != 15 {
		t.Fatalf("a refused payment must not change the purse, got %d", inv.Wealth())
	}
}

func TestReceiveLargestFirst(t *testing.T) {
	w := testWorld(t)
	inv := purse(t, w, 0, 0)
	inv.Receive(37)
	if s, g := inv.Count(good(t, w, "Silver")), inv.Count(good(t, w, "Gold")); s != 7 || g != 3 {
		t.Fatalf("expected 7 silver 3 gold, got %d / %d", s, g)
	}
}

func TestInventoryLines(t *testing.T) {
	w := testWorld(t)
	inv := purse(t, w, 10, 10)
	lines := inv.Lines()
	if len(lines) != len(w.Goods)+1 {
		t.Fatalf("expected a line per good plus the load, got %d", len(lines))
	}
	if lines[0] != "0/100 lbs" || lines[1] != "Silver - 10" || lines[2] != "Gold - 10" {
		t.Fatalf("unexpected lines %q", lines[:3])
	}
}

func TestJournalBounded(t *testing.T) {
	j := NewJournal(3)
	for _, s := range []string{"a", "b", "c", "d"} {
		j.Add(s, EntryNote)
	}
	j.Add("e", EntryTrade)
	if len(j.Entries) != 3 || j.Entries[0].Text != "c" || j.Entries[2].Text != "e" {
		t.Fatalf("expected [c d e], got %+v", j.Entries)
	}
	if r := j.Recent(10); len(r) != 3 {
		t.Fatalf("Recent should cap at the journal length, got %d", len(r))
	}
	if j.Count(EntryTrade) != 1 {
		t.Fatalf("expected one trade entry")
	}
}
