package game

import (
	"errors"
	"fmt"

	"github.com/silkroad-game/silkroad/internal/world"
)

var (
	ErrInsufficientFunds = errors.New("not enough money")
	ErrOverCapacity      = errors.New("not enough carrying capacity")
	ErrNotEnoughGoods    = errors.New("not enough goods")
)

// InventorySlot holds the stack of one good.
type InventorySlot struct {
	Good  *world.Good
	Count int
}

// Inventory is a merchant's cargo: one slot per good, in world order, and a
// weight limit in lbs. Currency goods are the purse and weigh nothing.
type Inventory struct {
	Slots    []InventorySlot
	Capacity int

	currencies []*world.Good // ascending face value
}

// NewInventory creates an empty inventory holding every good of w.
func NewInventory(w *world.World, capacity int) *Inventory {
	inv := &Inventory{
		Slots:      make([]InventorySlot, len(w.Goods)),
		Capacity:   capacity,
		currencies: w.Currencies(),
	}
	for i, g := range w.Goods {
		inv.Slots[i].Good = g
	}
	return inv
}

// FindSlot returns the index of the slot holding g, or -1.
func (inv *Inventory) FindSlot(g *world.Good) int {
	for i, slot := range inv.Slots {
		if slot.Good == g {
			return i
		}
	}
	return -1
}

// Count returns how many units of g are carried.
func (inv *Inventory) Count(g *world.Good) int {
	idx := inv.FindSlot(g)
	if idx < 0 {
		return 0
	}
	return inv.Slots[idx].Count
}

// Weight returns the total carried weight.
func (inv *Inventory) Weight() int {
	w := 0
	for _, slot := range inv.Slots {
		w += slot.Good.Weight * slot.Count
	}
	return w
}

// Free returns the remaining carrying capacity.
func (inv *Inventory) Free() int {
	return inv.Capacity - inv.Weight()
}

// Add stores amount units of g. Nothing changes when the weight would
// exceed the capacity.
func (inv *Inventory) Add(g *world.Good, amount int) error {
	if amount < 0 {
		return fmt.Errorf("add %d %s: negative amount", amount, g.Name)
	}
	if g.Weight*amount > inv.Free() {
		return fmt.Errorf("add %d %s: %w", amount, g.Name, ErrOverCapacity)
	}
	idx := inv.FindSlot(g)
	if idx < 0 {
		inv.Slots = append(inv.Slots, InventorySlot{Good: g})
		idx = len(inv.Slots) - 1
	}
	inv.Slots[idx].Count += amount
	return nil
}

// Remove takes amount units of g out of the inventory.
func (inv *Inventory) Remove(g *world.Good, amount int) error {
	if amount < 0 {
		return fmt.Errorf("remove %d %s: negative amount", amount, g.Name)
	}
	idx := inv.FindSlot(g)
	if idx < 0 || inv.Slots[idx].Count < amount {
		return fmt.Errorf("remove %d %s: %w", amount, g.Name, ErrNotEnoughGoods)
	}
	inv.Slots[idx].Count -= amount
	return nil
}

// Wealth returns the purse total in silver.
func (inv *Inventory) Wealth() int {
	total := 0
	for _, c := range inv.currencies {
		total += inv.Count(c) * c.FaceValue()
	}
	return total
}

// Pay removes amount silver worth of coins, spending the smallest coins
// first. When only larger coins remain, one is broken and the change is
// returned in smaller coins.
func (inv *Inventory) Pay(amount int) error {
	if amount > inv.Wealth() {
		return fmt.Errorf("pay %d silver: %w", amount, ErrInsufficientFunds)
	}
	remaining := amount
	for _, c := range inv.currencies {
		v := c.FaceValue()
		if v <= 0 {
			continue
		}
		n := min(inv.Count(c), remaining/v)
		inv.Slots[inv.FindSlot(c)].Count -= n
		remaining -= n * v
	}
	if remaining == 0 {
		return nil
	}
	for _, c := range inv.currencies {
		if inv.Count(c) > 0 && c.FaceValue() > remaining {
			inv.Slots[inv.FindSlot(c)].Count--
			inv.Receive(c.FaceValue() - remaining)
			return nil
		}
	}
	// Unreachable while Wealth covers amount.
	return fmt.Errorf("pay %d silver: %w", amount, ErrInsufficientFunds)
}

// Receive adds amount silver worth of coins, largest coins first.
func (inv *Inventory) Receive(amount int) {
	for i := len(inv.currencies) - 1; i >= 0 && amount > 0; i-- {
		c := inv.currencies[i]
		v := c.FaceValue()
		if v <= 0 {
			continue
		}
		inv.Slots[inv.FindSlot(c)].Count += amount / v
		amount %= v
	}
}

// Lines lists the load followed by one "Name - count" line per good.
func (inv *Inventory) Lines() []string {
	lines := []string{fmt.Sprintf("%d/%d lbs", inv.Weight(), inv.Capacity)}
	for _, slot := range inv.Slots {
		lines = append(lines, fmt.Sprintf("%s - %d", slot.Good.Name, slot.Count))
	}
	return lines
}
