package game

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/silkroad-game/silkroad/internal/logging"
	"github.com/silkroad-game/silkroad/internal/world"
)

// ErrNotTraded is returned for goods without a price at the market's city.
var ErrNotTraded = errors.New("not traded here")

// Market trades goods at one city. A good is bought and sold at the same
// unit price.
type Market struct {
	City  *world.City
	goods []*world.Good
}

// NewMarket opens the market of city.
func NewMarket(w *world.World, city *world.City) *Market {
	return &Market{City: city, goods: w.PurchasableAt(city)}
}

// Goods returns the goods on offer, in world order.
func (m *Market) Goods() []*world.Good {
	return m.goods
}

// Price returns the unit price of g in silver.
func (m *Market) Price(g *world.Good) (int, error) {
	if g.Currency {
		return 0, fmt.Errorf("%s: %w", g.Name, ErrNotTraded)
	}
	p, ok := g.PriceAt(m.City)
	if !ok {
		return 0, fmt.Errorf("%s in %s: %w", g.Name, m.City.Name, ErrNotTraded)
	}
	return p, nil
}

// Buy purchases qty units of g into inv and returns the cost. The purse
// and cargo are left untouched on error.
func (m *Market) Buy(inv *Inventory, g *world.Good, qty int) (int, error) {
	if qty <= 0 {
		return 0, fmt.Errorf("buy %d %s: quantity must be positive", qty, g.Name)
	}
	price, err := m.Price(g)
	if err != nil {
		return 0, err
	}
	cost := price * qty
	if cost > inv.Wealth() {
		return 0, fmt.Errorf("buy %d %s for %d silver: %w", qty, g.Name, cost, ErrInsufficientFunds)
	}
	if g.Weight*qty > inv.Free() {
		return 0, fmt.Errorf("buy %d %s: %w", qty, g.Name, ErrOverCapacity)
	}
	if err := inv.Pay(cost); err != nil {
		return 0, err
	}
	if err := inv.Add(g, qty); err != nil {
		return 0, err
	}
	logging.Debug("bought goods",
		zap.String("city", m.City.Name),
		zap.String("good", g.Name),
		zap.Int("qty", qty),
		zap.Int("cost", cost),
	)
	return cost, nil
}

// Sell sells qty units of g from inv and returns the revenue.
func (m *Market) Sell(inv *Inventory, g *world.Good, qty int) (int, error) {
	if qty <= 0 {
		return 0, fmt.Errorf("sell %d %s: quantity must be positive", qty, g.Name)
	}
	price, err := m.Price(g)
	if err != nil {
		return 0, err
	}
	if err := inv.Remove(g, qty); err != nil {
		return 0, err
	}
	revenue := price * qty
	inv.Receive(revenue)
	logging.Debug("sold goods",
		zap.String("city", m.City.Name),
		zap.String("good", g.Name),
		zap.Int("qty", qty),
		zap.Int("revenue", revenue),
	)
	return revenue, nil
}

// MaxBuy returns the most units of g inv can afford and carry.
func (m *Market) MaxBuy(inv *Inventory, g *world.Good) int {
	price, err := m.Price(g)
	if err != nil || price == 0 {
		return 0
	}
	n := inv.Wealth() / price
	if g.Weight > 0 {
		n = min(n, inv.Free()/g.Weight)
	}
	return max(n, 0)
}

// Value returns what the non-currency cargo in inv would fetch here.
func (m *Market) Value(inv *Inventory) int {
	total := 0
	for _, slot := range inv.Slots {
		if slot.Count == 0 {
			continue
		}
		if p, err := m.Price(slot.Good); err == nil {
			total += p * slot.Count
		}
	}
	return total
}

// quantitySteps are the amounts offered in the quantity menu besides the maximum.
var quantitySteps = []int{1, 5, 10, 25, 50, 100}

// Quantities returns the amounts to offer when at most limit units can be
// traded: the standard steps below limit followed by limit itself.
func Quantities(limit int) []int {
	var out []int
	for _, q := range quantitySteps {
		if q < limit {
			out = append(out, q)
		}
	}
	if limit > 0 {
		out = append(out, limit)
	}
	return out
}
