package game

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/silkroad-game/silkroad/internal/logging"
	"github.com/silkroad-game/silkroad/internal/world"
)

const (
	defaultName    = "Traveler"
	summaryEntries = 12
	inventoryGap   = 200 // x offset of the second inventory column
)

// Play runs one journey: character choice, the route map, and a market at
// every stop with travel in between.
func (g *Game) Play(ctx context.Context) error {
	s := g.ctrl.Screen()

	ch, err := g.selectCharacter(ctx)
	if err != nil {
		return err
	}
	s.ClearBackground(nil)

	name, err := g.ctrl.GetTextInput(ctx, "What is your name?", g.cfg.NameLength)
	if err != nil {
		return err
	}
	if name == "" {
		name = defaultName
	}
	s.ClearBackground(nil)

	m, err := NewMerchant(name, ch, g.world, g.cfg)
	if err != nil {
		return err
	}
	g.merchant = m
	m.Journal.Add(fmt.Sprintf("%s the %s set out from %s.", name, ch.Title, ch.Home().Name), EntryNote)
	logging.Info("journey started",
		zap.String("name", name),
		zap.String("character", ch.Title),
		zap.Int("wealth", m.StartingWealth),
	)

	if err := g.showMap(ctx, ch.Stops); err != nil {
		return err
	}
	s.ClearBackground(nil)

	if err := g.showInventory(ctx, m); err != nil {
		return err
	}
	s.ClearBackground(nil)

	if err := g.ctrl.Dialog(ctx, "", marketIntro); err != nil {
		return err
	}

	for {
		if err := g.market(ctx, m); err != nil {
			return err
		}
		if m.Caravan.AtEnd() {
			break
		}
		if err := g.travel(ctx, m); err != nil {
			return err
		}
	}
	return g.summary(ctx, m)
}

func (g *Game) selectCharacter(ctx context.Context) (*world.Character, error) {
	opts := make([]string, 0, len(g.world.Characters)+1)
	for _, c := range g.world.Characters {
		opts = append(opts, c.Title)
	}
	opts = append(opts, "*Find out the differences.")

	for {
		idx, _, err := g.ctrl.SelectMenu(ctx, "Select your character", opts)
		if err != nil {
			return nil, err
		}
		if idx < len(g.world.Characters) {
			return g.world.Characters[idx], nil
		}
		if err := g.ctrl.Dialog(ctx, "Character Differences", characterPages(g.world.Characters)...); err != nil {
			return nil, err
		}
	}
}

// characterPages describes each character on its own page.
func characterPages(chars []*world.Character) []string {
	pages := make([]string, len(chars))
	for i, c := range chars {
		pages[i] = fmt.Sprintf("%d. %s\nGoods: %s (%s).\nTravel: %s (~%d miles, %s).\nCarrying capacity: %d lbs.\n%s",
			i+1, c.Title,
			c.Products(), c.ProductExplanation,
			c.TravelList(), c.Distance, lowerFirst(c.TravelDescription),
			c.Capacity,
			c.Story,
		)
	}
	return pages
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// showMap shows the route map with blinking stops until confirm.
func (g *Game) showMap(ctx context.Context, highlight []*world.City) error {
	start := g.now()
	draw := func() {
		var marks []*world.City
		if blinkOn(g.now().Sub(start), g.cfg.BlinkPeriod) {
			marks = highlight
		}
		g.drawMap(marks, nil)
		g.ctrl.Screen().DrawDialogSubNote(g.ctrl.Settings().DialogNote)
	}
	draw()
	return g.ctrl.AwaitConfirm(ctx, draw)
}

// showInventory lists the load and every good in two columns.
func (g *Game) showInventory(ctx context.Context, m *Merchant) error {
	s := g.ctrl.Screen()
	s.DrawDialogBox(nil)
	s.DrawDialogSubNote(g.ctrl.Settings().DialogNote)
	y := s.DrawDialogTitle("Inventory")

	lines := m.Inventory.Lines()
	half := len(lines) / 2
	s.DrawText(strings.Join(lines[:half], "\n"), s.ContentLeft(), y, s.TextSettings())
	s.DrawText(strings.Join(lines[half:], "\n"), s.ContentLeft()+inventoryGap, y, s.TextSettings())

	return g.ctrl.AwaitConfirm(ctx, nil)
}

func (g *Game) market(ctx context.Context, m *Merchant) error {
	mk := NewMarket(g.world, m.Caravan.City())
	goods := mk.Goods()

	for {
		opts := make([]string, 0, len(goods)+2)
		for _, gd := range goods {
			price, _ := mk.Price(gd)
			opts = append(opts, fmt.Sprintf("%s - %d silver", gd.Name, price))
		}
		opts = append(opts, "*View Inventory", "*Leave Market")

		idx, _, err := g.ctrl.SelectMenu(ctx, "What would you like to trade for?", opts)
		if err != nil {
			return err
		}
		switch {
		case idx == len(goods):
			err = g.showInventory(ctx, m)
		case idx > len(goods):
			return nil
		default:
			err = g.trade(ctx, m, mk, goods[idx])
		}
		if err != nil {
			return err
		}
	}
}

func (g *Game) trade(ctx context.Context, m *Merchant, mk *Market, gd *world.Good) error {
	inv := m.Inventory
	price, err := mk.Price(gd)
	if err != nil {
		return err
	}
	prompt := fmt.Sprintf("%s trades for %d silver in %s. You carry %d.", gd.Name, price, mk.City.Name, inv.Count(gd))
	action, _, err := g.ctrl.SelectMenu(ctx, prompt, []string{"Buy", "Sell", "*Back"})
	if err != nil || action == 2 {
		return err
	}
	buying := action == 0

	limit := inv.Count(gd)
	if buying {
		limit = mk.MaxBuy(inv, gd)
	}
	if limit == 0 {
		return g.ctrl.Dialog(ctx, "", noTradeReason(inv, gd, price, buying))
	}

	qtys := Quantities(limit)
	labels := make([]string, 0, len(qtys)+1)
	for _, q := range qtys {
		labels = append(labels, strconv.Itoa(q))
	}
	labels = append(labels, "*Back")
	qi, _, err := g.ctrl.SelectMenu(ctx, "How many?", labels)
	if err != nil || qi == len(qtys) {
		return err
	}
	qty := qtys[qi]

	var msg string
	if buying {
		cost, err := mk.Buy(inv, gd, qty)
		if err != nil {
			return g.ctrl.Dialog(ctx, "", "\tThe trade fell through: "+err.Error()+".")
		}
		msg = fmt.Sprintf("Bought %d %s for %d silver in %s.", qty, gd.Name, cost, mk.City.Name)
	} else {
		revenue, err := mk.Sell(inv, gd, qty)
		if err != nil {
			return g.ctrl.Dialog(ctx, "", "\tThe trade fell through: "+err.Error()+".")
		}
		msg = fmt.Sprintf("Sold %d %s for %d silver in %s.", qty, gd.Name, revenue, mk.City.Name)
	}
	m.Journal.Add(msg, EntryTrade)
	return g.ctrl.Dialog(ctx, "", msg)
}

func noTradeReason(inv *Inventory, gd *world.Good, price int, buying bool) string {
	switch {
	case !buying:
		return fmt.Sprintf("You have no %s to sell.", gd.Name)
	case inv.Wealth() < price:
		return fmt.Sprintf("You cannot afford any %s.", gd.Name)
	default:
		return fmt.Sprintf("You cannot carry any more %s.", gd.Name)
	}
}

// travel animates the caravan to the next stop. Confirm skips to arrival.
func (g *Game) travel(ctx context.Context, m *Merchant) error {
	car := m.Caravan
	from, to := car.City(), car.Next()
	miles := car.LegMiles(m.Character.Distance, car.Stop())
	if err := car.Depart(); err != nil {
		return err
	}
	logging.Debug("caravan departed", zap.String("from", from.Name), zap.String("to", to.Name))

	start := g.now()
	draw := func() {
		p := 1.0
		if d := g.cfg.TravelDuration; d > 0 {
			p = float64(g.now().Sub(start)) / float64(d)
		}
		car.Advance(p)
		g.drawMap(m.Character.Stops, car)
		g.ctrl.Screen().DrawDialogSubNote(g.ctrl.Settings().DialogNote)
	}
	draw()
	if err := g.ctrl.AwaitConfirm(ctx, draw); err != nil {
		return err
	}
	car.Advance(1)

	m.Journal.Add(fmt.Sprintf("Travelled about %d miles from %s to %s.", miles, from.Name, to.Name), EntryTravel)
	g.ctrl.Screen().ClearBackground(nil)
	return g.ctrl.Dialog(ctx, "Arrived in "+to.Name,
		fmt.Sprintf("\tAfter about %d miles on the road from %s, your caravan reaches the markets of %s.", miles, from.Name, to.Name))
}

// summary reports the journey's outcome and the journal.
func (g *Game) summary(ctx context.Context, m *Merchant) error {
	mk := NewMarket(g.world, m.Caravan.City())
	purse := m.Inventory.Wealth()
	cargo := mk.Value(m.Inventory)
	profit := purse + cargo - m.StartingWealth

	verdict := "You came home with less than you set out with. The road is hard on the unwary."
	switch {
	case profit > 0:
		verdict = fmt.Sprintf("A profit of %d silver! The caravanserais will speak of you.", profit)
	case profit == 0:
		verdict = "You broke even. At least you saw the world."
	}

	ch := m.Character
	outcome := fmt.Sprintf("\t%s the %s travelled %s, about %d miles.\n"+
		"Purse at the start: %d silver.\n"+
		"Purse now: %d silver.\n"+
		"Cargo worth in %s: %d silver.\n"+
		"%s",
		m.Name, ch.Title, ch.TravelList(), ch.Distance,
		m.StartingWealth, purse, mk.City.Name, cargo, verdict)

	var lines []string
	for _, e := range m.Journal.Recent(summaryEntries) {
		lines = append(lines, e.Text)
	}
	logging.Info("journey finished",
		zap.String("name", m.Name),
		zap.Int("profit", profit),
		zap.Int("trades", m.Journal.Count(EntryTrade)),
	)
	return g.ctrl.Dialog(ctx, "Journey's End", outcome, strings.Join(lines, "\n"))
}
