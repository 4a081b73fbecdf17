package game

import (
	"fmt"

	"github.com/silkroad-game/silkroad/internal/config"
	"github.com/silkroad-game/silkroad/internal/world"
)

// Merchant is the player's state for one journey.
type Merchant struct {
	Name      string
	Character *world.Character
	Inventory *Inventory
	Journal   *Journal
	Caravan   *Caravan

	// StartingWealth is the purse value, in silver, when the journey began.
	StartingWealth int
}

// NewMerchant equips a merchant with the character's capacity and the
// configured starting purse. The smallest currency receives the silver
// and the largest the gold.
func NewMerchant(name string, ch *world.Character, w *world.World, cfg config.GameConfig) (*Merchant, error) {
	inv := NewInventory(w, ch.Capacity)
	if cur := w.Currencies(); len(cur) > 0 {
		if err := inv.Add(cur[0], cfg.StartingSilver); err != nil {
			return nil, fmt.Errorf("starting purse: %w", err)
		}
		if len(cur) > 1 {
			if err := inv.Add(cur[len(cur)-1], cfg.StartingGold); err != nil {
				return nil, fmt.Errorf("starting purse: %w", err)
			}
		}
	}
	return &Merchant{
		Name:           name,
		Character:      ch,
		Inventory:      inv,
		Journal:        NewJournal(cfg.JournalSize),
		Caravan:        NewCaravan(ch.Stops),
		StartingWealth: inv.Wealth(),
	}, nil
}
