// Package game is the Silk Road game flow: the main menu, the journey from
// market to market, and the informational screens. It runs on its own
// goroutine and blocks in the ui.Controller between inputs.
package game

import (
	"context"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/silkroad-game/silkroad/internal/config"
	"github.com/silkroad-game/silkroad/internal/logging"
	"github.com/silkroad-game/silkroad/internal/render"
	"github.com/silkroad-game/silkroad/internal/ui"
	"github.com/silkroad-game/silkroad/internal/world"
)

// Game owns the flow between screens.
type Game struct {
	ctrl     *ui.Controller
	world    *world.World
	cfg      config.GameConfig
	mapImage image.Image
	now      func() time.Time

	merchant *Merchant
}

// New creates a game. A nil mapImage uses the generated map backdrop.
func New(ctrl *ui.Controller, w *world.World, mapImage image.Image, cfg config.GameConfig) *Game {
	if mapImage == nil {
		mapImage = render.NewMapBackdrop()
	}
	return &Game{
		ctrl:     ctrl,
		world:    w,
		cfg:      cfg,
		mapImage: mapImage,
		now:      time.Now,
	}
}

// Merchant returns the merchant of the current or most recent journey.
func (g *Game) Merchant() *Merchant { return g.merchant }

// Run shows the main menu until the player quits or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	for {
		g.ctrl.Screen().ClearBackground(nil)
		idx, label, err := g.ctrl.SelectMenu(ctx, g.world.Title+" Game", mainMenu)
		if err != nil {
			return err
		}
		logging.Debug("main menu", zap.String("choice", label))

		switch idx {
		case menuPlay:
			err = g.Play(ctx)
		case menuAbout:
			err = g.about(ctx)
		case menuTips:
			err = g.ctrl.Dialog(ctx, "Tips & Tricks", tipsPages...)
		case menuCredits:
			err = g.ctrl.Dialog(ctx, "Credits", creditsPages...)
		case menuQuit:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (g *Game) about(ctx context.Context) error {
	if err := g.ctrl.Dialog(ctx, "About the Silk Road", aboutPages...); err != nil {
		return err
	}

	opts := make([]string, 0, len(resources)+1)
	for _, r := range resources {
		opts = append(opts, r.Title)
	}
	opts = append(opts, "*Return to main menu")

	for {
		idx, _, err := g.ctrl.SelectMenu(ctx, "View additional resources on the Silk Road", opts)
		if err != nil {
			return err
		}
		if idx == len(resources) {
			return nil
		}
		r := resources[idx]
		logging.Info("resource viewed", zap.String("url", r.URL))
		if err := g.ctrl.Dialog(ctx, r.Title, "\tRead more at:\n"+r.URL); err != nil {
			return err
		}
	}
}
