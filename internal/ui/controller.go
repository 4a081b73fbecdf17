// Package ui drives menus, paged dialogs and text entry on top of a
// render.Screen and an input.Poller.
//
// Every operation follows the same loop: render a full dialog pass, block
// in the poller until one of the relevant keys is pressed, update state,
// and render again. Nothing is redrawn while waiting unless the caller
// passes a tick callback to Await.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/silkroad-game/silkroad/internal/input"
	"github.com/silkroad-game/silkroad/internal/logging"
	"github.com/silkroad-game/silkroad/internal/render"
)

// ErrNoOptions is returned when a menu is invoked without options.
var ErrNoOptions = errors.New("ui: menu has no options")

type action uint8

const (
	actionNone action = iota
	actionConfirm
	actionNext
	actionPrevious
	actionBackspace
)

// Controller runs interactive dialogs. Its methods block the calling
// goroutine and must not be called concurrently with each other.
type Controller struct {
	screen   *render.Screen
	poller   *input.Poller
	settings Settings
	actions  map[input.Key]action
}

// NewController creates a controller drawing on screen and reading keys from poller.
func NewController(screen *render.Screen, poller *input.Poller, settings Settings) *Controller {
	c := &Controller{
		screen:   screen,
		poller:   poller,
		settings: settings,
		actions:  make(map[input.Key]action),
	}
	bind := func(keys []input.Key, a action) {
		for _, k := range keys {
			c.actions[k] = a
		}
	}
	bind(settings.Keys.Next, actionNext)
	bind(settings.Keys.Previous, actionPrevious)
	bind(settings.Keys.Backspace, actionBackspace)
	bind(settings.Keys.Confirm, actionConfirm)
	return c
}

// Screen returns the screen the controller draws on.
func (c *Controller) Screen() *render.Screen { return c.screen }

// Settings returns the controller settings.
func (c *Controller) Settings() Settings { return c.settings }

// AwaitConfirm waits for the confirm key, running onTick every poll cycle
// meanwhile. Screens that animate while waiting redraw from onTick.
func (c *Controller) AwaitConfirm(ctx context.Context, onTick func()) error {
	_, err := c.await(ctx, c.settings.Keys.Confirm, onTick)
	return err
}

// await commits the pass drawn so far, so it is shown whole, then parks in
// the poller. Each onTick redraw is committed as its own pass.
func (c *Controller) await(ctx context.Context, keys []input.Key, onTick func()) (input.Key, error) {
	c.screen.Commit()
	if onTick != nil {
		draw := onTick
		onTick = func() {
			draw()
			c.screen.Commit()
		}
	}
	return c.poller.Await(ctx, keys, onTick)
}

// SelectMenu shows prompt with a numbered list of options and returns the
// index and label of the option confirmed by the player.
func (c *Controller) SelectMenu(ctx context.Context, prompt string, options []string) (int, string, error) {
	m, err := NewMenuState(prompt, options)
	if err != nil {
		return 0, "", err
	}
	keys := c.menuKeys()

	c.renderMenu(m)
	for {
		k, err := c.await(ctx, keys, nil)
		if err != nil {
			return 0, "", err
		}
		switch c.actions[k] {
		case actionConfirm:
			logging.Debug("menu selection",
				zap.String("prompt", prompt),
				zap.Int("index", m.Selected),
				zap.String("label", m.Label()),
			)
			return m.Selected, m.Label(), nil
		case actionNext:
			m.Next()
		case actionPrevious:
			m.Prev()
		}
		c.renderMenu(m)
	}
}

// SelectBool asks a yes/no question and reports whether Yes was chosen.
func (c *Controller) SelectBool(ctx context.Context, prompt string) (bool, error) {
	idx, _, err := c.SelectMenu(ctx, prompt, []string{"Yes", "No"})
	return idx == 0, err
}

// Dialog shows pages one at a time, each until the confirm key is pressed.
// An empty title draws the body without a heading.
func (c *Controller) Dialog(ctx context.Context, title string, pages ...string) error {
	s := c.screen
	for _, page := range pages {
		s.DrawDialogBox(nil)
		y := s.ContentTop()
		if title != "" {
			y = s.DrawDialogTitle(title)
		}
		s.DrawText(page, s.ContentLeft(), y, s.DialogTextSettings())
		s.DrawDialogSubNote(c.settings.DialogNote)

		if err := c.AwaitConfirm(ctx, nil); err != nil {
			return err
		}
	}
	return nil
}

// GetTextInput reads a line of text from the accepted alphabet. maxLength
// <= 0 means unbounded. The result has surrounding whitespace trimmed.
func (c *Controller) GetTextInput(ctx context.Context, prompt string, maxLength int) (string, error) {
	keys := input.Keys(c.settings.TextAlphabet)
	keys = append(keys, c.settings.Keys.Confirm...)
	keys = append(keys, c.settings.Keys.Backspace...)

	var buf []rune
	for {
		c.renderTextInput(prompt, buf, maxLength)

		k, err := c.await(ctx, keys, nil)
		if err != nil {
			return "", err
		}
		switch c.actions[k] {
		case actionConfirm:
			return strings.TrimSpace(string(buf)), nil
		case actionBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		default:
			r, ok := k.Rune()
			if ok && (maxLength <= 0 || len(buf) < maxLength) {
				buf = append(buf, r)
			}
		}
	}
}

func (c *Controller) menuKeys() []input.Key {
	var keys []input.Key
	keys = append(keys, c.settings.Keys.Confirm...)
	keys = append(keys, c.settings.Keys.Next...)
	keys = append(keys, c.settings.Keys.Previous...)
	return keys
}

func (c *Controller) renderMenu(m *MenuState) {
	s := c.screen
	s.DrawDialogBox(nil)

	y := s.DrawDialogTitle(m.Prompt)
	top := y

	ts := s.DialogTextSettings()
	split := c.settings.ColumnBreak > 0 && len(m.Options) > c.settings.ColumnBreak
	if split {
		ts.MaxWidth /= 2
	}

	x := s.ContentLeft() + c.settings.PointerIndent
	for i, opt := range m.Options {
		if split && i == c.settings.ColumnBreak {
			x += ts.MaxWidth
			y = top
		}
		next := s.DrawText(fmt.Sprintf("%d. %s", i+1, opt), x, y, ts)
		if i == m.Selected {
			s.DrawText(c.settings.Pointer, x-c.settings.PointerIndent, y, ts)
		}
		y = next
	}

	s.DrawDialogSubNote(c.settings.MenuNote)
}

func (c *Controller) renderTextInput(prompt string, buf []rune, maxLength int) {
	s := c.screen
	s.DrawDialogBox(nil)

	y := s.DrawDialogTitle(prompt)
	ts := s.TextSettings()
	y = s.DrawText(c.settings.Pointer+" "+string(buf)+c.settings.Caret, s.ContentLeft(), y, ts)

	limit := "∞"
	if maxLength > 0 {
		limit = strconv.Itoa(maxLength)
	}
	s.DrawText(fmt.Sprintf("%d/%s", len(buf), limit), s.ContentLeft(), y, ts)

	s.DrawDialogSubNote(c.settings.InputNote)
}
