package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gauntlet/internal/game"
	"github.com/abhisek/gauntlet/internal/genset"
	"github.com/abhisek/gauntlet/internal/router"
	"github.com/abhisek/gauntlet/internal/screen"
	"github.com/abhisek/gauntlet/internal/screens/boss"
	"github.com/abhisek/gauntlet/internal/screens/mentors"
	"github.com/abhisek/gauntlet/internal/screens/placeholder"
	"github.com/abhisek/gauntlet/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	svc    *game.Service
	userID string
	tier   genset.Tier

	menu       components.Menu
	menuLabels []string

	score         int
	correct       int
	pending       int
	bossUnlocked  bool
	hasOpenSet    bool
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen and loads the player's current standing.
func New(svc *game.Service, userID string, tier genset.Tier) *HomeScreen {
	h := &HomeScreen{
		svc:    svc,
		userID: userID,
		tier:   tier,
	}
	h.refresh()

	menuLabels := []string{"ENTER GAUNTLET", "BOSS GATE", "EXIT GAME"}
	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			if svc == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Gauntlet")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: mentors.New(svc, userID, tier)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			if svc == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Boss Gate")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: boss.New(svc, userID, tier)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	items[1].Disabled = !h.hasOpenSet
	h.menu = components.NewMenu(items)
	h.menuLabels = menuLabels
	return h
}

// refresh reloads the stats bar figures from the store.
func (h *HomeScreen) refresh() {
	h.mascotVariant = MascotIdle
	if h.svc == nil {
		return
	}
	ctx := context.Background()

	cur, err := h.svc.CurrentSet(ctx, h.userID, h.tier)
	if err != nil {
		return
	}
	h.hasOpenSet = true
	h.bossUnlocked = cur.BossUnlocked

	if sum, err := h.svc.SetSummary(ctx, cur.SetID, h.userID); err == nil {
		h.score = sum.Score
		h.correct = sum.Correct
	}
	if el, err := h.svc.BossEligibility(ctx, cur.SetID); err == nil {
		h.pending = el.Pending
		switch {
		case cur.BossUnlocked:
			h.mascotVariant = MascotTriumphant
		case el.Eligible:
			h.mascotVariant = MascotAlert
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Returning from a run changes the standing; reload on focus keys.
	if _, ok := msg.(tea.KeyMsg); ok {
		h.refresh()
		if len(h.menu.Items) > 1 {
			h.menu.Items[1].Disabled = !h.hasOpenSet
		}
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	sections = append(sections, renderStatsBar(
		h.score, h.correct, h.pending, h.bossUnlocked, cw, compact))

	// The gate can't be approached before a set exists.
	disabled := map[int]bool{}
	for i, item := range h.menu.Items {
		if item.Disabled {
			disabled[i] = true
		}
	}
	if compact {
		sections = append(sections, renderArcadeMenuCompact(
			h.menuLabels, h.menu.Selected, cw, disabled))
	} else {
		sections = append(sections, renderArcadeMenu(
			h.menuLabels, h.menu.Selected, cw, disabled))
	}

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
