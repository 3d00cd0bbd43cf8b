package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gauntlet/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle       MascotVariant = iota // Default purple
	MascotTriumphant                      // Gold — the boss gate is open
	MascotAlert                           // Cyan, exclamation — eligible but gate still shut
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ⚔⚔⚔ │
└─────┘`

const mascotTriumphant = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ⚔⚔⚔ │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ ⚔⚔⚔ │
└─────┘`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotTriumphant:
		art = mascotTriumphant
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.ArcadeCyan
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
