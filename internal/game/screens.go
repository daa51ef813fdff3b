package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"lastlight/assets"
)

// putText writes a string to the screen at (x, y), advancing by the rendered
// width of each rune so emoji don't overlap their neighbors.
func putText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// runTitle blocks on the title screen. Returns false when the player quits
// or disconnects.
func (g *Game) runTitle(eventCh <-chan tcell.Event) bool {
	lore := 0
	for {
		g.drawTitle(lore)
		ev, ok := <-eventCh
		if !ok {
			return false
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				return true
			case tcell.KeyEscape:
				return false
			}
			switch ev.Rune() {
			case ' ':
				return true
			case 'q', 'Q':
				return false
			default:
				lore++ // any other key cycles the flavor line
			}
		}
	}
}

func (g *Game) drawTitle(lore int) {
	screen := g.screen
	screen.Clear()
	sw, sh := screen.Size()

	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)

	center := func(y int, s string, style tcell.Style) {
		putText(screen, (sw-runewidth.StringWidth(s))/2, y, s, style)
	}

	y := sh/2 - 6
	center(y, "L A S T L I G H T", gold)
	y += 2
	center(y, "The maze forgets itself. Keep it lit, find the door, get out.", white)
	y += 2
	if len(assets.TitleLore) > 0 {
		center(y, assets.TitleLore[lore%len(assets.TitleLore)], dim)
	}
	y += 3
	if g.best.BestLevel > 0 {
		center(y, fmt.Sprintf("Best: level %d · %d pts · %.0fs · %d total kills",
			g.best.BestLevel, g.best.BestScore, g.best.BestTime, g.best.TotalKills), white)
		y += 2
	}
	center(y, "[Enter] Descend    [Q] Quit", green)
	screen.Show()
}

// runGameOver shows the run summary. Returns (tryAgain, stillConnected).
func (g *Game) runGameOver(eventCh <-chan tcell.Event) (bool, bool) {
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	dim := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for {
		g.screen.Clear()
		sw, _ := g.screen.Size()

		sep := func(y int) {
			for x := 0; x < sw; x++ {
				g.screen.SetContent(x, y, '─', nil, gray)
			}
		}
		label := func(y int, l, v string) {
			putText(g.screen, 2, y, l, dim)
			putText(g.screen, 22, y, v, white)
		}

		y := 1
		sep(y)
		y += 2
		putText(g.screen, 2, y, "THE FOG TAKES YOU", gold)
		badge := "[RUN OVER]"
		putText(g.screen, sw-len(badge)-1, y, badge, red)
		y += 2

		label(y, "Level Reached:", fmt.Sprintf("%d", g.stats.Level))
		y++
		label(y, "Score:", fmt.Sprintf("%d", g.stats.Score))
		y++
		label(y, "Kills:", fmt.Sprintf("%d", g.stats.Kills))
		y++
		label(y, "Time Survived:", fmt.Sprintf("%.0fs", g.stats.TimeSec))
		y++
		label(y, "Points Unspent:", fmt.Sprintf("%d", g.stats.Points))
		y += 2

		if g.stats.Level >= g.best.BestLevel && g.stats.Score >= g.best.BestScore {
			putText(g.screen, 2, y, "New personal best!", green)
			y += 2
		}

		sep(y)
		y += 2
		putText(g.screen, 2, y, "[R] Try Again", green)
		putText(g.screen, 18, y, "[Q] Quit", red)
		g.screen.Show()

		ev, ok := <-eventCh
		if !ok {
			return false, false
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape:
				return false, true
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'r', 'R':
					return true, true
				case 'q', 'Q':
					return false, true
				}
			}
		}
	}
}
