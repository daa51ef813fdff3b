package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"lastlight/assets"
	"lastlight/internal/component"
)

// applyPurchase attempts to buy one catalogue entry, mutating the player and
// the spendable balance. Returns a status line for the shop UI.
func applyPurchase(p *component.Player, points *int, e assets.ShopEntry) string {
	switch e.Kind {
	case assets.ShopWeapon:
		if p.Owned[e.Weapon] {
			return "Already owned."
		}
	case assets.ShopBlade:
		if p.HasBlade {
			return "Already owned."
		}
	}
	if *points < e.Price {
		return fmt.Sprintf("Not enough points. (%d needed, you have %d)", e.Price, *points)
	}
	*points -= e.Price

	switch e.Kind {
	case assets.ShopWeapon:
		p.Owned[e.Weapon] = true
	case assets.ShopBlade:
		p.HasBlade = true
	case assets.ShopUpgrade:
		switch e.Stat {
		case assets.UpDamage:
			p.DamageMult += e.Step
		case assets.UpFireRate:
			p.FireRateMult += e.Step
		case assets.UpSpeed:
			p.SpeedMult += e.Step
		case assets.UpTorch:
			p.TorchMult += e.Step
		case assets.UpMaxHP:
			p.MaxHP += e.Step
			p.HP += e.Step
		}
	case assets.ShopConsumable:
		switch e.Consumable {
		case assets.CLantern:
			p.Lanterns += e.Count
		case assets.CFlare:
			p.Flares += e.Count
		case assets.CLure:
			p.Lures += e.Count
		case assets.CTeleport:
			p.Teleports += e.Count
		case assets.CShockwave:
			p.Shockwaves += e.Count
		}
	}
	return fmt.Sprintf("Bought %s %s. (%d points remaining)", e.Glyph, e.Name, *points)
}

// runShop opens the blocking shop UI between levels. eventCh supplies events
// from the session's input goroutine. The player presses a letter to buy,
// Enter to buy the selected line, Esc/q to descend to the next level.
// Returns false when the player disconnected.
func (g *Game) runShop(eventCh <-chan tcell.Event) bool {
	catalogue := assets.ShopCatalogue
	cursor := 0
	statusMsg := ""

	for {
		g.drawShopScreen(catalogue, cursor, statusMsg)

		ev, ok := <-eventCh
		if !ok || ev == nil {
			return false
		}
		statusMsg = ""
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape:
				return true
			case tcell.KeyUp:
				if cursor > 0 {
					cursor--
				}
			case tcell.KeyDown:
				if cursor < len(catalogue)-1 {
					cursor++
				}
			case tcell.KeyEnter:
				statusMsg = applyPurchase(g.player, &g.points, catalogue[cursor])
			default:
				r := ev.Rune()
				switch {
				case r == 'q' || r == 'Q':
					return true
				case r == 'k' || r == 'K':
					if cursor > 0 {
						cursor--
					}
				case r == 'j' || r == 'J':
					if cursor < len(catalogue)-1 {
						cursor++
					}
				case r >= 'a' && r <= 'a'+rune(len(catalogue)-1):
					cursor = int(r - 'a')
					statusMsg = applyPurchase(g.player, &g.points, catalogue[cursor])
				}
			}
		}
	}
}

// drawShopScreen renders the between-level shop.
func (g *Game) drawShopScreen(items []assets.ShopEntry, cursor int, statusMsg string) {
	screen := g.screen
	screen.Clear()
	sw, _ := screen.Size()

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	yellow := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	highlight := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	putText(screen, 0, 0, fmt.Sprintf("🏕️ SUPPLY CACHE — LEVEL %d CLEARED  [%d points]", g.level, g.points), yellow)
	hints := "[j/k] Move  [a-n] Buy  [Enter] Buy selected  [Esc] Next level"
	if len([]rune(hints)) < sw {
		putText(screen, sw-len([]rune(hints)), 0, hints, dim)
	}
	for x := 0; x < sw; x++ {
		screen.SetContent(x, 1, '─', nil, gray)
	}
	putText(screen, 0, 2, "  #  Item                      Price", white)
	for x := 0; x < sw; x++ {
		screen.SetContent(x, 3, '─', nil, gray)
	}

	for i, item := range items {
		row := 4 + i
		style := white
		pfx := "  "
		if cursor == i {
			style = highlight
			pfx = "► "
		}
		owned := ""
		if (item.Kind == assets.ShopWeapon && g.player.Owned[item.Weapon]) ||
			(item.Kind == assets.ShopBlade && g.player.HasBlade) {
			owned = "  [owned]"
		}
		line := fmt.Sprintf("%s[%c] %s %-18s  %3d%s", pfx, 'a'+rune(i), item.Glyph, item.Name, item.Price, owned)
		putText(screen, 0, row, line, style)
	}

	for x := 0; x < sw; x++ {
		screen.SetContent(x, 4+len(items), '─', nil, gray)
	}
	if statusMsg != "" {
		putText(screen, 0, 5+len(items), statusMsg, green)
	}
	screen.Show()
}
