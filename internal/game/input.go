package game

import (
	"github.com/gdamore/tcell/v2"

	"lastlight/internal/gamemap"
	"lastlight/internal/system"
)

// keyHoldTime is how long a movement key press keeps its axis active.
// Terminals only deliver key-down events, so held keys are reconstructed
// from the auto-repeat stream refreshing this window.
const keyHoldTime = 0.18

// inputState aggregates tcell events between simulation ticks into the
// edge-triggered Input the world consumes once per tick.
type inputState struct {
	dirX, dirY   float64
	holdX, holdY float64
	facing       gamemap.Vec2

	pending     system.Input
	flareScreen [2]int
	flareClick  bool
	quit        bool
}

func newInputState() *inputState {
	return &inputState{facing: gamemap.Vec2{X: 1}}
}

// handleKey folds one key event into the pending input.
func (in *inputState) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		in.press(0, -1)
		return
	case tcell.KeyDown:
		in.press(0, 1)
		return
	case tcell.KeyLeft:
		in.press(-1, 0)
		return
	case tcell.KeyRight:
		in.press(1, 0)
		return
	case tcell.KeyTab:
		in.pending.CycleFocus = true
		return
	case tcell.KeyEscape:
		in.quit = true
		return
	}

	switch ev.Rune() {
	case 'w', 'W', 'k', 'K':
		in.press(0, -1)
	case 's', 'S', 'j', 'J':
		in.press(0, 1)
	case 'a', 'A', 'h', 'H':
		in.press(-1, 0)
	case 'd', 'D', 'l', 'L':
		in.press(1, 0)
	case 'e', 'E':
		in.pending.PlaceLantern = true
	case 'f', 'F':
		in.pending.ThrowFlare = true
	case 'g', 'G':
		in.pending.DropLure = true
	case 't', 'T':
		in.pending.StartTeleport = true
	case ' ':
		in.pending.Shockwave = true
	case 'q', 'Q':
		in.quit = true
	}
}

// handleMouse records a left-click flare throw at the clicked cell.
func (in *inputState) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()
	in.flareScreen = [2]int{x, y}
	in.flareClick = true
	in.pending.ThrowFlare = true
}

func (in *inputState) press(dx, dy float64) {
	if dx != 0 {
		in.dirX = dx
		in.holdX = keyHoldTime
	}
	if dy != 0 {
		in.dirY = dy
		in.holdY = keyHoldTime
	}
	f := gamemap.Vec2{}
	if in.holdX > 0 {
		f.X = in.dirX
	}
	if in.holdY > 0 {
		f.Y = in.dirY
	}
	if f.Len() > 0 {
		in.facing = f.Normalized()
	}
}

// consume decays key holds and hands the accumulated input to the caller,
// resolving the flare aim point. screenToWorld is nil when no camera exists
// yet; keyboard flares then aim along the facing direction.
func (in *inputState) consume(dt float64, playerPos gamemap.Vec2, screenToWorld func(x, y int) gamemap.Vec2) system.Input {
	in.holdX -= dt
	in.holdY -= dt

	out := in.pending
	in.pending = system.Input{}

	if in.holdX > 0 {
		out.Move.X = in.dirX
	}
	if in.holdY > 0 {
		out.Move.Y = in.dirY
	}

	if out.ThrowFlare {
		if in.flareClick && screenToWorld != nil {
			out.FlareAim = screenToWorld(in.flareScreen[0], in.flareScreen[1])
		} else {
			out.FlareAim = playerPos.Add(in.facing.Scale(gamemap.TileSize * 4))
		}
	}
	in.flareClick = false
	return out
}
