package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"lastlight/assets"
	"lastlight/internal/component"
	"lastlight/internal/config"
	"lastlight/internal/generate"
	"lastlight/internal/render"
	"lastlight/internal/system"
)

// GameState tracks the main state machine.
type GameState uint8

const (
	StateTitle GameState = iota
	StatePlaying
	StateShop
	StateGameOver
)

// levelOutcome is how one level's play loop ended.
type levelOutcome uint8

const (
	outcomeWin levelOutcome = iota
	outcomeDead
	outcomeQuit       // back to title, run recorded
	outcomeDisconnect // screen gone, exit entirely
)

// Game is the top-level orchestrator for one screen's play session.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	world    *system.World
	rng      *rand.Rand
	sound    Sound
	input    *inputState

	state  GameState
	level  int
	player *component.Player
	points int // spendable balance; stats.Score keeps the cumulative total
	stats  RunStats
	best   BestRun

	runTime    float64 // banked seconds from completed levels
	floats     []render.FloatText
	ownsScreen bool
}

// New creates a Game on a freshly initialized local terminal screen.
func New(sound Sound) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	g := NewWithScreen(screen, sound)
	g.ownsScreen = true
	return g, nil
}

// NewWithScreen creates a Game on an existing screen. The SSH server uses
// this with screens backed by remote sessions; the caller keeps ownership
// of the screen's lifecycle.
func NewWithScreen(screen tcell.Screen, sound Sound) *Game {
	screen.EnableMouse()
	if sound == nil {
		sound = NopSound{}
	}
	return &Game{
		screen: screen,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		sound:  sound,
		best:   loadBestRun(),
	}
}

// resetForRun clears all per-run state in preparation for a fresh start.
func (g *Game) resetForRun() {
	g.level = 1
	g.player = component.NewPlayer()
	g.points = 0
	g.stats = RunStats{}
	g.runTime = 0
	g.floats = nil
	g.input = newInputState()
}

// loadLevel generates the maze for the given level and rebuilds the world
// around the carried-over player.
func (g *Game) loadLevel(level int) {
	g.level = level
	if level > g.stats.Level {
		g.stats.Level = level
	}
	size := levelSize(level)
	maze := generate.Generate(&generate.Config{Width: size, Height: size, Rand: g.rng})
	g.world = system.NewWorld(maze, g.player, levelScale(level), g.rng)
	g.renderer = render.NewRenderer(g.screen)
	g.renderer.CenterOn(g.player.Pos)
	g.floats = nil
}

// Run drives the state machine until the player quits or disconnects.
func (g *Game) Run() {
	if g.ownsScreen {
		defer g.screen.Fini()
	}
	defer g.sound.Close()

	// One input goroutine feeds every state's loop. The channel closes when
	// the screen dies, which is how SSH disconnects surface here.
	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	for {
		g.state = StateTitle
		if !g.runTitle(eventCh) {
			return
		}

		g.resetForRun()
		g.loadLevel(1)

	run:
		for {
			g.state = StatePlaying
			switch g.runLevel(eventCh) {
			case outcomeWin:
				g.state = StateShop
				g.openShop()
				if !g.runShop(eventCh) {
					return
				}
				g.loadLevel(g.level + 1)
			case outcomeDead:
				g.state = StateGameOver
				g.finishRun()
				again, alive := g.runGameOver(eventCh)
				if !alive {
					return
				}
				if again {
					g.resetForRun()
					g.loadLevel(1)
					continue
				}
				break run
			case outcomeQuit:
				g.finishRun()
				break run
			case outcomeDisconnect:
				g.finishRun()
				return
			}
		}
	}
}

// runLevel runs the fixed-timestep simulation loop for the current level.
// Input events fold into the pending input between ticks; each tick consumes
// them once. Frame deltas are clamped so a stalled terminal cannot make the
// loop spiral trying to catch up.
func (g *Game) runLevel(eventCh <-chan tcell.Event) levelOutcome {
	ticker := time.NewTicker(time.Second / config.TickRate)
	defer ticker.Stop()
	last := time.Now()
	var acc float64

	for {
		select {
		case ev, ok := <-eventCh:
			if !ok {
				return outcomeDisconnect
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.screen.Sync()
				g.renderer = render.NewRenderer(g.screen)
			case *tcell.EventKey:
				g.input.handleKey(ev)
				if g.input.quit {
					g.input.quit = false
					return outcomeQuit
				}
			case *tcell.EventMouse:
				g.input.handleMouse(ev)
			}

		case now := <-ticker.C:
			delta := now.Sub(last).Seconds()
			last = now
			if delta > config.MaxFrameDelta {
				delta = config.MaxFrameDelta
			}
			acc += delta

			for acc >= config.FixedDt {
				acc -= config.FixedDt
				in := g.input.consume(config.FixedDt, g.player.Pos, g.renderer.ScreenToWorld)
				g.world.Update(config.FixedDt, in)
				g.drainEvents()

				if g.world.PlayerDead() {
					return outcomeDead
				}
				if g.world.ExitReached() {
					g.sound.Play("level_clear")
					return outcomeWin
				}
			}
			g.tickFloats(delta)
			g.drawPlaying()
		}
	}
}

// drainEvents forwards one tick's simulation output to sound, score, and
// the floating-number overlay.
func (g *Game) drainEvents() {
	ev := g.world.DrainEvents()
	g.points += ev.Points
	g.stats.Score += ev.Points
	g.stats.Kills += ev.Kills
	for _, s := range ev.Sounds {
		g.sound.Play(s)
	}
	for _, d := range ev.Damage {
		g.floats = append(g.floats, render.FloatText{
			Pos:  d.Pos,
			Text: fmt.Sprintf("%d", d.Amount),
		})
	}
}

// tickFloats ages the floating damage numbers and drops expired ones.
func (g *Game) tickFloats(dt float64) {
	kept := g.floats[:0]
	for _, f := range g.floats {
		f.Age += dt
		if f.Age < render.FloatLifetime {
			kept = append(kept, f)
		}
	}
	g.floats = kept
}

func (g *Game) drawPlaying() {
	g.renderer.CenterOn(g.player.Pos)
	g.renderer.DrawFrame(g.world, assets.ThemeFor(g.level), g.floats)
	g.renderer.DrawHUD(g.world, render.HUDInfo{
		Level:  g.level,
		Points: g.points,
		Score:  g.stats.Score,
	})
	g.screen.Show()
}

// openShop banks the finished level's time and credits the completion
// bonuses. Everything is credited here, at shop-open time, so the shop and
// the next level both see one consistent balance.
func (g *Game) openShop() {
	levelTime := g.world.Elapsed
	g.runTime += levelTime
	g.stats.TimeSec = g.runTime

	bonus := levelSize(g.level)
	if remaining := g.world.Scale.ParTime - levelTime; remaining > 0 {
		bonus += int(remaining) * config.TimeBonusPerSec
	}
	if !g.world.DamageTaken {
		bonus += config.NoDamageBonus
	}
	g.points += bonus
	g.stats.Score += bonus
}

// finishRun closes out the record keeping for a dead or abandoned run.
func (g *Game) finishRun() {
	g.runTime += g.world.Elapsed
	g.stats.TimeSec = g.runTime
	g.stats.Points = g.points
	g.best.Merge(g.stats)
	saveRunLog(g.stats)
	saveBestRun(g.best)
}
