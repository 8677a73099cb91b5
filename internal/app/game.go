// internal/app/game.go
package app

import (
	"fmt"
	"sync"

	"go-scurve-defense/internal/component"
	"go-scurve-defense/internal/config"
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/entity"
	"go-scurve-defense/internal/event"
	"go-scurve-defense/internal/system"
	"go-scurve-defense/internal/timer"
	"go-scurve-defense/internal/types"
	"go-scurve-defense/internal/utils"
	"go-scurve-defense/pkg/curve"

	"github.com/rs/zerolog"
)

// Options configures a new Game.
type Options struct {
	Seed     int64        // 0 means time-based
	AutoWave bool         // start the next wave automatically after a short delay
	Random   utils.Random // overrides Seed when set
	Logger   zerolog.Logger
}

// Game holds the main game state and logic. All exported methods are safe to
// call from different goroutines; each one runs under a single lock.
type Game struct {
	mu sync.Mutex

	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	StatusEffectSystem *system.StatusEffectSystem
	MovementSystem     *system.MovementSystem
	WaveSystem         *system.WaveSystem
	StateSystem        *system.StateSystem
	Rng                utils.Random

	path      *curve.Path
	mask      *curve.Mask
	scheduler *timer.Scheduler
	events    *event.Queue
	logger    zerolog.Logger
}

// NewGame initializes a new game instance.
func NewGame(opts Options) (*Game, error) {
	path, err := defs.NewPath()
	if err != nil {
		return nil, fmt.Errorf("failed to build enemy path: %w", err)
	}

	rng := opts.Random
	if rng == nil {
		prng := utils.NewPRNGService(opts.Seed)
		opts.Logger.Info().Int64("seed", prng.Seed()).Msg("random source ready")
		rng = prng
	}

	ecs := entity.NewECS(opts.AutoWave)
	eventDispatcher := event.NewDispatcher()
	scheduler := timer.NewScheduler()

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		path:            path,
		mask:            curve.NewPlacementMask(path, defs.MapGrid, config.PathBlockRadius),
		scheduler:       scheduler,
		events:          &event.Queue{},
		logger:          opts.Logger,
	}
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher, opts.Logger)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, eventDispatcher, path, g.StateSystem)
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, scheduler, rng, path, g.StateSystem, opts.Logger)

	eventDispatcher.SubscribeAll(g.events, event.AllTypes...)

	return g, nil
}

// Tick advances the simulation by one fixed step. Does nothing while paused or over.
func (g *Game) Tick() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tick()
}

func (g *Game) tick() {
	session := g.ECS.Session
	if !session.Running() {
		return
	}
	session.Tick++

	// Таймеры идут только вместе с симуляцией, поэтому пауза откладывает их все
	g.scheduler.Advance()
	g.CombatSystem.Update()
	g.StatusEffectSystem.Update()
	g.MovementSystem.Update()
	g.ProjectileSystem.Update()
	g.removeFinished()

	if session.GameOver {
		return
	}
	g.WaveSystem.Update()
}

// removeFinished убирает мертвых врагов и отработавшие снаряды в конце тика.
func (g *Game) removeFinished() {
	g.ECS.Enemies.RemoveIf(func(_ types.EntityID, e *component.Enemy) bool { return e.Dead })
	g.ECS.Projectiles.RemoveIf(func(_ types.EntityID, p *component.Projectile) bool { return !p.Active })
}

// StartWave starts the current wave. False if a wave is running or the game is paused or over.
func (g *Game) StartWave() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	ok := g.WaveSystem.StartWave()
	if !ok {
		g.logger.Debug().Int("wave", g.ECS.Session.Wave).Msg("start wave rejected")
	}
	return ok
}

// Restart drops every entity and pending timer and starts over at wave 1.
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.scheduler.CancelAll()
	g.ECS.Reset()
	g.events.Drain()
	g.logger.Info().Msg("game restarted")
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameRestarted})
}

func (g *Game) SetPaused(paused bool) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.StateSystem.SetPaused(paused)
}

func (g *Game) TogglePause() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.StateSystem.TogglePause()
}

// SetAutoWave toggles automatic wave start. Turning it off also cancels a pending start.
func (g *Game) SetAutoWave(on bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ECS.Session.AutoWave = on
	if !on {
		g.WaveSystem.CancelAutoStart()
	}
}

// DrainEvents returns the events produced since the last call, oldest first.
func (g *Game) DrainEvents() []event.Event {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.events.Drain()
}

func (g *Game) Money() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ECS.Session.Money
}

func (g *Game) Health() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ECS.Session.Health
}

func (g *Game) Kills() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ECS.Session.Kills
}

func (g *Game) Wave() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ECS.Session.Wave
}

// Path is the enemy route. It never changes after NewGame.
func (g *Game) Path() *curve.Path { return g.path }

// BlockedCells lists the cells where towers cannot be placed.
func (g *Game) BlockedCells() []curve.Cell { return g.mask.Cells() }

// Grid is the placement grid.
func (g *Game) Grid() curve.Grid { return g.mask.Grid() }
