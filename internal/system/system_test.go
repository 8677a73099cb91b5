package system

import (
	"testing"

	"go-scurve-defense/internal/component"
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/entity"
	"go-scurve-defense/internal/event"
	"go-scurve-defense/internal/timer"
	"go-scurve-defense/pkg/curve"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fixedRandom struct{ v float64 }

func (f fixedRandom) Float64() float64 { return f.v }

type fixture struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	queue      *event.Queue
	path       *curve.Path
	scheduler  *timer.Scheduler

	state      *StateSystem
	combat     *CombatSystem
	projectile *ProjectileSystem
	status     *StatusEffectSystem
	movement   *MovementSystem
	wave       *WaveSystem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	path, err := defs.NewPath()
	require.NoError(t, err)

	f := &fixture{
		ecs:        entity.NewECS(false),
		dispatcher: event.NewDispatcher(),
		queue:      &event.Queue{},
		path:       path,
		scheduler:  timer.NewScheduler(),
	}
	f.dispatcher.SubscribeAll(f.queue, event.AllTypes...)
	log := zerolog.Nop()
	f.state = NewStateSystem(f.ecs, f.dispatcher, log)
	f.combat = NewCombatSystem(f.ecs, f.dispatcher)
	f.projectile = NewProjectileSystem(f.ecs, f.dispatcher)
	f.status = NewStatusEffectSystem(f.ecs, f.dispatcher)
	f.movement = NewMovementSystem(f.ecs, f.dispatcher, path, f.state)
	f.wave = NewWaveSystem(f.ecs, f.dispatcher, f.scheduler, fixedRandom{0.1}, path, f.state, log)
	return f
}

// addEnemy ставит врага в произвольную точку; позиция вне пути допустима для проверки боевки.
func (f *fixture) addEnemy(t defs.EnemyType, x, y float64) *component.Enemy {
	id := f.ecs.NewEntity()
	e := component.NewEnemy(id, t, 1, component.Position{X: x, Y: y})
	f.ecs.Enemies.Add(id, e)
	return e
}

func (f *fixture) addTower(t defs.TowerType, level int, x, y float64) *component.Tower {
	id := f.ecs.NewEntity()
	tw := component.NewTower(id, t, 0, 0, component.Position{X: x, Y: y})
	tw.Level = level
	tw.ApplyStats()
	f.ecs.Towers.Add(id, tw)
	return tw
}

// addShot кладет снаряд прямо на цель, чтобы он сработал на ближайшем Update.
func (f *fixture) addShot(t defs.TowerType, level, damage int, target *component.Enemy) *component.Projectile {
	id := f.ecs.NewEntity()
	p := &component.Projectile{
		ID:         id,
		Origin:     target.Position,
		Position:   target.Position,
		TargetID:   target.ID,
		Damage:     damage,
		TowerType:  t,
		TowerLevel: level,
		Active:     true,
	}
	f.ecs.Projectiles.Add(id, p)
	return p
}

func (f *fixture) drain(types ...event.EventType) []event.Event {
	want := map[event.EventType]bool{}
	for _, t := range types {
		want[t] = true
	}
	var out []event.Event
	for _, e := range f.queue.Drain() {
		if len(want) == 0 || want[e.Type] {
			out = append(out, e)
		}
	}
	return out
}
