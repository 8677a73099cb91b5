// internal/system/damage.go
package system

import (
	"go-scurve-defense/internal/component"
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/entity"
	"go-scurve-defense/internal/event"
)

const (
	bossDeathRadius      = 90.0
	finalBossDeathRadius = 140.0
)

// emit отправляет событие, помечая его текущим тиком сессии.
func emit(ecs *entity.ECS, d *event.Dispatcher, t event.EventType, data interface{}) {
	d.Dispatch(event.Event{Type: t, Tick: ecs.Session.Tick, Data: data})
}

// ApplyDamage наносит урон живому врагу. Возвращает true, если этот удар его убил.
// Мертвые (в том числе вышедшие) враги урон не получают, поэтому убийство
// засчитывается ровно один раз даже при нескольких попаданиях за проход.
func ApplyDamage(ecs *entity.ECS, d *event.Dispatcher, enemy *component.Enemy, damage int) bool {
	if enemy == nil || enemy.Dead {
		return false
	}
	enemy.Health -= damage
	if enemy.Health > 0 {
		return false
	}
	killEnemy(ecs, d, enemy)
	return true
}

// killEnemy помечает врага мертвым и начисляет награду.
func killEnemy(ecs *entity.ECS, d *event.Dispatcher, enemy *component.Enemy) {
	enemy.Dead = true
	session := ecs.Session
	session.Money += enemy.Bounty
	session.Kills++

	emit(ecs, d, event.EnemyKilled, event.KillData{
		EnemyID: enemy.ID,
		Type:    enemy.Type,
		X:       enemy.Position.X,
		Y:       enemy.Position.Y,
		Bounty:  enemy.Bounty,
	})

	cue := event.CueKill
	switch enemy.Type {
	case defs.EnemyFinalBoss:
		cue = event.CueFinalBossKill
		emit(ecs, d, event.Explosion, event.ExplosionData{X: enemy.Position.X, Y: enemy.Position.Y, Radius: finalBossDeathRadius, Big: true})
	case defs.EnemyBoss, defs.EnemyElite:
		cue = event.CueBossKill
		emit(ecs, d, event.Explosion, event.ExplosionData{X: enemy.Position.X, Y: enemy.Position.Y, Radius: bossDeathRadius, Big: true})
	}
	emit(ecs, d, event.SoundCue, event.SoundData{Cue: cue})
}
