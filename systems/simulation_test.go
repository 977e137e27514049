package systems

import (
	"testing"
	"time"

	"github.com/automoto/platcore/components"
	cfg "github.com/automoto/platcore/config"
	"github.com/automoto/platcore/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const tick = 16 * time.Millisecond

type event struct {
	kind   string
	a, b   donburi.Entity
	height float64
}

// recorder keeps every event in order. hook, when set, runs after recording.
type recorder struct {
	events []event
	hook   func(event, *donburi.Entry)
}

func (r *recorder) add(kind string, a, b *donburi.Entry, height float64) {
	ev := event{kind: kind, a: entityOf(a), b: entityOf(b), height: height}
	r.events = append(r.events, ev)
	if r.hook != nil {
		r.hook(ev, a)
	}
}

func entityOf(e *donburi.Entry) donburi.Entity {
	if e == nil {
		return donburi.Null
	}
	return e.Entity()
}

func (r *recorder) of(kind string) []event {
	var out []event
	for _, ev := range r.events {
		if ev.kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

func (r *recorder) OnJumping(a *donburi.Entry) { r.add("jumping", a, nil, 0) }
func (r *recorder) OnFalling(a *donburi.Entry) { r.add("falling", a, nil, 0) }
func (r *recorder) OnLanding(a, p *donburi.Entry, h float64) {
	r.add("landing", a, p, h)
}
func (r *recorder) OnCollidePlatform(a, p *donburi.Entry) { r.add("collide", a, p, 0) }
func (r *recorder) OnSwitchPlatform(a, from, to *donburi.Entry) {
	r.add("switch", from, to, 0)
}
func (r *recorder) OnTouchActor(a, o *donburi.Entry) { r.add("touch", a, o, 0) }
func (r *recorder) OnReachObject(a, i *donburi.Entry) { r.add("reach", a, i, 0) }
func (r *recorder) OnReachLadder(a, l *donburi.Entry) { r.add("ladder", a, l, 0) }
func (r *recorder) OnLeaveLadder(a, l *donburi.Entry) { r.add("unladder", a, l, 0) }
func (r *recorder) OnImpactPlatform(p, pl *donburi.Entry) { r.add("impact-platform", p, pl, 0) }
func (r *recorder) OnImpactActor(p, a *donburi.Entry) { r.add("impact-actor", p, a, 0) }

func newSim(t *testing.T) (*ecs.ECS, *Simulation, *recorder) {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	w := ecs.NewECS(donburi.NewWorld())
	rec := &recorder{}
	return w, NewSimulation(w, rec), rec
}

func steps(sim *Simulation, n int) {
	for i := 0; i < n; i++ {
		sim.Step(tick)
	}
}

// standOn places the actor on the platform's top edge at x.
func standOn(actor, platform *donburi.Entry, x float64) {
	a := components.Actor.Get(actor)
	a.Pos = math.Vec2{X: x, Y: components.Platform.Get(platform).Top()}
	a.AnchorPlatform = platform.Entity()
	a.JumpClockMs = 0
	a.Falling = false
}

func TestStepCountsTicks(t *testing.T) {
	_, sim, _ := newSim(t)
	assert.Equal(t, uint64(0), sim.Tick())
	steps(sim, 3)
	assert.Equal(t, uint64(3), sim.Tick())
}

func TestNilListenerIsAllowed(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	sim := NewSimulation(w, nil)

	ground := factory.CreatePlatform(w, 0, 0, 4, 0)
	actor := factory.CreateActor(w, "solo", 2, 1)

	assert.NotPanics(t, func() { steps(sim, 60) })
	assert.Equal(t, ground.Entity(), sim.Actor(actor.Entity()).AnchorPlatform)
}

func TestLookupsPanicOnUnknownEntities(t *testing.T) {
	w, sim, _ := newSim(t)

	actor := factory.CreateActor(w, "a", 0, 0)
	platform := factory.CreatePlatform(w, 0, 0, 1, 0)
	ladder := factory.CreateLadder(w, 0, 0, 2)
	item := factory.CreateItem(w, 0, 0, components.ItemFood)
	projectile := factory.CreateProjectile(w, 0, 0, 1, components.ItemWeapon, donburi.Null)

	assert.NotPanics(t, func() {
		sim.Actor(actor.Entity())
		sim.Platform(platform.Entity())
		sim.Ladder(ladder.Entity())
		sim.Item(item.Entity())
		sim.Projectile(projectile.Entity())
	})

	assert.Panics(t, func() { sim.Actor(donburi.Null) })
	assert.Panics(t, func() { sim.Actor(platform.Entity()) })
	assert.Panics(t, func() { sim.Ladder(actor.Entity()) })

	factory.Destroy(w, item)
	assert.Panics(t, func() { sim.Item(item.Entity()) })
}

func TestWorldIsShared(t *testing.T) {
	w, sim, _ := newSim(t)
	assert.Equal(t, w.World, sim.World())
}

func TestDestroyedEntitiesLeaveTheIndex(t *testing.T) {
	w, sim, _ := newSim(t)
	platform := factory.CreatePlatform(w, 0, 0, 4, 0)
	index := factory.SpaceOf(w).Index
	require.True(t, index.Has(platform.Entity()))

	// Removing straight from the world skips factory.Destroy; the next step
	// still prunes the stale shape.
	w.World.Remove(platform.Entity())
	sim.Step(tick)
	assert.False(t, index.Has(platform.Entity()))
}

func TestCallbackMayDestroyActor(t *testing.T) {
	w, sim, rec := newSim(t)
	factory.CreatePlatform(w, 0, 0, 4, 0)
	actor := factory.CreateActor(w, "doomed", 2, 0.5)
	factory.CreateItem(w, 2, 0.4, components.ItemDanger)

	rec.hook = func(ev event, e *donburi.Entry) {
		if ev.kind == "falling" {
			factory.Destroy(w, e)
		}
	}

	assert.NotPanics(t, func() { steps(sim, 120) })
	assert.False(t, actor.Valid())
	assert.Len(t, rec.of("falling"), 1)
	assert.Empty(t, rec.of("landing"))
	assert.Empty(t, rec.of("reach"))
}
