package systems

import (
	"testing"

	"github.com/automoto/platcore/components"
	"github.com/automoto/platcore/shared/gamemath"
	"github.com/automoto/platcore/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/features/math"
)

func TestHoverCarriesActorByPlatformDelta(t *testing.T) {
	w, sim, rec := newSim(t)
	platform := factory.CreateFloatingPlatform(w, 0, 5, 4, 0, components.HoverData{
		XWave:     gamemath.WaveCos,
		YWave:     gamemath.WaveSin,
		Amplitude: 1,
	})
	actor := factory.CreateActor(w, "rider", 2, 5)
	standOn(actor, platform, 2)

	for i := 0; i < 10; i++ {
		before := sim.Actor(actor.Entity()).Pos
		sim.Step(tick)
		after := sim.Actor(actor.Entity()).Pos
		delta := components.Hover.Get(platform).LastDelta

		assert.InDelta(t, delta.X, after.X-before.X, 1e-9)
		assert.InDelta(t, delta.Y, after.Y-before.Y, 1e-9)
		assert.Equal(t, sim.Platform(platform.Entity()).Top(), after.Y)
	}

	assert.Equal(t, 10, components.Hover.Get(platform).Phase)
	assert.Equal(t, platform.Entity(), sim.Actor(actor.Entity()).AnchorPlatform)
	assert.Empty(t, rec.events)
}

func TestInactiveHoverStaysStill(t *testing.T) {
	w, sim, _ := newSim(t)
	platform := factory.CreateFloatingPlatform(w, 0, 5, 4, 0, components.HoverData{
		YWave: gamemath.WaveSin,
	})

	steps(sim, 10)

	assert.Equal(t, math.Vec2{X: 0, Y: 5}, sim.Platform(platform.Entity()).Pos)
	assert.Equal(t, math.Vec2{}, components.Hover.Get(platform).LastDelta)
	assert.Zero(t, components.Hover.Get(platform).Phase)
}

func TestCarriedActorBlockedByWall(t *testing.T) {
	w, sim, rec := newSim(t)
	platform := factory.CreateFloatingPlatform(w, 0, 5, 4, 0, components.HoverData{
		XWave:     gamemath.WaveCos,
		Amplitude: 1,
	})
	wall := factory.CreatePlatform(w, 4.5, 5, 1, 3)
	actor := factory.CreateActor(w, "rider", 3.5, 5)
	standOn(actor, platform, 3.5)

	sim.Step(tick)

	a := sim.Actor(actor.Entity())
	assert.Equal(t, 3.5, a.Pos.X)
	assert.Equal(t, platform.Entity(), a.AnchorPlatform)
	collisions := rec.of("collide")
	require.Len(t, collisions, 1)
	assert.Equal(t, wall.Entity(), collisions[0].b)
}

func TestPatrolPlatformTravelsAndReturns(t *testing.T) {
	w, sim, rec := newSim(t)
	platform := factory.CreatePatrolPlatform(w, 0, 5, 4, 0, math.Vec2{X: 8}, 0.5, ease.Linear)
	actor := factory.CreateActor(w, "rider", 2, 5)
	standOn(actor, platform, 2)

	for i := 0; i < 32; i++ {
		sim.Step(tick)
		offset := sim.Actor(actor.Entity()).Pos.X - sim.Platform(platform.Entity()).Pos.X
		assert.InDelta(t, 2, offset, 1e-6)
	}

	patrol := components.Patrol.Get(platform)
	assert.True(t, patrol.Returning)
	assert.InDelta(t, 8, sim.Platform(platform.Entity()).Pos.X, 1e-4)

	steps(sim, 32)

	assert.False(t, components.Patrol.Get(platform).Returning)
	assert.InDelta(t, 0, sim.Platform(platform.Entity()).Pos.X, 1e-4)
	assert.InDelta(t, 2, sim.Actor(actor.Entity()).Pos.X, 1e-4)
	assert.Empty(t, rec.events)
}
