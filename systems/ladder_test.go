package systems

import (
	"testing"

	"github.com/automoto/platcore/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// grabLadder jumps the actor off the floor into the ladder's reach.
func grabLadder(t *testing.T, sim *Simulation, actor *donburi.Entry) {
	t.Helper()
	sim.Actor(actor.Entity()).Force.Y = 1
	sim.Step(tick)
	require.True(t, sim.Actor(actor.Entity()).Climbing())
}

func TestLadderReachAndLeaveFireOnce(t *testing.T) {
	w, sim, rec := newSim(t)
	floor := factory.CreatePlatform(w, 0, 0, 10, 0)
	ladder := factory.CreateLadder(w, 5, 0, 6)
	actor := factory.CreateActor(w, "climber", 5, 0)
	standOn(actor, floor, 5)

	grabLadder(t, sim, actor)
	assert.Equal(t, ladder.Entity(), sim.Actor(actor.Entity()).AnchorLadder)
	assert.Equal(t, donburi.Null, sim.Actor(actor.Entity()).AnchorPlatform)

	start := sim.Actor(actor.Entity()).Pos.Y
	for i := 0; i < 20; i++ {
		sim.Actor(actor.Entity()).Force.Y = 1
		sim.Step(tick)
	}
	assert.InDelta(t, start+20*0.048, sim.Actor(actor.Entity()).Pos.Y, 1e-9)

	sim.Actor(actor.Entity()).Force.X = 1
	steps(sim, 60)

	assert.Len(t, rec.of("jumping"), 1)
	reaches := rec.of("ladder")
	require.Len(t, reaches, 1)
	assert.Equal(t, ladder.Entity(), reaches[0].b)
	leaves := rec.of("unladder")
	require.Len(t, leaves, 1)
	assert.Equal(t, ladder.Entity(), leaves[0].b)
	assert.Len(t, rec.of("falling"), 1)
	assert.Len(t, rec.of("landing"), 1)
	assert.Equal(t, floor.Entity(), sim.Actor(actor.Entity()).AnchorPlatform)
}

func TestClimbingDownStopsAtFoot(t *testing.T) {
	w, sim, rec := newSim(t)
	floor := factory.CreatePlatform(w, 0, 0, 10, 0)
	factory.CreateLadder(w, 5, 0, 6)
	actor := factory.CreateActor(w, "climber", 5, 0)
	standOn(actor, floor, 5)

	grabLadder(t, sim, actor)
	for i := 0; i < 30; i++ {
		sim.Actor(actor.Entity()).Force.Y = -1
		sim.Step(tick)
		require.GreaterOrEqual(t, sim.Actor(actor.Entity()).Pos.Y, 0.0)
	}

	assert.Len(t, rec.of("unladder"), 1)
	landings := rec.of("landing")
	require.Len(t, landings, 1)
	assert.Zero(t, landings[0].height)
	assert.Equal(t, floor.Entity(), sim.Actor(actor.Entity()).AnchorPlatform)
}

func TestSwitchingLaddersOnlyReportsReach(t *testing.T) {
	w, sim, rec := newSim(t)
	floor := factory.CreatePlatform(w, 0, 0, 10, 0)
	first := factory.CreateLadder(w, 5, 0, 6)
	second := factory.CreateLadder(w, 5.5, 0, 6)
	actor := factory.CreateActor(w, "climber", 5, 0)
	standOn(actor, floor, 5)

	grabLadder(t, sim, actor)
	require.Equal(t, first.Entity(), sim.Actor(actor.Entity()).AnchorLadder)

	sim.Actor(actor.Entity()).Force.X = 1
	steps(sim, 4)

	assert.Equal(t, second.Entity(), sim.Actor(actor.Entity()).AnchorLadder)
	reaches := rec.of("ladder")
	require.Len(t, reaches, 2)
	assert.Equal(t, first.Entity(), reaches[0].b)
	assert.Equal(t, second.Entity(), reaches[1].b)
	assert.Empty(t, rec.of("unladder"))
}

func TestDestroyedLadderDropsActor(t *testing.T) {
	w, sim, rec := newSim(t)
	floor := factory.CreatePlatform(w, 0, 0, 10, 0)
	ladder := factory.CreateLadder(w, 5, 0, 6)
	actor := factory.CreateActor(w, "climber", 5, 0)
	standOn(actor, floor, 5)

	grabLadder(t, sim, actor)
	factory.Destroy(w, ladder)
	steps(sim, 30)

	a := sim.Actor(actor.Entity())
	assert.False(t, a.Climbing())
	assert.Equal(t, floor.Entity(), a.AnchorPlatform)
	assert.Len(t, rec.of("falling"), 1)
	assert.Len(t, rec.of("landing"), 1)
}
