package systems

import "github.com/yohamta/donburi"

// Listener receives physics events. Calls are synchronous and happen at most
// once per triggering condition per step. Implementations may mutate or
// destroy entities; the simulation skips entries that become invalid.
type Listener interface {
	OnJumping(actor *donburi.Entry)
	OnFalling(actor *donburi.Entry)
	// fallHeight is the distance from where the fall began to the landing
	// point, 0 when the actor re-acquired a platform without falling.
	OnLanding(actor, platform *donburi.Entry, fallHeight float64)
	OnCollidePlatform(actor, platform *donburi.Entry)
	// from is nil when the previous platform no longer exists.
	OnSwitchPlatform(actor, from, to *donburi.Entry)
	OnTouchActor(actor, other *donburi.Entry)
	OnReachObject(actor, item *donburi.Entry)
	OnReachLadder(actor, ladder *donburi.Entry)
	// ladder is nil when the ladder was destroyed while held.
	OnLeaveLadder(actor, ladder *donburi.Entry)
	OnImpactPlatform(projectile, platform *donburi.Entry)
	OnImpactActor(projectile, actor *donburi.Entry)
}

// NopListener ignores every event. Embed it to implement only some methods.
type NopListener struct{}

func (NopListener) OnJumping(*donburi.Entry) {}
func (NopListener) OnFalling(*donburi.Entry) {}
func (NopListener) OnLanding(*donburi.Entry, *donburi.Entry, float64) {}
func (NopListener) OnCollidePlatform(*donburi.Entry, *donburi.Entry) {}
func (NopListener) OnSwitchPlatform(_, _, _ *donburi.Entry) {}
func (NopListener) OnTouchActor(*donburi.Entry, *donburi.Entry) {}
func (NopListener) OnReachObject(*donburi.Entry, *donburi.Entry) {}
func (NopListener) OnReachLadder(*donburi.Entry, *donburi.Entry) {}
func (NopListener) OnLeaveLadder(*donburi.Entry, *donburi.Entry) {}
func (NopListener) OnImpactPlatform(*donburi.Entry, *donburi.Entry) {}
func (NopListener) OnImpactActor(*donburi.Entry, *donburi.Entry) {}

var _ Listener = NopListener{}
