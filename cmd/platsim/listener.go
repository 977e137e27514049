package main

import (
	"fmt"
	"log"

	"github.com/automoto/platcore/components"
	"github.com/automoto/platcore/systems"
	"github.com/automoto/platcore/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LogListener prints every physics event. Projectiles are destroyed when
// they hit a platform.
type LogListener struct {
	ecs *ecs.ECS
}

var _ systems.Listener = (*LogListener)(nil)

func (l *LogListener) OnJumping(actor *donburi.Entry) {
	log.Printf("%s jumps", describe(actor))
}

func (l *LogListener) OnFalling(actor *donburi.Entry) {
	log.Printf("%s starts falling", describe(actor))
}

func (l *LogListener) OnLanding(actor, platform *donburi.Entry, fallHeight float64) {
	log.Printf("%s lands on %s after falling %.3f", describe(actor), describe(platform), fallHeight)
}

func (l *LogListener) OnCollidePlatform(actor, platform *donburi.Entry) {
	log.Printf("%s bumps into %s", describe(actor), describe(platform))
}

func (l *LogListener) OnSwitchPlatform(actor, from, to *donburi.Entry) {
	log.Printf("%s steps from %s to %s", describe(actor), describe(from), describe(to))
}

func (l *LogListener) OnTouchActor(actor, other *donburi.Entry) {
	log.Printf("%s touches %s", describe(actor), describe(other))
}

func (l *LogListener) OnReachObject(actor, item *donburi.Entry) {
	log.Printf("%s reaches %s", describe(actor), describe(item))
}

func (l *LogListener) OnReachLadder(actor, ladder *donburi.Entry) {
	log.Printf("%s grabs %s", describe(actor), describe(ladder))
}

func (l *LogListener) OnLeaveLadder(actor, ladder *donburi.Entry) {
	log.Printf("%s lets go of %s", describe(actor), describe(ladder))
}

func (l *LogListener) OnImpactPlatform(projectile, platform *donburi.Entry) {
	log.Printf("%s hits %s", describe(projectile), describe(platform))
	factory.Destroy(l.ecs, projectile)
}

func (l *LogListener) OnImpactActor(projectile, actor *donburi.Entry) {
	log.Printf("%s hits %s", describe(projectile), describe(actor))
}

func describe(e *donburi.Entry) string {
	switch {
	case e == nil || !e.Valid():
		return "<gone>"
	case e.HasComponent(components.Actor):
		return components.Actor.Get(e).Name
	case e.HasComponent(components.Platform):
		p := components.Platform.Get(e)
		return fmt.Sprintf("platform@(%.2f, %.2f)", p.Pos.X, p.Pos.Y)
	case e.HasComponent(components.Ladder):
		l := components.Ladder.Get(e)
		return fmt.Sprintf("ladder@(%.2f, %.2f)", l.Pos.X, l.Pos.Y)
	case e.HasComponent(components.Item):
		return components.Item.Get(e).Type.String()
	case e.HasComponent(components.Projectile):
		return components.Projectile.Get(e).Type.String() + " projectile"
	}
	return fmt.Sprintf("entity %v", e.Entity())
}
