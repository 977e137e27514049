package systems

import (
	"github.com/automoto/platcore/components"
	"github.com/automoto/platcore/tags"
	"github.com/yohamta/donburi"
)

// checkProximity reports other actors and items overlapping the actor's
// circle. Both kinds of contact share the actor's collision cooldown.
func (s *Simulation) checkProximity(e *donburi.Entry) {
	circle := components.Actor.Get(e).Circle()

	for _, other := range s.actors {
		if other.Entity() == e.Entity() || !other.Valid() {
			continue
		}
		if !circle.Overlaps(components.Actor.Get(other).Circle()) {
			continue
		}
		if s.gate(components.Actor.Get(e)) {
			s.listener.OnTouchActor(e, other)
			if !e.Valid() {
				return
			}
		}
	}

	for _, item := range s.query(circle.Bounds(), tags.ResolvItem, components.Item) {
		if !item.Valid() || !circle.Overlaps(components.Item.Get(item).Circle()) {
			continue
		}
		if s.gate(components.Actor.Get(e)) {
			s.listener.OnReachObject(e, item)
			if !e.Valid() {
				return
			}
		}
	}
}
