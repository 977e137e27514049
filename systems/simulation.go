package systems

import (
	"fmt"
	"sort"
	"time"

	"github.com/automoto/platcore/components"
	cfg "github.com/automoto/platcore/config"
	"github.com/automoto/platcore/shared/gamemath"
	"github.com/automoto/platcore/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Simulation advances every physics entity in an ECS world one tick at a time.
type Simulation struct {
	ecs      *ecs.ECS
	listener Listener

	elapsedMs float64
	tick      uint64
	actors    []*donburi.Entry // snapshot for the current step
}

// NewSimulation registers the physics systems on the ECS. Drive them with
// Step rather than calling ecs.Update directly, so elapsed time is set.
// A nil listener is replaced with NopListener.
func NewSimulation(e *ecs.ECS, listener Listener) *Simulation {
	if listener == nil {
		listener = NopListener{}
	}

	s := &Simulation{
		ecs:      e,
		listener: listener,
	}
	factory.SpaceOf(e)

	// Order matters: actors move first, then projectiles, then platforms
	// carry whoever is standing on them.
	e.AddSystem(s.updateActors)
	e.AddSystem(s.updateProjectiles)
	e.AddSystem(s.updatePlatforms)

	return s
}

// Step advances the simulation by elapsed. All effects happen through
// component mutation and listener callbacks.
func (s *Simulation) Step(elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	s.elapsedMs = float64(elapsed) / float64(time.Millisecond)

	s.syncIndex()
	s.ecs.Update()
	s.actors = nil
	s.tick++
}

// Tick returns the number of completed steps.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// World returns the ECS world being simulated.
func (s *Simulation) World() donburi.World {
	return s.ecs.World
}

// Actor returns the actor data for e. Unknown or destroyed entities panic.
func (s *Simulation) Actor(e donburi.Entity) *components.ActorData {
	return components.Actor.Get(s.mustEntry(e, components.Actor, "actor"))
}

// Platform returns the platform data for e. Unknown or destroyed entities panic.
func (s *Simulation) Platform(e donburi.Entity) *components.PlatformData {
	return components.Platform.Get(s.mustEntry(e, components.Platform, "platform"))
}

// Ladder returns the ladder data for e. Unknown or destroyed entities panic.
func (s *Simulation) Ladder(e donburi.Entity) *components.LadderData {
	return components.Ladder.Get(s.mustEntry(e, components.Ladder, "ladder"))
}

// Item returns the item data for e. Unknown or destroyed entities panic.
func (s *Simulation) Item(e donburi.Entity) *components.ItemData {
	return components.Item.Get(s.mustEntry(e, components.Item, "item"))
}

// Projectile returns the projectile data for e. Unknown or destroyed entities panic.
func (s *Simulation) Projectile(e donburi.Entity) *components.ProjectileData {
	return components.Projectile.Get(s.mustEntry(e, components.Projectile, "projectile"))
}

func (s *Simulation) mustEntry(e donburi.Entity, c donburi.IComponentType, kind string) *donburi.Entry {
	entry := s.resolve(e, c)
	if entry == nil {
		panic(fmt.Sprintf("physics: no %s for entity %v", kind, e))
	}
	return entry
}

// resolve turns a weak reference into an entry, or nil when the entity is
// gone or no longer has the expected component.
func (s *Simulation) resolve(e donburi.Entity, c donburi.IComponentType) *donburi.Entry {
	if e == donburi.Null || !s.ecs.World.Valid(e) {
		return nil
	}
	entry := s.ecs.World.Entry(e)
	if !entry.HasComponent(c) {
		return nil
	}
	return entry
}

func (s *Simulation) arc() gamemath.JumpArc {
	return gamemath.JumpArc{
		Gravity:      cfg.Physics.Gravity,
		DurationMs:   cfg.Physics.JumpDurationMs,
		MaxElapsedMs: cfg.Physics.MaxAirTimeMs,
	}
}

func (s *Simulation) space() *components.SpaceData {
	return factory.SpaceOf(s.ecs)
}

// syncIndex copies current shapes into the broadphase and drops entities that
// were destroyed without going through factory.Destroy.
func (s *Simulation) syncIndex() {
	index := s.space().Index
	live := make(map[donburi.Entity]struct{}, index.Len())

	reindex := func(e *donburi.Entry) {
		factory.Reindex(index, e)
		live[e.Entity()] = struct{}{}
	}
	components.Platform.Each(s.ecs.World, reindex)
	components.Ladder.Each(s.ecs.World, reindex)
	components.Item.Each(s.ecs.World, reindex)

	for _, e := range index.Entities() {
		if _, ok := live[e]; !ok {
			index.Remove(e)
		}
	}
}

// query returns the entries near r carrying tag, in creation order.
func (s *Simulation) query(r gamemath.Rect, tag string, c donburi.IComponentType) []*donburi.Entry {
	found := s.space().Index.Query(r, tag)
	entries := make([]*donburi.Entry, 0, len(found))
	for _, e := range found {
		if entry := s.resolve(e, c); entry != nil {
			entries = append(entries, entry)
		}
	}
	sortBySerial(entries)
	return entries
}

// ordered snapshots every entry with the component, in creation order.
// Entries created during the step are not visited until the next one.
func ordered[T any](world donburi.World, c *donburi.ComponentType[T]) []*donburi.Entry {
	var entries []*donburi.Entry
	c.Each(world, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	sortBySerial(entries)
	return entries
}

func sortBySerial(entries []*donburi.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return serialOf(entries[i]) < serialOf(entries[j])
	})
}

func serialOf(e *donburi.Entry) uint64 {
	if !e.HasComponent(components.Order) {
		return 0
	}
	return components.Order.Get(e).Serial
}
