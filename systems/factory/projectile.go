package factory

import (
	"github.com/automoto/platcore/archetypes"
	"github.com/automoto/platcore/components"
	cfg "github.com/automoto/platcore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateProjectile spawns a projectile centered on (x, y) that starts at the
// beginning of its arc. origin may be donburi.Null.
func CreateProjectile(ecs *ecs.ECS, x, y, faceX float64, itemType components.ItemType, origin donburi.Entity) *donburi.Entry {
	projectile := spawn(ecs, archetypes.Projectile)
	components.Projectile.SetValue(projectile, components.ProjectileData{
		Pos:    math.Vec2{X: x, Y: y},
		Radius: cfg.Projectile.Radius,
		FaceX:  faceX,
		Type:   itemType,
		Origin: origin,
	})
	return projectile
}

// LaunchProjectile throws a projectile from the center of an actor's circle in
// the direction the actor faces.
func LaunchProjectile(ecs *ecs.ECS, actor *donburi.Entry, itemType components.ItemType) *donburi.Entry {
	a := components.Actor.Get(actor)
	center := a.Circle().Center
	return CreateProjectile(ecs, center.X, center.Y, a.FaceX, itemType, actor.Entity())
}
