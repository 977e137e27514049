package factory

import (
	"github.com/automoto/platcore/archetypes"
	"github.com/automoto/platcore/components"
	cfg "github.com/automoto/platcore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateItem spawns a static object centered on (x, y).
func CreateItem(ecs *ecs.ECS, x, y float64, itemType components.ItemType) *donburi.Entry {
	item := spawn(ecs, archetypes.Item)
	components.Item.SetValue(item, components.ItemData{
		Pos:    math.Vec2{X: x, Y: y},
		Type:   itemType,
		Radius: cfg.Item.Radius,
	})
	Reindex(SpaceOf(ecs).Index, item)
	return item
}
