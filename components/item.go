package components

import (
	"fmt"
	"strings"

	"github.com/automoto/platcore/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ItemType classifies static objects and projectiles for game logic.
type ItemType int

const (
	ItemFood ItemType = iota
	ItemDanger
	ItemBonus
	ItemWeapon
)

var itemTypeNames = map[ItemType]string{
	ItemFood:   "food",
	ItemDanger: "danger",
	ItemBonus:  "bonus",
	ItemWeapon: "weapon",
}

func (t ItemType) String() string {
	if name, ok := itemTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ItemType(%d)", int(t))
}

// ParseItemType maps a lowercase name to an ItemType.
func ParseItemType(s string) (ItemType, error) {
	for t, name := range itemTypeNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown item type %q", s)
}

// ItemData is a static circular object an actor can reach.
type ItemData struct {
	Pos    math.Vec2 // center
	Type   ItemType
	Radius float64
}

var Item = donburi.NewComponentType[ItemData]()

func (i *ItemData) Circle() gamemath.Circle {
	return gamemath.Circle{Center: i.Pos, Radius: i.Radius}
}

// ProjectileData is a thrown object following the shared arc.
type ProjectileData struct {
	Pos        math.Vec2 // center
	Radius     float64
	FaceX      float64
	Type       ItemType
	Origin     donburi.Entity // never hit by its own projectile
	FlyClockMs float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()

func (p *ProjectileData) Circle() gamemath.Circle {
	return gamemath.Circle{Center: p.Pos, Radius: p.Radius}
}
