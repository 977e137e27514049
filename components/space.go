package components

import (
	"github.com/automoto/platcore/spatial"
	"github.com/yohamta/donburi"
)

// SpaceData is the singleton holding the broadphase index.
type SpaceData struct {
	Index      *spatial.Index
	NextSerial uint64
}

var Space = donburi.NewComponentType[SpaceData]()

// OrderData records creation order so every pass iterates deterministically.
type OrderData struct {
	Serial uint64
}

var Order = donburi.NewComponentType[OrderData]()
