package tags

import "github.com/yohamta/donburi"

var (
	Actor            = donburi.NewTag().SetName("Actor")
	Platform         = donburi.NewTag().SetName("Platform")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	PatrolPlatform   = donburi.NewTag().SetName("PatrolPlatform")
	Ladder           = donburi.NewTag().SetName("Ladder")
	Item             = donburi.NewTag().SetName("Item")
	Projectile       = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for the broadphase index
const (
	ResolvPlatform = "platform"
	ResolvLadder   = "ladder"
	ResolvItem     = "item"
)
