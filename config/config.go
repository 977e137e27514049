package config

import (
	"fmt"
	"log"

	"github.com/BurntSushi/toml"
	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every physics entity is created on.
const Default ecs.LayerID = 0

// PhysicsConfig contains the integrator and collision constants
type PhysicsConfig struct {
	// Jump/fall arc
	Gravity        float64 `toml:"gravity"`          // G in the arc function
	JumpDurationMs float64 `toml:"jump_duration_ms"` // D, full parabola length
	MaxAirTimeMs   float64 `toml:"max_air_time_ms"`  // elapsed clamp before evaluating the arc
	JumpSpeed      float64 `toml:"jump_speed"`       // scale applied to every height delta

	// Movement (tiles per second at force 1)
	MoveSpeed  float64 `toml:"move_speed"`
	ClimbSpeed float64 `toml:"climb_speed"`

	// Collision
	LadderReach            float64 `toml:"ladder_reach"`      // half width of a ladder's grab band
	SupportTolerance       float64 `toml:"support_tolerance"` // perpendicular slack for sloped edges
	CollisionRepeatDelayMs float64 `toml:"collision_repeat_delay_ms"`
}

// ActorConfig contains actor defaults used by the factory
type ActorConfig struct {
	Radius float64 `toml:"radius"`
}

// ItemConfig contains static pickup/object configuration
type ItemConfig struct {
	Radius float64 `toml:"radius"`
}

// ProjectileConfig contains projectile ballistics
type ProjectileConfig struct {
	Speed         float64 `toml:"speed"`          // tiles per second along FaceX
	GravityWeight float64 `toml:"gravity_weight"` // scale applied to the shared arc
	Radius        float64 `toml:"radius"`
}

// HoverConfig contains floating platform oscillation settings
type HoverConfig struct {
	PhaseStep float64 `toml:"phase_step"` // radians advanced per tick
}

// WorldConfig bounds the spatial index. Entities outside still simulate;
// they are just scanned instead of looked up.
type WorldConfig struct {
	MinX         float64 `toml:"min_x"`
	MinY         float64 `toml:"min_y"`
	MaxX         float64 `toml:"max_x"`
	MaxY         float64 `toml:"max_y"`
	UnitsPerTile int     `toml:"units_per_tile"`
	CellTiles    int     `toml:"cell_tiles"`
}

// File is the TOML layout accepted by Load.
type File struct {
	Physics    PhysicsConfig    `toml:"physics"`
	Actor      ActorConfig      `toml:"actor"`
	Item       ItemConfig       `toml:"item"`
	Projectile ProjectileConfig `toml:"projectile"`
	Hover      HoverConfig      `toml:"hover"`
	World      WorldConfig      `toml:"world"`
}

// Global configuration instances
var Physics PhysicsConfig
var Actor ActorConfig
var Item ItemConfig
var Projectile ProjectileConfig
var Hover HoverConfig
var World WorldConfig

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every configuration instance to its defaults.
func Reset() {
	Physics = PhysicsConfig{
		Gravity:        9.81,
		JumpDurationMs: 500,
		MaxAirTimeMs:   2000,
		JumpSpeed:      1.0,

		MoveSpeed:  4.0,
		ClimbSpeed: 3.0,

		LadderReach:            0.3,
		SupportTolerance:       1e-6,
		CollisionRepeatDelayMs: 500,
	}

	Actor = ActorConfig{
		Radius: 0.4,
	}

	Item = ItemConfig{
		Radius: 0.4,
	}

	Projectile = ProjectileConfig{
		Speed:         8.0,
		GravityWeight: 0.5,
		Radius:        0.15,
	}

	Hover = HoverConfig{
		PhaseStep: 0.05,
	}

	World = WorldConfig{
		MinX:         -32,
		MinY:         -32,
		MaxX:         480,
		MaxY:         480,
		UnitsPerTile: 16,
		CellTiles:    4,
	}
}

// Load overlays values from a TOML file onto the current configuration.
// Keys absent from the file keep their current value.
func Load(path string) error {
	f := File{
		Physics:    Physics,
		Actor:      Actor,
		Item:       Item,
		Projectile: Projectile,
		Hover:      Hover,
		World:      World,
	}

	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Printf("Warning: ignoring unknown config keys in %s: %v", path, undecoded)
	}
	if err := f.validate(); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	Physics = f.Physics
	Actor = f.Actor
	Item = f.Item
	Projectile = f.Projectile
	Hover = f.Hover
	World = f.World
	return nil
}

func (f *File) validate() error {
	if f.Physics.JumpDurationMs <= 0 {
		return fmt.Errorf("physics.jump_duration_ms must be positive, got %v", f.Physics.JumpDurationMs)
	}
	if f.Physics.MaxAirTimeMs < 0 {
		return fmt.Errorf("physics.max_air_time_ms must not be negative, got %v", f.Physics.MaxAirTimeMs)
	}
	if f.Physics.CollisionRepeatDelayMs < 0 {
		return fmt.Errorf("physics.collision_repeat_delay_ms must not be negative, got %v", f.Physics.CollisionRepeatDelayMs)
	}
	if f.World.MaxX <= f.World.MinX || f.World.MaxY <= f.World.MinY {
		return fmt.Errorf("world bounds are empty: [%v,%v]x[%v,%v]", f.World.MinX, f.World.MaxX, f.World.MinY, f.World.MaxY)
	}
	if f.World.UnitsPerTile <= 0 || f.World.CellTiles <= 0 {
		return fmt.Errorf("world.units_per_tile and world.cell_tiles must be positive")
	}
	return nil
}
