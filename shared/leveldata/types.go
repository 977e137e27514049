// Package leveldata reads platformer levels from Tiled TMX files.
// It has no dependencies on donburi or resolv; pure data only.
package leveldata

import "github.com/automoto/platcore/shared/gamemath"

// Level holds every spawn parsed from a TMX file. Coordinates are in tiles
// with y pointing up, origin at the bottom-left of the map.
type Level struct {
	Name      string
	Width     int
	Height    int
	Platforms []PlatformSpawn
	Ladders   []LadderSpawn
	Items     []ItemSpawn
	Actors    []ActorSpawn
}

// PlatformSpawn is a platform rectangle. A non-zero Amplitude with a wave
// makes it hover; a non-zero Patrol offset with PatrolSec > 0 makes it patrol.
type PlatformSpawn struct {
	X, Y          float64 // bottom-left
	Width, Height int

	XWave, YWave gamemath.Wave
	Amplitude    float64

	PatrolX, PatrolY float64
	PatrolSec        float64
}

func (p PlatformSpawn) Hovers() bool {
	return p.Amplitude != 0 && (p.XWave != gamemath.WaveNone || p.YWave != gamemath.WaveNone)
}

func (p PlatformSpawn) Patrols() bool {
	return p.PatrolSec > 0 && (p.PatrolX != 0 || p.PatrolY != 0)
}

// LadderSpawn is a ladder whose foot is centered on (X, Y).
type LadderSpawn struct {
	X, Y   float64
	Height int
}

// ItemSpawn is a static object centered on (X, Y). Type is the object class.
type ItemSpawn struct {
	X, Y float64
	Type string
}

// ActorSpawn places an actor's bottom-center at (X, Y).
type ActorSpawn struct {
	Name string
	X, Y float64
}
