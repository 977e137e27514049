package components

import (
	"github.com/automoto/platcore/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PlatformData is an axis-aligned platform. Height 0 is a thin ledge that can
// only be stood on; anything taller is also a solid block.
type PlatformData struct {
	Pos    math.Vec2 // bottom-left corner
	Width  int
	Height int
}

var Platform = donburi.NewComponentType[PlatformData]()

// Top returns the y of the walkable edge.
func (p *PlatformData) Top() float64 {
	return p.Pos.Y + float64(p.Height)
}

// TopEdge returns the endpoints of the walkable edge, left to right.
func (p *PlatformData) TopEdge() (math.Vec2, math.Vec2) {
	top := p.Top()
	return math.Vec2{X: p.Pos.X, Y: top}, math.Vec2{X: p.Pos.X + float64(p.Width), Y: top}
}

// Bounds returns the platform rectangle.
func (p *PlatformData) Bounds() gamemath.Rect {
	return gamemath.Rect{X: p.Pos.X, Y: p.Pos.Y, W: float64(p.Width), H: float64(p.Height)}
}

// Contains reports whether pt is inside the solid body. The top edge is not
// inside, so standing on a block never counts as a collision.
func (p *PlatformData) Contains(pt math.Vec2) bool {
	return pt.X >= p.Pos.X && pt.X <= p.Pos.X+float64(p.Width) &&
		pt.Y >= p.Pos.Y && pt.Y < p.Top()
}

// Supports reports whether pt rests on the top edge, endpoints excluded.
func (p *PlatformData) Supports(pt math.Vec2, tolerance float64) bool {
	a, b := p.TopEdge()
	return gamemath.PointOnSegment(pt, a, b, tolerance)
}

// OverlapsX reports whether x lies within the platform's horizontal span.
func (p *PlatformData) OverlapsX(x float64) bool {
	return x >= p.Pos.X && x <= p.Pos.X+float64(p.Width)
}

// HoverData drives a platform along per-axis waves.
type HoverData struct {
	XWave, YWave gamemath.Wave
	Amplitude    float64
	Phase        int
	LastDelta    math.Vec2
}

var Hover = donburi.NewComponentType[HoverData]()

// Active reports whether the hover produces any motion.
func (h *HoverData) Active() bool {
	return h.Amplitude != 0 && (h.XWave != gamemath.WaveNone || h.YWave != gamemath.WaveNone)
}

// PatrolData moves a platform back and forth between its origin and
// Origin+Offset, one tween per leg.
type PatrolData struct {
	Origin      math.Vec2
	Offset      math.Vec2
	DurationSec float32
	Easing      ease.TweenFunc
	Returning   bool
	Progress    float32 // 0 at Origin, 1 at Origin+Offset
	LastDelta   math.Vec2

	Tween *gween.Tween
}

var Patrol = donburi.NewComponentType[PatrolData]()
