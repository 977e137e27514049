package components

import (
	"github.com/automoto/platcore/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type LadderData struct {
	Pos    math.Vec2 // bottom-center
	Height int
}

var Ladder = donburi.NewComponentType[LadderData]()

// Top returns the y of the highest rung.
func (l *LadderData) Top() float64 {
	return l.Pos.Y + float64(l.Height)
}

// InReach reports whether pt is inside the grab band. The foot is excluded,
// the top is included.
func (l *LadderData) InReach(pt math.Vec2, reach float64) bool {
	dx := pt.X - l.Pos.X
	return dx >= -reach && dx <= reach && pt.Y > l.Pos.Y && pt.Y <= l.Top()
}

// Bounds returns the grab band as a rectangle.
func (l *LadderData) Bounds(reach float64) gamemath.Rect {
	return gamemath.Rect{X: l.Pos.X - reach, Y: l.Pos.Y, W: 2 * reach, H: float64(l.Height)}
}
