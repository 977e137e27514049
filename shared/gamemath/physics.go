package gamemath

// JumpArc is the parabola shared by jumping actors, falling actors and
// projectiles:
//
//	f(t) = -G*(t/D - 0.5)^2 + G*0.25
//
// It rises for t < D/2 and falls afterwards. Past D the deltas keep growing
// more negative; only the elapsed time is clamped.
type JumpArc struct {
	Gravity      float64 // G
	DurationMs   float64 // D
	MaxElapsedMs float64
}

// Height evaluates f(t).
func (a JumpArc) Height(tMs float64) float64 {
	x := tMs/a.DurationMs - 0.5
	return -a.Gravity*x*x + a.Gravity*0.25
}

// Delta returns f(t+dt) - f(t) with t clamped to MaxElapsedMs.
func (a JumpArc) Delta(tMs, dtMs float64) float64 {
	if a.DurationMs <= 0 {
		return 0
	}
	if tMs > a.MaxElapsedMs {
		tMs = a.MaxElapsedMs
	}
	return a.Height(tMs+dtMs) - a.Height(tMs)
}

// Apex returns the elapsed time at which the arc peaks.
func (a JumpArc) Apex() float64 {
	return a.DurationMs / 2
}

// LinearDelta converts a force component into a displacement for one tick.
func LinearDelta(force, speed, dtMs float64) float64 {
	return force * speed * dtMs / 1000
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

// ClampFloat constrains a value to the range [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
