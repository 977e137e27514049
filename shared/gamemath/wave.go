package gamemath

import (
	"fmt"
	"math"
	"strings"
)

// Wave selects the oscillation function driving one axis of a hovering platform.
type Wave int

const (
	WaveNone Wave = iota
	WaveSin
	WaveCos
)

// Eval returns the wave value at the given angle in radians.
func (w Wave) Eval(angle float64) float64 {
	switch w {
	case WaveSin:
		return math.Sin(angle)
	case WaveCos:
		return math.Cos(angle)
	default:
		return 0
	}
}

func (w Wave) String() string {
	switch w {
	case WaveSin:
		return "sin"
	case WaveCos:
		return "cos"
	default:
		return "none"
	}
}

// ParseWave maps "none", "sin" or "cos" (any case) to a Wave.
func ParseWave(s string) (Wave, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return WaveNone, nil
	case "sin":
		return WaveSin, nil
	case "cos":
		return WaveCos, nil
	}
	return WaveNone, fmt.Errorf("unknown wave %q", s)
}

// UnmarshalText lets waves be written as strings in TOML files.
func (w *Wave) UnmarshalText(text []byte) error {
	parsed, err := ParseWave(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
