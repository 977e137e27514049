package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/platcore/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group names recognised in TMX files.
const (
	GroupPlatforms = "Platforms"
	GroupLadders   = "Ladders"
	GroupItems     = "Items"
	GroupActors    = "Actors"
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	g := grid{
		tileW:  float64(levelMap.TileWidth),
		tileH:  float64(levelMap.TileHeight),
		height: float64(levelMap.Height),
	}
	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width,
		Height: levelMap.Height,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			for _, o := range og.Objects {
				spawn, err := g.platform(o)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: platform %d: %w", tmxPath, o.ID, err)
				}
				level.Platforms = append(level.Platforms, spawn)
			}
		case GroupLadders:
			for _, o := range og.Objects {
				level.Ladders = append(level.Ladders, LadderSpawn{
					X:      g.x(o.X + o.Width/2),
					Y:      g.y(o.Y + o.Height),
					Height: g.tilesY(o.Height),
				})
			}
		case GroupItems:
			for _, o := range og.Objects {
				itemType := o.Class
				if itemType == "" {
					itemType = o.Type //nolint:staticcheck // older TMX files use type=
				}
				level.Items = append(level.Items, ItemSpawn{
					X:    g.x(o.X + o.Width/2),
					Y:    g.y(o.Y + o.Height/2),
					Type: itemType,
				})
			}
		case GroupActors:
			for _, o := range og.Objects {
				name := o.Name
				if name == "" {
					name = fmt.Sprintf("actor-%d", o.ID)
				}
				level.Actors = append(level.Actors, ActorSpawn{
					Name: name,
					X:    g.x(o.X + o.Width/2),
					Y:    g.y(o.Y + o.Height),
				})
			}
		}
	}

	// Left to right so spawn order does not depend on how the file was edited.
	sort.SliceStable(level.Actors, func(i, j int) bool {
		return level.Actors[i].X < level.Actors[j].X
	})

	return level, nil
}

// grid converts Tiled pixel coordinates (y down) to tiles (y up).
type grid struct {
	tileW, tileH float64
	height       float64 // map height in tiles
}

func (g grid) x(px float64) float64 {
	return px / g.tileW
}

func (g grid) y(px float64) float64 {
	return g.height - px/g.tileH
}

func (g grid) tilesX(px float64) int {
	return int(math.Round(px / g.tileW))
}

func (g grid) tilesY(px float64) int {
	return int(math.Round(px / g.tileH))
}

func (g grid) platform(o *tiled.Object) (PlatformSpawn, error) {
	xWave, err := gamemath.ParseWave(o.Properties.GetString("xwave"))
	if err != nil {
		return PlatformSpawn{}, err
	}
	yWave, err := gamemath.ParseWave(o.Properties.GetString("ywave"))
	if err != nil {
		return PlatformSpawn{}, err
	}

	return PlatformSpawn{
		X:         g.x(o.X),
		Y:         g.y(o.Y + o.Height),
		Width:     g.tilesX(o.Width),
		Height:    g.tilesY(o.Height),
		XWave:     xWave,
		YWave:     yWave,
		Amplitude: o.Properties.GetFloat("amplitude"),
		PatrolX:   o.Properties.GetFloat("patrolX"),
		PatrolY:   -o.Properties.GetFloat("patrolY"), // Tiled y grows downward
		PatrolSec: o.Properties.GetFloat("patrolSec"),
	}, nil
}
