package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/platcore/components"
	"github.com/automoto/platcore/shared/leveldata"
	"github.com/automoto/platcore/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// loadLevel reads a TMX file from disk and spawns everything in it.
func loadLevel(w *ecs.ECS, path string) error {
	level, err := leveldata.LoadLevel(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return err
	}
	if err := buildLevel(w, level); err != nil {
		return fmt.Errorf("build level %s: %w", level.Name, err)
	}

	log.Printf("Loaded level %q: %d platforms, %d ladders, %d items, %d actors",
		level.Name, len(level.Platforms), len(level.Ladders), len(level.Items), len(level.Actors))
	return nil
}

func buildLevel(w *ecs.ECS, level *leveldata.Level) error {
	for _, p := range level.Platforms {
		switch {
		case p.Patrols():
			offset := math.Vec2{X: p.PatrolX, Y: p.PatrolY}
			factory.CreatePatrolPlatform(w, p.X, p.Y, p.Width, p.Height, offset, float32(p.PatrolSec), nil)
		case p.Hovers():
			factory.CreateFloatingPlatform(w, p.X, p.Y, p.Width, p.Height, components.HoverData{
				XWave:     p.XWave,
				YWave:     p.YWave,
				Amplitude: p.Amplitude,
			})
		default:
			factory.CreatePlatform(w, p.X, p.Y, p.Width, p.Height)
		}
	}

	for _, l := range level.Ladders {
		factory.CreateLadder(w, l.X, l.Y, l.Height)
	}

	for _, i := range level.Items {
		itemType, err := components.ParseItemType(i.Type)
		if err != nil {
			return err
		}
		factory.CreateItem(w, i.X, i.Y, itemType)
	}

	for _, a := range level.Actors {
		factory.CreateActor(w, a.Name, a.X, a.Y)
	}

	return nil
}
