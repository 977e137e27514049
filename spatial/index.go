// Package spatial is the broadphase used by the physics systems. It keeps one
// resolv object per indexed entity and answers "which entities might touch this
// rectangle" queries; exact tests stay with the caller.
package spatial

import (
	"log"

	"github.com/automoto/platcore/config"
	"github.com/automoto/platcore/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const probeTag = "probe"

// Index maps entities to rectangles in a resolv Space. World coordinates are
// tiles with y up; space coordinates are world offsets from the lower bound
// scaled by UnitsPerTile, so space rows grow with world y.
type Index struct {
	space  *resolv.Space
	probe  *resolv.Object
	origin gamemath.Rect
	scale  float64

	objects map[donburi.Entity]*resolv.Object
	outside map[donburi.Entity]struct{}
}

// NewIndex creates an empty index covering the configured world bounds.
func NewIndex(world config.WorldConfig) *Index {
	scale := float64(world.UnitsPerTile)
	width := int((world.MaxX - world.MinX) * scale)
	height := int((world.MaxY - world.MinY) * scale)
	cell := world.CellTiles * world.UnitsPerTile

	space := resolv.NewSpace(width, height, cell, cell)
	probe := resolv.NewObject(0, 0, 1, 1, probeTag)
	space.Add(probe)

	return &Index{
		space: space,
		probe: probe,
		origin: gamemath.Rect{
			X: world.MinX,
			Y: world.MinY,
			W: world.MaxX - world.MinX,
			H: world.MaxY - world.MinY,
		},
		scale:   scale,
		objects: make(map[donburi.Entity]*resolv.Object),
		outside: make(map[donburi.Entity]struct{}),
	}
}

// Put inserts the entity or moves it to a new rectangle.
func (ix *Index) Put(e donburi.Entity, r gamemath.Rect, tag string) {
	x, y, w, h := ix.toSpace(r)

	obj, ok := ix.objects[e]
	if !ok {
		obj = resolv.NewObject(x, y, w, h, tag)
		// Weak back-reference; callers re-resolve it against the world.
		obj.Data = e
		ix.objects[e] = obj
		ix.space.Add(obj)
	} else if obj.X != x || obj.Y != y || obj.W != w || obj.H != h {
		obj.X, obj.Y, obj.W, obj.H = x, y, w, h
		obj.Update()
	}

	if r.Inside(ix.origin) {
		delete(ix.outside, e)
		return
	}
	if _, already := ix.outside[e]; !already {
		log.Printf("Warning: entity %v at (%.2f, %.2f) is outside the spatial index bounds; it will be scanned linearly", e, r.X, r.Y)
		ix.outside[e] = struct{}{}
	}
}

// Remove drops the entity from the index. Unknown entities are ignored.
func (ix *Index) Remove(e donburi.Entity) {
	obj, ok := ix.objects[e]
	if !ok {
		return
	}
	ix.space.Remove(obj)
	delete(ix.objects, e)
	delete(ix.outside, e)
}

// Has reports whether the entity is indexed.
func (ix *Index) Has(e donburi.Entity) bool {
	_, ok := ix.objects[e]
	return ok
}

// Len returns the number of indexed entities.
func (ix *Index) Len() int {
	return len(ix.objects)
}

// Entities returns every indexed entity in no particular order.
func (ix *Index) Entities() []donburi.Entity {
	out := make([]donburi.Entity, 0, len(ix.objects))
	for e := range ix.objects {
		out = append(out, e)
	}
	return out
}

// Query returns every entity carrying tag whose rectangle may touch r. The
// result is a superset of the exact answer and is not ordered.
func (ix *Index) Query(r gamemath.Rect, tag string) []donburi.Entity {
	if !r.Inside(ix.origin) {
		return ix.scan(tag)
	}

	ix.probe.X, ix.probe.Y, ix.probe.W, ix.probe.H = ix.toSpace(r)
	ix.probe.Update()

	seen := make(map[donburi.Entity]struct{})
	var out []donburi.Entity
	if check := ix.probe.Check(0, 0, tag); check != nil {
		for _, obj := range check.ObjectsByTags(tag) {
			e, ok := obj.Data.(donburi.Entity)
			if !ok {
				continue
			}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}

	for e := range ix.outside {
		if _, dup := seen[e]; dup || !ix.objects[e].HasTags(tag) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (ix *Index) scan(tag string) []donburi.Entity {
	var out []donburi.Entity
	for e, obj := range ix.objects {
		if obj.HasTags(tag) {
			out = append(out, e)
		}
	}
	return out
}

// toSpace converts a world rectangle into space units, padded by one unit so
// zero-height platforms and point probes still register in a cell.
func (ix *Index) toSpace(r gamemath.Rect) (x, y, w, h float64) {
	x = (r.X-ix.origin.X)*ix.scale - 1
	y = (r.Y-ix.origin.Y)*ix.scale - 1
	w = r.W*ix.scale + 2
	h = r.H*ix.scale + 2
	return x, y, w, h
}
