// Package arcade is a minimal fixed-step arcade physics world: bodies with
// velocity and gravity, a bounds rectangle with per-edge events, and
// tag-filtered overlap callbacks.
//
// Positions are body centers in world units (canvas pixels). The broadphase
// is a resolv.Space; the narrowphase is an exact AABB test.
package arcade

import (
	"sort"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/cat-catcher/internal/core"
)

// spaceCell is the broadphase cell size in world units.
const spaceCell = 32

// BodyID identifies a body for its whole lifetime. IDs are never reused.
type BodyID int

// Body is a simulated axis-aligned box.
type Body struct {
	ID     BodyID
	Tag    string
	X, Y   float64 // Center
	W, H   float64
	VX, VY float64

	AllowGravity       bool
	CollideWorldBounds bool // Clamp into the world bounds
	OnWorldBounds      bool // Emit a bounds event when clamped

	obj     *resolv.Object
	removed bool
}

// Box returns the body's current bounding box.
func (b *Body) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Removed reports whether the body has been removed from its world.
func (b *Body) Removed() bool {
	return b.removed
}

// Edges lists which sides of the world bounds a body was blocked by.
type Edges struct {
	Up, Down, Left, Right bool
}

// Any reports whether at least one edge is set.
func (e Edges) Any() bool {
	return e.Up || e.Down || e.Left || e.Right
}

// Bounds is the rectangle bodies are clamped into.
type Bounds struct {
	X, Y, W, H float64
}

// OverlapFunc is called with the watched body and the body it overlaps.
type OverlapFunc func(body, other *Body)

// BoundsFunc is called when a body with OnWorldBounds set is clamped.
type BoundsFunc func(body *Body, edges Edges)

type overlapWatch struct {
	body BodyID
	tag  string
	fn   OverlapFunc
}

type boundsEvent struct {
	body  *Body
	edges Edges
}

// World owns bodies and advances them in fixed steps.
type World struct {
	bounds  Bounds
	gravity float64
	paused  bool

	nextID BodyID
	bodies map[BodyID]*Body
	order  []BodyID // Insertion order, used for deterministic iteration

	space    *resolv.Space
	overlaps []overlapWatch
	onBounds []BoundsFunc
}

// NewWorld creates an empty world with the given bounds and downward gravity.
func NewWorld(bounds Bounds, gravity float64) *World {
	w := &World{
		gravity: gravity,
		bodies:  make(map[BodyID]*Body),
	}
	w.SetBounds(bounds)
	return w
}

// SetBounds replaces the world bounds and rebuilds the broadphase.
func (w *World) SetBounds(bounds Bounds) {
	w.bounds = bounds

	// The space covers the bounds plus one cell on each side so bodies
	// entering from outside are still indexed.
	width := int(bounds.X+bounds.W) + 2*spaceCell
	height := int(bounds.Y+bounds.H) + 2*spaceCell
	w.space = resolv.NewSpace(width, height, spaceCell, spaceCell)

	for _, id := range w.order {
		b := w.bodies[id]
		b.obj = w.newObject(b)
		w.space.Add(b.obj)
	}
}

// Bounds returns the current world bounds.
func (w *World) Bounds() Bounds {
	return w.bounds
}

// Gravity returns the downward acceleration applied to gravity bodies.
func (w *World) Gravity() float64 {
	return w.gravity
}

// Add inserts a body and assigns its ID. The passed value is copied.
func (w *World) Add(b Body) *Body {
	w.nextID++
	body := b
	body.ID = w.nextID
	body.removed = false
	body.obj = w.newObject(&body)
	w.space.Add(body.obj)

	w.bodies[body.ID] = &body
	w.order = append(w.order, body.ID)
	return &body
}

// Remove deletes a body. It reports false if the body was not present.
func (w *World) Remove(id BodyID) bool {
	b, ok := w.bodies[id]
	if !ok {
		return false
	}
	b.removed = true
	w.space.Remove(b.obj)
	delete(w.bodies, id)

	for i, oid := range w.order {
		if oid == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

// Body returns a live body by ID.
func (w *World) Body(id BodyID) (*Body, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Bodies returns the live bodies in creation order.
func (w *World) Bodies() []*Body {
	out := make([]*Body, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.bodies[id])
	}
	return out
}

// SetPosition moves a body and refreshes its broadphase cells.
func (w *World) SetPosition(id BodyID, x, y float64) {
	if b, ok := w.bodies[id]; ok {
		b.X, b.Y = x, y
		w.sync(b)
	}
}

// SetVelocity sets a body's velocity.
func (w *World) SetVelocity(id BodyID, vx, vy float64) {
	if b, ok := w.bodies[id]; ok {
		b.VX, b.VY = vx, vy
	}
}

// OnOverlap registers fn to be called every step in which the body overlaps
// any body carrying tag.
func (w *World) OnOverlap(id BodyID, tag string, fn OverlapFunc) {
	w.overlaps = append(w.overlaps, overlapWatch{body: id, tag: tag, fn: fn})
}

// OnWorldBounds registers a bounds event listener.
func (w *World) OnWorldBounds(fn BoundsFunc) {
	w.onBounds = append(w.onBounds, fn)
}

// Pause stops Step from advancing the simulation.
func (w *World) Pause() { w.paused = true }

// Resume re-enables Step.
func (w *World) Resume() { w.paused = false }

// Paused reports whether the world is paused.
func (w *World) Paused() bool { return w.paused }

// Step advances the world by dt seconds.
//
// Order: gravity, integration, bounds clamping, bounds events, overlap
// callbacks. A callback may remove bodies or pause the world; removed bodies
// are skipped and a pause stops further callbacks in this step.
func (w *World) Step(dt float64) {
	if w.paused || dt <= 0 {
		return
	}

	var events []boundsEvent
	for _, b := range w.Bodies() {
		if b.AllowGravity {
			b.VY += w.gravity * dt
		}
		b.X += b.VX * dt
		b.Y += b.VY * dt

		if b.CollideWorldBounds {
			if edges := w.clamp(b); edges.Any() && b.OnWorldBounds {
				events = append(events, boundsEvent{body: b, edges: edges})
			}
		}
		w.sync(b)
	}

	for _, ev := range events {
		for _, fn := range w.onBounds {
			if ev.body.removed || w.paused {
				break
			}
			fn(ev.body, ev.edges)
		}
	}

	w.fireOverlaps()
}

// clamp pushes a body back inside the bounds on the sides it is moving
// through, zeroing velocity on the blocked axis. Bodies entering the bounds
// from outside are left alone.
func (w *World) clamp(b *Body) Edges {
	var e Edges
	box := b.Box()
	bx := w.bounds

	if box.Left() < bx.X && b.VX < 0 {
		b.X = bx.X + b.W/2
		b.VX = 0
		e.Left = true
	} else if box.Right() > bx.X+bx.W && b.VX > 0 {
		b.X = bx.X + bx.W - b.W/2
		b.VX = 0
		e.Right = true
	}

	if box.Top() < bx.Y && b.VY < 0 {
		b.Y = bx.Y + b.H/2
		b.VY = 0
		e.Up = true
	} else if box.Bottom() > bx.Y+bx.H && b.VY > 0 {
		b.Y = bx.Y + bx.H - b.H/2
		b.VY = 0
		e.Down = true
	}

	return e
}

func (w *World) fireOverlaps() {
	for _, watch := range w.overlaps {
		if w.paused {
			return
		}
		body, ok := w.bodies[watch.body]
		if !ok {
			continue
		}

		for _, other := range w.candidates(body, watch.tag) {
			if w.paused || body.removed {
				break
			}
			if other.removed || !body.Box().Intersects(other.Box()) {
				continue
			}
			watch.fn(body, other)
		}
	}
}

// candidates returns the bodies sharing broadphase cells with body that carry
// tag, ordered by ID.
func (w *World) candidates(body *Body, tag string) []*Body {
	collision := body.obj.Check(0, 0, tag)
	if collision == nil {
		return nil
	}

	seen := make(map[BodyID]bool, len(collision.Objects))
	out := make([]*Body, 0, len(collision.Objects))
	for _, obj := range collision.Objects {
		other, ok := obj.Data.(*Body)
		if !ok || other == body || seen[other.ID] {
			continue
		}
		seen[other.ID] = true
		out = append(out, other)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// newObject builds the broadphase object for a body. resolv positions
// objects by their top-left corner and is offset by one cell so bodies just
// outside the bounds have non-negative coordinates.
func (w *World) newObject(b *Body) *resolv.Object {
	obj := resolv.NewObject(b.X-b.W/2+spaceCell, b.Y-b.H/2+spaceCell, b.W, b.H, b.Tag)
	obj.Data = b
	return obj
}

func (w *World) sync(b *Body) {
	b.obj.X = b.X - b.W/2 + spaceCell
	b.obj.Y = b.Y - b.H/2 + spaceCell
	b.obj.Update()
}
