package paint

// EventKind classifies a raw pointer event.
type EventKind int

const (
	EventPress   EventKind = iota // Button pressed
	EventRelease                  // Button released
	EventMotion                   // Pointer moved, button state unknown
	EventTouch                    // Single-point touch move
)

// Event is a raw pointer event in host coordinates.
type Event struct {
	Kind EventKind
	X, Y int
}

// CellResolver maps a host coordinate to a grid cell.
// ok is false when the point is not over any cell.
type CellResolver interface {
	Resolve(x, y int) (c Coord, ok bool)
}

// ResolverFunc adapts a function to CellResolver.
type ResolverFunc func(x, y int) (Coord, bool)

// Resolve calls f(x, y).
func (f ResolverFunc) Resolve(x, y int) (Coord, bool) {
	return f(x, y)
}

// Router turns raw pointer events into cell interactions. It tracks whether
// a paint gesture is active so passive hover never repaints.
// Events must be delivered in order from a single goroutine.
type Router struct {
	resolver CellResolver
	active   bool
}

// NewRouter creates a router resolving cells through r.
func NewRouter(r CellResolver) *Router {
	return &Router{resolver: r}
}

// GestureActive reports whether a button is currently held.
func (r *Router) GestureActive() bool {
	return r.active
}

// Cancel ends any gesture in progress, e.g. when the host loses focus.
func (r *Router) Cancel() {
	r.active = false
}

// Target resolves ev to the cell it should paint, if any. It updates the
// gesture state as a side effect.
func (r *Router) Target(ev Event) (Coord, bool) {
	switch ev.Kind {
	case EventPress:
		r.active = true
	case EventRelease:
		r.active = false
		return Coord{}, false
	case EventMotion:
		if !r.active {
			return Coord{}, false
		}
	case EventTouch:
	default:
		return Coord{}, false
	}
	return r.resolver.Resolve(ev.X, ev.Y)
}

// Handle routes ev to the grid. It returns the painted coordinate and true
// when a cell was affected.
func (r *Router) Handle(ev Event, g *Grid, d *Dispatcher, state AppState) (Coord, bool, error) {
	c, ok := r.Target(ev)
	if !ok || !g.InBounds(c) {
		return Coord{}, false, nil
	}
	if err := g.Apply(c, d, state); err != nil {
		return c, false, err
	}
	return c, true, nil
}
