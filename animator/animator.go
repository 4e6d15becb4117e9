// Package animator drives the current depth position of a scene toward a
// target depth in fixed-size steps, computing per-element render offsets as
// it goes. It is a pure state machine: something external (in practice the
// projection widget's frame tick) calls Step at a steady cadence.
package animator

import (
	"fmt"

	"github.com/grovetools/projection/errors"
	"github.com/grovetools/projection/scene"
)

// State is the animator's lifecycle state.
type State int

const (
	// StateIdle means no move is in flight.
	StateIdle State = iota
	// StateAnimating means a move is converging toward its target.
	StateAnimating
)

// Offset is the rendered depth offset of one scene element.
type Offset struct {
	ID    string
	Depth int
	// Z is the element's offset along the depth axis: current depth minus
	// the element's own depth. Deeper elements recede as the current depth
	// decreases.
	Z     int
	Node  *scene.Node
	Layer int // index of the owning layer
	Child bool
}

// Animator moves the current depth toward a target in fixed increments.
//
// At most one move is in flight: MoveToward while animating is dropped, not
// queued. The zero value is not usable; construct with New.
type Animator struct {
	store *scene.Store
	step  int

	current int
	target  int
	state   State
	panel   int

	offsets   []Offset
	listeners []Listener
}

// New creates an animator over a layer store. The current depth starts at
// the store's minimum depth and the panel at index 0.
func New(store *scene.Store, step int) (*Animator, error) {
	if store == nil || store.Len() == 0 {
		return nil, errors.SceneEmpty("animator")
	}
	if step <= 0 {
		return nil, errors.ConfigInvalid(fmt.Sprintf("step size must be positive, got %d", step))
	}

	a := &Animator{
		store:   store,
		step:    step,
		current: store.MinDepth(),
		target:  store.MinDepth(),
		state:   StateIdle,
		panel:   0,
	}
	a.applyOffsets()
	return a, nil
}

// MoveToward starts animating toward the given depth. It reports whether
// the move was accepted; a move already in flight rejects new requests.
func (a *Animator) MoveToward(target int) bool {
	if a.state == StateAnimating {
		return false
	}

	a.target = target
	a.state = StateAnimating
	a.emit(EventStart)
	return true
}

// Step advances the animation by one frame. It reports whether the move
// converged on this step. Calling Step while idle is a no-op returning true.
func (a *Animator) Step() bool {
	if a.state != StateAnimating {
		return true
	}

	remaining := a.target - a.current
	if abs(remaining) <= a.step {
		a.current = a.target
		a.applyOffsets()
		a.state = StateIdle
		a.emit(EventEnd)
		return true
	}

	if remaining > 0 {
		a.current += a.step
	} else {
		a.current -= a.step
	}
	a.applyOffsets()
	a.emit(EventProgress)
	return false
}

// Advance moves the current panel one position deeper, clamped to the last
// layer. Advancing past the end is a no-op, as is advancing while a move is
// in flight.
func (a *Animator) Advance() bool {
	return a.movePanel(a.panel + 1)
}

// Retreat moves the current panel one position nearer, clamped to index 0.
func (a *Animator) Retreat() bool {
	return a.movePanel(a.panel - 1)
}

// MoveToPanel animates directly to the layer at the given index, clamped to
// the valid range.
func (a *Animator) MoveToPanel(index int) bool {
	return a.movePanel(index)
}

func (a *Animator) movePanel(index int) bool {
	if a.state == StateAnimating {
		return false
	}

	index = clamp(index, 0, a.store.Len()-1)
	if index == a.panel {
		// Clamped to where we already are: idempotent no-op, no events.
		return false
	}

	a.panel = index
	return a.MoveToward(a.store.At(index).Depth)
}

// SetDepth animates toward an arbitrary depth. The panel becomes the
// nearest layer at or below the target so Advance and Retreat stay coherent
// afterwards.
func (a *Animator) SetDepth(depth int) bool {
	if a.state == StateAnimating {
		return false
	}

	panel := 0
	for i := 0; i < a.store.Len(); i++ {
		if a.store.At(i).Depth <= depth {
			panel = i
		}
	}
	a.panel = panel
	return a.MoveToward(depth)
}

// Current returns the current depth position.
func (a *Animator) Current() int { return a.current }

// Target returns the depth the animator is converging toward.
func (a *Animator) Target() int { return a.target }

// StepSize returns the per-frame depth increment.
func (a *Animator) StepSize() int { return a.step }

// Panel returns the index of the current panel within the sorted layers.
func (a *Animator) Panel() int { return a.panel }

// PanelCount returns the number of layers.
func (a *Animator) PanelCount() int { return a.store.Len() }

// Animating reports whether a move is in flight.
func (a *Animator) Animating() bool { return a.state == StateAnimating }

// Store returns the underlying layer store.
func (a *Animator) Store() *scene.Store { return a.store }

// Offsets returns the rendered offset of every layer and child element, in
// layer depth order with each layer followed by its children.
func (a *Animator) Offsets() []Offset {
	return a.offsets
}

// Offset returns the rendered offset of the element with the given id.
func (a *Animator) Offset(id string) (Offset, bool) {
	for _, o := range a.offsets {
		if o.ID == id {
			return o, true
		}
	}
	return Offset{}, false
}

// applyOffsets recomputes every element's depth offset from the current
// position. Offset = current depth − element depth.
func (a *Animator) applyOffsets() {
	a.offsets = a.offsets[:0]
	for i, layer := range a.store.Layers() {
		a.offsets = append(a.offsets, Offset{
			ID:    layer.ID,
			Depth: layer.Depth,
			Z:     a.current - layer.Depth,
			Node:  layer.Node,
			Layer: i,
		})
		for _, child := range layer.Children {
			a.offsets = append(a.offsets, Offset{
				ID:    child.Node.ID,
				Depth: child.Depth,
				Z:     a.current - child.Depth,
				Node:  child.Node,
				Layer: i,
				Child: true,
			})
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
