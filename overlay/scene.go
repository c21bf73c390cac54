package overlay

import (
	"slices"

	"github.com/emirpasic/gods/maps/treemap"
)

// A Listener receives change notifications from a scene. The editor
// fires one notification per gesture event that may have mutated scene
// state; listeners typically schedule a repaint.
type Listener interface {
	SceneChanged(s *Scene)
}

// Controls is the host widget showing the overlay list. It is asked to
// refresh its selection display when a gesture starts or resolves.
type Controls interface {
	RefreshSelection(s *Scene)
}

// Scene is the registry of overlay objects. Objects are keyed by a
// monotonically assigned id, kept in an ordered map so that enumeration
// order is deterministic. Each object carries an opaque dimensional
// position tag ([]int) naming the image plane it belongs to; gesture
// handling only ever looks at the curves of the event's plane.
//
// A Scene is not safe for concurrent use; like the editor it belongs to
// the single event-dispatch thread.
type Scene struct {
	objects   *treemap.Map // id -> *Freeform
	nextID    int
	listeners []Listener
	controls  Controls
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{objects: treemap.NewWithIntComparator()}
}

// Add registers a curve at the given dimensional position and assigns
// it a fresh id.
func (s *Scene) Add(f *Freeform, pos []int) {
	s.nextID++
	f.id = s.nextID
	f.pos = slices.Clone(pos)
	s.objects.Put(f.id, f)
	tracer().Debugf("scene: added %v at %v", f, f.pos)
}

// Remove unregisters a curve. Removing a curve that is not in the scene
// is a no-op.
func (s *Scene) Remove(f *Freeform) {
	s.objects.Remove(f.id)
	tracer().Debugf("scene: removed freeform #%d", f.id)
}

// Len returns the number of registered objects.
func (s *Scene) Len() int {
	return s.objects.Size()
}

// Freeforms returns all registered curves in id order.
func (s *Scene) Freeforms() []*Freeform {
	out := make([]*Freeform, 0, s.objects.Size())
	it := s.objects.Iterator()
	for it.Next() {
		out = append(out, it.Value().(*Freeform))
	}
	return out
}

// FreeformsAt returns the curves registered at the given dimensional
// position, in id order.
func (s *Scene) FreeformsAt(pos []int) []*Freeform {
	var out []*Freeform
	it := s.objects.Iterator()
	for it.Next() {
		f := it.Value().(*Freeform)
		if slices.Equal(f.pos, pos) {
			out = append(out, f)
		}
	}
	return out
}

// Selected returns the currently selected curves in id order.
func (s *Scene) Selected() []*Freeform {
	var out []*Freeform
	it := s.objects.Iterator()
	for it.Next() {
		if f := it.Value().(*Freeform); f.selected {
			out = append(out, f)
		}
	}
	return out
}

// DeselectAll clears the selection flag on every object.
func (s *Scene) DeselectAll() {
	it := s.objects.Iterator()
	for it.Next() {
		it.Value().(*Freeform).selected = false
	}
}

// AddListener subscribes l to change notifications.
func (s *Scene) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// NotifyChanged tells every listener that scene content may have
// changed.
func (s *Scene) NotifyChanged() {
	for _, l := range s.listeners {
		l.SceneChanged(s)
	}
}

// SetControls attaches the host's overlay-list widget.
func (s *Scene) SetControls(c Controls) {
	s.controls = c
}

// RefreshControls asks the attached widget, if any, to refresh its
// selection display.
func (s *Scene) RefreshControls() {
	if s.controls != nil {
		s.controls.RefreshSelection(s)
	}
}
