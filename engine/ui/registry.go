package ui

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/maps/treemap"
)

// DefaultGroup is the key used when a widget is added without one.
const DefaultGroup = 0

// LayoutGroup is an ordered set of widgets sharing one layout mode. Insertion
// order is both render order and layout slot order.
type LayoutGroup struct {
	key     int
	widgets []Widget
	mode    LayoutMode
}

func (g *LayoutGroup) Key() int         { return g.key }
func (g *LayoutGroup) Len() int         { return len(g.widgets) }
func (g *LayoutGroup) Mode() LayoutMode { return g.mode }
func (g *LayoutGroup) At(i int) Widget  { return g.widgets[i] }

// Widgets returns a copy of the group's order.
func (g *LayoutGroup) Widgets() []Widget {
	out := make([]Widget, len(g.widgets))
	copy(out, g.widgets)
	return out
}

// Registry maps group keys to layout groups and iterates them in ascending key
// order. Groups are created on first use. All operations are total.
type Registry struct {
	groups *treemap.Map // int -> *LayoutGroup
}

func NewRegistry() *Registry {
	return &Registry{groups: treemap.NewWithIntComparator()}
}

func (r *Registry) group(key int) *LayoutGroup {
	if g, ok := r.Lookup(key); ok {
		return g
	}
	g := &LayoutGroup{key: key}
	r.groups.Put(key, g)
	return g
}

// Lookup returns the group for key without creating it.
func (r *Registry) Lookup(key int) (*LayoutGroup, bool) {
	v, ok := r.groups.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*LayoutGroup), true
}

// Add stores a copy of w in the group, with its id set to the group's current
// size, and returns that id.
func (r *Registry) Add(w Widget, key int) int {
	g := r.group(key)
	owned := w.Clone()
	owned.Node().id = len(g.widgets)
	g.widgets = append(g.widgets, owned)
	return owned.Node().id
}

// SetLayout sets the group's mode. Geometry changes on the next layout pass.
func (r *Registry) SetLayout(key int, mode LayoutMode) {
	r.group(key).mode = mode
}

// Move takes the widget at position from and reinserts it in front of the
// widget that was at position to. It reports false, changing nothing, when
// either index is out of range or they are equal. Ids are kept.
func (r *Registry) Move(key, from, to int) bool {
	g, ok := r.Lookup(key)
	if !ok || from == to {
		return false
	}
	n := len(g.widgets)
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	w := g.widgets[from]
	g.widgets = append(g.widgets[:from], g.widgets[from+1:]...)
	if from < to {
		to--
	}
	g.widgets = append(g.widgets, nil)
	copy(g.widgets[to+1:], g.widgets[to:])
	g.widgets[to] = w
	return true
}

// Clear drops every widget in the group. The group and its mode remain, and the
// next widget added gets id 0.
func (r *Registry) Clear(key int) {
	if g, ok := r.Lookup(key); ok {
		clear(g.widgets)
		g.widgets = g.widgets[:0]
	}
}

// Widget finds a widget by the id it was given when added.
func (r *Registry) Widget(key, id int) (Widget, bool) {
	g, ok := r.Lookup(key)
	if !ok {
		return nil, false
	}
	for _, w := range g.widgets {
		if w.Node().id == id {
			return w, true
		}
	}
	return nil, false
}

// Keys returns the group keys in ascending order.
func (r *Registry) Keys() []int {
	keys := make([]int, 0, r.groups.Size())
	for _, k := range r.groups.Keys() {
		keys = append(keys, k.(int))
	}
	return keys
}

// Len is the number of groups.
func (r *Registry) Len() int { return r.groups.Size() }

// Each calls fn for every group in key order. The key set is taken up front, so
// groups created by fn are not visited.
func (r *Registry) Each(fn func(g *LayoutGroup)) {
	for _, k := range r.Keys() {
		if g, ok := r.Lookup(k); ok {
			fn(g)
		}
	}
}

// Walk calls fn for every widget, groups in key order and widgets in insertion
// order. Only the groups and widgets present when Walk starts are visited.
func (r *Registry) Walk(fn func(w Widget)) {
	r.Each(func(g *LayoutGroup) {
		n := len(g.widgets)
		for i := 0; i < n && i < len(g.widgets); i++ {
			fn(g.widgets[i])
		}
	})
}

// Dump writes one line per group: "[key] = id;id;...".
func (r *Registry) Dump(w io.Writer) error {
	var err error
	r.Each(func(g *LayoutGroup) {
		if err != nil {
			return
		}
		if _, err = fmt.Fprintf(w, "[%d] = ", g.key); err != nil {
			return
		}
		for _, wd := range g.widgets {
			if _, err = fmt.Fprintf(w, "%d;", wd.Node().id); err != nil {
				return
			}
		}
		_, err = io.WriteString(w, "\n")
	})
	return err
}
