// Package ui is a small retained-mode widget toolkit. Widgets live in integer-keyed
// layout groups owned by a Context, which lays them out, resolves pointer
// interaction and paints them every frame.
package ui

import (
	"image"

	"github.com/hubastard/sprig/engine/gfx"
)

// Bounds is a widget's geometry in surface pixels.
type Bounds = gfx.Rect

// Pointer is the host state sampled by an interaction pass.
type Pointer interface {
	CursorPos() image.Point
	PrimaryDown() bool
}

// Drawable issues drawing commands. It must not change geometry or interaction state.
type Drawable interface {
	Draw(c gfx.Canvas)
}

// Updatable advances interaction state from the current pointer.
type Updatable interface {
	Update(p Pointer)
}

type Widget interface {
	Node() *Base
	Drawable
	Updatable
	// Clone returns an independent copy. The registry stores clones.
	Clone() Widget
}

// Base holds what every widget has: its id within its group and its bounds.
type Base struct {
	id     int
	bounds Bounds
}

func (b *Base) ID() int            { return b.id }
func (b *Base) Bounds() Bounds     { return b.bounds }
func (b *Base) SetBounds(r Bounds) { b.bounds = r }
func (b *Base) Pos() (x, y int)    { return b.bounds.X, b.bounds.Y }
func (b *Base) Size() (w, h int)   { return b.bounds.W, b.bounds.H }
func (b *Base) SetPos(x, y int)    { b.bounds.X, b.bounds.Y = x, y }
func (b *Base) SetSize(w, h int)   { b.bounds.W, b.bounds.H = w, h }

// Contains is the hit test: right and bottom edges are outside.
func (b *Base) Contains(p image.Point) bool {
	return b.bounds.Contains(p)
}

// ------ Helper ------

// Common gives widgets a fluent geometry builder returning the concrete type.
type Common[T any] struct {
	owner T
	base  Base
}

func NewCommon[T any](owner T) Common[T] {
	return Common[T]{owner: owner}
}

func (c *Common[T]) Node() *Base           { return &c.base }
func (c *Common[T]) Position(x, y int) T   { c.base.SetPos(x, y); return c.owner }
func (c *Common[T]) Size(w, h int) T       { c.base.SetSize(w, h); return c.owner }
func (c *Common[T]) Rect(x, y, w, h int) T { c.base.SetBounds(Bounds{X: x, Y: y, W: w, H: h}); return c.owner }

// rebind points a copied Common at its new owner.
func (c *Common[T]) rebind(owner T) { c.owner = owner }
