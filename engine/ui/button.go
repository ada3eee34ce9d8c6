package ui

import (
	"image"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/gfx"
)

const (
	DefaultFontName = "Arial"
	DefaultFontSize = 24
)

// EventKind tags a ButtonEvent. NoEvent is never delivered.
type EventKind int

const (
	NoEvent EventKind = iota
	MouseEnter
	MouseLeave
	Click
)

func (k EventKind) String() string {
	switch k {
	case MouseEnter:
		return "MouseEnter"
	case MouseLeave:
		return "MouseLeave"
	case Click:
		return "Click"
	default:
		return "NoEvent"
	}
}

// ButtonEvent is a state transition plus the pointer position at delivery.
type ButtonEvent struct {
	Kind EventKind
	Pos  image.Point
}

// ButtonCallback runs synchronously on the frame loop goroutine.
type ButtonCallback func(b *Button, ev ButtonEvent)

type ButtonStyle struct {
	FontName    string
	FontSize    float32
	FontColor   colors.Color
	Color       colors.Color
	BorderColor colors.Color
	BorderSize  int // 0 draws no border
}

type buttonState uint8

const (
	stateIdle buttonState = iota
	stateHovered
	statePressed
)

type Button struct {
	Common[*Button]
	Label   string
	Style   ButtonStyle
	OnEvent ButtonCallback
	state   buttonState
}

func NewButton(label string) *Button {
	b := &Button{
		Label: label,
		Style: ButtonStyle{
			FontName:    DefaultFontName,
			FontSize:    DefaultFontSize,
			FontColor:   colors.Black,
			Color:       colors.LightGray,
			BorderColor: colors.Black,
		},
	}
	b.Common = NewCommon(b)
	return b
}

func (b *Button) Text(s string) *Button              { b.Label = s; return b }
func (b *Button) Font(name string) *Button           { b.Style.FontName = name; return b }
func (b *Button) FontSize(size float32) *Button      { b.Style.FontSize = size; return b }
func (b *Button) TextColor(c colors.Color) *Button   { b.Style.FontColor = c; return b }
func (b *Button) BgColor(c colors.Color) *Button     { b.Style.Color = c; return b }
func (b *Button) Callback(cb ButtonCallback) *Button { b.OnEvent = cb; return b }

func (b *Button) Border(c colors.Color, size int) *Button {
	b.Style.BorderColor = c
	b.Style.BorderSize = size
	return b
}

// Hovered reports whether the pointer was over the button at the last pass.
// A pressed button is also hovered.
func (b *Button) Hovered() bool { return b.state != stateIdle }
func (b *Button) Pressed() bool { return b.state == statePressed }

func (b *Button) Clone() Widget {
	cp := *b
	cp.rebind(&cp)
	return &cp
}

func (b *Button) font() gfx.Font {
	return gfx.Font{Family: b.Style.FontName, Size: b.Style.FontSize}
}

func (b *Button) Draw(c gfx.Canvas) {
	r := b.base.bounds
	c.FillRect(r, b.Style.Color)
	for i := 0; i < b.Style.BorderSize; i++ {
		c.StrokeRect(r.Outset(i), b.Style.BorderColor)
	}
	if b.Label == "" {
		return
	}
	f := b.font()
	tw, th := c.MeasureText(b.Label, f)
	x := float32(r.X+r.W/2) - tw/2
	y := float32(r.Y+r.H/2) - th/2
	c.DrawText(b.Label, f, x, y, b.Style.FontColor)
}

// Update runs one step of the hover/press state machine and delivers at most
// one event. Click fires on the press edge; release only clears the press.
func (b *Button) Update(p Pointer) {
	inside := b.base.Contains(p.CursorPos())
	down := p.PrimaryDown()

	kind := NoEvent
	switch b.state {
	case stateIdle:
		if inside {
			b.state, kind = stateHovered, MouseEnter
		}
	case stateHovered:
		switch {
		case !inside:
			b.state, kind = stateIdle, MouseLeave
		case down:
			b.state, kind = statePressed, Click
		}
	case statePressed:
		if !down {
			b.state = stateHovered
		}
	}

	if kind == NoEvent || b.OnEvent == nil {
		return
	}
	b.OnEvent(b, ButtonEvent{Kind: kind, Pos: p.CursorPos()})
}
