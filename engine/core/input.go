package core

import "image"

// Input tracks pointer state from the event stream, for hosts that cannot be
// queried directly.
type Input struct {
	mouse image.Point
	down  bool
}

func NewInput() *Input { return &Input{} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventMouseMove:
		in.mouse = image.Pt(e.X, e.Y)
	case EventMouseButton:
		in.down = e.Down
	}
}

func (in *Input) CursorPos() image.Point { return in.mouse }
func (in *Input) PrimaryDown() bool      { return in.down }
