package gfx

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectContainsIsHalfOpen(t *testing.T) {
	t.Parallel()

	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	require.True(t, r.Contains(image.Pt(10, 20)))
	require.True(t, r.Contains(image.Pt(39, 59)))
	require.False(t, r.Contains(image.Pt(40, 30)))
	require.False(t, r.Contains(image.Pt(15, 60)))
	require.False(t, r.Contains(image.Pt(9, 25)))

	require.False(t, Rect{X: 0, Y: 0, W: -5, H: 10}.Contains(image.Pt(-2, 1)))
}

func TestRectOutset(t *testing.T) {
	t.Parallel()

	r := Rect{X: 10, Y: 10, W: 200, H: 50}
	require.Equal(t, Rect{X: 8, Y: 8, W: 204, H: 54}, r.Outset(2))
	require.Equal(t, Rect{X: 11, Y: 11, W: 198, H: 48}, r.Outset(-1))
	require.True(t, Rect{W: 0, H: 4}.Empty())
	require.False(t, r.Empty())
	require.Equal(t, image.Rect(10, 10, 210, 60), r.Image())
}
