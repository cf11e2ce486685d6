// Package input samples the keyboard and mouse once per frame into a plain
// snapshot, so the rest of the editor never polls devices directly.
package input

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the current frame's input state.
type Input struct {
	// CursorX/Y is the pointer position in screen space.
	CursorX int
	CursorY int
	// WheelY is this frame's vertical scroll amount.
	WheelY float64

	// Left button: held, pressed this frame, released this frame.
	LeftDown     bool
	LeftPressed  bool
	LeftReleased bool

	// Middle button pans the canvas.
	MiddleDown bool

	// DragModifierHeld is true while the region-paint modifier (shift) is
	// held.
	DragModifierHeld bool

	// CycleLayerPressed is true on the frame the layer-cycle key (tab) is
	// pressed.
	CycleLayerPressed bool
	// RunFillPressed is true on the frame the fill-script key (F) is
	// pressed.
	RunFillPressed bool
	// CopyPressed is true on the frame the clipboard key (C) is pressed.
	CopyPressed bool
	// ResetViewHeld is true while the view-reset key (home) is held.
	ResetViewHeld bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the devices for this frame.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	i.CursorX, i.CursorY = ebiten.CursorPosition()
	_, i.WheelY = ebiten.Wheel()

	i.LeftDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	i.LeftPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.LeftReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	i.MiddleDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	i.DragModifierHeld = ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	i.CycleLayerPressed = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	i.RunFillPressed = inpututil.IsKeyJustPressed(ebiten.KeyF)
	i.CopyPressed = inpututil.IsKeyJustPressed(ebiten.KeyC)
	i.ResetViewHeld = ebiten.IsKeyPressed(ebiten.KeyHome)
}
