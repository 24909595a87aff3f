package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Command is a discrete user command decoded from the keyboard
type Command uint8

const (
	CmdNone Command = iota
	CmdRotateLeft
	CmdRotateRight
	CmdReset
	CmdTool1
	CmdTool2
	CmdTool3
	CmdTool4
	CmdPause
	CmdCopyMap
	CmdMute
)

// KeyBindings maps keys to commands
var KeyBindings = map[ebiten.Key]Command{
	ebiten.KeyQ:     CmdRotateLeft,
	ebiten.KeyE:     CmdRotateRight,
	ebiten.KeyR:     CmdReset,
	ebiten.Key1:     CmdTool1,
	ebiten.Key2:     CmdTool2,
	ebiten.Key3:     CmdTool3,
	ebiten.Key4:     CmdTool4,
	ebiten.KeySpace: CmdPause,
	ebiten.KeyC:     CmdCopyMap,
	ebiten.KeyM:     CmdMute,
}

// PointerState tracks the pointer relative to the render surface
type PointerState struct {
	X, Y    int
	Inside  bool
	Moved   bool // position changed while inside
	Entered bool
	Left    bool // pointer left the surface this frame
	Clicked bool // left button went down this frame while inside
}

// Update advances the pointer state from a raw sample. Kept apart from
// polling so it can be driven without a window.
func (p *PointerState) Update(x, y, w, h int, pressed bool) {
	inside := x >= 0 && y >= 0 && x < w && y < h
	p.Entered = inside && !p.Inside
	p.Left = !inside && p.Inside
	p.Moved = inside && (x != p.X || y != p.Y || p.Entered)
	p.Clicked = inside && pressed
	p.X, p.Y = x, y
	p.Inside = inside
}

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	Pointer  PointerState
	Commands []Command
	width    int
	height   int
}

func NewInputState(surfaceW, surfaceH int) *InputState {
	return &InputState{
		width:  surfaceW,
		height: surfaceH,
	}
}

// Update should be called every frame
func (s *InputState) Update() {
	x, y := ebiten.CursorPosition()
	s.Pointer.Update(x, y, s.width, s.height, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))

	s.Commands = s.Commands[:0]
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if cmd, ok := KeyBindings[k]; ok {
			s.Commands = append(s.Commands, cmd)
		}
	}
}
