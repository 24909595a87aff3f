package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/iso-sandbox/engine/config"
	"github.com/1siamBot/iso-sandbox/engine/core"
	"github.com/1siamBot/iso-sandbox/engine/maplib"
)

// Button is a clickable toolbar rectangle
type Button struct {
	Label      string
	X, Y, W, H int
	Action     func()
	Active     func() bool // highlighted when true; may be nil
}

// Contains reports whether a surface point is on the button
func (b *Button) Contains(x, y int) bool {
	return x >= b.X && y >= b.Y && x < b.X+b.W && y < b.Y+b.H
}

// HUD is the toolbar across the top plus the status line at the bottom
type HUD struct {
	Buttons []*Button
	Loop    *core.GameLoop
	ctrl    *Controller
}

// NewHUD lays out one button per tool followed by rotate, reset and pause
func NewHUD(ctrl *Controller, loop *core.GameLoop) *HUD {
	h := &HUD{Loop: loop, ctrl: ctrl}
	sb := ctrl.Sandbox

	for _, kind := range maplib.AllKinds {
		kind := kind
		h.add(kind.String(), func() { ctrl.OnToolSelect(kind) }, func() bool {
			return sb.Tool.Active && sb.Tool.Kind == kind
		})
	}
	h.add("< Rotate", func() { ctrl.OnRotate(-1) }, nil)
	h.add("Rotate >", func() { ctrl.OnRotate(1) }, nil)
	h.add("Reset", ctrl.OnReset, nil)
	h.add("Pause", func() { loop.TogglePause() }, func() bool {
		return loop.State == core.StatePaused
	})
	return h
}

func (h *HUD) add(label string, action func(), active func() bool) {
	x := config.ButtonGap + len(h.Buttons)*(config.ButtonWidth+config.ButtonGap)
	y := (config.ToolbarHeight - config.ButtonHeight) / 2
	h.Buttons = append(h.Buttons, &Button{
		Label:  label,
		X:      x,
		Y:      y,
		W:      config.ButtonWidth,
		H:      config.ButtonHeight,
		Action: action,
		Active: active,
	})
}

// Click runs the button under (x, y) and reports whether one was hit
func (h *HUD) Click(x, y int) bool {
	for _, b := range h.Buttons {
		if b.Contains(x, y) {
			b.Action()
			return true
		}
	}
	return false
}

// OverToolbar reports whether a point is inside the toolbar strip
func (h *HUD) OverToolbar(y int) bool {
	return y < config.ToolbarHeight
}

// Draw renders the toolbar and status line
func (h *HUD) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(config.SurfaceWidth), float32(config.ToolbarHeight), config.NoticeColor, false)
	for _, b := range h.Buttons {
		clr := config.ButtonColor
		if b.Active != nil && b.Active() {
			clr = config.ButtonActive
		}
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, config.ButtonBorder, false)
		ebitenutil.DebugPrintAt(screen, b.Label, b.X+6, b.Y+5)
	}
	ebitenutil.DebugPrintAt(screen, h.Status(), 10, config.SurfaceHeight-20)
}

// Status describes the hovered cell, rotation and tick
func (h *HUD) Status() string {
	sb := h.ctrl.Sandbox
	cell := "-"
	if sb.Hover.Valid {
		t := sb.Grid.At(sb.Hover.X, sb.Hover.Y)
		cell = fmt.Sprintf("(%d, %d) %s h%d", sb.Hover.X, sb.Hover.Y, t.Terrain, t.Height)
		if obj, ok := sb.Objects.At(sb.Hover.X, sb.Hover.Y); ok {
			cell += " " + obj.Kind.String()
		}
	}
	tool := "none"
	if sb.Tool.Active {
		tool = sb.Tool.Kind.String()
	}
	state := "running"
	if h.Loop.State == core.StatePaused {
		state = "paused"
	}
	return fmt.Sprintf("Cell: %s | Tool: %s | Rotation: %d deg | Tick: %d (%s) | Objects: %d",
		cell, tool, sb.Rotation.Degrees(), h.Loop.CurrentTick(), state, sb.Objects.Len())
}
