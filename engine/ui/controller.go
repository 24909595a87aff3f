package ui

import (
	"errors"
	"fmt"

	"github.com/1siamBot/iso-sandbox/engine/core"
	"github.com/1siamBot/iso-sandbox/engine/maplib"
	"github.com/1siamBot/iso-sandbox/engine/render"
)

var ErrNoToolSelected = errors.New("no tool selected")

// User-facing notices
const (
	MsgSelectTool = "Select an object first"
	MsgOccupied   = "Cell already occupied"
	MsgReset      = "Map reset"
)

// Controller turns pointer events and commands into sandbox changes
type Controller struct {
	Sandbox *core.Sandbox
	Proj    render.Projection
	Events  *core.EventBus

	pointerX, pointerY float64
	pointerIn          bool
}

func NewController(sb *core.Sandbox, proj render.Projection, events *core.EventBus) *Controller {
	return &Controller{
		Sandbox: sb,
		Proj:    proj,
		Events:  events,
	}
}

// OnPointerMove re-picks the hovered cell under the pointer
func (c *Controller) OnPointerMove(x, y float64) {
	c.pointerX, c.pointerY = x, y
	c.pointerIn = true
	c.repick()
}

// OnPointerLeave clears the hover
func (c *Controller) OnPointerLeave() {
	c.pointerIn = false
	c.Sandbox.Hover = core.Cell{}
}

// OnPointerClick places the selected object on the hovered cell. A click
// off the map is ignored and returns nil.
func (c *Controller) OnPointerClick() error {
	sb := c.Sandbox
	if !sb.Tool.Active {
		c.reject(ErrNoToolSelected, MsgSelectTool)
		return ErrNoToolSelected
	}
	if !sb.Hover.Valid {
		return nil
	}
	obj, err := sb.PlaceObject(sb.Tool.Kind, sb.Hover.X, sb.Hover.Y)
	if err != nil {
		msg := MsgOccupied
		if !errors.Is(err, maplib.ErrAlreadyOccupied) {
			msg = err.Error()
		}
		c.reject(err, msg)
		return err
	}
	c.Events.Emit(core.Event{Type: core.EvtObjectPlaced, Payload: obj})
	c.Events.Notify(fmt.Sprintf("%s placed at (%d, %d)", obj.Kind, obj.X, obj.Y))
	return nil
}

// OnToolSelect toggles the tool for kind
func (c *Controller) OnToolSelect(kind maplib.ObjectKind) {
	tool := c.Sandbox.SelectTool(kind)
	c.Events.Emit(core.Event{Type: core.EvtToolSelected, Payload: tool})
}

// OnRotate turns the view one quarter: positive is right, negative left.
// Zero does nothing.
func (c *Controller) OnRotate(dir int) {
	if dir == 0 {
		return
	}
	step := 1
	if dir < 0 {
		step = -1
	}
	rot := c.Sandbox.Rotate(step)
	c.repick()
	c.Events.Emit(core.Event{Type: core.EvtRotated, Payload: rot})
}

// OnReset clears objects and selection and regenerates terrain
func (c *Controller) OnReset() {
	c.Sandbox.Reset()
	c.repick()
	c.Events.Emit(core.Event{Type: core.EvtReset})
	c.Events.Notify(MsgReset)
}

func (c *Controller) repick() {
	if !c.pointerIn {
		c.Sandbox.Hover = core.Cell{}
		return
	}
	sb := c.Sandbox
	x, y, ok := c.Proj.ScreenToGrid(sb.Grid, sb.Rotation, c.pointerX, c.pointerY)
	sb.Hover = core.Cell{X: x, Y: y, Valid: ok}
}

func (c *Controller) reject(err error, msg string) {
	c.Events.Emit(core.Event{Type: core.EvtPlacementRejected, Payload: err})
	c.Events.Notify(msg)
}
