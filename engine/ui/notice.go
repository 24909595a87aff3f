package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/iso-sandbox/engine/config"
	"github.com/1siamBot/iso-sandbox/engine/core"
)

// MessageBox shows the latest notice until it expires. It only holds
// display state.
type MessageBox struct {
	TTL      time.Duration
	text     string
	deadline time.Time
}

func NewMessageBox(ttl time.Duration) *MessageBox {
	return &MessageBox{TTL: ttl}
}

// Subscribe shows every EvtNotice. now is read when the event is dispatched.
func (m *MessageBox) Subscribe(bus *core.EventBus, now func() time.Time) {
	bus.On(core.EvtNotice, func(e core.Event) {
		if msg, ok := e.Payload.(string); ok {
			m.Show(msg, now())
		}
	})
}

// Show replaces the current notice and restarts its timer
func (m *MessageBox) Show(msg string, now time.Time) {
	m.text = msg
	m.deadline = now.Add(m.TTL)
}

// Update hides the notice once its time is up
func (m *MessageBox) Update(now time.Time) {
	if m.text != "" && !now.Before(m.deadline) {
		m.text = ""
	}
}

// Text returns the visible notice, or "" when hidden
func (m *MessageBox) Text() string { return m.text }

// Draw renders the notice centred under the toolbar
func (m *MessageBox) Draw(screen *ebiten.Image) {
	if m.text == "" {
		return
	}
	w := len(m.text)*6 + 20
	x := (config.SurfaceWidth - w) / 2
	y := config.ToolbarHeight + 8
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 24, config.NoticeColor, false)
	ebitenutil.DebugPrintAt(screen, m.text, x+10, y+4)
}
