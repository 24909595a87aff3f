package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/1siamBot/iso-sandbox/engine/audio"
	"github.com/1siamBot/iso-sandbox/engine/config"
	"github.com/1siamBot/iso-sandbox/engine/core"
	"github.com/1siamBot/iso-sandbox/engine/input"
	"github.com/1siamBot/iso-sandbox/engine/maplib"
	"github.com/1siamBot/iso-sandbox/engine/render"
	"github.com/1siamBot/iso-sandbox/engine/ui"
)

// Game implements ebiten.Game interface
type Game struct {
	sandbox  *core.Sandbox
	gameLoop *core.GameLoop
	eventBus *core.EventBus
	renderer *render.IsoRenderer
	surface  *render.EbitenSurface
	input    *input.InputState
	ctrl     *ui.Controller
	hud      *ui.HUD
	notices  *ui.MessageBox
	audio    *audio.AudioManager
}

type options struct {
	seed   int64
	mute   bool
	volume float64
	paused bool
}

func NewGame(opts options) (*Game, error) {
	surface, err := render.NewEbitenSurface(20)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.seed))
	sb := core.NewSandbox(config.GridSize, config.LakeRadius, rng)
	bus := core.NewEventBus()
	renderer := render.NewIsoRenderer()
	loop := core.NewGameLoop(sb, bus, config.TickInterval, config.MaxFrameTime)
	ctrl := ui.NewController(sb, renderer.Proj, bus)

	g := &Game{
		sandbox:  sb,
		gameLoop: loop,
		eventBus: bus,
		renderer: renderer,
		surface:  surface,
		input:    input.NewInputState(config.SurfaceWidth, config.SurfaceHeight),
		ctrl:     ctrl,
		hud:      ui.NewHUD(ctrl, loop),
		notices:  ui.NewMessageBox(config.NoticeTTL),
		audio:    audio.NewAudioManager(),
	}
	g.notices.Subscribe(bus, time.Now)

	if err := g.audio.Init(); err != nil {
		log.Printf("Audio disabled: %v", err)
	}
	g.audio.SetVolume(opts.volume)
	if opts.mute {
		g.audio.ToggleMute()
	}
	g.bindSounds()

	if opts.paused {
		loop.Pause()
	}
	log.Printf("Sandbox: %dx%d grid, seed %d, tick every %v", config.GridSize, config.GridSize, opts.seed, config.TickInterval)
	return g, nil
}

func (g *Game) bindSounds() {
	sfx := map[core.EventType]audio.SoundID{
		core.EvtObjectPlaced:      audio.SndPlace,
		core.EvtPlacementRejected: audio.SndError,
		core.EvtRotated:           audio.SndRotate,
		core.EvtReset:             audio.SndReset,
		core.EvtToolSelected:      audio.SndSelect,
	}
	for et, id := range sfx {
		id := id
		g.eventBus.On(et, func(core.Event) { g.audio.PlaySFX(id) })
	}
	g.eventBus.On(core.EvtReset, func(core.Event) {
		log.Printf("Map reset")
	})
}

func (g *Game) Update() error {
	g.input.Update()
	p := &g.input.Pointer

	switch {
	case p.Left:
		g.ctrl.OnPointerLeave()
	case p.Moved:
		if g.hud.OverToolbar(p.Y) {
			g.ctrl.OnPointerLeave()
		} else {
			g.ctrl.OnPointerMove(float64(p.X), float64(p.Y))
		}
	}

	if p.Clicked && !g.hud.Click(p.X, p.Y) && !g.hud.OverToolbar(p.Y) {
		// Rejections are already reported through the event bus
		_ = g.ctrl.OnPointerClick()
	}

	for _, cmd := range g.input.Commands {
		g.handleCommand(cmd)
	}

	g.gameLoop.Update()
	g.eventBus.Dispatch()
	g.notices.Update(time.Now())
	return nil
}

func (g *Game) handleCommand(cmd input.Command) {
	switch cmd {
	case input.CmdRotateLeft:
		g.ctrl.OnRotate(-1)
	case input.CmdRotateRight:
		g.ctrl.OnRotate(1)
	case input.CmdReset:
		g.ctrl.OnReset()
	case input.CmdTool1, input.CmdTool2, input.CmdTool3, input.CmdTool4:
		g.ctrl.OnToolSelect(maplib.AllKinds[cmd-input.CmdTool1])
	case input.CmdPause:
		g.gameLoop.TogglePause()
	case input.CmdCopyMap:
		if err := ui.CopyHeightmap(g.sandbox.Grid); err != nil {
			log.Printf("Clipboard: %v", err)
			g.eventBus.Notify("Clipboard unavailable")
			return
		}
		g.eventBus.Notify("Heightmap copied")
	case input.CmdMute:
		if g.audio.ToggleMute() {
			g.eventBus.Notify("Sound off")
		} else {
			g.eventBus.Notify("Sound on")
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	g.surface.Target = screen
	g.renderer.Draw(g.surface, render.SceneOf(g.sandbox))

	g.hud.Draw(screen)
	g.notices.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.SurfaceWidth, config.SurfaceHeight
}

func main() {
	var opts options
	flag.Int64Var(&opts.seed, "seed", time.Now().UnixNano(), "terrain RNG seed")
	flag.BoolVar(&opts.mute, "mute", false, "start with sound off")
	flag.Float64Var(&opts.volume, "volume", 0.8, "master volume, 0-1")
	flag.BoolVar(&opts.paused, "paused", false, "start with the terrain tick paused")
	flag.Parse()

	ebiten.SetWindowSize(config.SurfaceWidth, config.SurfaceHeight)
	ebiten.SetWindowTitle("Iso Sandbox")
	ebiten.SetVsyncEnabled(true)

	game, err := NewGame(opts)
	if err != nil {
		log.Fatal(err)
	}
	defer game.audio.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
