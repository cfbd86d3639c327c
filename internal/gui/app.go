// Package gui runs the windowed fireworks show on ebiten.
package gui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/san-kum/skyburst/internal/config"
	"github.com/san-kum/skyburst/internal/randx"
	"github.com/san-kum/skyburst/internal/show"
)

// Device pixel ratios above this are not worth the fill cost.
const maxDeviceScale = 2.0

var backgroundColor = color.RGBA{R: 0x08, G: 0x0a, B: 0x14, A: 0xff}

type App struct {
	shw *show.Show
	cfg *config.Config

	// logical size in show units, scale into backing pixels
	width, height int
	scale         float64

	offscreen *ebiten.Image
	lastTick  time.Time
}

func NewApp(cfg *config.Config, seed int64) *App {
	return &App{
		shw:      show.New(randx.New(seed), float64(cfg.Width), float64(cfg.Height)),
		cfg:      cfg,
		width:    cfg.Width,
		height:   cfg.Height,
		scale:    1,
		lastTick: time.Now(),
	}
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.shw.LaunchRandom(a.cfg.Burst.Min, a.cfg.Burst.Max)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	dt := now.Sub(a.lastTick).Seconds()
	a.lastTick = now
	a.shw.Step(dt)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	pw, ph := screen.Bounds().Dx(), screen.Bounds().Dy()
	if a.offscreen == nil || a.offscreen.Bounds().Dx() != pw || a.offscreen.Bounds().Dy() != ph {
		a.offscreen = ebiten.NewImage(pw, ph)
		a.offscreen.Fill(backgroundColor)
	}

	// Render unconditionally so trails keep fading after the show stops.
	a.shw.Render(&surface{dst: a.offscreen, scale: a.scale})
	screen.DrawImage(a.offscreen, nil)

	if a.shw.Completed() {
		msg := "SHOW COMPLETE - SPACE OR CLICK TO LAUNCH"
		ebitenutil.DebugPrintAt(screen, msg, pw/2-len(msg)*3, ph/2)
	} else if !a.shw.Running() {
		ebitenutil.DebugPrintAt(screen, "SPACE OR CLICK TO LAUNCH", 8, 8)
	}
}

// Layout tracks window resizes and applies the device scale factor, capped
// so high-DPI displays don't quadruple the fill cost.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	if s > maxDeviceScale {
		s = maxDeviceScale
	}
	if outsideWidth != a.width || outsideHeight != a.height || s != a.scale {
		a.width, a.height = outsideWidth, outsideHeight
		a.scale = s
		a.shw.Resize(float64(a.width), float64(a.height))
	}
	return int(float64(outsideWidth) * s), int(float64(outsideHeight) * s)
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, seed int64) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("skyburst")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)

	if err := ebiten.RunGame(NewApp(cfg, seed)); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
