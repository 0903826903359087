// Package ebitenshell hosts an easel component tree in an Ebitengine
// window. It polls window input into the dispatcher, drives the frame
// loop at the engine's tick rate, and draws through a GPU-backed
// renderer.
package ebitenshell

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/quarterpixel/easel"
)

// Config controls the window the shell opens.
type Config struct {
	Title      string
	Width      int
	Height     int
	ClearColor color.RGBA
	Resizable  bool

	// FontSize is the UI font size in points.
	FontSize float64

	// TPS overrides Ebitengine's tick rate when positive.
	TPS int

	// ExitOnEscape closes the window on the escape key.
	ExitOnEscape bool
}

// DefaultConfig returns a resizable 1024x768 window with a dark clear
// color.
func DefaultConfig(title string) Config {
	return Config{
		Title:      title,
		Width:      1024,
		Height:     768,
		ClearColor: color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff},
		Resizable:  true,
		FontSize:   14,
	}
}

// Shell implements ebiten.Game around an easel loop. One shell owns
// one window.
type Shell struct {
	cfg      Config
	loop     *easel.Loop
	renderer *Renderer
	clip     *Clipboard
	cb       easel.InputCallbacks

	lastW, lastH   int
	lastMX, lastMY int
	keyBuf         []ebiten.Key
	charBuf        []rune
}

var _ easel.Window = (*Shell)(nil)

// New builds a shell around the given loop. The loop's dispatcher
// receives all window input until SetInputCallbacks redirects it.
func New(cfg Config, loop *easel.Loop) (*Shell, error) {
	r, err := NewRenderer(cfg.FontSize)
	if err != nil {
		return nil, fmt.Errorf("ebitenshell: %w", err)
	}
	return &Shell{
		cfg:      cfg,
		loop:     loop,
		renderer: r,
		clip:     &Clipboard{},
		cb:       easel.DispatcherCallbacks(loop.Dispatcher),
		lastMX:   -1,
		lastMY:   -1,
	}, nil
}

// Loop returns the loop the shell drives.
func (s *Shell) Loop() *easel.Loop { return s.loop }

// Renderer returns the shell's renderer, usable for text measurement
// before the window opens.
func (s *Shell) Renderer() *Renderer { return s.renderer }

// Clipboard returns the shell's in-process clipboard.
func (s *Shell) Clipboard() easel.Clipboard { return s.clip }

// Keyboard returns the desktop chord translation.
func (s *Shell) Keyboard() easel.Keyboard { return Keyboard{} }

// Size implements easel.Window.
func (s *Shell) Size() (int, int) { return s.lastW, s.lastH }

// CursorPos implements easel.Window.
func (s *Shell) CursorPos() (int, int) { return ebiten.CursorPosition() }

// SetInputCallbacks implements easel.Window, redirecting polled input
// away from the loop's dispatcher.
func (s *Shell) SetInputCallbacks(cb easel.InputCallbacks) { s.cb = cb }

// Update implements ebiten.Game: detect resizes, poll input, tick the
// loop.
func (s *Shell) Update() error {
	if s.cfg.ExitOnEscape && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if w, h := ebiten.WindowSize(); w != s.lastW || h != s.lastH {
		s.lastW, s.lastH = w, h
		if s.cb.FramebufferResize != nil {
			s.cb.FramebufferResize(w, h)
		}
	}
	s.pollInput()
	s.loop.Tick(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw implements ebiten.Game.
func (s *Shell) Draw(screen *ebiten.Image) {
	screen.Fill(s.cfg.ClearColor)
	s.renderer.begin(screen)
	s.loop.Render(s.renderer)
}

// Layout implements ebiten.Game. Logical pixels match window pixels.
func (s *Shell) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it closes.
func (s *Shell) Run() error {
	ebiten.SetWindowTitle(s.cfg.Title)
	ebiten.SetWindowSize(s.cfg.Width, s.cfg.Height)
	if s.cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if s.cfg.TPS > 0 {
		ebiten.SetTPS(s.cfg.TPS)
	}
	if err := ebiten.RunGame(s); err != nil {
		return fmt.Errorf("ebitenshell: %w", err)
	}
	return nil
}
