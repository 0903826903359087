// Package termshell hosts an easel component tree in a terminal via
// tcell. One cell is one pixel unit: rectangles become background
// fills, text becomes runes, sprites become sampled color blocks.
//
// Terminals report key presses only, so the dispatcher never sees
// release events, and the clipboard is in-process.
package termshell

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/quarterpixel/easel"
)

// Config controls the terminal session.
type Config struct {
	ClearColor color.RGBA

	// FPS is the frame rate of the ticker driving the loop.
	FPS int

	// ExitOnEscape quits on the escape key. Ctrl-C always quits.
	ExitOnEscape bool
}

// DefaultConfig returns a 30 FPS session with a dark background.
func DefaultConfig() Config {
	return Config{
		ClearColor:   color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff},
		FPS:          30,
		ExitOnEscape: true,
	}
}

// Shell drives an easel loop from a tcell screen.
type Shell struct {
	cfg      Config
	loop     *easel.Loop
	screen   tcell.Screen
	renderer *Renderer
	clip     *Clipboard
	cb       easel.InputCallbacks

	lastW, lastH   int
	lastMX, lastMY int
	lastButtons    tcell.ButtonMask
}

var _ easel.Window = (*Shell)(nil)

// New builds a shell around the given loop. The loop's dispatcher
// receives all terminal input until SetInputCallbacks redirects it.
func New(cfg Config, loop *easel.Loop) *Shell {
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	return &Shell{
		cfg:      cfg,
		loop:     loop,
		renderer: newRenderer(cfg.ClearColor),
		clip:     &Clipboard{},
		cb:       easel.DispatcherCallbacks(loop.Dispatcher),
		lastMX:   -1,
		lastMY:   -1,
	}
}

// Loop returns the loop the shell drives.
func (s *Shell) Loop() *easel.Loop { return s.loop }

// Renderer returns the shell's cell renderer.
func (s *Shell) Renderer() *Renderer { return s.renderer }

// Clipboard returns the shell's in-process clipboard.
func (s *Shell) Clipboard() easel.Clipboard { return s.clip }

// Keyboard returns the readline-flavored chord translation.
func (s *Shell) Keyboard() easel.Keyboard { return Keyboard{} }

// Size implements easel.Window.
func (s *Shell) Size() (int, int) { return s.lastW, s.lastH }

// CursorPos implements easel.Window.
func (s *Shell) CursorPos() (int, int) { return s.lastMX, s.lastMY }

// SetInputCallbacks implements easel.Window, redirecting terminal
// input away from the loop's dispatcher.
func (s *Shell) SetInputCallbacks(cb easel.InputCallbacks) { s.cb = cb }

// Run takes over the terminal and blocks until the session ends.
func (s *Shell) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("termshell: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("termshell: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	s.screen = screen
	s.renderer.screen = screen

	s.resize(screen.Size())

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.FPS))
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			if s.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			s.loop.Tick(now.Sub(last).Seconds())
			last = now
			s.loop.Render(s.renderer)
		}
	}
}

// handleEvent routes one tcell event. It reports whether the session
// should end.
func (s *Shell) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.resize(ev.Size())
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if s.cfg.ExitOnEscape && ev.Key() == tcell.KeyEscape {
			return true
		}
		s.handleKey(ev)
	case *tcell.EventMouse:
		s.handleMouse(ev)
	}
	return false
}

func (s *Shell) resize(w, h int) {
	if w == s.lastW && h == s.lastH {
		return
	}
	s.lastW, s.lastH = w, h
	if s.cb.FramebufferResize != nil {
		s.cb.FramebufferResize(w, h)
	}
}
