// Command easeldemo is a small editor-style showcase for easel: a
// toolbar, an inspector sidebar, and a pannable, zoomable canvas with
// a draggable node. It runs in an Ebitengine window by default or in
// the terminal with -terminal.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/tanema/gween/ease"

	"github.com/quarterpixel/easel"
	"github.com/quarterpixel/easel/shell/ebitenshell"
	"github.com/quarterpixel/easel/shell/termshell"
	"github.com/quarterpixel/easel/theme"
)

// Input modes: the wheel pans the canvas in select mode and zooms
// around the cursor in zoom mode.
const (
	modeSelect easel.InputMode = iota
	modeZoom
)

// appConfig is the easeldemo.toml shape.
type appConfig struct {
	Title    string  `toml:"title"`
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	FontSize float64 `toml:"font_size"`
	FPS      int     `toml:"fps"`
	Theme    string  `toml:"theme"`
}

func defaultAppConfig() appConfig {
	return appConfig{
		Title:    "Easel Demo",
		Width:    1024,
		Height:   720,
		FontSize: 14,
		FPS:      60,
	}
}

// loadAppConfig reads a TOML config over the defaults. A missing file
// just returns the defaults.
func loadAppConfig(path string) (appConfig, error) {
	cfg := defaultAppConfig()
	explicit := path != ""
	if !explicit {
		path = "easeldemo.toml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// metrics are the layout sizes, in pixels for the window shell and in
// cells for the terminal shell.
type metrics struct {
	toolbarH int
	sidebarW int
	gap      int
	pad      int
	rowH     int
}

var (
	windowMetrics   = metrics{toolbarH: 44, sidebarW: 220, gap: 8, pad: 8, rowH: 30}
	terminalMetrics = metrics{toolbarH: 3, sidebarW: 26, gap: 1, pad: 1, rowH: 3}
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	themePath := flag.String("theme", "", "path to a TOML theme file")
	terminal := flag.Bool("terminal", false, "run in the terminal instead of a window")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		if err := enableLogging(*terminal); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	cfg, err := loadAppConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *themePath != "" {
		cfg.Theme = *themePath
	}
	th := theme.Default()
	if cfg.Theme != "" {
		th, err = theme.Load(cfg.Theme)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	a := &app{cfg: cfg, th: th, loop: easel.NewLoop(nil)}
	if err := a.run(*terminal); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// enableLogging routes easel diagnostics to stderr, or to a file in
// terminal mode where stderr would scribble over the screen.
func enableLogging(terminal bool) error {
	out := os.Stderr
	if terminal {
		f, err := os.OpenFile("easeldemo.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = f
	}
	easel.SetLogger(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return nil
}

type app struct {
	cfg appConfig
	th  *theme.Theme
	m   metrics

	loop     *easel.Loop
	renderer easel.Renderer

	root      *easel.Component
	canvas    *canvasView
	status    *easel.Label
	nameEdit  *easel.EditBox
	badge     *easel.Panel
	badgeTop  bool
	nodeLabel string
}

func (a *app) run(terminal bool) error {
	if terminal {
		a.m = terminalMetrics
		shell := termshell.New(termshell.Config{
			ClearColor:   a.th.Background,
			FPS:          a.cfg.FPS,
			ExitOnEscape: true,
		}, a.loop)
		a.renderer = shell.Renderer()
		a.assemble(shell.Clipboard(), shell.Keyboard())
		return shell.Run()
	}

	a.m = windowMetrics
	ecfg := ebitenshell.DefaultConfig(a.cfg.Title)
	ecfg.Width = a.cfg.Width
	ecfg.Height = a.cfg.Height
	ecfg.ClearColor = a.th.Background
	ecfg.FontSize = a.cfg.FontSize
	ecfg.TPS = a.cfg.FPS
	ecfg.ExitOnEscape = true
	shell, err := ebitenshell.New(ecfg, a.loop)
	if err != nil {
		return err
	}
	a.renderer = shell.Renderer()
	a.assemble(shell.Clipboard(), shell.Keyboard())
	return shell.Run()
}

// assemble builds the tree, wires it to the dispatcher, and starts the
// background texture worker.
func (a *app) assemble(clip easel.Clipboard, keys easel.Keyboard) {
	a.buildUI(clip, keys)
	a.loop.Root = a.root

	d := a.loop.Dispatcher
	d.Register(a.root)
	d.SetResizeCallback(func(w, h int) {
		a.root.OnParentResize(w, h)
	})

	a.startTextureWorker()
}

func (a *app) buildUI(clip easel.Clipboard, keys easel.Keyboard) {
	th := a.th
	m := a.m
	d := a.loop.Dispatcher

	root := easel.NewComponent("root")
	root.SetBounds(0, 0, a.cfg.Width, a.cfg.Height)
	root.SetResizeBehavior(easel.ResizeFill)
	root.SetRenderer(a.renderer)
	root.SetLayout(easel.NewStackLayout(easel.Vertical, 0))
	a.root = root

	// Toolbar across the top.
	toolbar := easel.NewPanel(th, "toolbar")
	toolbar.SetBounds(0, 0, 0, m.toolbarH)
	toolbar.SetConstraints(easel.LayoutConstraints{Policy: easel.SizeFixed, Align: easel.AlignStretch})
	bar := easel.NewStackLayout(easel.Horizontal, m.gap)
	bar.Padding = easel.UniformMargins(m.pad)
	toolbar.SetLayout(bar)
	root.AddChild(toolbar.Component)

	buttonW := m.sidebarW/2 - m.gap
	selectBtn := easel.NewButton(th, "mode-select", "Select", func() { d.SetMode(modeSelect) })
	selectBtn.SetBounds(0, 0, buttonW, 0)
	selectBtn.SetConstraints(easel.LayoutConstraints{Policy: easel.SizeFixed, Align: easel.AlignStretch})
	toolbar.AddChild(selectBtn.Component)

	zoomBtn := easel.NewButton(th, "mode-zoom", "Zoom", func() { d.SetMode(modeZoom) })
	zoomBtn.SetBounds(0, 0, buttonW, 0)
	zoomBtn.SetConstraints(easel.LayoutConstraints{Policy: easel.SizeFixed, Align: easel.AlignStretch})
	toolbar.AddChild(zoomBtn.Component)

	a.status = easel.NewLabel(th, "status", "")
	a.status.Color = th.Muted
	a.status.SetConstraints(easel.LayoutConstraints{Policy: easel.SizeExpand, Align: easel.AlignStretch})
	a.status.OnUpdate = func(float64) { a.refreshStatus() }
	toolbar.AddChild(a.status.Component)

	// Sidebar and canvas share the remaining space.
	content := easel.NewComponent("content")
	content.SetConstraints(easel.LayoutConstraints{Policy: easel.SizeExpand, Align: easel.AlignStretch})
	content.SetLayout(easel.NewStackLayout(easel.Horizontal, 0))
	root.AddChild(content)

	sidebar := easel.NewPanel(th, "sidebar")
	sidebar.SetBounds(0, 0, m.sidebarW, 0)
	sidebar.SetConstraints(easel.LayoutConstraints{Policy: easel.SizeFixed, Align: easel.AlignStretch})
	side := easel.NewStackLayout(easel.Vertical, m.gap)
	side.Padding = easel.UniformMargins(m.pad)
	sidebar.SetLayout(side)
	content.AddChild(sidebar.Component)

	rowFixed := easel.LayoutConstraints{Policy: easel.SizeFixed, Align: easel.AlignStretch}

	title := easel.NewLabel(th, "inspector-title", "Inspector")
	title.SetBounds(0, 0, 0, m.rowH)
	title.SetConstraints(rowFixed)
	sidebar.AddChild(title.Component)

	a.nameEdit = easel.NewEditBox(th, "name-edit", clip, keys)
	a.nameEdit.SetText("node-1")
	a.nameEdit.SetBounds(0, 0, 0, m.rowH)
	a.nameEdit.SetConstraints(rowFixed)
	sidebar.AddChild(a.nameEdit.Component)

	apply := easel.NewButton(th, "apply", "Apply", func() {
		a.nodeLabel = a.nameEdit.Text()
	})
	apply.SetBounds(0, 0, 0, m.rowH)
	apply.SetConstraints(rowFixed)
	sidebar.AddChild(apply.Component)

	animate := easel.NewButton(th, "animate", "Animate", a.toggleBadge)
	animate.SetBounds(0, 0, 0, m.rowH)
	animate.SetConstraints(rowFixed)
	sidebar.AddChild(animate.Component)

	a.canvas = newCanvasView(th)
	a.canvas.SetConstraints(easel.LayoutConstraints{Policy: easel.SizeExpand, Align: easel.AlignStretch})
	content.AddChild(a.canvas.Component)
	a.trackCanvasRegions()

	a.nodeLabel = "node-1"
	a.canvas.AddChild(a.buildNode())
	a.badge = a.buildBadge()
	a.canvas.AddChild(a.badge.Component)
}

// buildNode creates the draggable canvas node.
func (a *app) buildNode() *easel.Component {
	th := a.th
	scale := a.nodeScale()
	node := easel.NewComponent("node")
	node.SetBounds(6*scale, 4*scale, 16*scale, 8*scale)

	var grab easel.Rect
	var grabX, grabY int
	node.OnDragStart = func(ev *easel.MouseEvent) {
		grab = node.Bounds()
		grabX, grabY = ev.ScreenX, ev.ScreenY
	}
	node.OnDrag = func(ev *easel.MouseEvent) {
		node.SetBounds(grab.X+ev.ScreenX-grabX, grab.Y+ev.ScreenY-grabY, grab.W, grab.H)
	}
	node.OnRender = func(r easel.Renderer) {
		b := node.AbsoluteBounds()
		fill := th.Accent
		if a.loop.Dispatcher.Focused() == node {
			fill = theme.Hover(fill)
		}
		r.DrawRect(b, fill)
		tw, thH := r.MeasureText(a.nodeLabel)
		r.DrawText(a.nodeLabel, b.X+max((b.W-tw)/2, 0), b.Y+max((b.H-thH)/2, 0), th.Text)
	}
	return node
}

// buildBadge creates the animated badge panel.
func (a *app) buildBadge() *easel.Panel {
	scale := a.nodeScale()
	badge := easel.NewPanel(a.th, "badge")
	badge.SetBounds(scale, scale, 8*scale, 3*scale)
	return badge
}

// nodeScale converts the node sizes between pixel and cell units.
func (a *app) nodeScale() int {
	if a.m == terminalMetrics {
		return 1
	}
	return 10
}

// toggleBadge animates the badge between the canvas corners.
func (a *app) toggleBadge() {
	cb := a.canvas.Bounds()
	bb := a.badge.Bounds()
	scale := a.nodeScale()
	target := easel.Rect{X: scale, Y: scale, W: bb.W, H: bb.H}
	if !a.badgeTop {
		target.X = max(cb.W-bb.W-scale, 0)
		target.Y = max(cb.H-bb.H-scale, 0)
	}
	a.badgeTop = !a.badgeTop
	a.loop.Animator.AnimateBounds(a.badge.Component, target, 0.45, ease.OutQuad)
}

// trackCanvasRegions keeps the scroll regions of both modes aligned
// with wherever layout puts the canvas.
func (a *app) trackCanvasRegions() {
	var prev easel.Rect
	d := a.loop.Dispatcher
	a.canvas.OnUpdate = func(float64) {
		b := a.canvas.AbsoluteBounds()
		if b == prev {
			return
		}
		prev = b
		d.SetScrollRegions(modeSelect, []easel.ScrollRegion{{
			Name:     "canvas-pan",
			Bounds:   b,
			Strategy: easel.PanStrategy{Target: a.canvas},
		}})
		d.SetScrollRegions(modeZoom, []easel.ScrollRegion{{
			Name:     "canvas-zoom",
			Bounds:   b,
			Strategy: easel.ZoomStrategy{Target: a.canvas},
		}})
	}
}

func (a *app) refreshStatus() {
	mode := "select"
	if a.loop.Dispatcher.Mode() == modeZoom {
		mode = "zoom"
	}
	st := a.loop.Queue.Stats()
	a.status.SetText(fmt.Sprintf("mode %s | zoom %.2f | queue %d drained %d | anims %d",
		mode, a.canvas.zoom, st.CurrentSize, st.TotalDrained, a.loop.Animator.Active()))
}

// startTextureWorker regenerates the canvas backdrop off the UI thread
// and hands the result over through the callback queue.
func (a *app) startTextureWorker() {
	go func() {
		for seed := 1; ; seed++ {
			base := plasma(80, 60, seed)
			img := ebitenshell.ScaleImage(base, 160, 120)
			a.loop.Queue.Enqueue(func() {
				a.canvas.setTexture(a.renderer, img)
			}, "canvas-texture", 1)
			time.Sleep(4 * time.Second)
		}
	}()
}

// plasma renders a procedural backdrop.
func plasma(w, h, seed int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fs := float64(seed)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx, fy := float64(x)/float64(w), float64(y)/float64(h)
			v := math.Sin(fx*6+fs) + math.Sin(fy*8-fs*0.7) + math.Sin((fx+fy)*5)
			t := (v + 3) / 6
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(40 + 120*t),
				G: uint8(60 + 80*(1-t)),
				B: uint8(120 + 100*t),
				A: 0xff,
			})
		}
	}
	return img
}

// canvasView is the pannable, zoomable work area. It satisfies both
// scroll strategy targets.
type canvasView struct {
	*easel.Component
	th *theme.Theme

	offsetX, offsetY float64
	zoom             float64

	tex        easel.TextureID
	texW, texH int
}

var (
	_ easel.Panner = (*canvasView)(nil)
	_ easel.Zoomer = (*canvasView)(nil)
)

func newCanvasView(th *theme.Theme) *canvasView {
	c := &canvasView{Component: easel.NewComponent("canvas"), th: th, zoom: 1}
	c.OnRender = func(r easel.Renderer) { c.draw(r) }
	return c
}

// Pan implements easel.Panner.
func (c *canvasView) Pan(dx, dy float64) {
	c.offsetX += dx
	c.offsetY += dy
}

// Zoom implements easel.Zoomer, keeping the point under the cursor
// fixed.
func (c *canvasView) Zoom(factor float64, x, y int) {
	ax, ay := c.AbsoluteOrigin()
	lx, ly := float64(x-ax), float64(y-ay)
	c.offsetX = lx - (lx-c.offsetX)*factor
	c.offsetY = ly - (ly-c.offsetY)*factor
	c.zoom *= factor
}

func (c *canvasView) setTexture(r easel.Renderer, img image.Image) {
	if r == nil {
		return
	}
	b := img.Bounds()
	if c.tex == 0 {
		c.tex = r.CreateTexture(img)
	} else {
		r.UpdateTexture(c.tex, img)
	}
	c.texW, c.texH = b.Dx(), b.Dy()
}

func (c *canvasView) draw(r easel.Renderer) {
	b := c.AbsoluteBounds()
	r.DrawRect(b, c.th.Background)
	if c.tex == 0 {
		return
	}
	r.ScissorOn(b)
	dst := easel.Rect{
		X: b.X + int(math.Round(c.offsetX)),
		Y: b.Y + int(math.Round(c.offsetY)),
		W: int(math.Round(float64(c.texW) * c.zoom)),
		H: int(math.Round(float64(c.texH) * c.zoom)),
	}
	r.DrawSprite(c.tex, easel.Rect{}, dst, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	r.ScissorOff()
}
