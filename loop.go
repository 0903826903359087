package easel

import "time"

// LoopConfig bounds the per-frame work done outside the tree itself.
type LoopConfig struct {
	// MaxCallbacksPerFrame caps how many queued callbacks drain per
	// tick. Zero drains everything.
	MaxCallbacksPerFrame int

	// CallbackMaxAge expires queued callbacks older than this before
	// draining. Zero disables expiry.
	CallbackMaxAge time.Duration
}

// DefaultLoopConfig returns the config used by the shells.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		MaxCallbacksPerFrame: 16,
		CallbackMaxAge:       5 * time.Second,
	}
}

// Loop drives one frame of the runtime: queued callbacks, animations,
// per-component updates, then layout. Everything it touches is
// single-threaded; only the queue may be fed from other goroutines.
type Loop struct {
	Root       *Component
	Dispatcher *EventDispatcher
	Queue      *AsyncCallbackQueue
	Animator   *Animator
	Config     LoopConfig
}

// NewLoop wires a frame driver around the given root.
func NewLoop(root *Component) *Loop {
	return &Loop{
		Root:       root,
		Dispatcher: NewEventDispatcher(),
		Queue:      NewAsyncCallbackQueue(),
		Animator:   NewAnimator(),
		Config:     DefaultLoopConfig(),
	}
}

// Tick advances the runtime by dt seconds.
func (l *Loop) Tick(dt float64) {
	if l.Queue != nil {
		if l.Config.CallbackMaxAge > 0 {
			l.Queue.Expire(l.Config.CallbackMaxAge)
		}
		l.Queue.Drain(l.Config.MaxCallbacksPerFrame)
	}
	if l.Animator != nil {
		l.Animator.Tick(dt)
	}
	if l.Root != nil {
		l.Root.Update(dt)
		layoutPass(l.Root)
	}
}

// Render draws one frame through the renderer.
func (l *Loop) Render(r Renderer) {
	if l.Root == nil || r == nil {
		return
	}
	r.BeginFrame()
	l.Root.Render()
	r.EndFrame()
	r.Present()
}

// layoutPass runs PerformLayout over the whole tree so containers
// invalidated deep below a valid ancestor still get serviced.
func layoutPass(c *Component) {
	c.PerformLayout()
	for _, child := range c.children {
		layoutPass(child)
	}
}
