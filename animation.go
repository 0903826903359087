package easel

import (
	"math"
	"sync/atomic"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AnimationID uniquely identifies an animation.
type AnimationID uint64

var nextAnimationID atomic.Uint64

func newAnimationID() AnimationID {
	return AnimationID(nextAnimationID.Add(1))
}

// Animation is one active interpolation. It advances when the Animator
// ticks and applies its current values through a callback.
type Animation struct {
	id         AnimationID
	tweens     []*gween.Tween
	values     []float32
	apply      func(values []float32)
	onComplete func()
	done       bool
}

// ID returns the animation's unique identifier.
func (a *Animation) ID() AnimationID { return a.id }

// Cancel stops the animation; its values stay wherever the last tick
// left them and the completion hook never fires.
func (a *Animation) Cancel() { a.done = true }

// Cancelled reports whether the animation was cancelled or finished.
func (a *Animation) Cancelled() bool { return a.done }

// OnComplete sets a hook invoked once when the animation reaches its
// end values.
func (a *Animation) OnComplete(fn func()) *Animation {
	a.onComplete = fn
	return a
}

// Animator advances animations each frame. Like the component tree it
// animates, it is single-threaded: create animations and tick it only
// on the UI thread.
type Animator struct {
	animations []*Animation
}

// NewAnimator creates an empty animator.
func NewAnimator() *Animator {
	return &Animator{}
}

// Active returns the number of running animations.
func (an *Animator) Active() int { return len(an.animations) }

// Animate tweens a single value from from to to over duration seconds,
// calling apply with the current value each tick. Nil apply is ignored
// with a diagnostic.
func (an *Animator) Animate(from, to, duration float32, easing ease.TweenFunc, apply func(value float32)) *Animation {
	if apply == nil {
		logger().Debug("easel: ignoring animation with nil apply")
		return nil
	}
	return an.add([]*gween.Tween{gween.New(from, to, duration, easing)}, func(values []float32) {
		apply(values[0])
	})
}

// AnimateBounds tweens a component's rectangle from its current bounds
// to the target over duration seconds.
func (an *Animator) AnimateBounds(c *Component, to Rect, duration float32, easing ease.TweenFunc) *Animation {
	if c == nil {
		logger().Debug("easel: ignoring animation on nil component")
		return nil
	}
	b := c.Bounds()
	tweens := []*gween.Tween{
		gween.New(float32(b.X), float32(to.X), duration, easing),
		gween.New(float32(b.Y), float32(to.Y), duration, easing),
		gween.New(float32(b.W), float32(to.W), duration, easing),
		gween.New(float32(b.H), float32(to.H), duration, easing),
	}
	return an.add(tweens, func(v []float32) {
		c.SetBounds(roundf(v[0]), roundf(v[1]), roundf(v[2]), roundf(v[3]))
	})
}

func (an *Animator) add(tweens []*gween.Tween, apply func([]float32)) *Animation {
	a := &Animation{
		id:     newAnimationID(),
		tweens: tweens,
		values: make([]float32, len(tweens)),
		apply:  apply,
	}
	an.animations = append(an.animations, a)
	return a
}

// Tick advances every animation by dt seconds, applying values and
// dropping animations that finished or were cancelled.
func (an *Animator) Tick(dt float64) {
	keep := an.animations[:0]
	for _, a := range an.animations {
		if a.done {
			continue
		}
		finished := false
		for i, tw := range a.tweens {
			v, fin := tw.Update(float32(dt))
			a.values[i] = v
			finished = fin
		}
		a.apply(a.values)
		if finished {
			a.done = true
			if a.onComplete != nil {
				a.onComplete()
			}
			continue
		}
		keep = append(keep, a)
	}
	for i := len(keep); i < len(an.animations); i++ {
		an.animations[i] = nil
	}
	an.animations = keep
}

func roundf(v float32) int {
	return int(math.Round(float64(v)))
}
