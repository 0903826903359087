// Package easel is a retained-mode UI runtime for editor-style applications.
//
// The runtime is organized around four pieces:
//
//   - [Component]: a tree of visual nodes with integer bounds, resize
//     behavior, and pluggable layout strategies.
//   - [LayoutManager]: the measure/layout contract a strategy implements;
//     [AbsoluteLayout] and [StackLayout] are provided.
//   - [EventDispatcher]: hit-testing plus hover/focus/drag tracking over
//     registered top-level components, with mode-aware scroll routing.
//   - [AsyncCallbackQueue]: the only thread-safe boundary. Background
//     workers enqueue callbacks that the UI thread drains once per frame.
//
// Everything except the callback queue is single-threaded: the tree, the
// layout engine, and the dispatcher must only be touched from the thread
// that drives the frame loop.
//
// Rendering, windowing, clipboard, and key translation are consumed
// through the capability interfaces in renderer.go. Two implementations
// ship with the module: a GPU shell built on [Ebitengine]
// (shell/ebitenshell) and a terminal shell built on [tcell]
// (shell/termshell).
//
// [Ebitengine]: https://github.com/hajimehoshi/ebiten
// [tcell]: https://github.com/gdamore/tcell
package easel
