// Package ui contains the Bubble Tea program that renders the LIS trace
// viewer. The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own key handling, mouse hit-testing,
// rendering, and the edit prompt.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While the edit prompt is open, key presses go to the editor first
//     (internal/ui/editor.go). All other messages are routed through a typed
//     handler registry so each tea.Msg is handled by a focused function: key
//     presses in keys.go, mouse events in mouse.go, playback ticks in
//     commands.go.
//   - The view (internal/ui/view.go) paints from the explorer's projections
//     on fixed row positions; mouse.go reuses the same geometry so hit-testing
//     always matches the last frame.
//
// State ownership:
//   - All trace, navigation, hover, and playback state lives in
//     internal/explorer. The model keeps only presentation state: the element
//     cursor, the hovered panel region, messages, and the edit prompt.
//   - Playback timing is message-driven: toggling play returns a tea.Tick
//     command carrying the playback epoch, and each tick that still matches
//     the current epoch advances one step and schedules the next tick. Stale
//     epochs are absorbed, so stopping playback never needs to race a timer.
//
// This separation keeps Model.Update compact and makes it possible to test
// the full control surface through the Harness without a terminal.
package ui
