// Package viz is the terminal frontend.
//
// Circles and the membrane are drawn on two Braille canvases, so each
// terminal cell holds a 2x4 grid of dots, and composed with the active
// theme's colors:
//
//   - [Canvas]: Braille dot canvas with line and circle rasterisation
//   - [Surface]: render.Surface over a pair of canvases
//   - [App]: Bubble Tea model running the render loop and mouse editing
//
// # Key Bindings
//
//	Mouse    - Right: delete, any other button: create/drag
//	C        - Clear all circles
//	T        - Cycle color themes
//	H        - Toggle help (hidden by the first click)
//	[ / ]    - Halve / double samples per circle
//	+/-      - Zoom
//	Q        - Quit
package viz
