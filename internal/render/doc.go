// Package render drives the per-frame redraw.
//
// A [Loop] reads the scene, runs the membrane pipeline and issues draw
// calls against a [Surface]. It never sleeps or spins on its own: after
// each frame it asks a [Scheduler] to call it again before the next
// repaint, which is how each frontend ties the loop to its own cadence.
//
//	loop := render.NewLoop(store, surface, scheduler, style, params, logger)
//	loop.Start()
//	defer loop.Stop()
//
// # Thread Safety
//
// Loop is NOT thread-safe. The frontend must run frames and scene edits on
// the same goroutine.
package render
