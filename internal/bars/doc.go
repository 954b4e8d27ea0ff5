// Package bars implements the signal bar renderer behind audiobar.
//
// A Renderer lays out a row of vertical bars across a surface. Bars whose
// index falls within the current progress fraction are drawn in the progress
// color, the rest in the primary color. Bar heights are jittered between 40%
// and 90% of the surface height:
//
//	StyleNormal  - each index gets one random height, cached for the life of the renderer
//	StyleDynamic - every index is re-randomized on every draw
//
// The renderer knows nothing about terminals. Render returns plain line
// segments, and Draw replays them onto any Canvas. The ui package provides a
// terminal Canvas.
//
// A Renderer is not safe for concurrent use. It is meant to be owned by a
// single event loop, such as a Bubble Tea program.
package bars
