// Package race holds the race model: eight actors on an eight-lane track,
// advanced one frame at a time by the host and drawn onto a host-provided Surface.
//
// All state lives in a State value; there are no package-level singletons.
// A State is driven from one goroutine, the same one that owns the Surface.
package race
