// Package pipeline implements the linear build pipeline: provision the
// packaging tool, clean stale workspace output, and invoke the packager.
//
// Stages implement the Handler contract and run strictly in order; any
// failure halts the pipeline immediately. The whole run is single-threaded
// and holds an exclusive workspace lock, so each stage fully owns build/ and
// dist/ during its turn.
package pipeline
