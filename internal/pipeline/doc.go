// Package pipeline sequences the analysis run: load, explore, clean,
// analyze, visualize. There is no branching and no retry; a load failure
// aborts the run before any later stage executes, and any later error
// propagates and terminates the run.
//
// Each stage logs start and completion with the run's correlation ID so a
// run can be followed through structured logs.
package pipeline
