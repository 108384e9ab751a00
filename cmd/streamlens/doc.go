// Package main hosts the streamlens CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration, builds the
// structured logger, and hands off to the pipeline runner. Keep this
// package lean: add new functionality by extending the internal packages
// first, then surface it through dedicated commands or flags here.
package main
