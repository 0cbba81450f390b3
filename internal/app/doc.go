// Package app wires application dependencies for the CLI.
//
// It builds the file store, hull computer, renderer and pipeline service
// from Config, exposing them via the Wire struct for commands to use.
package app
