// Package commands defines the convexhull CLI and wires dependencies for subcommands.
//
// Commands
//
//   - hull         Compute the convex hull, save it and plot it
//   - scatter      Plot the dataset points alone
//   - fingerprint  Print the hull fingerprint without writing anything
//
// # Implementation
//
// The root command installs the logger, optionally starts CPU profiling and
// builds the dependency graph (file store, hull computer, renderer, pipeline)
// before any subcommand runs. Every path is an explicit flag; relative paths
// resolve against --dir.
package commands
