// Package commands defines the mural CLI and wires dependencies for subcommands.
//
// Commands
//
//   - feed     Load the feed from the API and print it (--offline: last snapshot)
//   - post     Publish a new post
//   - like     Toggle your like on a post
//   - theme    Print or change the display theme
//
// # Implementation
//
// The root command reads the configuration, builds the dependency graph
// (preference store, feed snapshot, API client, state containers) before any
// subcommand runs, and closes it afterwards. A CLI process does not outlive a
// single command, so feed-changing commands seed the feed container from the
// on-disk snapshot first and write it back when they are done.
package commands
