// Package app wires application dependencies for the CLI.
//
// It reads Config from the environment (and an optional .env file), then
// builds the concrete stores, the API client and the state containers,
// exposing them via the Wire struct for commands to use.
package app
