// Package app wires application dependencies for the CLI.
//
// LoadConfig reads NYCSCHOOLS_* settings from the environment (after an
// optional .env file). NewWire builds the remote client, domain service,
// selection store, coordinator, metrics recorder and output sink from Config,
// exposing them via the Wire struct for commands to use.
package app
