// Package commands defines the nycschools CLI and wires dependencies for subcommands.
//
// Commands
//
//   - list      Show the schools, or the scores of the remembered school
//   - show      Show the schools without resuming a selection
//   - select    Select a school by id and show its average SAT scores
//   - browse    Interactive loop reading list/show/select/quit from stdin
//
// # Implementation
//
// The root command loads configuration (environment, .env, then flags) and
// builds the dependency graph (remote client, selection store, coordinator,
// output sink) before any subcommand runs. Rendered states go to stdout and
// logs to stderr.
package commands
