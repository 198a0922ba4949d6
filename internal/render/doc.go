// Package render writes UI states to a terminal or a pipe.
//
// Text is meant for people, JSON and YAML for scripts. Every sink switches
// exhaustively over the four UIState variants and rejects anything else.
package render
