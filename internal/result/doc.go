// Package result provides Result, a two-variant container holding either a
// success value or a typed error.
//
// Domain operations return a Result instead of (value, error) so that callers
// thread failures explicitly and compose steps with Then, Map and Fold rather
// than checking errors at every line.
package result
