// Package school defines the business domain of listing schools and looking up
// their average SAT scores.
//
// It is a translation layer between the raw remote capability and typed
// results: no caching, no retries, no sorting.
package school
