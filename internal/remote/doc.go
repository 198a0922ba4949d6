// Package remote provides an HTTP implementation of the domain.SchoolService
// interface backed by the NYC Open Data (Socrata) API.
//
// Supported operations:
//   - Fetching the directory of NYC high schools (s3k6-pzi2.json).
//   - Fetching the average SAT results per school (f9bf-2cp4.json).
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Transport failures are returned unchanged so the domain layer can
// classify them; non-2xx statuses are returned as *StatusError.
package remote
