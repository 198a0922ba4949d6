// Package mockapi serves a stand-in for the NYC Open Data school resources.
//
// It answers the two JSON resources the remote client fetches from a YAML
// fixture, can force either resource to fail with a 500, can add latency to
// every response and exposes its own request counters on /metrics.
package mockapi
