// Command mockapi serves a local stand-in for the NYC Open Data school
// resources, for development and demos of the nycschools CLI.
//
// Point the CLI at it with --base-url http://127.0.0.1:8080/resource/.
package main
