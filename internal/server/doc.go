// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown, after which the handlers' background resources are released.
package server
