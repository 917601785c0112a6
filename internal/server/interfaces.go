package server

type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns an error when the listener fails.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
