// Package http implements the HTTP transport layer of the storybook API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, per-IP rate limiting,
// CORS, request tracing, access logging and response compression are
// handled in this package before requests are delegated to the service
// layer. Errors coming back from the services are mapped to a status code
// and a {"message": ...} body in one place, [statusFromError].
package http
