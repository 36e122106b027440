// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Repository ports are implemented by the store adapter and called by the
// application layer. The principal port is implemented by the principal
// adapters and called by the HTTP middleware.
package ports
