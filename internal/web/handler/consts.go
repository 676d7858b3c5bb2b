// Package handler holds the pieces shared by the web handler packages.
package handler

const (
	// RootPath is the root path of the route group.
	RootPath = "/"

	// ErrNilDepsFatalLogMsg is used if a handler Init receives a nil dependency.
	ErrNilDepsFatalLogMsg = "handler dependency is nil"
)
