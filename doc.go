// Package main provides the entry point for the Coach Backend service.
// It runs a web server using the Fiber framework that exchanges Google
// sign-in assertions for locally issued session credentials and serves
// the authenticated API on top of a gorm-backed user directory.
package main
