// Package apperr defines the typed failure categories used across the
// service. Each kind maps to an HTTP status code and a short
// machine-readable code string, and carries an operational flag that
// distinguishes expected failures from bug-class ones. The web error
// handler dispatches on the kind to build client responses; no other
// component formats a response itself.
package apperr
