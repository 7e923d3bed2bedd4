// Package controller holds the HTTP plumbing shared by the API handlers:
// middlewares (WithCORS, WithLogger), profiling handlers
// (PprofMux) and the JSON request/response helpers that map serrors kinds to
// status codes.
package controller
