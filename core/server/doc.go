// Package server wraps http.Server with graceful shutdown, env-backed
// configuration, and structured lifecycle logging.
package server
