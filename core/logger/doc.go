// Package logger provides slog attribute helpers for the request pipeline.
// Helpers follow the empty-Attr pattern: absent values produce an Attr the
// built-in handlers ignore, so call sites stay free of nil checks.
package logger
