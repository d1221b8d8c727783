// Package log provides structured capture of protocol traffic events.
//
// This package defines the Logger interface and Event types for
// recording what the byte-level boundary saw: classified packets,
// rejected packets, and named-lock lifecycle transitions. It is
// separate from operational logging (slog) - capture provides a
// machine-readable event trace for debugging a live device network.
//
// Classification itself (wire.Identify) stays pure; the listener that
// called it decides whether to record the outcome here.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For production: write to a binary capture file
//	logger, _ := log.NewFileLogger("/var/log/djlink/capture.dlog")
//
//	// Both: use MultiLogger
//	logger := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Capture files are a stream of CBOR-encoded events with integer keys,
// conventionally with a .dlog extension. Reader streams them back,
// optionally filtered.
package log
