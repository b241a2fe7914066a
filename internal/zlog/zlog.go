// Package zlog holds the codec's single package-level logger.
//
// Encoding and decoding are pure functions with no suspension points, so
// the codec must never log by default. Callers who want visibility into
// cache growth or suspicious-but-recoverable input call SetLogger once at
// startup; after that every package that imports zlog picks it up.
package zlog

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger installs l as the package-wide logger. Call once at startup;
// concurrent calls are not synchronized.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// L returns the current logger.
func L() *zerolog.Logger {
	return &logger
}
