// Package util holds logging helpers, per-OS filesystem paths, numeric
// rounding, and passphrase key derivation shared across the app.
package util

import "log"

// LogError reports a non-fatal error with the operation that hit it.
// Nil errors are ignored so callers can log unconditionally.
func LogError(op string, err error) {
	if err != nil {
		log.Printf("%s: %v", op, err)
	}
}

// MustSucceed exits the process when startup work fails. Only the
// entrypoint should call this.
func MustSucceed(op string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", op, err)
	}
}
