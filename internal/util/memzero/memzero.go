// Package memzero wipes secret byte buffers on a best-effort basis.
package memzero

import "runtime"

// Zero overwrites b with zeros.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	clear(b)
	// Keep b reachable until the writes are done so they are not elided.
	runtime.KeepAlive(b)
}

// ZeroAll wipes every buffer in bufs.
func ZeroAll(bufs ...[]byte) {
	for _, b := range bufs {
		Zero(b)
	}
}
