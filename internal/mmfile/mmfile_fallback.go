//go:build !unix && !windows

// Package mmfile maps anonymous memory outside the Go heap.
package mmfile

import "fmt"

// Anon falls back to a heap slice when the platform has no mapping API.
func Anon(size int) ([]byte, func() error, error) {
	if size < 0 {
		return nil, nil, fmt.Errorf("mmfile: negative mapping size %d", size)
	}
	return make([]byte, size), func() error { return nil }, nil
}
