//go:build !unix

package source

import (
	"fmt"
	"os"
)

// mmapFile falls back to reading the whole file into memory on
// platforms without mmap, keeping the same signature as the unix
// build so the file source doesn't need a build tag of its own.
func mmapFile(f *os.File) ([]byte, func() error, error) {
	data, err := os.ReadFile(f.Name())
	if err != nil {
		return nil, nil, fmt.Errorf("source: read: %w", err)
	}
	return data, func() error { return nil }, nil
}
