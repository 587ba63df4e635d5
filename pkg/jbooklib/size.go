package jbooklib

import "fmt"

// Size unit constants for byte conversions.
const (
	B  int64 = 1
	KB       = 1024 * B
	MB       = 1024 * KB
)

// ContentSize is a downloaded byte count, formatted for result lines.
type ContentSize int64

func (c ContentSize) String() string {
	return fmt.Sprintf("%.1f KB", float64(c)/float64(KB))
}
