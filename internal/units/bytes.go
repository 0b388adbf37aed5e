// Package units formats raw byte counts for display.
package units

import "fmt"

var suffixes = [...]string{"", "K", "M", "G", "T", "P", "E"}

// Bytes renders n as the smallest 1024-based magnitude below 1024,
// with two decimals and a unit suffix: 0 -> "0.00B", 1536 -> "1.50KB".
// Values past the exabyte range stay in "E" without further scaling.
func Bytes(n uint64) string {
	v := float64(n)
	for _, unit := range suffixes {
		if v < 1024 {
			return fmt.Sprintf("%.2f%sB", v, unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.2fEB", v)
}
