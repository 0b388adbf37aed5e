package collect

import (
	"math"
	"os"
	"strconv"
	"strings"
)

// readSysfsString returns the trimmed contents of a sysfs file.
func readSysfsString(path string) (string, bool) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(b)), true
}

func readSysfsInt(path string) (int64, bool) {
	s, ok := readSysfsString(path)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// charsToString converts a NUL-terminated C char buffer to a Go string.
func charsToString[T ~int8 | ~uint8](ca []T) string {
	buf := make([]byte, 0, len(ca))
	for _, c := range ca {
		if c == 0 {
			break
		}
		buf = append(buf, byte(c))
	}
	return string(buf)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
