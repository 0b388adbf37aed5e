package collect

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestFamilyName(t *testing.T) {
	tests := []struct {
		family uint32
		want   string
	}{
		{unix.AF_INET, "AF_INET"},
		{unix.AF_INET6, "AF_INET6"},
		{99, "family(99)"},
	}
	for _, tt := range tests {
		if got := familyName(tt.family); got != tt.want {
			t.Errorf("familyName(%d) = %q, want %q", tt.family, got, tt.want)
		}
	}
}

func TestSocketTypeName(t *testing.T) {
	tests := []struct {
		sockType uint32
		want     string
	}{
		{unix.SOCK_STREAM, "SOCK_STREAM"},
		{unix.SOCK_DGRAM, "SOCK_DGRAM"},
		{7, "type(7)"},
	}
	for _, tt := range tests {
		if got := socketTypeName(tt.sockType); got != tt.want {
			t.Errorf("socketTypeName(%d) = %q, want %q", tt.sockType, got, tt.want)
		}
	}
}
