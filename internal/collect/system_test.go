package collect

import "testing"

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		secs uint64
		want string
	}{
		{0, "0:00:00"},
		{59, "0:00:59"},
		{3661, "1:01:01"},
		{86399, "23:59:59"},
		{86400, "1 day, 0:00:00"},
		{90061, "1 day, 1:01:01"},
		{2*86400 + 3600 + 5, "2 days, 1:00:05"},
	}

	for _, tt := range tests {
		if got := formatUptime(tt.secs); got != tt.want {
			t.Errorf("formatUptime(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestCharsToString(t *testing.T) {
	buf := [8]byte{'e', 't', 'h', '0', 0, 'x', 'x', 'x'}
	if got := charsToString(buf[:]); got != "eth0" {
		t.Errorf("charsToString = %q, want eth0", got)
	}
}
