package process

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"short", "bash", 10, "bash"},
		{"exact", "bash", 4, "bash"},
		{"cut", "systemd-journald", 7, "systemd"},
		{"runeBoundary", "héllo", 2, "h"},
		{"zero", "abc", 0, ""},
	}
	for _, tc := range cases {
		if got := truncate(tc.input, tc.max); got != tc.expected {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.expected, got)
		}
	}
}

func TestLeadingPID(t *testing.T) {
	cases := []struct {
		input string
		pid   int
		ok    bool
	}{
		{"1", 1, true},
		{"4321", 4321, true},
		{"12abc", 12, true},
		{"007", 7, true},
		{"0", 0, false},
		{"self", 0, false},
		{"", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, tc := range cases {
		pid, ok := leadingPID(tc.input)
		if pid != tc.pid || ok != tc.ok {
			t.Fatalf("leadingPID(%q): expected (%d, %v), got (%d, %v)", tc.input, tc.pid, tc.ok, pid, ok)
		}
	}
}

func TestFirstLine(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"bash\n", "bash"},
		{"nginx\r\nextra\n", "nginx"},
		{"no-newline", "no-newline"},
		{"\n", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := firstLine([]byte(tc.input)); got != tc.expected {
			t.Fatalf("firstLine(%q): expected %q, got %q", tc.input, tc.expected, got)
		}
	}
}
