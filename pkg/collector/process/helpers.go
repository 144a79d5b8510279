package process

import (
	"bytes"
	"os"
	"os/user"
	"strings"
	"unicode/utf8"
)

// procReadFile allows tests to stub reading /proc/PID records.
var procReadFile = os.ReadFile

// lookupUsername allows tests to stub the user database.
var lookupUsername = func(uid string) (string, error) {
	u, err := user.LookupId(uid)
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// truncate cuts s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func firstLine(data []byte) string {
	line, _, _ := bytes.Cut(data, []byte{'\n'})
	return string(bytes.TrimRight(line, "\r"))
}

func firstField(s string) (string, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}

// leadingPID parses the run of decimal digits at the start of name, like atoi.
func leadingPID(name string) (int, bool) {
	pid := 0
	digits := 0
	for ; digits < len(name); digits++ {
		c := name[digits]
		if c < '0' || c > '9' {
			break
		}
		if pid > (maxPID-int(c-'0'))/10 {
			return 0, false
		}
		pid = pid*10 + int(c-'0')
	}
	if digits == 0 || pid <= 0 {
		return 0, false
	}
	return pid, true
}

const maxPID = 1<<31 - 1
