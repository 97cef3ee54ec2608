package hms

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"testing/quick"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{0, "00:00:00"},
		{1, "00:00:01"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{61, "00:01:01"},
		{3599, "00:59:59"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{86400, "24:00:00"},
		{360000, "100:00:00"},
	}
	for _, tt := range tests {
		got := Format(tt.secs)
		if got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

var clockPattern = regexp.MustCompile(`^\d{2,}:\d{2}:\d{2}$`)

func TestFormatShape(t *testing.T) {
	prop := func(n uint32) bool {
		got := Format(int64(n))
		if !clockPattern.MatchString(got) {
			return false
		}
		parts := strings.Split(got, ":")
		mins, _ := strconv.Atoi(parts[1])
		secs, _ := strconv.Atoi(parts[2])
		return mins >= 0 && mins <= 59 && secs >= 0 && secs <= 59
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatal(err)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	prop := func(n uint32) bool {
		parts := strings.Split(Format(int64(n)), ":")
		h, _ := strconv.ParseInt(parts[0], 10, 64)
		m, _ := strconv.ParseInt(parts[1], 10, 64)
		s, _ := strconv.ParseInt(parts[2], 10, 64)
		return h*3600+m*60+s == int64(n)
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Fatal(err)
	}
}

func TestFormatNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Format(-1) should panic")
		}
	}()
	Format(-1)
}
