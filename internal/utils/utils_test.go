package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestHumanizeDuration(t *testing.T) {
	tests := map[time.Duration]string{
		0:                      "0s",
		-5 * time.Second:       "0s",
		30 * time.Second:       "30s",
		59 * time.Second:       "59s",
		60 * time.Second:       "1m",
		59 * time.Minute:       "59m",
		time.Hour:              "1h",
		23 * time.Hour:         "23h",
		24 * time.Hour:         "1d",
		6 * 24 * time.Hour:     "6d",
		7 * 24 * time.Hour:     "1w",
		2 * 7 * 24 * time.Hour: "2w",
	}
	for input, want := range tests {
		if got := HumanizeDuration(input); got != want {
			t.Errorf("HumanizeDuration(%v) = %q; want %q", input, got, want)
		}
	}
}

func TestExpandHome(t *testing.T) {
	origHome := os.Getenv("HOME")
	t.Cleanup(func() { os.Setenv("HOME", origHome) })
	fakeHome := filepath.Join(string(os.PathSeparator), "home", "user")
	os.Setenv("HOME", fakeHome)

	cases := []struct {
		input string
		want  string
	}{
		{"~", fakeHome},
		{"~/dir", filepath.Join(fakeHome, "dir")},
		{"~dir", filepath.Join(fakeHome, "dir")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"~/", fakeHome},
	}
	for _, c := range cases {
		if got := ExpandHome(c.input); got != c.want {
			t.Errorf("ExpandHome(%q) = %q; want %q", c.input, got, c.want)
		}
	}
}
