package pullrequest

import (
	"testing"
)

func TestParseIssueURL(t *testing.T) {
	cases := []struct {
		input  string
		owner  string
		repo   string
		number int
		ok     bool
	}{
		{"https://api.github.com/repos/foo/bar/issues/42", "foo", "bar", 42, true},
		{"https://api.x.test/repos/foo/bar/issues/42", "foo", "bar", 42, true},
		{"https://api.github.com/repos/foo/bar/pulls/42", "", "", 0, false},
		{"https://api.github.com/repos/foo/bar/issues/", "", "", 0, false},
		{"https://api.github.com/repos/foo/bar/issues/42/comments", "", "", 0, false},
		{"https://api.github.com/repos/foo/issues/42", "", "", 0, false},
		{"", "", "", 0, false},
		{"not a url", "", "", 0, false},
	}
	for _, c := range cases {
		owner, repo, number, ok := ParseIssueURL(c.input)
		if owner != c.owner || repo != c.repo || number != c.number || ok != c.ok {
			t.Errorf("ParseIssueURL(%q) = (%q, %q, %d, %v); want (%q, %q, %d, %v)",
				c.input, owner, repo, number, ok, c.owner, c.repo, c.number, c.ok)
		}
	}
}

func TestSplitRepo(t *testing.T) {
	cases := []struct {
		input string
		owner string
		name  string
		ok    bool
	}{
		{"acme/core", "acme", "core", true},
		{"  acme/core  ", "acme", "core", true},
		{"acme", "", "", false},
		{"acme/", "", "", false},
		{"/core", "", "", false},
		{"acme/core/extra", "", "", false},
		{"", "", "", false},
	}
	for _, c := range cases {
		owner, name, ok := SplitRepo(c.input)
		if owner != c.owner || name != c.name || ok != c.ok {
			t.Errorf("SplitRepo(%q) = (%q, %q, %v); want (%q, %q, %v)",
				c.input, owner, name, ok, c.owner, c.name, c.ok)
		}
	}
}

func TestNormalizeHandle(t *testing.T) {
	cases := map[string]string{
		"bob":      "bob",
		"@bob":     "bob",
		"  @bob  ": "bob",
		"  bob":    "bob",
		"@":        "",
		"":         "",
	}
	for input, want := range cases {
		if got := NormalizeHandle(input); got != want {
			t.Errorf("NormalizeHandle(%q) = %q; want %q", input, got, want)
		}
	}
}
