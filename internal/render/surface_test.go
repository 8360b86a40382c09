package render

import "testing"

func TestProfileURLEscapesName(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"alice", "https://lichess.org/@/alice"},
		{"player one", "https://lichess.org/@/player%20one"},
		{"a/b", "https://lichess.org/@/a%2Fb"},
	}

	for _, c := range cases {
		if got := ProfileURL(c.name); got != c.expected {
			t.Fatalf("ProfileURL(%q): expected %q, got %q", c.name, c.expected, got)
		}
	}
}

func TestRoundRating(t *testing.T) {
	cases := []struct {
		rating   float64
		expected int
	}{
		{1900.4, 1900},
		{1900.5, 1901},
		{2105.0, 2105},
		{1899.99, 1900},
	}

	for _, c := range cases {
		if got := RoundRating(c.rating); got != c.expected {
			t.Fatalf("RoundRating(%v): expected %d, got %d", c.rating, c.expected, got)
		}
	}
}

func TestCleanNameStripsControlRunes(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"alice", "alice"},
		{"bad\x1b[31mname", "bad[31mname"},
		{"tab\tname", "tabname"},
		{"line\nbreak", "linebreak"},
		{"  padded  ", "padded"},
		{"\x00\x07", ""},
	}

	for _, c := range cases {
		if got := CleanName(c.name); got != c.expected {
			t.Fatalf("CleanName(%q): expected %q, got %q", c.name, c.expected, got)
		}
	}
}

func TestCleanNameDropsInvalidUTF8(t *testing.T) {
	if got := CleanName("ok\xffname"); got != "okname" {
		t.Fatalf("expected invalid bytes dropped, got %q", got)
	}
}
