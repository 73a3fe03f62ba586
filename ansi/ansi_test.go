package ansi

import (
	"strings"
	"testing"
)

func TestColorize(t *testing.T) {
	t.Run("single foreground code", func(t *testing.T) {
		got := Colorize("hello", FG.Red)
		want := "\x1b[31mhello\x1b[0m"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("256-color foreground", func(t *testing.T) {
		got := Colorize("x", FG.Orange)
		want := "\x1b[38;5;208mx\x1b[0m"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("joins multiple codes", func(t *testing.T) {
		got := Colorize("x", Bold, FG.Red, BG.Yellow, Underline)
		want := "\x1b[1;31;43;4mx\x1b[0m"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("skips empty codes", func(t *testing.T) {
		got := Colorize("x", "", FG.Green, "")
		want := "\x1b[32mx\x1b[0m"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("no codes leaves text unchanged", func(t *testing.T) {
		if got := Colorize("plain"); got != "plain" {
			t.Errorf("expected unchanged text, got %q", got)
		}
		if got := Colorize("plain", "", ""); got != "plain" {
			t.Errorf("expected unchanged text with empty codes, got %q", got)
		}
	})
}

func TestStrip(t *testing.T) {
	t.Run("removes colorized sequences", func(t *testing.T) {
		colored := Colorize("hello", Bold, FG.NeonRed, BG.Black)
		got := Strip(colored)
		if got != "hello" {
			t.Errorf("expected %q, got %q", "hello", got)
		}
		if strings.ContainsRune(got, '\x1b') {
			t.Error("stripped output still contains ESC bytes")
		}
	})

	t.Run("plain text passes through", func(t *testing.T) {
		if got := Strip("just text"); got != "just text" {
			t.Errorf("expected unchanged text, got %q", got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{
			"plain",
			Colorize("a", FG.Red) + " mid " + Colorize("b", BG.Blue, Underline),
			Gradient("gradient", GradientOptions{FGCodes: Rainbow}),
		}
		for _, in := range inputs {
			once := Strip(in)
			twice := Strip(once)
			if once != twice {
				t.Errorf("strip not idempotent for %q: %q != %q", in, once, twice)
			}
		}
	})
}

func TestEscapeColorCodes(t *testing.T) {
	got := EscapeColorCodes("\x1b[31mred\x1b[0m")
	want := `\x1b[31mred\x1b[0m`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEscapeControl(t *testing.T) {
	got := EscapeControl("a\x1b[2Jb\x07c")
	want := `a\x1b[2Jb\x07c`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if got := EscapeControl("no controls"); got != "no controls" {
		t.Errorf("expected unchanged text, got %q", got)
	}
}
