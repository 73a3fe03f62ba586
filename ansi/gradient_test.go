package ansi

import (
	"strings"
	"testing"
)

func TestGradient(t *testing.T) {
	t.Run("text content survives colorization", func(t *testing.T) {
		got := Gradient("hello world", GradientOptions{FGCodes: Rainbow})
		if Strip(got) != "hello world" {
			t.Errorf("expected stripped gradient to equal input, got %q", Strip(got))
		}
	})

	t.Run("first and last stops land on the edges", func(t *testing.T) {
		got := Gradient("abcdef", GradientOptions{FGCodes: []int{196, 21}})
		if !strings.HasPrefix(got, "\x1b[38;5;196m") {
			t.Errorf("expected first stop at start, got %q", got)
		}
		if !strings.Contains(got, "\x1b[38;5;21mf") {
			t.Errorf("expected last stop on final rune, got %q", got)
		}
	})

	t.Run("horizontal reverse flips the stops", func(t *testing.T) {
		got := Gradient("ab", GradientOptions{
			FGCodes:   []int{196, 21},
			Direction: HorizontalReverse,
		})
		if !strings.HasPrefix(got, "\x1b[38;5;21m") {
			t.Errorf("expected reversed first stop, got %q", got)
		}
	})

	t.Run("vertical assigns one color per line", func(t *testing.T) {
		got := Gradient("a\nb", GradientOptions{
			FGCodes:   []int{196, 21},
			Direction: Vertical,
		})
		lines := strings.Split(got, "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		if !strings.HasPrefix(lines[0], "\x1b[38;5;196m") {
			t.Errorf("expected first stop on first line, got %q", lines[0])
		}
		if !strings.HasPrefix(lines[1], "\x1b[38;5;21m") {
			t.Errorf("expected last stop on last line, got %q", lines[1])
		}
	})

	t.Run("auto picks vertical for multi-line", func(t *testing.T) {
		multi := Gradient("a\nb", GradientOptions{FGCodes: []int{196, 21}, Direction: Auto})
		explicit := Gradient("a\nb", GradientOptions{FGCodes: []int{196, 21}, Direction: Vertical})
		if multi != explicit {
			t.Errorf("auto direction mismatch: %q vs %q", multi, explicit)
		}
	})

	t.Run("background ramp rides along", func(t *testing.T) {
		got := Gradient("ab", GradientOptions{
			FGCodes: []int{196, 21},
			BGCodes: []int{16, 255},
		})
		if !strings.Contains(got, "48;5;16m") || !strings.Contains(got, "48;5;255m") {
			t.Errorf("expected background stops in output, got %q", got)
		}
	})

	t.Run("no stops passes through", func(t *testing.T) {
		if got := Gradient("text", GradientOptions{}); got != "text" {
			t.Errorf("expected unchanged text, got %q", got)
		}
	})

	t.Run("empty text passes through", func(t *testing.T) {
		if got := Gradient("", GradientOptions{FGCodes: Rainbow}); got != "" {
			t.Errorf("expected empty output, got %q", got)
		}
	})

	t.Run("single rune takes the first stop", func(t *testing.T) {
		got := Gradient("x", GradientOptions{FGCodes: []int{196, 21}})
		want := "\x1b[38;5;196mx\x1b[0m"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}

func TestBlendPalettes(t *testing.T) {
	t.Run("midpoint interpolation", func(t *testing.T) {
		got := BlendPalettes([]int{0, 100}, []int{100, 200}, 2)
		if len(got) != 2 || got[0] != 50 || got[1] != 150 {
			t.Errorf("expected [50 150], got %v", got)
		}
	})

	t.Run("zero steps uses the longer palette", func(t *testing.T) {
		got := BlendPalettes(Fire, Ice, 0)
		want := max(len(Fire), len(Ice))
		if len(got) != want {
			t.Errorf("expected %d stops, got %d", want, len(got))
		}
	})
}
