package ansi

import (
	"fmt"
	"strings"
)

// GradientDirection selects how gradient stops are laid across text.
type GradientDirection int

const (
	// Horizontal runs the gradient left to right within each line.
	Horizontal GradientDirection = iota
	// HorizontalReverse runs right to left.
	HorizontalReverse
	// Vertical runs top to bottom across lines.
	Vertical
	// VerticalReverse runs bottom to top.
	VerticalReverse
	// Auto picks Horizontal for single-line text, Vertical otherwise.
	Auto
)

// GradientOptions configures a Gradient call. FGCodes is required;
// BGCodes optionally paints the background with a parallel ramp.
type GradientOptions struct {
	FGCodes   []int
	BGCodes   []int
	Direction GradientDirection
	Intensity Code
	Styles    []Code
}

// stretch resamples stops to target length by proportional index
// lookup, rounding the source index down.
func stretch(stops []int, target int) []int {
	if len(stops) == target || len(stops) == 0 {
		return stops
	}
	if len(stops) == 1 || target == 1 {
		out := make([]int, target)
		for i := range out {
			out[i] = stops[0]
		}
		return out
	}
	out := make([]int, target)
	for i := range out {
		idx := i * (len(stops) - 1) / (target - 1)
		out[i] = stops[idx]
	}
	return out
}

// reversed returns a reversed copy of stops.
func reversed(stops []int) []int {
	out := make([]int, len(stops))
	for i, v := range stops {
		out[len(stops)-1-i] = v
	}
	return out
}

// Gradient applies a 256-color gradient across text. Single-line text
// interpolates per character; multi-line text in a vertical direction
// interpolates per line. Text without foreground stops passes through
// unchanged.
func Gradient(text string, opts GradientOptions) string {
	if text == "" || len(opts.FGCodes) == 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	dir := opts.Direction
	if dir == Auto {
		if len(lines) > 1 {
			dir = Vertical
		} else {
			dir = Horizontal
		}
	}

	fg := opts.FGCodes
	bg := opts.BGCodes
	if len(bg) > 0 {
		n := max(len(fg), len(bg))
		fg = stretch(fg, n)
		bg = stretch(bg, n)
	}

	switch dir {
	case Horizontal, HorizontalReverse:
		if dir == HorizontalReverse {
			fg = reversed(fg)
			bg = reversed(bg)
		}
		out := make([]string, len(lines))
		for li, line := range lines {
			out[li] = gradientLine(line, fg, bg, opts)
		}
		return strings.Join(out, "\n")

	case Vertical, VerticalReverse:
		if dir == VerticalReverse {
			fg = reversed(fg)
		}
		out := make([]string, len(lines))
		for i, line := range lines {
			idx := 0
			if len(lines) > 1 {
				idx = i * (len(fg) - 1) / (len(lines) - 1)
			}
			codes := []Code{opts.Intensity, fgCode(fg[idx])}
			codes = append(codes, opts.Styles...)
			out[i] = Colorize(line, codes...)
		}
		return strings.Join(out, "\n")
	}
	return text
}

// gradientLine colorizes one line character by character.
func gradientLine(line string, fg, bg []int, opts GradientOptions) string {
	runes := []rune(line)
	n := len(runes)
	if n == 0 {
		return ""
	}
	var b strings.Builder
	for i, r := range runes {
		idx := 0
		if n > 1 {
			idx = i * (len(fg) - 1) / (n - 1)
		}
		codes := []Code{opts.Intensity, fgCode(fg[idx])}
		if len(bg) > 0 {
			codes = append(codes, bgCode(bg[idx]))
		}
		codes = append(codes, opts.Styles...)
		b.WriteString(Colorize(string(r), codes...))
	}
	return b.String()
}

func fgCode(n int) Code { return Code(fmt.Sprintf("38;5;%d", n)) }
func bgCode(n int) Code { return Code(fmt.Sprintf("48;5;%d", n)) }

// BlendPalettes stretches both palettes to steps entries and averages
// them entry by entry in index space, so entry i lies halfway between
// p1's and p2's i-th stop. When steps is zero the longer palette's
// length is used.
func BlendPalettes(p1, p2 []int, steps int) []int {
	if steps <= 0 {
		steps = max(len(p1), len(p2))
	}
	a := stretch(p1, steps)
	b := stretch(p2, steps)
	out := make([]int, steps)
	for i := range out {
		out[i] = (a[i] + b[i]) / 2
	}
	return out
}
