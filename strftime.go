package logsmith

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// renderTime formats t according to an strftime-style layout. The
// fractional-seconds directives %1f..%6f expand to that many
// zero-padded digits of the microsecond component; bare %f means %6f.
// Unknown directives are emitted literally.
func renderTime(t time.Time, layout string) string {
	var b strings.Builder
	b.Grow(len(layout) + 16)

	i := 0
	for i < len(layout) {
		c := layout[i]
		if c != '%' || i == len(layout)-1 {
			b.WriteByte(c)
			i++
			continue
		}

		d := layout[i+1]
		switch {
		case d >= '1' && d <= '6' && i+2 < len(layout) && layout[i+2] == 'f':
			digits := int(d - '0')
			micros := fmt.Sprintf("%06d", t.Nanosecond()/1000)
			b.WriteString(micros[:digits])
			i += 3
			continue
		case d == 'f':
			fmt.Fprintf(&b, "%06d", t.Nanosecond()/1000)
		case d == 'Y':
			fmt.Fprintf(&b, "%04d", t.Year())
		case d == 'y':
			fmt.Fprintf(&b, "%02d", t.Year()%100)
		case d == 'm':
			fmt.Fprintf(&b, "%02d", int(t.Month()))
		case d == 'd':
			fmt.Fprintf(&b, "%02d", t.Day())
		case d == 'H':
			fmt.Fprintf(&b, "%02d", t.Hour())
		case d == 'I':
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			fmt.Fprintf(&b, "%02d", h)
		case d == 'M':
			fmt.Fprintf(&b, "%02d", t.Minute())
		case d == 'S':
			fmt.Fprintf(&b, "%02d", t.Second())
		case d == 'p':
			if t.Hour() < 12 {
				b.WriteString("AM")
			} else {
				b.WriteString("PM")
			}
		case d == 'a':
			b.WriteString(t.Format("Mon"))
		case d == 'A':
			b.WriteString(t.Format("Monday"))
		case d == 'b':
			b.WriteString(t.Format("Jan"))
		case d == 'B':
			b.WriteString(t.Format("January"))
		case d == 'j':
			fmt.Fprintf(&b, "%03d", t.YearDay())
		case d == 'z':
			b.WriteString(t.Format("-0700"))
		case d == 'Z':
			b.WriteString(t.Format("MST"))
		case d == '%':
			b.WriteByte('%')
		default:
			// unknown directive, keep it literal
			b.WriteByte('%')
			b.WriteByte(d)
		}
		i += 2
	}
	return b.String()
}

// validateDatefmt enforces the fractional-seconds grammar: %1f..%6f
// (and bare %f) are legal, %0f and %7f..%9f are not.
func validateDatefmt(layout string) error {
	for i := 0; i < len(layout)-1; i++ {
		if layout[i] != '%' {
			continue
		}
		d := layout[i+1]
		if d == '%' {
			i++ // skip escaped percent
			continue
		}
		if (d == '0' || (d >= '7' && d <= '9')) && i+2 < len(layout) && layout[i+2] == 'f' {
			return newConfigError("datefmt",
				"invalid fractional seconds directive %%%sf; only %%1f through %%6f are supported",
				strconv.Itoa(int(d-'0')))
		}
	}
	return nil
}
