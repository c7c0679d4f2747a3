package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// glyphHeight is the number of rows of every clock glyph.
const glyphHeight = 5

// minBigClockWidth is the narrowest terminal that gets the large clock.
const minBigClockWidth = 40

var glyphs = map[rune][glyphHeight]string{
	'0': {"████", "█  █", "█  █", "█  █", "████"},
	'1': {" █ ", "██ ", " █ ", " █ ", "███"},
	'2': {"████", "   █", "████", "█   ", "████"},
	'3': {"████", "   █", "████", "   █", "████"},
	'4': {"█  █", "█  █", "████", "   █", "   █"},
	'5': {"████", "█   ", "████", "   █", "████"},
	'6': {"████", "█   ", "████", "█  █", "████"},
	'7': {"████", "   █", "  █ ", " █  ", " █  "},
	'8': {"████", "█  █", "████", "█  █", "████"},
	'9': {"████", "█  █", "████", "   █", "████"},
	':': {" ", "█", " ", "█", " "},
}

// bigClock draws an MM:SS clock in block glyphs. Terminals narrower than
// minBigClockWidth, including an unknown width of 0, get the plain text.
func bigClock(clock string, style lipgloss.Style, width int) string {
	if width < minBigClockWidth {
		return style.Render(clock)
	}

	var rows [glyphHeight][]string
	for _, ch := range clock {
		glyph, ok := glyphs[ch]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i] = append(rows[i], glyph[i])
		}
	}

	out := make([]string, glyphHeight)
	for i, row := range rows {
		out[i] = "  " + style.Render(strings.Join(row, " "))
	}
	return strings.Join(out, "\n")
}
