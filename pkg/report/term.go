package report

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ANSI attributes for each palette color. Brown maps to dark yellow,
// which is what the text-mode palette actually displays.
var fgAttrs = [16]color.Attribute{
	Black:      color.FgBlack,
	Blue:       color.FgBlue,
	Green:      color.FgGreen,
	Cyan:       color.FgCyan,
	Red:        color.FgRed,
	Magenta:    color.FgMagenta,
	Brown:      color.FgYellow,
	LightGray:  color.FgWhite,
	DarkGray:   color.FgHiBlack,
	LightBlue:  color.FgHiBlue,
	LightGreen: color.FgHiGreen,
	LightCyan:  color.FgHiCyan,
	LightRed:   color.FgHiRed,
	Pink:       color.FgHiMagenta,
	Yellow:     color.FgHiYellow,
	White:      color.FgHiWhite,
}

var bgAttrs = [16]color.Attribute{
	Black:      color.BgBlack,
	Blue:       color.BgBlue,
	Green:      color.BgGreen,
	Cyan:       color.BgCyan,
	Red:        color.BgRed,
	Magenta:    color.BgMagenta,
	Brown:      color.BgYellow,
	LightGray:  color.BgWhite,
	DarkGray:   color.BgHiBlack,
	LightBlue:  color.BgHiBlue,
	LightGreen: color.BgHiGreen,
	LightCyan:  color.BgHiCyan,
	LightRed:   color.BgHiRed,
	Pink:       color.BgHiMagenta,
	Yellow:     color.BgHiYellow,
	White:      color.BgHiWhite,
}

// Term is a Display that renders to an io.Writer with ANSI colors.
type Term struct {
	w   io.Writer
	cur *color.Color
}

// NewTerm returns a Term writing to w, starting light gray on black.
func NewTerm(w io.Writer) *Term {
	t := &Term{w: w}
	t.SetColor(LightGray, Black)
	return t
}

func (t *Term) SetColor(foreground, background Color) {
	t.cur = color.New(fgAttrs[foreground&0x0F], bgAttrs[background&0x0F])
}

func (t *Term) WriteString(text string) {
	t.cur.Fprint(t.w, text)
}

func (t *Term) WriteByte(b byte) {
	// Keep the byte verbatim; string(rune(b)) would re-encode values
	// above 0x7F.
	t.cur.Fprint(t.w, string([]byte{b}))
}

// SetColorMode applies the configured color mode: "always", "never", or
// anything else for auto (color only when stdout is a terminal).
func SetColorMode(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	}
}
