package report

// Color is one of the sixteen fixed text-mode palette colors.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

// Display receives report output at the current cursor position, honoring
// the most recently selected color pair.
type Display interface {
	SetColor(foreground, background Color)
	WriteString(text string)
	WriteByte(b byte)
}
