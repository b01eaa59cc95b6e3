package report

import "strings"

// Capture is a Display that records plain text and ignores colors, for
// inspecting report output in tests.
type Capture struct {
	sb strings.Builder
}

func (c *Capture) SetColor(foreground, background Color) {}

func (c *Capture) WriteString(text string) {
	c.sb.WriteString(text)
}

func (c *Capture) WriteByte(b byte) {
	c.sb.WriteByte(b)
}

func (c *Capture) String() string {
	return c.sb.String()
}
