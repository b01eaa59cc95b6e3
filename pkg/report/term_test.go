package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestTermPlainOutput(t *testing.T) {
	// With colors disabled the Term display degrades to plain text.
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	var buf bytes.Buffer
	d := NewTerm(&buf)

	d.SetColor(Yellow, Black)
	d.WriteString("Uptime: ")
	d.SetColor(White, Black)
	d.WriteByte('5')
	d.WriteString("m")

	if got := buf.String(); got != "Uptime: 5m" {
		t.Fatalf("plain output = %q, want %q", got, "Uptime: 5m")
	}
}

func TestTermColoredOutput(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	var buf bytes.Buffer
	d := NewTerm(&buf)

	d.SetColor(LightCyan, Black)
	d.WriteString("xx")

	out := buf.String()
	if !strings.Contains(out, "xx") {
		t.Fatalf("output %q lost the text", out)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("output %q carries no escape sequences", out)
	}
}

func TestTermWriteByteVerbatim(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	var buf bytes.Buffer
	d := NewTerm(&buf)

	// A byte above 0x7F must not be re-encoded as a rune.
	d.WriteByte(0xC3)

	if got := buf.Bytes(); len(got) != 1 || got[0] != 0xC3 {
		t.Fatalf("WriteByte(0xC3) wrote % x, want c3", got)
	}
}
