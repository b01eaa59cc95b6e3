package report

import (
	"github.com/hyzeos/hexfetch/pkg/hardware"
)

const (
	osName        = "HyzeOS"
	kernelVersion = "0.1.0"
	shellName     = "HexShell"
	archName      = "i386"

	// brandMaxLen keeps the CPU line inside the info column.
	brandMaxLen = 25
)

// The banner fragments are all 33 bytes wide so the info column lines up.
// The last two are blank padding for the Memory and Arch lines.
var artLines = [7]string{
	"    __  __          _            ",
	"   / / / /__  _  __(_)_  ______ _",
	"  / /_/ / _ \\| |/_/ / / / / __ `/",
	" / __  /  __/>  </ / /_/ / /_/ / ",
	"/_/ /_/\\___/_/|_/_/\\__,_/\\__,_/  ",
	"                                 ",
	"                                 ",
}

var paletteBase = [8]Color{Black, Red, Green, Brown, Blue, Magenta, Cyan, LightGray}
var paletteBright = [8]Color{DarkGray, LightRed, LightGreen, Yellow, LightBlue, Pink, LightCyan, White}

// Renderer produces the fetch report from the hardware probes. It keeps no
// state; every Fetch call probes the machine again.
type Renderer struct {
	Query hardware.RegisterQuery
	Mem   hardware.MemoryReader
}

// Fetch probes the machine once and streams the fixed report layout to d:
// seven banner+info lines, a blank line, and the two palette swatch rows.
func (r Renderer) Fetch(d Display) {
	cpu := hardware.DetectCpu(r.Query)
	memoryKb := hardware.DetectMemoryKb(r.Mem)
	memoryMb := memoryKb / 1024
	uptime := hardware.UptimeSeconds(r.Mem)
	hours, minutes, seconds := hardware.SplitUptime(uptime)

	// Banner fragment, then the label, then leave the value color set.
	info := func(art int, label string) {
		d.SetColor(LightCyan, Black)
		d.WriteString(artLines[art])
		d.SetColor(Yellow, Black)
		d.WriteString(label)
		d.SetColor(White, Black)
	}

	info(0, "OS: ")
	d.WriteString(osName + "\n")

	info(1, "Kernel: ")
	d.WriteString(kernelVersion + "\n")

	info(2, "Uptime: ")
	writeUptime(d, hours, minutes, seconds)
	d.WriteString("\n")

	info(3, "Shell: ")
	d.WriteString(shellName + "\n")

	info(4, "CPU: ")
	writeTruncated(d, cpu.Brand(), brandMaxLen)
	d.WriteString("\n")

	info(5, "Memory: ")
	writeNumber(d, memoryMb)
	d.WriteString(" MB\n")

	info(6, "Arch: ")
	d.WriteString(archName + "\n")

	d.WriteString("\n")
	Palette(d)
}

// Palette writes the two swatch rows, four-space indented. Each swatch is
// two cells with foreground and background set to the same color; each row
// ends by resetting to white on black.
func Palette(d Display) {
	writeSwatchRow(d, paletteBase)
	writeSwatchRow(d, paletteBright)
}

func writeSwatchRow(d Display, colors [8]Color) {
	d.WriteString("    ")
	for _, c := range colors {
		d.SetColor(c, c)
		d.WriteString("  ")
	}
	d.SetColor(White, Black)
	d.WriteString("\n")
}

// writeTruncated writes at most limit bytes of s. The cut is byte-wise and
// can split a multi-byte rune; brand strings are ASCII in practice.
func writeTruncated(d Display, s string, limit int) {
	if len(s) <= limit {
		d.WriteString(s)
		return
	}
	for i := 0; i < limit; i++ {
		d.WriteByte(s[i])
	}
}

// writeNumber writes n in decimal with no leading zeros. Ten digits of
// scratch cover any uint32.
func writeNumber(d Display, n uint32) {
	if n == 0 {
		d.WriteString("0")
		return
	}

	var buf [10]byte
	i := 0
	for n > 0 {
		buf[i] = '0' + byte(n%10)
		n /= 10
		i++
	}
	for i > 0 {
		i--
		d.WriteByte(buf[i])
	}
}

// writeUptime writes "{h}h {m}m {s}s", omitting the hour part when zero.
func writeUptime(d Display, hours, minutes, seconds uint32) {
	if hours > 0 {
		writeNumber(d, hours)
		d.WriteString("h ")
	}
	writeNumber(d, minutes)
	d.WriteString("m ")
	writeNumber(d, seconds)
	d.WriteString("s")
}
