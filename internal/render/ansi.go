package render

import (
	"image/color"
	"strconv"
	"strings"
)

const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"
)

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return CSI + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return CSI + "?25h"
}

// Cell is a single terminal cell. A zero Bg leaves the terminal background alone.
type Cell struct {
	Ch   rune
	Fg   color.RGBA
	Bg   color.RGBA
	Bold bool
}

// WriteCellSGR writes a cell's full SGR sequence and character to the builder.
// Every cell starts from a reset so no state leaks between cells.
func WriteCellSGR(sb *strings.Builder, c Cell, mode Mode) {
	switch mode {
	case ModePlain:
		sb.WriteRune(c.Ch)
		return
	case ModeANSI:
		sb.WriteString(CSI + "0")
		if c.Bold {
			sb.WriteString(";1")
		}
		sb.WriteByte(';')
		sb.WriteString(strconv.Itoa(Nearest16(c.Fg)))
		if c.Bg.A != 0 {
			sb.WriteByte(';')
			sb.WriteString(strconv.Itoa(Nearest16(c.Bg) + 10))
		}
	default:
		sb.WriteString(CSI + "0")
		if c.Bold {
			sb.WriteString(";1")
		}
		sb.WriteString(";38;2;")
		writeRGB(sb, c.Fg)
		if c.Bg.A != 0 {
			sb.WriteString(";48;2;")
			writeRGB(sb, c.Bg)
		}
	}
	sb.WriteByte('m')
	sb.WriteRune(c.Ch)
}

func writeRGB(sb *strings.Builder, c color.RGBA) {
	sb.WriteString(strconv.Itoa(int(c.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.B)))
}

// ansiCodes are the sixteen basic foreground codes.
var ansiCodes = [...]int{30, 31, 32, 33, 34, 35, 36, 37, 90, 91, 92, 93, 94, 95, 96, 97}

// Nearest16 returns the basic ANSI foreground code closest to c.
func Nearest16(c color.RGBA) int {
	best, bestDist := 37, -1
	for _, code := range ansiCodes {
		r, g, b := AnsiToRGB(code)
		dr := int(c.R) - int(r)
		dg := int(c.G) - int(g)
		db := int(c.B) - int(b)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = code, d
		}
	}
	return best
}

// AnsiToRGB converts a basic ANSI color code to RGB.
func AnsiToRGB(code int) (uint8, uint8, uint8) {
	switch code {
	case 30:
		return 0, 0, 0
	case 31:
		return 170, 0, 0
	case 32:
		return 0, 170, 0
	case 33:
		return 170, 170, 0
	case 34:
		return 0, 0, 170
	case 35:
		return 170, 0, 170
	case 36:
		return 0, 170, 170
	case 37:
		return 170, 170, 170
	case 90:
		return 85, 85, 85
	case 91:
		return 255, 85, 85
	case 92:
		return 85, 255, 85
	case 93:
		return 255, 255, 85
	case 94:
		return 85, 85, 255
	case 95:
		return 255, 85, 255
	case 96:
		return 85, 255, 255
	case 97:
		return 255, 255, 255
	default:
		return 170, 170, 170
	}
}
