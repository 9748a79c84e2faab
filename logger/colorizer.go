package logger

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	ansiDimRed    = "\033[2;31m"
	ansiNormalPen = "\033[0m"
)

// Colorizer dims every line after the first, so that a multi-line log
// entry's detail stands out less than its tag. It degrades to plain text
// when out is not a terminal.
type Colorizer struct {
	out   io.Writer
	color bool
}

// NewColorizer is the preferred method of initialisation for Colorizer.
// Colour is only enabled when out is backed by a terminal file descriptor.
func NewColorizer(out io.Writer) Colorizer {
	color := false
	if f, ok := out.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	return Colorizer{out: out, color: color}
}

// Write implements io.Writer.
func (c Colorizer) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSpace(string(p)), "\n")
	if len(lines) == 0 {
		return 0, nil
	}

	m, err := c.out.Write([]byte(lines[0] + "\n"))
	n += m
	if err != nil || len(lines) == 1 {
		return n, err
	}

	if c.color {
		if m, err = c.out.Write([]byte(ansiDimRed)); err != nil {
			return n + m, err
		}
		defer func() {
			_, _ = c.out.Write([]byte(ansiNormalPen))
		}()
	}

	for _, l := range lines[1:] {
		m, err = c.out.Write([]byte(l + "\n"))
		n += m
		if err != nil {
			return n, err
		}
	}

	return n, nil
}
