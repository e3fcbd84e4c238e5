// Package ui writes tagged progress lines to stderr so stdout stays clean
// for piping.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type Printer struct {
	out     io.Writer
	infoTag string
	okTag   string
}

func NewPrinter(enableColor bool) *Printer {
	return NewPrinterTo(os.Stderr, enableColor)
}

func NewPrinterTo(out io.Writer, enableColor bool) *Printer {
	info := color.New(color.FgBlue, color.Bold)
	ok := color.New(color.FgGreen, color.Bold)
	if !enableColor {
		info.DisableColor()
		ok.DisableColor()
	}
	return &Printer{
		out:     out,
		infoTag: info.Sprint("[INFO]"),
		okTag:   ok.Sprint("[✓]"),
	}
}

func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", p.infoTag, fmt.Sprintf(format, args...))
}

func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", p.okTag, fmt.Sprintf(format, args...))
}
