// Package console renders what a peer shows to its user.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gookit/color"
)

var (
	chatStyle   = color.New(color.FgGreen)
	errorStyle  = color.New(color.FgRed, color.OpBold)
	noticeStyle = color.New(color.FgWhite, color.OpBold)
)

// Printer writes chat lines and notices to out, errors to errOut.
// Lines written by concurrent loops never interleave.
type Printer struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	colors bool
}

func NewPrinter(out, errOut io.Writer, colors bool) *Printer {
	return &Printer{out: out, errOut: errOut, colors: colors}
}

// Chat shows a message from the group or from a peer.
func (p *Printer) Chat(text string) {
	p.print(p.out, chatStyle, "> ", text)
}

// Notice shows a local event or a command result. Every line of a
// multi-line text is prefixed.
func (p *Printer) Notice(text string) {
	p.print(p.out, noticeStyle, "# ", text)
}

func (p *Printer) Error(err error) {
	p.print(p.errOut, errorStyle, "# ", "Error: "+err.Error())
}

func (p *Printer) print(w io.Writer, style color.Style, prefix, text string) {
	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if p.colors {
			sb.WriteString(style.Render(prefix + line))
		} else {
			sb.WriteString(prefix + line)
		}
		sb.WriteByte('\n')
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprint(w, sb.String())
}
