package sink

import (
	"fmt"
	"io"

	"github.com/gookit/color"
)

// ConsoleNotifier writes one diagnostic per line, in red when colours are on.
type ConsoleNotifier struct {
	w       io.Writer
	colours bool
	style   color.Style
}

func NewConsoleNotifier(w io.Writer, colours bool) *ConsoleNotifier {
	return &ConsoleNotifier{
		w:       w,
		colours: colours,
		style:   color.New(color.FgRed),
	}
}

func (c *ConsoleNotifier) Notify(message string) {
	if c.colours {
		message = c.style.Render(message)
	}
	_, _ = fmt.Fprintln(c.w, message)
}
