// Package console implements the styled terminal sink for user-facing
// output. Styling degrades to plain text when the writer is not a terminal
// or when color is disabled explicitly.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Console writes user-facing text with lipgloss styling. It implements
// logging.Logger.
type Console struct {
	w      io.Writer
	info   lipgloss.Style
	result lipgloss.Style
}

// New returns a console writing to w. Styles are scoped to w's color
// profile; noColor forces the plain profile regardless of the terminal.
func New(w io.Writer, noColor bool) *Console {
	r := lipgloss.NewRenderer(w)
	if noColor || !isTerminal(w) {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Console{
		w:      w,
		info:   r.NewStyle().Foreground(lipgloss.Color("6")),
		result: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	}
}

func (c *Console) Write(text string)     { fmt.Fprint(c.w, text) }
func (c *Console) WriteLine(text string) { fmt.Fprintln(c.w, text) }

func (c *Console) WriteInfo(text string)     { fmt.Fprint(c.w, c.info.Render(text)) }
func (c *Console) WriteLineInfo(text string) { fmt.Fprintln(c.w, c.info.Render(text)) }

func (c *Console) WriteResult(text string)     { fmt.Fprint(c.w, c.result.Render(text)) }
func (c *Console) WriteLineResult(text string) { fmt.Fprintln(c.w, c.result.Render(text)) }

// DetectWidth reports the terminal width of w. It returns ok=false when w
// is not a terminal or the size cannot be read.
func DetectWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
