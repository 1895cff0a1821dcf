// Package helptext renders the option listing: every category, its flag
// syntax, and its allowed values, word-wrapped to a caller-supplied width
// and aligned to a shared left column.
package helptext

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/vk/benchgridgo/internal/logging"
	"github.com/vk/benchgridgo/internal/options"
)

// valuesLabel introduces the name listing on each category's first line.
// Continuation lines indent past it so the value columns align.
const valuesLabel = "Allowed values"

// DefaultWidth is used when the caller supplies no output width.
const DefaultWidth = 120

// Options controls the listing layout.
type Options struct {
	// Width is the maximum length of one physical line. Zero selects
	// DefaultWidth.
	Width int

	// LeftWidth is the column where the value listing begins. Zero selects
	// one column past the widest category header.
	LeftWidth int
}

// Render writes the option listing for every category in reg, in
// registration order, to out. Headers go through the inline info variant so
// styled sinks can highlight them; values are written plain.
func Render(out logging.Logger, reg *options.Registry, opts Options) {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.LeftWidth <= 0 {
		opts.LeftWidth = LeftWidthFor(reg)
	}
	for _, c := range reg.Categories() {
		renderCategory(out, c, opts)
	}
}

// LeftWidthFor returns one column past the widest category header, the
// narrowest left width under which no header collides with its listing.
func LeftWidthFor(reg *options.Registry) int {
	widest := 0
	for _, c := range reg.Categories() {
		if l := len(headerFor(c)); l > widest {
			widest = l
		}
	}
	return widest + 1
}

func renderCategory(out logging.Logger, c options.Category, opts Options) {
	out.WriteInfo(fmt.Sprintf("%-*s", opts.LeftWidth, headerFor(c)))

	// Room left for names once the header column and the label are spent.
	// Names never contain spaces, so wrapping breaks only at the ", "
	// separators and a name is never split; a name wider than the room is
	// emitted alone on its line.
	avail := opts.Width - opts.LeftWidth - len(valuesLabel) - len(": ")
	if avail < 1 {
		avail = 1
	}

	joined := strings.Join(c.Names(), ", ")
	chunks := strings.Split(wordwrap.WrapString(joined, uint(avail)), "\n")

	out.WriteLine(valuesLabel + ": " + chunks[0])

	indent := strings.Repeat(" ", opts.LeftWidth+len(valuesLabel))
	for _, chunk := range chunks[1:] {
		out.Write(indent)
		out.WriteLine(": " + chunk)
	}
}

// headerFor renders a category's flag syntax, e.g. "--jobs <JOBS>".
func headerFor(c options.Category) string {
	return fmt.Sprintf("--%s <%s>", c.Key(), strings.ToUpper(c.Key()))
}
