/*
Package console prints the sequence set of a keyset to a terminal.

Leaves are printed in chain order, each one bracketed, and wrapped to the
width of the terminal. Keys touched by the latest operation may be
highlighted with a color.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package console

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// tracer writes to trace with key 'keyset'
func tracer() tracing.Trace {
	return tracing.Select("keyset")
}

// Mark tells how an operation changed the set.
type Mark int

const (
	Unchanged Mark = iota // duplicate insert or delete of a missing key
	Added
	Removed
)

// Palette holds the colors used for output. A nil color prints plain text.
type Palette struct {
	Key     *color.Color
	Bracket *color.Color
	Added   *color.Color
	Removed *color.Color
}

// DefaultPalette is green for inserted keys and red for deleted ones.
func DefaultPalette() *Palette {
	return &Palette{
		Bracket: color.New(color.FgBlue),
		Added:   color.New(color.FgGreen, color.Bold),
		Removed: color.New(color.FgRed),
	}
}

var setupOnce sync.Once

// Printer writes operations and leaf chains, wrapping lines at a fixed
// width measured in fixed-width 'en's.
type Printer struct {
	w       io.Writer
	colors  *Palette
	context *uax11.Context
	width   int // line length in 'en's
	ccnt    int // number of positions already printed for the line
	indent  int
	err     error
}

// NewPrinter creates a printer for w. If palette is nil, DefaultPalette is
// used. A width below 10 is raised to 10.
func NewPrinter(w io.Writer, palette *Palette, width int) *Printer {
	setupOnce.Do(grapheme.SetupGraphemeClasses)
	if palette == nil {
		palette = DefaultPalette()
	}
	if width < 10 {
		width = 10
	}
	return &Printer{
		w:       w,
		colors:  palette,
		context: uax11.LatinContext,
		width:   width,
	}
}

// UseEnvironment switches width measurement of keys to the user's locale,
// e.g. for east asian keys.
func (p *Printer) UseEnvironment() {
	p.context = uax11.ContextFromEnvironment()
}

// Err returns the first write error encountered, if any.
func (p *Printer) Err() error {
	return p.err
}

// Step prints the label of an operation followed by the leaves of the
// sequence set, one line per step. If mark is Added, occurrences of
// highlight are colored. The label is colored by mark.
func Step[K comparable](p *Printer, label string, mark Mark, leaves iter.Seq[[]K], highlight K) error {
	p.ccnt = 0
	labelColor := p.colors.Key
	switch mark {
	case Added:
		labelColor = p.colors.Added
	case Removed:
		labelColor = p.colors.Removed
	}
	label = fmt.Sprintf("%-6s", label)
	p.print(label, labelColor)
	p.indent = p.measure(label)
	first := true
	for keys := range leaves {
		parts := make([]string, len(keys))
		size := 2 + max(0, len(keys)-1)
		for i, key := range keys {
			parts[i] = fmt.Sprint(key)
			size += p.measure(parts[i])
		}
		if !first {
			size++ // separating space
		}
		if p.ccnt+size > p.width && p.ccnt > p.indent {
			p.newline()
			p.print(strings.Repeat(" ", p.indent), nil)
		} else if !first {
			p.print(" ", nil)
		}
		first = false
		p.print("[", p.colors.Bracket)
		for i, key := range keys {
			if i > 0 {
				p.print(" ", nil)
			}
			c := p.colors.Key
			if mark == Added && key == highlight {
				c = p.colors.Added
			}
			p.print(parts[i], c)
		}
		p.print("]", p.colors.Bracket)
	}
	if first {
		p.print("<empty>", nil)
	}
	p.newline()
	return p.err
}

// Line prints a plain line of text.
func (p *Printer) Line(text string) error {
	p.print(text, nil)
	p.newline()
	return p.err
}

// measure returns the display width of s in 'en's. ASCII is one en per
// byte; uax11 counts some ASCII runes as wide in the Latin context.
func (p *Printer) measure(s string) int {
	if isASCII(s) {
		return len(s)
	}
	return uax11.StringWidth(grapheme.StringFromString(s), p.context)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func (p *Printer) print(s string, c *color.Color) {
	if p.err != nil {
		return
	}
	if c != nil {
		_, p.err = c.Fprint(p.w, s)
	} else {
		_, p.err = io.WriteString(p.w, s)
	}
	if p.err != nil {
		tracer().Errorf("console: %s", p.err.Error())
	}
	p.ccnt += p.measure(s)
}

func (p *Printer) newline() {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, "\n")
	}
	p.ccnt = 0
}

// --- Terminals -------------------------------------------------------------

// WidthFromTerminal returns a line width suitable for the terminal at file
// descriptor fd, or 65 if fd is not a terminal.
func WidthFromTerminal(fd int) int {
	width := 65
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err == nil {
			switch {
			case w > 65:
				width = w - 10
			case w > 30:
				width = w - 5
			case w > 10:
				width = w
			default:
				width = 10
			}
		}
	}
	tracer().P("console", fd).Infof("setting line length to %d en", width)
	return width
}

// IsTerminal reports whether fd is a terminal. Colored output is disabled
// for anything else.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
