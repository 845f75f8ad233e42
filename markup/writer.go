// Package markup emits indentation formatted markup to a stream.
//
// The writer keeps a single piece of state - the current nesting depth - and
// prefixes every line it emits with one indentation unit per level. Content
// is passed through verbatim: callers own escaping of anything they did not
// build themselves (see Attr).
package markup

import (
	"bufio"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/bratpeki/bookgen/common"
)

// DefaultIndent is a single level of indentation used when nothing else has
// been configured.
const DefaultIndent = "  "

// ErrUnbalanced is returned when more elements are closed than were opened.
var ErrUnbalanced = errors.New("unbalanced markup nesting")

type Option func(*Writer)

// WithIndent sets the indentation unit.
func WithIndent(unit string) Option {
	return func(w *Writer) { w.indent = unit }
}

// WithDialect selects how void elements are closed.
func WithDialect(d common.Dialect) Option {
	return func(w *Writer) { w.dialect = d }
}

// WithStrictNesting controls what happens when more elements are closed than
// were opened: an error (strict) or a warning with the depth clamped at zero.
func WithStrictNesting(strict bool) Option {
	return func(w *Writer) { w.strict = strict }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(w *Writer) { w.log = log }
}

// Writer emits markup lines prefixed with the current indentation. All
// methods are sticky on error - after the first failure they do nothing and
// keep returning it.
type Writer struct {
	w       *bufio.Writer
	indent  string
	dialect common.Dialect
	strict  bool
	log     *zap.Logger
	depth   int
	err     error
}

// NewWriter wraps out in a buffered markup writer starting at depth 0.
func NewWriter(out io.Writer, options ...Option) *Writer {
	w := &Writer{
		w:       bufio.NewWriter(out),
		indent:  DefaultIndent,
		dialect: common.DialectHtml,
		strict:  true,
		log:     zap.NewNop(),
	}
	for _, setOpt := range options {
		setOpt(w)
	}
	return w
}

// Depth returns the current nesting depth.
func (w *Writer) Depth() int {
	return w.depth
}

// Err returns the first error encountered while writing.
func (w *Writer) Err() error {
	return w.err
}

// Flush pushes everything buffered so far to the underlying stream.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.w.Flush(); err != nil {
		return w.fail(err)
	}
	return nil
}

// Open emits an opening tag and descends one level. Empty attribute strings
// are skipped, the rest are joined with single spaces.
func (w *Writer) Open(tag string, attrs ...string) error {
	if err := w.line(tagLine(tag, attrs, ">")); err != nil {
		return err
	}
	w.depth++
	return nil
}

// End closes an element. The depth is decreased before the closing tag is
// emitted so it lines up with the opening tag.
func (w *Writer) End(tag string) error {
	if w.err != nil {
		return w.err
	}
	if w.depth == 0 {
		if w.strict {
			w.err = fmt.Errorf("closing </%s> at depth 0: %w", tag, ErrUnbalanced)
			return w.err
		}
		w.log.Warn("Closing more elements than were opened", zap.String("tag", tag))
		return w.line("</" + tag + ">")
	}
	w.depth--
	return w.line("</" + tag + ">")
}

// Void emits a self-contained element at the current depth.
func (w *Writer) Void(tag string, attrs ...string) error {
	closing := ">"
	if w.dialect == common.DialectXhtml {
		closing = "/>"
	}
	return w.line(tagLine(tag, attrs, closing))
}

// Text emits s as an indented line. The content is written verbatim, callers
// may pass markup through.
func (w *Writer) Text(s string) error {
	return w.line(s)
}

// Line emits a formatted indented line.
func (w *Writer) Line(format string, args ...any) error {
	return w.line(fmt.Sprintf(format, args...))
}

// StartLine writes the indentation prefix for the current depth and nothing
// else. Together with Raw and RawWriter it lets callers compose a single line
// around streamed content.
func (w *Writer) StartLine() error {
	if w.err != nil {
		return w.err
	}
	for range w.depth {
		if _, err := w.w.WriteString(w.indent); err != nil {
			return w.fail(err)
		}
	}
	return nil
}

// Raw copies s to the stream untouched - no indentation, no newline.
func (w *Writer) Raw(s string) error {
	if w.err != nil {
		return w.err
	}
	if _, err := w.w.WriteString(s); err != nil {
		return w.fail(err)
	}
	return nil
}

// RawWriter exposes the buffered stream for producers that generate output on
// their own (streaming encoders). Indentation is bypassed entirely.
func (w *Writer) RawWriter() io.Writer {
	return w.w
}

// line writes a single indented line, recording the first failure.
func (w *Writer) line(s string) error {
	if err := w.StartLine(); err != nil {
		return err
	}
	if _, err := w.w.WriteString(s); err != nil {
		return w.fail(err)
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return w.fail(err)
	}
	return nil
}

func (w *Writer) fail(err error) error {
	w.err = fmt.Errorf("unable to write markup: %w", err)
	return w.err
}

func tagLine(tag string, attrs []string, closing string) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	for _, a := range attrs {
		if len(a) == 0 {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(a)
	}
	b.WriteString(closing)
	return b.String()
}

// Attr builds a name="value" attribute pair with the value escaped. Use it
// whenever an attribute value comes from caller data (URLs, paths, titles).
func Attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}
