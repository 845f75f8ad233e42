// Package book implements the document session. A session binds a sink to a
// markup writer and layers document semantics on top: auto-numbered headings,
// the table of contents store, asset embedding and the structured content
// helpers. All state is per-session, concurrent sessions over distinct sinks
// never interact.
package book

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/bratpeki/bookgen/common"
	"github.com/bratpeki/bookgen/config"
	"github.com/bratpeki/bookgen/markup"
)

var (
	ErrHeadingLevel = errors.New("heading level out of range")
	ErrHeadingSkip  = errors.New("heading level skipped")
	ErrTOCOverflow  = errors.New("table of contents overflow")
	ErrAssetMissing = errors.New("asset not found")
)

// Book is a single document emission session. Every method writes to the sink
// immediately. The first fatal condition poisons the session: the failing
// operation emits nothing further and every later call returns the recorded
// error.
type Book struct {
	w   *markup.Writer
	cfg *config.DocumentConfig
	log *zap.Logger

	id     uuid.UUID
	indent string

	counters [6]int
	toc      []TOCEntry
	assets   []string

	err error
}

// New opens a session writing to out. A nil cfg selects the built-in
// defaults, a nil log disables logging. The document identifier is taken from
// the configuration when it parses as a UUID, otherwise a fresh one is
// generated.
func New(out io.Writer, cfg *config.DocumentConfig, log *zap.Logger) *Book {
	if cfg == nil {
		cfg = defaultDocument()
	}
	if log == nil {
		log = zap.NewNop()
	}

	indent := cfg.Indent
	if indent == "" {
		indent = markup.DefaultIndent
	}

	b := &Book{
		cfg:    cfg,
		log:    log,
		indent: indent,
		w: markup.NewWriter(out,
			markup.WithIndent(indent),
			markup.WithDialect(cfg.Dialect),
			markup.WithStrictNesting(cfg.Nesting == config.NestingModeStrict),
			markup.WithLogger(log)),
	}

	var err error
	if b.id, err = ResolveID(cfg.Identifier); err != nil {
		b.err = fmt.Errorf("unable to generate document identifier: %w", err)
	}
	return b
}

// ResolveID returns the configured document identifier when it parses as a
// UUID and a freshly generated one otherwise. Callers that need the
// identifier before the session exists, output naming for one, use it
// directly.
func ResolveID(configured string) (uuid.UUID, error) {
	if id, err := uuid.Parse(configured); err == nil {
		return id, nil
	}
	return uuid.NewV7()
}

func defaultDocument() *config.DocumentConfig {
	return &config.DocumentConfig{
		Language: "en",
		Indent:   markup.DefaultIndent,
		TOC: config.TOCConfig{
			Title:       "Table of Contents",
			Placement:   common.TOCPlacementAfter,
			Depth:       6,
			SelfHeading: true,
		},
		Assets: config.AssetsConfig{
			JPEGQuality: 75,
		},
		Style: config.StyleConfig{
			Theme: common.ThemeLight,
		},
	}
}

// ID returns the document identifier.
func (b *Book) ID() uuid.UUID {
	return b.id
}

// Err returns the sticky session error, if any.
func (b *Book) Err() error {
	if b.err != nil {
		return b.err
	}
	return b.w.Err()
}

// Flush forces buffered markup into the sink. Callers that need to observe
// how many bytes the session produced so far must flush first.
func (b *Book) Flush() error {
	if b.err != nil {
		return b.err
	}
	if err := b.w.Flush(); err != nil {
		return b.fail(err)
	}
	return nil
}

// Close flushes buffered output and reports the session error together with
// any flush failure.
func (b *Book) Close() error {
	err := b.err
	if ferr := b.w.Flush(); ferr != nil && !errors.Is(err, ferr) {
		err = multierr.Append(err, ferr)
	}
	return err
}

// fail records the first error and returns the recorded one.
func (b *Book) fail(err error) error {
	if b.err == nil {
		b.err = err
	}
	return b.err
}

// Tag opens an element. It is the escape hatch for markup the structured
// helpers do not cover.
func (b *Book) Tag(tag string, attrs ...string) error {
	if b.err != nil {
		return b.err
	}
	if err := b.w.Open(tag, attrs...); err != nil {
		return b.fail(err)
	}
	return nil
}

// End closes an element opened with Tag or one of the structure helpers.
func (b *Book) End(tag string) error {
	if b.err != nil {
		return b.err
	}
	if err := b.w.End(tag); err != nil {
		return b.fail(err)
	}
	return nil
}

// Void emits a self-contained element.
func (b *Book) Void(tag string, attrs ...string) error {
	if b.err != nil {
		return b.err
	}
	if err := b.w.Void(tag, attrs...); err != nil {
		return b.fail(err)
	}
	return nil
}

// Text emits an indented line of content, verbatim. Callers may embed markup.
func (b *Book) Text(s string) error {
	if b.err != nil {
		return b.err
	}
	if err := b.w.Text(s); err != nil {
		return b.fail(err)
	}
	return nil
}

// Raw copies s to the sink untouched.
func (b *Book) Raw(s string) error {
	if b.err != nil {
		return b.err
	}
	if err := b.w.Raw(s); err != nil {
		return b.fail(err)
	}
	return nil
}

// element emits tag, one line of verbatim content and the closing tag.
func (b *Book) element(tag, txt string, attrs ...string) error {
	if b.err != nil {
		return b.err
	}
	if err := b.w.Open(tag, attrs...); err != nil {
		return b.fail(err)
	}
	b.w.Text(txt)
	if err := b.w.End(tag); err != nil {
		return b.fail(err)
	}
	return nil
}
