package convert

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/bratpeki/bookgen/book"
	"github.com/bratpeki/bookgen/common"
	"github.com/bratpeki/bookgen/config"
	"github.com/bratpeki/bookgen/markup"
	"github.com/bratpeki/bookgen/misc"
	"github.com/bratpeki/bookgen/theme"
)

// GenerateDocument converts a single Markdown source and streams the result
// into out. It is the entry point shared with the preview server where out
// is the HTTP response writer.
func GenerateDocument(ctx context.Context, r io.Reader, srcName, assetDir string, out io.Writer, cfg *config.DocumentConfig, log *zap.Logger) (*book.Book, error) {
	doc, err := prepare(r, srcName, assetDir)
	if err != nil {
		return nil, err
	}
	return generate(ctx, doc, out, cfg, log)
}

// splicePoints records byte offsets inside a buffered session, taken while
// the markup is produced, so the rendered TOC can move to the front of the
// body without disturbing session order.
type splicePoints struct {
	bodyStart int
	tocStart  int
	tocEnd    int
}

// generate runs a full session over the parsed source and writes the result
// to out. The returned session is closed, callers may still read its
// identifier, TOC store and state dump.
func generate(ctx context.Context, doc *document, out io.Writer, cfg *config.DocumentConfig, log *zap.Logger) (*book.Book, error) {
	if cfg.TOC.Placement != common.TOCPlacementBefore {
		b := book.New(out, cfg, log)
		err := assemble(ctx, b, doc, cfg, log, nil, nil)
		if cerr := b.Close(); err == nil {
			err = cerr
		}
		return b, err
	}

	// The session stays strictly linear and the TOC is still rendered after
	// the content it lists. Buffering the whole document lets us splice the
	// rendered TOC bytes to the top of the body afterwards.
	var buf bytes.Buffer
	b := book.New(&buf, cfg, log)
	marks := &splicePoints{}
	err := assemble(ctx, b, doc, cfg, log, &buf, marks)
	if cerr := b.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return b, err
	}

	data := buf.Bytes()
	for _, chunk := range [][]byte{
		data[:marks.bodyStart],
		data[marks.tocStart:marks.tocEnd],
		data[marks.bodyStart:marks.tocStart],
		data[marks.tocEnd:],
	} {
		if _, err := out.Write(chunk); err != nil {
			return b, fmt.Errorf("unable to write document: %w", err)
		}
	}
	return b, nil
}

// assemble emits the complete document. When sink is given, offsets of the
// body and the TOC are recorded in marks after flushing the session.
func assemble(ctx context.Context, b *book.Book, doc *document, cfg *config.DocumentConfig, log *zap.Logger, sink *bytes.Buffer, marks *splicePoints) error {
	if marks == nil {
		marks = &splicePoints{}
	}
	mark := func(at *int) error {
		if sink == nil {
			return nil
		}
		if err := b.Flush(); err != nil {
			return err
		}
		*at = sink.Len()
		return nil
	}

	if err := b.Root(markup.Attr("lang", documentLanguage(cfg, log))); err != nil {
		return err
	}
	if err := metadata(b, doc, cfg, log); err != nil {
		return err
	}

	if err := b.Body(); err != nil {
		return err
	}
	if err := mark(&marks.bodyStart); err != nil {
		return err
	}
	if err := render(ctx, b, doc, cfg, log); err != nil {
		return err
	}
	if err := mark(&marks.tocStart); err != nil {
		return err
	}
	if cfg.TOC.Placement != common.TOCPlacementNone {
		if err := b.TOC(); err != nil {
			return err
		}
	}
	if err := mark(&marks.tocEnd); err != nil {
		return err
	}
	if err := b.EndBody(); err != nil {
		return err
	}
	return b.EndRoot()
}

// metadata writes the head: title, generator and identifier meta elements
// and the configured style.
func metadata(b *book.Book, doc *document, cfg *config.DocumentConfig, log *zap.Logger) error {
	if err := b.Metadata(); err != nil {
		return err
	}
	if err := b.Void("meta", `charset="utf-8"`); err != nil {
		return err
	}
	if err := b.DocTitle(html.EscapeString(doc.Title)); err != nil {
		return err
	}
	if err := b.Void("meta", `name="generator"`, markup.Attr("content", misc.GetAppName()+" "+misc.GetVersion())); err != nil {
		return err
	}
	if err := b.Void("meta", `name="identifier"`, markup.Attr("content", b.ID().String())); err != nil {
		return err
	}
	if err := stylesheet(b, cfg); err != nil {
		return err
	}
	return b.EndMetadata()
}

// stylesheet emits document style. A custom stylesheet path wins over the
// built-in theme and may be linked instead of inlined, built-in themes are
// always inlined.
func stylesheet(b *book.Book, cfg *config.DocumentConfig) error {
	if path := cfg.Style.StylesheetPath; path != "" {
		if !cfg.Style.Inline {
			return b.Stylesheet(filepath.ToSlash(path))
		}
		sheet, err := theme.Load(path)
		if err != nil {
			return err
		}
		return b.InlineStylesheet(sheet)
	}
	return b.Theme(cfg.Style.Theme)
}

// documentLanguage canonicalizes the configured BCP 47 tag. Configuration
// validation already vouched for it, canonicalization still normalizes case
// and legacy aliases.
func documentLanguage(cfg *config.DocumentConfig, log *zap.Logger) string {
	tag, err := language.Parse(cfg.Language)
	if err != nil {
		log.Warn("Unable to parse document language, using it verbatim",
			zap.String("language", cfg.Language), zap.Error(err))
		return cfg.Language
	}
	return tag.String()
}
