package book

import (
	"strings"

	"github.com/bratpeki/bookgen/common"
	"github.com/bratpeki/bookgen/markup"
	"github.com/bratpeki/bookgen/theme"
)

// Root opens the document root element.
func (b *Book) Root(attrs ...string) error {
	return b.Tag("html", attrs...)
}

func (b *Book) EndRoot() error {
	return b.End("html")
}

// Metadata opens the document head.
func (b *Book) Metadata() error {
	return b.Tag("head")
}

func (b *Book) EndMetadata() error {
	return b.End("head")
}

// Body opens the document body.
func (b *Book) Body(attrs ...string) error {
	return b.Tag("body", attrs...)
}

func (b *Book) EndBody() error {
	return b.End("body")
}

// DocTitle emits the document title element.
func (b *Book) DocTitle(title string) error {
	return b.element("title", title)
}

// Stylesheet links an external stylesheet.
func (b *Book) Stylesheet(href string) error {
	return b.Void("link", `rel="stylesheet"`, markup.Attr("href", href))
}

// Theme inlines one of the built-in stylesheets. ThemeNone emits nothing.
func (b *Book) Theme(v common.Theme) error {
	if b.err != nil {
		return b.err
	}
	if v == common.ThemeNone {
		return nil
	}
	sheet, err := theme.Default(v)
	if err != nil {
		return b.fail(err)
	}
	return b.InlineStylesheet(sheet)
}

// InlineStylesheet emits a parsed stylesheet as a style element. Rules are
// indented below the current depth so the block reads like any other nested
// markup.
func (b *Book) InlineStylesheet(s *theme.Stylesheet) error {
	if b.err != nil {
		return b.err
	}
	if s == nil {
		return nil
	}
	if err := b.w.Open("style"); err != nil {
		return b.fail(err)
	}
	s.Render(func(level int, line string) {
		_ = b.w.Text(strings.Repeat(b.indent, level) + line)
	})
	if err := b.w.End("style"); err != nil {
		return b.fail(err)
	}
	return nil
}
