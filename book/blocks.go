package book

import "github.com/bratpeki/bookgen/markup"

// CodeBlock emits a pre element with the code verbatim. The code follows the
// opening tag on the same line and keeps its own line structure, it is
// deliberately not re-indented. Only the opening tag lines up with the
// surrounding markup. Callers escape markup characters themselves.
func (b *Book) CodeBlock(code string) error {
	if b.err != nil {
		return b.err
	}
	if err := b.w.StartLine(); err != nil {
		return b.fail(err)
	}
	b.w.Raw("<pre>")
	b.w.Raw(code)
	if err := b.w.Raw("</pre>\n"); err != nil {
		return b.fail(err)
	}
	return nil
}

// CodeInline emits a code element.
func (b *Book) CodeInline(code string) error {
	return b.element("code", code)
}

// ListItem emits an li element.
func (b *Book) ListItem(txt string) error {
	return b.element("li", txt)
}

func (b *Book) UnorderedList(attrs ...string) error {
	return b.Tag("ul", attrs...)
}

func (b *Book) EndUnorderedList() error {
	return b.End("ul")
}

func (b *Book) OrderedList(attrs ...string) error {
	return b.Tag("ol", attrs...)
}

func (b *Book) EndOrderedList() error {
	return b.End("ol")
}

// FigureCaption emits a figcaption element.
func (b *Book) FigureCaption(txt string) error {
	return b.element("figcaption", txt)
}

// LineBreaks emits n break elements.
func (b *Book) LineBreaks(n int) error {
	if b.err != nil {
		return b.err
	}
	for range n {
		if err := b.w.Void("br"); err != nil {
			return b.fail(err)
		}
	}
	return nil
}

// PageBreak emits a print page break.
func (b *Book) PageBreak() error {
	return b.Text(`<div style="break-after: page;"></div>`)
}

// Hyperlink emits a one-line anchor. The target is escaped, the label is
// verbatim.
func (b *Book) Hyperlink(url, label string) error {
	return b.Text("<a " + markup.Attr("href", url) + ">" + label + "</a>")
}

// Quote emits a blockquote holding the quote as a paragraph and, when the
// author is set, an attribution footer.
func (b *Book) Quote(quote, author string) error {
	if b.err != nil {
		return b.err
	}
	if err := b.w.Open("blockquote"); err != nil {
		return b.fail(err)
	}
	b.w.Open("p")
	b.w.Text(quote)
	b.w.End("p")
	if author != "" {
		b.w.Open("footer")
		b.w.Text("— " + author)
		b.w.End("footer")
	}
	if err := b.w.End("blockquote"); err != nil {
		return b.fail(err)
	}
	return nil
}
