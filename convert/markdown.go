package convert

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"go.uber.org/zap"

	"github.com/bratpeki/bookgen/book"
	"github.com/bratpeki/bookgen/common"
	"github.com/bratpeki/bookgen/config"
	"github.com/bratpeki/bookgen/markup"
)

// document carries one parsed Markdown source through conversion.
type document struct {
	SrcName  string // source path relative to what was requested, logs and reports use it
	AssetDir string // directory relative image sources resolve against, empty for archive entries
	Title    string
	Data     []byte
	Root     ast.Node
}

// prepare reads and parses a single Markdown source.
func prepare(r io.Reader, srcName, assetDir string) (*document, error) {
	data, err := io.ReadAll(selectDocumentReader(r))
	if err != nil {
		return nil, fmt.Errorf("unable to read source (%s): %w", srcName, err)
	}

	doc := &document{
		SrcName:  srcName,
		AssetDir: assetDir,
		Data:     data,
		Root:     goldmark.New().Parser().Parse(text.NewReader(data)),
	}
	doc.Title = documentTitle(doc)
	return doc, nil
}

// documentTitle picks the text of the first heading, falling back to the
// source file name without extension.
func documentTitle(doc *document) string {
	if h := firstHeading(doc.Root); h != nil {
		if t := strings.TrimSpace(plainText(h, doc.Data)); t != "" {
			return t
		}
	}
	base := filepath.Base(doc.SrcName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func firstHeading(root ast.Node) *ast.Heading {
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			return h
		}
	}
	return nil
}

// render feeds the parsed source through the session. The document title is
// emitted as the top heading unless the source opens its own numbering with
// a level one heading, in that case the source heading doubles as the title.
func render(ctx context.Context, b *book.Book, doc *document, cfg *config.DocumentConfig, log *zap.Logger) error {
	if h := firstHeading(doc.Root); h == nil || h.Level != 1 {
		if _, err := b.H(1, html.EscapeString(doc.Title)); err != nil {
			return err
		}
	}
	for n := doc.Root.FirstChild(); n != nil; n = n.NextSibling() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := renderBlock(b, doc, cfg, n, log); err != nil {
			return err
		}
	}
	return nil
}

func renderBlock(b *book.Book, doc *document, cfg *config.DocumentConfig, n ast.Node, log *zap.Logger) error {
	switch t := n.(type) {
	case *ast.Heading:
		_, err := b.H(t.Level, html.EscapeString(plainText(t, doc.Data)))
		return err
	case *ast.Paragraph:
		if img, ok := soleImage(t); ok {
			return renderFigure(b, doc, cfg, img, log)
		}
		if err := b.Tag("p"); err != nil {
			return err
		}
		if err := b.Text(inlineMarkup(t, doc.Data, cfg.Dialect)); err != nil {
			return err
		}
		return b.End("p")
	case *ast.TextBlock:
		return b.Text(inlineMarkup(t, doc.Data, cfg.Dialect))
	case *ast.FencedCodeBlock:
		return b.CodeBlock(codeContent(t, doc.Data))
	case *ast.CodeBlock:
		return b.CodeBlock(codeContent(t, doc.Data))
	case *ast.List:
		return renderList(b, doc, cfg, t, log)
	case *ast.Blockquote:
		return renderQuote(b, doc, cfg, t, log)
	case *ast.ThematicBreak:
		return b.Void("hr")
	case *ast.HTMLBlock:
		return renderHTMLBlock(b, t, doc.Data)
	default:
		log.Debug("Skipping unsupported block",
			zap.String("kind", n.Kind().String()), zap.String("source", doc.SrcName))
		return nil
	}
}

// renderFigure turns a paragraph holding a single image into a figure. The
// image is embedded as a data URI when embedding is on and the source names
// a local file, otherwise it is referenced as is.
func renderFigure(b *book.Book, doc *document, cfg *config.DocumentConfig, img *ast.Image, log *zap.Logger) error {
	src := string(img.Destination)
	alt := strings.TrimSpace(plainText(img, doc.Data))

	var attrs []string
	if alt != "" {
		attrs = append(attrs, markup.Attr("alt", alt))
	}

	embeddable := cfg.Assets.Embed && localAsset(src)
	if embeddable && doc.AssetDir == "" {
		log.Warn("Embedding not available for archived sources",
			zap.String("image", src), zap.String("source", doc.SrcName))
		embeddable = false
	}

	if err := b.Tag("figure"); err != nil {
		return err
	}
	var err error
	if embeddable {
		err = b.EmbedImage(filepath.Join(doc.AssetDir, filepath.FromSlash(src)), attrs...)
	} else {
		err = b.Image(src, attrs...)
	}
	if err != nil {
		return err
	}
	if caption := figureCaption(img, alt); caption != "" {
		if err := b.FigureCaption(caption); err != nil {
			return err
		}
	}
	return b.End("figure")
}

func figureCaption(img *ast.Image, alt string) string {
	if t := string(img.Title); t != "" {
		return html.EscapeString(t)
	}
	return html.EscapeString(alt)
}

// localAsset reports whether an image source is a plain path and not a URL.
func localAsset(src string) bool {
	u, err := url.Parse(src)
	return err == nil && u.Scheme == "" && u.Host == ""
}

func renderList(b *book.Book, doc *document, cfg *config.DocumentConfig, t *ast.List, log *zap.Logger) error {
	openList, closeList := b.UnorderedList, b.EndUnorderedList
	if t.IsOrdered() {
		openList, closeList = b.OrderedList, b.EndOrderedList
	}
	if err := openList(); err != nil {
		return err
	}
	for li := t.FirstChild(); li != nil; li = li.NextSibling() {
		if err := renderListItem(b, doc, cfg, li, log); err != nil {
			return err
		}
	}
	return closeList()
}

// renderListItem handles one list item. Tight items hold a single text
// block, loose ones paragraphs, either may be followed by a nested list.
func renderListItem(b *book.Book, doc *document, cfg *config.DocumentConfig, li ast.Node, log *zap.Logger) error {
	first := li.FirstChild()
	if first != nil && first.NextSibling() == nil {
		switch first.(type) {
		case *ast.TextBlock, *ast.Paragraph:
			return b.ListItem(inlineMarkup(first, doc.Data, cfg.Dialect))
		}
	}

	if err := b.Tag("li"); err != nil {
		return err
	}
	for n := first; n != nil; n = n.NextSibling() {
		var err error
		switch t := n.(type) {
		case *ast.TextBlock, *ast.Paragraph:
			err = b.Text(inlineMarkup(n, doc.Data, cfg.Dialect))
		case *ast.List:
			err = renderList(b, doc, cfg, t, log)
		default:
			err = renderBlock(b, doc, cfg, n, log)
		}
		if err != nil {
			return err
		}
	}
	return b.End("li")
}

func renderQuote(b *book.Book, doc *document, cfg *config.DocumentConfig, q *ast.Blockquote, log *zap.Logger) error {
	if err := b.Tag("blockquote"); err != nil {
		return err
	}
	for n := q.FirstChild(); n != nil; n = n.NextSibling() {
		if err := renderBlock(b, doc, cfg, n, log); err != nil {
			return err
		}
	}
	return b.End("blockquote")
}

// renderHTMLBlock copies raw HTML lines through, indented at the current
// element depth but otherwise untouched.
func renderHTMLBlock(b *book.Book, t *ast.HTMLBlock, src []byte) error {
	lines := t.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		if err := b.Text(strings.TrimRight(string(line.Value(src)), "\n")); err != nil {
			return err
		}
	}
	if t.HasClosure() {
		return b.Text(strings.TrimRight(string(t.ClosureLine.Value(src)), "\n"))
	}
	return nil
}

func codeContent(n ast.Node, src []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(src))
	}
	return html.EscapeString(sb.String())
}

// plainText extracts unformatted text of the node's inline children.
func plainText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(sb.String()), " ")
}

// inlineMarkup renders the node's inline children to a single line of
// markup. Text and attribute values are escaped, raw HTML passes through.
func inlineMarkup(n ast.Node, src []byte, d common.Dialect) string {
	var sb strings.Builder
	inlineChildren(&sb, n, src, d)
	return sb.String()
}

func inlineChildren(sb *strings.Builder, n ast.Node, src []byte, d common.Dialect) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		inlineNode(sb, c, src, d)
	}
}

func inlineNode(sb *strings.Builder, n ast.Node, src []byte, d common.Dialect) {
	switch t := n.(type) {
	case *ast.Text:
		sb.WriteString(html.EscapeString(string(t.Segment.Value(src))))
		switch {
		case t.HardLineBreak():
			if d == common.DialectXhtml {
				sb.WriteString("<br/>")
			} else {
				sb.WriteString("<br>")
			}
		case t.SoftLineBreak():
			sb.WriteByte(' ')
		}
	case *ast.String:
		sb.WriteString(html.EscapeString(string(t.Value)))
	case *ast.CodeSpan:
		sb.WriteString("<code>")
		inlineChildren(sb, t, src, d)
		sb.WriteString("</code>")
	case *ast.Emphasis:
		tag := "em"
		if t.Level == 2 {
			tag = "strong"
		}
		sb.WriteString("<" + tag + ">")
		inlineChildren(sb, t, src, d)
		sb.WriteString("</" + tag + ">")
	case *ast.Link:
		sb.WriteString("<a " + markup.Attr("href", string(t.Destination)) + ">")
		inlineChildren(sb, t, src, d)
		sb.WriteString("</a>")
	case *ast.AutoLink:
		u := string(t.URL(src))
		if t.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(u, "mailto:") {
			u = "mailto:" + u
		}
		sb.WriteString("<a " + markup.Attr("href", u) + ">" + html.EscapeString(string(t.Label(src))) + "</a>")
	case *ast.Image:
		sb.WriteString("<img " + markup.Attr("src", string(t.Destination)))
		if alt := strings.TrimSpace(plainText(t, src)); alt != "" {
			sb.WriteString(" " + markup.Attr("alt", alt))
		}
		if d == common.DialectXhtml {
			sb.WriteString("/>")
		} else {
			sb.WriteString(">")
		}
	case *ast.RawHTML:
		for i := 0; i < t.Segments.Len(); i++ {
			seg := t.Segments.At(i)
			sb.Write(seg.Value(src))
		}
	default:
		inlineChildren(sb, n, src, d)
	}
}

// soleImage reports whether a paragraph consists of a single image and
// nothing else, which promotes it to a figure.
func soleImage(p *ast.Paragraph) (*ast.Image, bool) {
	if c := p.FirstChild(); c != nil && c == p.LastChild() {
		if img, ok := c.(*ast.Image); ok {
			return img, true
		}
	}
	return nil, false
}
