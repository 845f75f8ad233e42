package book_test

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/bratpeki/bookgen/book"
	"github.com/bratpeki/bookgen/common"
	"github.com/bratpeki/bookgen/theme"
)

func TestStylesheet(t *testing.T) {
	var buf bytes.Buffer
	b := book.New(&buf, docCfg(), nil)

	b.Stylesheet("css/book one.css")
	b.Close()

	want := `<link rel="stylesheet" href="css/book one.css">` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("Stylesheet() = %q, want %q", got, want)
	}
}

func TestTheme_None(t *testing.T) {
	var buf bytes.Buffer
	b := book.New(&buf, docCfg(), nil)

	if err := b.Theme(common.ThemeNone); err != nil {
		t.Fatalf("Theme(none) error = %v", err)
	}
	b.Close()
	if buf.Len() != 0 {
		t.Errorf("Theme(none) emitted output: %q", buf.String())
	}
}

func TestTheme_InlinesDefault(t *testing.T) {
	var buf bytes.Buffer
	b := book.New(&buf, docCfg(), nil)

	if err := b.Theme(common.ThemeLight); err != nil {
		t.Fatalf("Theme(light) error = %v", err)
	}
	b.Close()

	got := buf.String()
	if !strings.HasPrefix(got, "<style>\n") || !strings.HasSuffix(got, "</style>\n") {
		t.Fatalf("theme should sit in a style element:\n%s", got)
	}
	for _, want := range []string{
		"\n  body {\n",
		"\n    max-width: 800px;\n",
		"\n  @media print {\n",
		"\n    body {\n",
		"\n  li.toc-L6 {\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("inlined theme is missing %q", want)
		}
	}
}

func TestInlineStylesheet_IndentsUnderParent(t *testing.T) {
	sheet, err := theme.Parse(strings.NewReader("p { margin: 0; }"), zap.NewNop())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var buf bytes.Buffer
	b := book.New(&buf, docCfg(), nil)
	b.Metadata()
	b.InlineStylesheet(sheet)
	b.EndMetadata()
	b.Close()

	want := `<head>
  <style>
    p {
      margin: 0;
    }
  </style>
</head>
`
	if got := buf.String(); got != want {
		t.Errorf("inlined stylesheet:\n%s\nwant:\n%s", got, want)
	}
}

func TestInlineStylesheet_Nil(t *testing.T) {
	var buf bytes.Buffer
	b := book.New(&buf, docCfg(), nil)

	if err := b.InlineStylesheet(nil); err != nil {
		t.Fatalf("InlineStylesheet(nil) error = %v", err)
	}
	b.Close()
	if buf.Len() != 0 {
		t.Errorf("nil stylesheet emitted output: %q", buf.String())
	}
}
