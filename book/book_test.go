package book_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/bratpeki/bookgen/book"
	"github.com/bratpeki/bookgen/common"
	"github.com/bratpeki/bookgen/config"
)

// docCfg returns a configuration matching the built-in session defaults,
// ready to be tweaked per test.
func docCfg() *config.DocumentConfig {
	return &config.DocumentConfig{
		Language: "en",
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

func TestNew_Defaults(t *testing.T) {
	var buf bytes.Buffer
	b := book.New(&buf, nil, nil)

	if b.Err() != nil {
		t.Fatalf("fresh session error = %v", b.Err())
	}
	if b.ID() == uuid.Nil {
		t.Error("fresh session should have generated an identifier")
	}
	if len(b.Entries()) != 0 {
		t.Errorf("fresh session has %d recorded entries", len(b.Entries()))
	}
}

func TestNew_ConfiguredIdentifier(t *testing.T) {
	cfg := docCfg()
	cfg.Identifier = "a27639a2-bf3f-4a3b-bead-be38a0b1c929"

	b := book.New(&bytes.Buffer{}, cfg, nil)
	if got := b.ID().String(); got != cfg.Identifier {
		t.Errorf("ID() = %s, want the configured %s", got, cfg.Identifier)
	}

	cfg.Identifier = "not-a-uuid"
	b = book.New(&bytes.Buffer{}, cfg, nil)
	if b.ID() == uuid.Nil {
		t.Error("invalid configured identifier should be replaced, not kept empty")
	}
	if b.Err() != nil {
		t.Errorf("identifier fallback should not fail the session: %v", b.Err())
	}
}

func TestBook_Assembly(t *testing.T) {
	var buf bytes.Buffer
	b := book.New(&buf, docCfg(), nil)

	b.Root(`lang="en"`)
	b.Metadata()
	b.DocTitle("My Book")
	b.EndMetadata()
	b.Body()
	b.Text("hello")
	b.EndBody()
	b.EndRoot()
	if err := b.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	want := `<html lang="en">
  <head>
    <title>
      My Book
    </title>
  </head>
  <body>
    hello
  </body>
</html>
`
	if got := buf.String(); got != want {
		t.Errorf("assembled document:\n%s\nwant:\n%s", got, want)
	}
}

func TestBook_ConfiguredIndentAndDialect(t *testing.T) {
	cfg := docCfg()
	cfg.Indent = "\t"
	cfg.Dialect = common.DialectXhtml

	var buf bytes.Buffer
	b := book.New(&buf, cfg, nil)
	b.Tag("p")
	b.LineBreaks(1)
	b.End("p")
	if err := b.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	want := "<p>\n\t<br/>\n</p>\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestBook_StrictNesting(t *testing.T) {
	var buf bytes.Buffer
	b := book.New(&buf, docCfg(), nil)

	if err := b.End("div"); err == nil {
		t.Fatal("closing at depth 0 should fail under strict nesting")
	}
	if b.Err() == nil {
		t.Error("the nesting failure should poison the session")
	}
	if err := b.Text("later"); err == nil {
		t.Error("calls after poisoning should return the recorded error")
	}
}

func TestBook_ClampNesting(t *testing.T) {
	cfg := docCfg()
	cfg.Nesting = config.NestingModeClamp

	var buf bytes.Buffer
	b := book.New(&buf, cfg, nil)

	if err := b.End("div"); err != nil {
		t.Fatalf("clamped close error = %v", err)
	}
	b.Tag("p")
	b.End("p")
	if err := b.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	want := "</div>\n<p>\n</p>\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestBook_PoisonedEmitsNothing(t *testing.T) {
	var buf bytes.Buffer
	b := book.New(&buf, docCfg(), nil)

	b.Tag("div")
	if _, err := b.H(7, "out of range"); err == nil {
		t.Fatal("H(7) should fail")
	}
	b.Tag("p")
	b.Text("ignored")
	b.Close()

	if got := buf.String(); got != "<div>\n" {
		t.Errorf("poisoned session kept writing: %q", got)
	}
}

func TestBook_DumpState(t *testing.T) {
	var buf bytes.Buffer
	b := book.New(&buf, docCfg(), nil)

	b.H(1, "One")
	b.H(2, "One point one")

	var dump strings.Builder
	if err := b.DumpState(&dump); err != nil {
		t.Fatalf("DumpState() error = %v", err)
	}

	got := dump.String()
	for _, want := range []string{
		"document " + b.ID().String(),
		"depth: 0",
		"counters: [1 1 0 0 0 0]",
		"toc: 2 entries",
		`1.1. L2: "One point one"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("dump is missing %q:\n%s", want, got)
		}
	}
}
