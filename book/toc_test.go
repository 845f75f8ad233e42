package book_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/bratpeki/bookgen/book"
)

func TestTOC_Render(t *testing.T) {
	var buf bytes.Buffer
	b := book.New(&buf, docCfg(), nil)

	b.H(1, "One")
	b.H(2, "Two")
	b.Close()
	buf.Reset() // keep only the listing below

	if err := b.TOC(); err != nil {
		t.Fatalf("TOC() error = %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	want := `<div class="toc">
  <h1 id="2.">2. Table of Contents</h1>
  <ul>
    <li class="toc-L1"><a href="#1.">1. One</a></li>
    <li class="toc-L2"><a href="#1.1.">1.1. Two</a></li>
  </ul>
</div>
`
	if got := buf.String(); got != want {
		t.Errorf("rendered table of contents:\n%s\nwant:\n%s", got, want)
	}
}

func TestTOC_IncludeSelf(t *testing.T) {
	cfg := docCfg()
	cfg.TOC.IncludeSelf = true

	var buf bytes.Buffer
	b := book.New(&buf, cfg, nil)

	b.H(1, "One")
	if err := b.TOC(); err != nil {
		t.Fatalf("TOC() error = %v", err)
	}
	b.Close()

	want := `<li class="toc-L1"><a href="#2.">2. Table of Contents</a></li>`
	if !bytes.Contains(buf.Bytes(), []byte(want)) {
		t.Errorf("listing should include the table's own heading:\n%s", buf.String())
	}
}

func TestTOC_NoSelfHeading(t *testing.T) {
	cfg := docCfg()
	cfg.TOC.SelfHeading = false

	var buf bytes.Buffer
	b := book.New(&buf, cfg, nil)

	b.H(1, "One")
	b.Close()
	buf.Reset() // keep only the listing below

	if err := b.TOC(); err != nil {
		t.Fatalf("TOC() error = %v", err)
	}
	b.Close()

	want := `<div class="toc">
  <ul>
    <li class="toc-L1"><a href="#1.">1. One</a></li>
  </ul>
</div>
`
	if got := buf.String(); got != want {
		t.Errorf("rendered table of contents:\n%s\nwant:\n%s", got, want)
	}
	if n := len(b.Entries()); n != 1 {
		t.Errorf("store has %d entries, want 1", n)
	}
}

func TestTOC_DepthFilter(t *testing.T) {
	for _, tt := range []struct {
		name  string
		depth int
		want  int
	}{
		{"only top level", 1, 1},
		{"two levels", 2, 2},
		{"zero lists all", 0, 3},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfg := docCfg()
			cfg.TOC.Depth = tt.depth
			cfg.TOC.SelfHeading = false

			var buf bytes.Buffer
			b := book.New(&buf, cfg, nil)

			b.H(1, "One")
			b.H(2, "Two")
			b.H(3, "Three")
			b.Close()
			buf.Reset() // keep only the listing below

			if err := b.TOC(); err != nil {
				t.Fatalf("TOC() error = %v", err)
			}
			b.Close()

			if got := bytes.Count(buf.Bytes(), []byte("<li ")); got != tt.want {
				t.Errorf("listing has %d items, want %d:\n%s", got, tt.want, buf.String())
			}
		})
	}
}

func TestTOC_EntryCounts(t *testing.T) {
	var buf bytes.Buffer
	b := book.New(&buf, docCfg(), nil)

	const n = 5
	for range n {
		b.H(1, "chapter")
	}
	if got := len(b.Entries()); got != n {
		t.Fatalf("store has %d entries, want %d", got, n)
	}

	b.Close()
	buf.Reset() // keep only the listing below
	if err := b.TOC(); err != nil {
		t.Fatalf("TOC() error = %v", err)
	}
	b.Close()

	// the self heading brings the store to n+1 but its own entry is not listed
	if got := len(b.Entries()); got != n+1 {
		t.Errorf("store has %d entries after TOC, want %d", got, n+1)
	}
	if got := bytes.Count(buf.Bytes(), []byte("<li ")); got != n {
		t.Errorf("listing has %d items, want %d", got, n)
	}
}

func TestTOC_MaxEntries(t *testing.T) {
	cfg := docCfg()
	cfg.TOC.MaxEntries = 2

	b := book.New(&bytes.Buffer{}, cfg, nil)
	b.H(1, "One")
	b.H(1, "Two")
	if _, err := b.H(1, "Three"); !errors.Is(err, book.ErrTOCOverflow) {
		t.Errorf("H past the cap error = %v, want ErrTOCOverflow", err)
	}
	if got := len(b.Entries()); got != 2 {
		t.Errorf("store has %d entries, want 2", got)
	}
	if b.Err() == nil {
		t.Error("overflow should poison the session")
	}
}

func TestEntries_Snapshot(t *testing.T) {
	b := book.New(&bytes.Buffer{}, docCfg(), nil)
	b.H(1, "One")

	snap := b.Entries()
	snap[0].Title = "mutated"

	if got := b.Entries()[0].Title; got != "One" {
		t.Errorf("store entry changed through the snapshot: %q", got)
	}
}

func TestExportTOC(t *testing.T) {
	b := book.New(&bytes.Buffer{}, docCfg(), nil)
	b.H(1, "One")
	b.H(2, "Two")

	var out bytes.Buffer
	if err := b.ExportTOC(&out); err != nil {
		t.Fatalf("ExportTOC() error = %v", err)
	}

	var got struct {
		Identifier string          `json:"identifier"`
		Entries    []book.TOCEntry `json:"entries"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("export is not valid JSON: %v\n%s", err, out.String())
	}

	if got.Identifier != b.ID().String() {
		t.Errorf("identifier = %q, want %q", got.Identifier, b.ID())
	}
	want := []book.TOCEntry{
		{Title: "One", Level: 1, Label: "1."},
		{Title: "Two", Level: 2, Label: "1.1."},
	}
	if len(got.Entries) != len(want) {
		t.Fatalf("exported %d entries, want %d", len(got.Entries), len(want))
	}
	for i := range want {
		if got.Entries[i] != want[i] {
			t.Errorf("entry[%d] = %+v, want %+v", i, got.Entries[i], want[i])
		}
	}
}

func TestExportTOC_Empty(t *testing.T) {
	b := book.New(&bytes.Buffer{}, docCfg(), nil)

	var out bytes.Buffer
	if err := b.ExportTOC(&out); err != nil {
		t.Fatalf("ExportTOC() error = %v", err)
	}
	if bytes.Contains(out.Bytes(), []byte("null")) {
		t.Errorf("empty store should export an empty list, not null:\n%s", out.String())
	}
}
