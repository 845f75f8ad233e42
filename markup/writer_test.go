package markup

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/bratpeki/bookgen/common"
)

func TestWriter_NestedElements(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	w.Open("html")
	w.Open("body")
	w.Text("hello")
	w.End("body")
	w.End("html")

	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	want := "<html>\n" +
		"  <body>\n" +
		"    hello\n" +
		"  </body>\n" +
		"</html>\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriter_IndentUnit(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, WithIndent("\t"))

	w.Open("ul")
	w.Text("item")
	w.End("ul")

	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	want := "<ul>\n\titem\n</ul>\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWriter_OpenAttributes(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		attrs []string
		want  string
	}{
		{"no attributes", "div", nil, "<div>\n"},
		{"single attribute", "div", []string{`class="toc"`}, "<div class=\"toc\">\n"},
		{"empty attribute skipped", "ul", []string{""}, "<ul>\n"},
		{"mixed attributes", "a", []string{`href="#x"`, "", `id="y"`}, "<a href=\"#x\" id=\"y\">\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			w := NewWriter(buf)

			if err := w.Open(tt.tag, tt.attrs...); err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if err := w.Flush(); err != nil {
				t.Fatalf("Flush() error = %v", err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
			if w.Depth() != 1 {
				t.Errorf("Depth() = %d, want 1", w.Depth())
			}
		})
	}
}

func TestWriter_VoidDialects(t *testing.T) {
	t.Run("html", func(t *testing.T) {
		buf := &bytes.Buffer{}
		w := NewWriter(buf, WithDialect(common.DialectHtml))

		w.Void("br")
		w.Void("img", `src="pic.png"`)
		if err := w.Flush(); err != nil {
			t.Fatalf("Flush() error = %v", err)
		}

		want := "<br>\n<img src=\"pic.png\">\n"
		if got := buf.String(); got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})

	t.Run("xhtml", func(t *testing.T) {
		buf := &bytes.Buffer{}
		w := NewWriter(buf, WithDialect(common.DialectXhtml))

		w.Void("br")
		w.Void("img", `src="pic.png"`)
		if err := w.Flush(); err != nil {
			t.Fatalf("Flush() error = %v", err)
		}

		want := "<br/>\n<img src=\"pic.png\"/>\n"
		if got := buf.String(); got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})

	t.Run("void keeps depth", func(t *testing.T) {
		buf := &bytes.Buffer{}
		w := NewWriter(buf)

		w.Open("p")
		w.Void("br")
		if w.Depth() != 1 {
			t.Errorf("Depth() after Void = %d, want 1", w.Depth())
		}
	})
}

func TestWriter_BalancedDepth(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	tags := []string{"html", "body", "div", "ul", "li"}
	for i, tag := range tags {
		if w.Depth() != i {
			t.Errorf("Depth() before opening %s = %d, want %d", tag, w.Depth(), i)
		}
		w.Open(tag)
	}
	for i := len(tags) - 1; i >= 0; i-- {
		w.End(tags[i])
		if w.Depth() != i {
			t.Errorf("Depth() after closing %s = %d, want %d", tags[i], w.Depth(), i)
		}
	}

	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if w.Depth() != 0 {
		t.Errorf("Depth() after balanced sequence = %d, want 0", w.Depth())
	}
}

func TestWriter_EndUnderflow(t *testing.T) {
	t.Run("strict", func(t *testing.T) {
		buf := &bytes.Buffer{}
		w := NewWriter(buf, WithStrictNesting(true))

		err := w.End("div")
		if !errors.Is(err, ErrUnbalanced) {
			t.Fatalf("End() at depth 0 error = %v, want ErrUnbalanced", err)
		}

		// error is sticky
		if err := w.Open("p"); !errors.Is(err, ErrUnbalanced) {
			t.Errorf("Open() after failure = %v, want sticky ErrUnbalanced", err)
		}
		if !errors.Is(w.Err(), ErrUnbalanced) {
			t.Errorf("Err() = %v, want ErrUnbalanced", w.Err())
		}
	})

	t.Run("clamp", func(t *testing.T) {
		buf := &bytes.Buffer{}
		w := NewWriter(buf, WithStrictNesting(false), WithLogger(zaptest.NewLogger(t)))

		if err := w.End("div"); err != nil {
			t.Fatalf("End() under clamp error = %v", err)
		}
		if w.Depth() != 0 {
			t.Errorf("Depth() = %d, want 0", w.Depth())
		}

		// writer stays usable
		w.Open("p")
		w.End("p")
		if err := w.Flush(); err != nil {
			t.Fatalf("Flush() error = %v", err)
		}

		want := "</div>\n<p>\n</p>\n"
		if got := buf.String(); got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})
}

func TestWriter_TextVerbatim(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	w.Open("h1")
	w.Text("Links, <i>italicized text</i>")
	w.End("h1")
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if !strings.Contains(buf.String(), "<i>italicized text</i>") {
		t.Errorf("Text() should pass markup through verbatim, got %q", buf.String())
	}
}

func TestWriter_LineAndRaw(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	w.Open("div")
	w.Line("<code>%s</code>", "x = 1")
	w.Raw("raw")
	w.Raw(" bytes\n")
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	want := "<div>\n  <code>x = 1</code>\nraw bytes\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWriter_RawWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	w.Raw("<img src=\"")
	if _, err := w.RawWriter().Write([]byte("aGVsbG8=")); err != nil {
		t.Fatalf("RawWriter().Write() error = %v", err)
	}
	w.Raw("\">\n")
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	want := "<img src=\"aGVsbG8=\">\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestWriter_StickyError(t *testing.T) {
	w := NewWriter(failWriter{})

	w.Open("html")
	err := w.Flush()
	if err == nil {
		t.Fatal("Flush() into failing sink should error")
	}

	if got := w.Text("more"); !errors.Is(got, err) && got.Error() != err.Error() {
		t.Errorf("Text() after failure = %v, want the recorded %v", got, err)
	}
	if w.Err() == nil {
		t.Error("Err() should report the recorded failure")
	}
}

func TestWriter_StartLine(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.Open("p")
	w.StartLine()
	w.Raw(`<img src="x">`)
	w.Raw("\n")
	w.End("p")
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	want := "<p>\n  <img src=\"x\">\n</p>\n"
	if got := buf.String(); got != want {
		t.Errorf("composed line output:\n%q\nwant:\n%q", got, want)
	}
}

func TestAttr(t *testing.T) {
	tests := []struct {
		name  string
		attr  string
		value string
		want  string
	}{
		{"plain", "href", "ch1.html", `href="ch1.html"`},
		{"quotes escaped", "title", `say "hi"`, `title="say &#34;hi&#34;"`},
		{"ampersand escaped", "href", "a?x=1&y=2", `href="a?x=1&amp;y=2"`},
		{"angle brackets escaped", "alt", "<b>", `alt="&lt;b&gt;"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Attr(tt.attr, tt.value); got != tt.want {
				t.Errorf("Attr(%q, %q) = %q, want %q", tt.attr, tt.value, got, tt.want)
			}
		})
	}
}
