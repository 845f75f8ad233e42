package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/bratpeki/bookgen/book"
	"github.com/bratpeki/bookgen/config"
	"github.com/bratpeki/bookgen/markup"
	"github.com/bratpeki/bookgen/state"
)

// sampleImage is the remote logo the showcase figure references.
const sampleImage = "https://raw.githubusercontent.com/bratpeki/bratpeki.github.io/refs/heads/main/img/xrtd.svg"

// RunSample implements the sample subcommand. It scripts the built-in
// showcase document over the whole emission surface and writes it to the
// destination file, or to stdout when none is given.
func RunSample(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("sample")

	out := io.Writer(os.Stdout)
	if dst := cmd.Args().Get(0); len(dst) != 0 {
		dst, err := filepath.Abs(dst)
		if err != nil {
			return err
		}
		if _, err := os.Stat(dst); err == nil && !cmd.Bool("overwrite") {
			return fmt.Errorf("output file already exists: %s", dst)
		}
		f, err := os.Create(dst)
		if err != nil {
			return fmt.Errorf("unable to create output file: %w", err)
		}
		defer f.Close()
		out = f
		log.Info("Writing sample document", zap.String("to", dst))
	}

	b := book.New(out, &env.Cfg.Document, log)
	writeSample(b, &env.Cfg.Document)
	if err := b.Close(); err != nil {
		return fmt.Errorf("unable to generate sample: %w", err)
	}
	return nil
}

// writeSample scripts the showcase. Intermediate errors are not checked one
// by one, the first failure poisons the session and Close reports it.
func writeSample(b *book.Book, cfg *config.DocumentConfig) {
	b.Root(markup.Attr("lang", "en"))

	b.Metadata()
	b.DocTitle("BookGen Example Document")
	stylesheet(b, cfg)
	b.EndMetadata()

	b.Body()

	b.H(1, "The first chapter header")
	b.H(2, "Author's Note")
	b.Text("This book was generated entirely by a short program talking to the session API.")

	b.H(1, "The second chapter header")
	b.H(2, "Why streaming?")
	b.Text("Honestly, simplicity!")
	b.LineBreaks(2)
	b.Text("Every element goes straight to the sink the moment it is emitted, " +
		"so even huge documents <i>never</i> pile up in memory.")

	b.H(2, "The indentation engine")
	b.H(3, "The <code>depth</code> counter")
	b.Text("By tracking ")
	b.CodeInline("depth")
	b.Text(" we ensure the HTML source is neatly indented.")

	b.H(3, "The heading logic")
	b.Text("Notice how the numbers below are generated automatically.")

	b.H(4, "Specific Case A")
	b.Text("Naturally, since text is emitted verbatim, <i><b>you can inject HTML</b></i>! " +
		"That means you can link stuff like <a href=\"https://www.google.com\">this</a>!")

	b.H(4, "Specific Case B")
	b.Text("Of course, though, there's a dedicated hyperlink element.")
	b.Hyperlink("https://www.google.com", "Here it is in action.")
	b.Quote("I am quoting myself.", "Peki")

	b.PageBreak()

	b.H(2, "Code blocks")
	b.Text("For longer examples there are code blocks. " +
		"Whitespace and newlines are preserved exactly as written.")
	b.CodeBlock("package main\n" +
		"\n" +
		"import \"fmt\"\n" +
		"\n" +
		"func main() {\n" +
		"\tfor i := 0; i &lt; 3; i++ {\n" +
		"\t\tfmt.Println(\"Hello from the sample!\")\n" +
		"\t}\n" +
		"}\n")

	b.H(2, "Working with lists")
	b.UnorderedList()
	b.ListItem("Item 1")
	b.ListItem("Item 2")
	b.ListItem("Item 3")
	b.OrderedList()
	b.ListItem("Subitem 1")
	b.ListItem("Subitem 2")
	b.ListItem("Subitem 3")
	b.EndOrderedList()
	b.ListItem("Item 4")
	b.EndUnorderedList()

	b.PageBreak()

	b.H(2, "Images!")
	b.Tag("figure")
	b.Image(sampleImage, `width="250px"`)
	b.FigureCaption("My music logo (read about my music <a href=\"https://bratpeki.github.io/markup/music.html\">here</a>)!")
	b.End("figure")

	b.H(2, "A simple table")
	b.Table()
	b.Caption("Supported Go toolchains")
	b.TableRow()
	b.HeaderCell("Toolchain")
	b.HeaderCell("Targets")
	b.HeaderCell("Notes")
	b.EndTableRow()
	b.TableRow()
	b.Cell("gc")
	b.Cell("all first-class ports")
	b.Cell("Most commonly used")
	b.EndTableRow()
	b.TableRow()
	b.Cell("gccgo")
	b.Cell("everything GCC knows")
	b.Cell("Lags a release or two behind")
	b.EndTableRow()
	b.TableRow()
	b.Cell("tinygo")
	b.Cell("microcontrollers, WASM")
	b.Cell("Subset of the standard library")
	b.EndTableRow()
	b.EndTable()

	b.PageBreak()

	b.TOC()

	b.EndBody()
	b.EndRoot()
}
