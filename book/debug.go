package book

import (
	"fmt"
	"io"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"github.com/bratpeki/bookgen/utils/debug"
)

// DumpState writes a tree-shaped snapshot of the session for debug reports.
func (b *Book) DumpState(out io.Writer) error {
	tw := debug.NewTreeWriter()
	tw.Line(0, "document %s", b.id)
	tw.Line(1, "depth: %d", b.w.Depth())
	tw.Line(1, "counters: %v", b.counters)
	if b.err != nil {
		tw.Line(1, "error: %v", b.err)
	}

	tw.Line(1, "toc: %d entries", len(b.toc))
	for _, e := range b.toc {
		tw.TextBlock(2, fmt.Sprintf("%s L%d", e.Label, e.Level), e.Title)
	}

	if len(b.assets) > 0 {
		tw.Line(1, "assets: %d embedded", len(b.assets))
		paths := slices.Clone(b.assets)
		sort.Sort(natural.StringSlice(paths))
		for _, p := range paths {
			tw.Line(2, "%s", p)
		}
	}

	if _, err := io.WriteString(out, tw.String()); err != nil {
		return fmt.Errorf("unable to write session dump: %w", err)
	}
	return nil
}
