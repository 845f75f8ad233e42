package book

import (
	"fmt"
	"strings"

	"github.com/bratpeki/bookgen/config"
)

// H emits a numbered heading and records it in the table of contents store.
// The counter for the requested level is incremented and all deeper counters
// reset, then the dotted label is assembled from every counter down to the
// requested level ("1.", "1.2.", "1.2.3."). The label doubles as the heading
// anchor and is returned to the caller.
//
// Levels outside 1..6 are rejected. Under the strict heading policy a level
// whose parent counter is still zero is rejected as well; the loose policy
// numbers any level as requested. Both rejections poison the session.
func (b *Book) H(level int, title string) (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if level < 1 || level > 6 {
		return "", b.fail(fmt.Errorf("h%d: %w", level, ErrHeadingLevel))
	}
	if b.cfg.Headings.Policy == config.HeadingPolicyStrict && level > 1 && b.counters[level-2] == 0 {
		return "", b.fail(fmt.Errorf("h%d with no h%d before it: %w", level, level-1, ErrHeadingSkip))
	}
	if limit := b.cfg.TOC.MaxEntries; limit > 0 && len(b.toc) >= limit {
		return "", b.fail(fmt.Errorf("%d entries recorded: %w", len(b.toc), ErrTOCOverflow))
	}

	b.counters[level-1]++
	for i := level; i < len(b.counters); i++ {
		b.counters[i] = 0
	}

	var label strings.Builder
	for i := range level {
		fmt.Fprintf(&label, "%d.", b.counters[i])
	}

	if err := b.w.Line(`<h%d id="%s">%s %s</h%d>`, level, label.String(), label.String(), title, level); err != nil {
		return "", b.fail(err)
	}
	b.toc = append(b.toc, TOCEntry{Title: title, Level: level, Label: label.String()})
	return label.String(), nil
}
