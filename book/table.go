package book

func (b *Book) Table(attrs ...string) error {
	return b.Tag("table", attrs...)
}

func (b *Book) EndTable() error {
	return b.End("table")
}

func (b *Book) TableRow(attrs ...string) error {
	return b.Tag("tr", attrs...)
}

func (b *Book) EndTableRow() error {
	return b.End("tr")
}

// HeaderCell emits a th element. Attributes cover spans and scopes.
func (b *Book) HeaderCell(txt string, attrs ...string) error {
	return b.element("th", txt, attrs...)
}

// Cell emits a td element.
func (b *Book) Cell(txt string, attrs ...string) error {
	return b.element("td", txt, attrs...)
}

// Caption emits a table caption.
func (b *Book) Caption(txt string) error {
	return b.element("caption", txt)
}
