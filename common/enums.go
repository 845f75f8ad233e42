// Package common keeps enums shared between configuration and emission
// packages. Both config and markup/book/theme need them and neither should
// import the other, so the enums live separately.
package common

// Specification of output markup dialect. Only affects void elements: html
// emits "<br>", xhtml emits "<br/>" so the result parses as XML.
// ENUM(html, xhtml)
type Dialect int

// Specification of built-in stylesheet variant.
// ENUM(none, light, dark)
type Theme int

// Specification of TOC placement in generated documents.
// ENUM(none, before, after)
type TOCPlacement int

func (t Theme) FileName() string {
	switch t {
	case ThemeLight:
		return "default-light.css"
	case ThemeDark:
		return "default-dark.css"
	default:
		// this should never happen
		panic("no stylesheet for requested theme")
	}
}
