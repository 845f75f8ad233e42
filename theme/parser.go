package theme

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Declaration is a single property: value pair.
type Declaration struct {
	Property string
	Value    string
}

// Ruleset is a selector group with its declarations in source order.
type Ruleset struct {
	Selectors    []string
	Declarations []Declaration
}

// AtRule is a conditional block such as "@media print" with nested rulesets.
type AtRule struct {
	Prelude  string
	Rulesets []Ruleset
}

// Item preserves the source order of rulesets and at-rules.
type Item struct {
	Ruleset *Ruleset
	At      *AtRule
}

// Stylesheet is parsed CSS with enough structure to re-emit it line by line.
// Raw keeps the bytes as read so the sheet can also be written out verbatim.
type Stylesheet struct {
	Raw      []byte
	Items    []Item
	Warnings []string
}

// Parse reads CSS from r. Constructs the reader cannot represent never fail
// the parse, they are collected as warnings on the stylesheet.
func Parse(r io.Reader, log *zap.Logger) (*Stylesheet, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("css")

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read stylesheet: %w", err)
	}

	sheet := &Stylesheet{Raw: data}
	parser := css.NewParser(parse.NewInputBytes(data), false)

	// selector groups reported before the block that completes them
	var pending []string

	for {
		gt, _, tok := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				sheet.Warnings = append(sheet.Warnings, err.Error())
				log.Debug("Stylesheet parse stopped", zap.Error(err))
			}
			return sheet, nil

		case css.QualifiedRuleGrammar:
			pending = append(pending, selectors(tok, parser.Values())...)

		case css.BeginRulesetGrammar:
			rs := Ruleset{
				Selectors:    append(pending, selectors(tok, parser.Values())...),
				Declarations: declarations(parser),
			}
			pending = nil
			sheet.Items = append(sheet.Items, Item{Ruleset: &rs})

		case css.BeginAtRuleGrammar:
			at := AtRule{Prelude: prelude(tok, parser.Values())}
			parseAtRule(parser, &at, sheet, log)
			sheet.Items = append(sheet.Items, Item{At: &at})

		case css.AtRuleGrammar:
			// blockless rule (@import and friends) - nothing we can inline
			sheet.Warnings = append(sheet.Warnings, "ignoring at-rule: "+string(tok))
			log.Debug("Ignoring at-rule without a block", zap.String("rule", string(tok)))
		}
	}
}

// parseAtRule collects rulesets nested in an at-rule block.
func parseAtRule(parser *css.Parser, at *AtRule, sheet *Stylesheet, log *zap.Logger) {
	var pending []string
	for {
		gt, _, tok := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return

		case css.QualifiedRuleGrammar:
			pending = append(pending, selectors(tok, parser.Values())...)

		case css.BeginRulesetGrammar:
			rs := Ruleset{
				Selectors:    append(pending, selectors(tok, parser.Values())...),
				Declarations: declarations(parser),
			}
			pending = nil
			at.Rulesets = append(at.Rulesets, rs)

		case css.BeginAtRuleGrammar:
			// nested conditional blocks are beyond what themes need
			sheet.Warnings = append(sheet.Warnings, "ignoring nested at-rule: "+string(tok))
			log.Debug("Ignoring nested at-rule", zap.String("rule", string(tok)))
			skipBlock(parser)
		}
	}
}

// declarations consumes property declarations until the ruleset closes.
func declarations(parser *css.Parser) []Declaration {
	var decls []Declaration
	for {
		gt, _, tok := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return decls

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if values := parser.Values(); len(values) > 0 {
				decls = append(decls, Declaration{
					Property: string(tok),
					Value:    tokensString(values),
				})
			}
		}
	}
}

// skipBlock skips tokens until the matching end of a block.
func skipBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// selectors splits a rule prelude into trimmed selector strings.
func selectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var sels []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			sels = append(sels, s)
		}
	}
	return sels
}

// prelude joins an at-rule name with its whitespace-normalized parameters.
func prelude(data []byte, values []css.Token) string {
	name := string(data)
	if params := tokensString(values); params != "" {
		return name + " " + params
	}
	return name
}

// tokensString flattens value tokens into a string with single spaces where
// the source had whitespace.
func tokensString(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

// Render walks the stylesheet in source order emitting one line at a time.
// level is relative nesting: 0 for top-level selectors and at-rule braces,
// one more for declarations and rulesets inside at-rules.
func (s *Stylesheet) Render(emit func(level int, line string)) {
	for _, it := range s.Items {
		switch {
		case it.Ruleset != nil:
			renderRuleset(*it.Ruleset, 0, emit)
		case it.At != nil:
			emit(0, it.At.Prelude+" {")
			for _, rs := range it.At.Rulesets {
				renderRuleset(rs, 1, emit)
			}
			emit(0, "}")
		}
	}
}

func renderRuleset(rs Ruleset, level int, emit func(level int, line string)) {
	emit(level, strings.Join(rs.Selectors, ", ")+" {")
	for _, d := range rs.Declarations {
		emit(level+1, d.Property+": "+d.Value+";")
	}
	emit(level, "}")
}
