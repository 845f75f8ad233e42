package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"github.com/bratpeki/bookgen/config"
)

// Values holds variables made available for template expansion.
type Values struct {
	Context    string
	Title      string
	Language   string
	Date       string
	Format     string
	SourceFile string
	DocumentID string
}

func expandTemplate(doc *document, id string, name config.TemplateFieldName, field string, cfg *config.DocumentConfig) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		Title:      doc.Title,
		Language:   cfg.Language,
		Date:       time.Now().Format("2006-01-02"),
		Format:     cfg.Dialect.String(),
		SourceFile: strings.TrimSuffix(filepath.Base(doc.SrcName), filepath.Ext(doc.SrcName)),
		DocumentID: id,
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
