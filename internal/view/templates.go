package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/shopez/shopez/internal/shared"
	"github.com/shopez/shopez/web"
)

// PriceFormatter renders minor-unit prices.
type PriceFormatter interface {
	Format(minor int64) string
}

// Engine renders HTML templates.
type Engine struct {
	templates *template.Template
}

// TemplateData contains values shared across templates.
type TemplateData struct {
	Title       string
	CSRFToken   string
	Flash       *shared.FlashMessage
	CurrentPath string
	Data        any
}

// NewEngine parses the embedded templates. A nil prices formatter renders
// raw minor units.
func NewEngine(prices PriceFormatter) (*Engine, error) {
	funcMap := template.FuncMap{
		"price": func(minor int64) string {
			if prices == nil {
				return strconv.FormatInt(minor, 10)
			}
			return prices.Format(minor)
		},
	}
	tpl, err := template.New("root").Funcs(funcMap).ParseFS(web.Templates, "templates/layouts/*.html", "templates/partials/*.html", "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	return &Engine{templates: tpl}, nil
}

// Render executes a named template with TemplateData and writes it with
// status. Rendering is buffered so a template error never leaves a partial
// page behind.
func (e *Engine) Render(w http.ResponseWriter, status int, name string, data TemplateData) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
