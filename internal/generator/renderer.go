// Where: internal/generator/renderer.go
// What: Render the Swift entry-point source.
// Why: Keep the emitted program a pure function of module and type name.
package generator

import (
	"bytes"
	"embed"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru/swift-entry-gen/internal/meta"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// RenderEntryPoint renders the entry-point source for moduleName and
// entryTypeName. The output is deterministic: identical inputs always
// yield identical bytes. Both names are substituted untouched, so the
// caller must pass valid Swift identifiers for the output to compile.
func RenderEntryPoint(moduleName, entryTypeName string) (string, error) {
	data := entryTemplateData{
		ToolName:      meta.AppName,
		ModuleName:    moduleName,
		EntryTypeName: entryTypeName,
		ProxyInfix:    meta.ProxyInfix,
		HandlerEnvVar: meta.HandlerEnvVar,
	}
	return renderTemplate("entrypoint.swift.tmpl", data)
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}

type entryTemplateData struct {
	ToolName      string
	ModuleName    string
	EntryTypeName string
	ProxyInfix    string
	HandlerEnvVar string
}
