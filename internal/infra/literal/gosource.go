package literal

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strconv"
	"text/template"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
)

const domainImport = "github.com/fleetingbytes/http-status-codes2/internal/domain"

// GoSourceOptions controls the generated registry file.
type GoSourceOptions struct {
	Package string
	Var     string
	Source  string // recorded in the header comment
}

var goSourceTmpl = template.Must(template.New("registry").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(`// Code generated by heman generate; DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}}
{{- end}}

package {{.Package}}

import "{{.Import}}"

var {{.Var}} = domain.Registry{
{{- range .Statuses}}
	{Code: {{.Code}}, Description: {{quote .Description}}, Reference: {{quote .Reference}}{{if .Link}}, Link: {{quote .Link}}{{end}}},
{{- end}}
}
`))

// WriteGoSource renders reg as a gofmt-ed Go file declaring a domain.Registry.
func WriteGoSource(w io.Writer, opts GoSourceOptions, reg domain.Registry) error {
	if !token.IsIdentifier(opts.Package) {
		return fmt.Errorf("package name %q: %w", opts.Package, domain.ErrInvalidInput)
	}
	if !token.IsIdentifier(opts.Var) {
		return fmt.Errorf("variable name %q: %w", opts.Var, domain.ErrInvalidInput)
	}

	var buf bytes.Buffer
	err := goSourceTmpl.Execute(&buf, struct {
		GoSourceOptions
		Import   string
		Statuses domain.Registry
	}{opts, domainImport, reg})
	if err != nil {
		return err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}
