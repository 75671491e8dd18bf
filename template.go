package valfmt

import (
	"fmt"
	"io"
	"text/template"
)

// FuncMap exposes the registry, plus "flatten", to text/template. Convert
// it with html/template.FuncMap(r.FuncMap()) for HTML templates.
//
// Templates call formatters with the value first:
//
//	{{ floatformat .Total 3 }}
//	{{ .Tags | listrify }}
func (r *Registry) FuncMap() template.FuncMap {
	fm := make(template.FuncMap, len(r.funcs)+1)
	for name, fn := range r.funcs {
		fm[string(name)] = fn
	}
	fm["flatten"] = Flatten
	return fm
}

// Execute parses tmpl with the registry's functions and renders data to w.
func (r *Registry) Execute(w io.Writer, tmpl string, data any) error {
	t, err := template.New("").Funcs(r.FuncMap()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return t.Execute(w, data)
}
