// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package report

import (
	"bytes"
	"html/template"
	"strings"
	"sync"
)

// funcMap is available in every report template. "inc" turns the zero-based
// range index into the 1-based display index, "raw" embeds sanitized HTML
// fragments without re-escaping.
var funcMap = template.FuncMap{
	"inc": func(i int) int {
		return i + 1
	},
	"raw": func(s string) template.HTML {
		return template.HTML(s) // nolint:gosec // input is sanitized upstream
	},
}

// Renderer compiles report templates once per distinct template string and
// executes them per request against a fresh context.
type Renderer struct {
	mu    sync.Mutex
	cache map[string]*template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		cache: make(map[string]*template.Template),
	}
}

func (r *Renderer) compile(tmpl string) (*template.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if compiled, ok := r.cache[tmpl]; ok {
		return compiled, nil
	}

	compiled, err := template.New("report").
		Funcs(funcMap).
		Option("missingkey=zero").
		Parse(tmpl)
	if err != nil {
		return nil, err
	}

	r.cache[tmpl] = compiled
	return compiled, nil
}

// Render executes the template against the context. Missing context keys
// render as an empty string for simple placeholders and render nothing for
// absent list or conditional sections.
func (r *Renderer) Render(tmpl string, context map[string]any) (string, error) {
	compiled, err := r.compile(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := compiled.Execute(&buf, context); err != nil {
		return "", err
	}

	// text/template prints a sentinel for absent values; the report contract
	// wants an empty string. User content never hits this: it is escaped (or
	// sanitized) before it reaches the output.
	out := buf.String()
	out = strings.ReplaceAll(out, "<no value>", "")
	out = strings.ReplaceAll(out, "&lt;no value&gt;", "")
	return out, nil
}
