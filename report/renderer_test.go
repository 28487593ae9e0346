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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	renderer := NewRenderer()

	t.Run("renders simple placeholders", func(t *testing.T) {
		out, err := renderer.Render(`<h1>{{.title}}</h1>`, map[string]any{"title": "Pentest Report"})
		assert.NoError(t, err)
		assert.Equal(t, "<h1>Pentest Report</h1>", out)
	})

	t.Run("renders an empty list as zero iterations", func(t *testing.T) {
		out, err := renderer.Render(`{{range .items}}<li>{{.}}</li>{{end}}`, map[string]any{"items": []string{}})
		assert.NoError(t, err)
		assert.Equal(t, "", out)
	})

	t.Run("renders 1-based indices via inc", func(t *testing.T) {
		out, err := renderer.Render(
			`{{range $i, $e := .items}}{{inc $i}}:{{$e}};{{end}}`,
			map[string]any{"items": []string{"a", "b", "c"}},
		)
		assert.NoError(t, err)
		assert.Equal(t, "1:a;2:b;3:c;", out)
	})

	t.Run("renders missing keys as empty string", func(t *testing.T) {
		out, err := renderer.Render(`before{{.missing}}after`, map[string]any{})
		assert.NoError(t, err)
		assert.Equal(t, "beforeafter", out)
	})

	t.Run("escapes values by default", func(t *testing.T) {
		out, err := renderer.Render(`{{.title}}`, map[string]any{"title": `<script>alert(1)</script>`})
		assert.NoError(t, err)
		assert.NotContains(t, out, "<script>")
	})

	t.Run("embeds raw fragments without re-escaping", func(t *testing.T) {
		out, err := renderer.Render(`{{raw .summary}}`, map[string]any{"summary": "<p>summary</p>"})
		assert.NoError(t, err)
		assert.Equal(t, "<p>summary</p>", out)
	})

	t.Run("errors on malformed templates", func(t *testing.T) {
		_, err := renderer.Render(`{{range .items}}`, map[string]any{})
		assert.Error(t, err)
	})
}
