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

func TestSanitizeHTML(t *testing.T) {
	t.Run("neutralizes script tags", func(t *testing.T) {
		out := SanitizeHTML(`<p>hello</p><script>alert(1)</script>`)
		assert.Contains(t, out, "<p>hello</p>")
		assert.NotContains(t, out, "<script>")
		assert.NotContains(t, out, "alert(1)")
	})

	t.Run("strips event handler attributes", func(t *testing.T) {
		out := SanitizeHTML(`<p onclick="alert(1)">hi</p>`)
		assert.Equal(t, "<p>hi</p>", out)
	})

	t.Run("keeps allow-listed formatting", func(t *testing.T) {
		in := "<h2>Impact</h2><ul><li><strong>high</strong></li></ul>"
		assert.Equal(t, in, SanitizeHTML(in))
	})

	t.Run("keeps images with http sources", func(t *testing.T) {
		out := SanitizeHTML(`<img src="https://example.com/proof.png" alt="proof">`)
		assert.Contains(t, out, `src="https://example.com/proof.png"`)
	})

	t.Run("drops javascript urls", func(t *testing.T) {
		out := SanitizeHTML(`<a href="javascript:alert(1)">x</a>`)
		assert.NotContains(t, out, "javascript:")
	})

	t.Run("is idempotent", func(t *testing.T) {
		inputs := []string{
			`<p>plain</p>`,
			`<p onclick="x()">a</p><script>b()</script>`,
			`<ul><li>one</li></ul><img src="https://example.com/a.png">`,
		}
		for _, in := range inputs {
			once := SanitizeHTML(in)
			assert.Equal(t, once, SanitizeHTML(once))
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Equal(t, "", SanitizeHTML(""))
	})
}

func TestEscapeJSONString(t *testing.T) {
	t.Run("escapes quotes backslashes and newlines", func(t *testing.T) {
		assert.Equal(t, `say \"hi\"`, EscapeJSONString(`say "hi"`))
		assert.Equal(t, `a\\b`, EscapeJSONString(`a\b`))
		assert.Equal(t, `line1\nline2`, EscapeJSONString("line1\nline2"))
		assert.Equal(t, `tab\there`, EscapeJSONString("tab\there"))
	})

	t.Run("leaves plain text alone", func(t *testing.T) {
		assert.Equal(t, "no special chars", EscapeJSONString("no special chars"))
	})
}
