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
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// htmlPolicy is the fixed allow-list for rich-text editor output: formatting,
// links, images and tables. No scripts, no styles, no inline event handlers.
// The policy is not user-configurable.
var htmlPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"p", "br", "hr", "div", "span",
		"b", "strong", "i", "em", "u", "s", "sub", "sup",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li",
		"blockquote", "pre", "code",
		"table", "thead", "tbody", "tr", "th", "td",
	)

	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireNoFollowOnLinks(true)

	p.AllowAttrs("src", "alt", "width", "height").OnElements("img")
	p.AllowElements("img")

	return p
}()

// SanitizeHTML strips every tag and attribute outside the fixed allow-list.
// It never errors; empty input yields an empty string, and sanitizing
// already-sanitized HTML is a no-op.
func SanitizeHTML(s string) string {
	if s == "" {
		return ""
	}
	return htmlPolicy.Sanitize(s)
}

var jsonStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// EscapeJSONString escapes user text for naive substitution into a
// JSON-shaped template fragment. The legacy ticket/report path builds its
// payloads by string substitution instead of a JSON serializer, so quotes,
// backslashes and newlines have to be neutralized up front.
func EscapeJSONString(s string) string {
	return jsonStringEscaper.Replace(s)
}
