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
	"testing"

	"github.com/l3montree-dev/pentestpro/database/models"
	"github.com/l3montree-dev/pentestpro/dtos"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func scoreOf(v float64) *float64 {
	return &v
}

func TestBuildContext(t *testing.T) {
	assembler := NewAssembler()

	t.Run("sorts findings by severity and indexes them 1-based", func(t *testing.T) {
		findings := []models.Finding{
			{Title: "Verbose Banner", Severity: dtos.SeverityLow},
			{Title: "SQL Injection", Severity: dtos.SeverityCritical},
			{Title: "Weak TLS Config", Severity: dtos.SeverityMedium},
		}

		context := assembler.BuildContext(findings, dtos.ReportRequest{ReportName: "Q3 Pentest"})

		views := context["findings"].([]FindingView)
		assert.Len(t, views, 3)
		assert.Equal(t, "SQL Injection", views[0].Title)
		assert.Equal(t, 1, views[0].Index)
		assert.Equal(t, "Weak TLS Config", views[1].Title)
		assert.Equal(t, 2, views[1].Index)
		assert.Equal(t, "Verbose Banner", views[2].Title)
		assert.Equal(t, 3, views[2].Index)
	})

	t.Run("expands executive summary placeholders and sanitizes the result", func(t *testing.T) {
		context := assembler.BuildContext(nil, dtos.ReportRequest{
			ReportName:       "Q3 Pentest",
			CompanyName:      "ACME",
			AssetType:        "web",
			ExecutiveSummary: `<p>{{company_name}} engaged us to test their {{asset_type}} assets.</p><script>x()</script>`,
		})

		summary := context["executive_summary"].(string)
		assert.Contains(t, summary, "ACME engaged us to test their web assets.")
		assert.NotContains(t, summary, "<script>")
	})

	t.Run("selects coverage boilerplate by asset type", func(t *testing.T) {
		context := assembler.BuildContext(nil, dtos.ReportRequest{ReportName: "r", AssetType: "API"})
		coverage := context["coverage_asset_type"].(string)
		assert.Contains(t, coverage, "in-scope APIs")
	})

	t.Run("falls back to the raw asset type for unknown boilerplate", func(t *testing.T) {
		context := assembler.BuildContext(nil, dtos.ReportRequest{ReportName: "r", AssetType: "iot fleet"})
		assert.Equal(t, "iot fleet", context["coverage_asset_type"])
	})

	t.Run("prefers the persisted score over the vector", func(t *testing.T) {
		findings := []models.Finding{{
			Title:      "x",
			Severity:   dtos.SeverityHigh,
			CVSSScore:  scoreOf(7.5),
			CVSSVector: "AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
		}}

		context := assembler.BuildContext(findings, dtos.ReportRequest{ReportName: "r"})
		views := context["findings"].([]FindingView)
		assert.Equal(t, "7.5", views[0].CVSSScore)
	})

	t.Run("recomputes the score from the vector when none is persisted", func(t *testing.T) {
		findings := []models.Finding{{
			Title:      "x",
			Severity:   dtos.SeverityCritical,
			CVSSVector: "AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
		}}

		context := assembler.BuildContext(findings, dtos.ReportRequest{ReportName: "r"})
		views := context["findings"].([]FindingView)
		assert.Equal(t, "9.8", views[0].CVSSScore)
	})
}

func TestBuildHTML(t *testing.T) {
	assembler := NewAssembler()

	findings := []models.Finding{
		{
			Title:       "Open Redirect",
			Severity:    dtos.SeverityLow,
			Description: "<p>The login endpoint redirects to arbitrary hosts.</p>",
			State:       dtos.FindingStateOpen,
		},
		{
			Title:       "SQL Injection",
			Severity:    dtos.SeverityCritical,
			Description: "<p>The search parameter is concatenated into the query.</p>",
			CVSSScore:   scoreOf(9.8),
			CVSSVector:  "AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
			State:       dtos.FindingStateOpen,
			StepsToReproduce: datatypes.JSON([]byte(
				`[{"type":"text","data":"Submit a single quote in the search field"},` +
					`{"type":"image","data":"https://example.com/proof.png"}]`)),
		},
	}

	req := dtos.ReportRequest{
		ReportName:  "ACME Q3 Pentest",
		ReportScope: []string{"https://app.example.com"},
		Testers:     []dtos.Tester{{Name: "Jane Doe", Role: "Lead"}},
		AssetType:   "web",
	}

	html, err := assembler.BuildHTML("", findings, req)
	assert.NoError(t, err)

	t.Run("contains every finding title", func(t *testing.T) {
		assert.Contains(t, html, "SQL Injection")
		assert.Contains(t, html, "Open Redirect")
	})

	t.Run("renders the critical finding before the low one", func(t *testing.T) {
		assert.Less(t, strings.Index(html, "SQL Injection"), strings.Index(html, "Open Redirect"))
	})

	t.Run("carries the severity class markers", func(t *testing.T) {
		assert.Contains(t, html, "Critical")
		assert.Contains(t, html, "Low")
	})

	t.Run("renders text steps as paragraphs and image steps as images", func(t *testing.T) {
		assert.Contains(t, html, "Submit a single quote in the search field")
		assert.Contains(t, html, `<img`)
		assert.Contains(t, html, "https://example.com/proof.png")
	})

	t.Run("renders report metadata", func(t *testing.T) {
		assert.Contains(t, html, "ACME Q3 Pentest")
		assert.Contains(t, html, "Jane Doe")
		assert.Contains(t, html, "https://app.example.com")
	})
}
