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
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/l3montree-dev/pentestpro/database/models"
	"github.com/l3montree-dev/pentestpro/dtos"
)

//go:embed report-templates/report.html
var DefaultTemplate string

// StepView is a single reproduction step prepared for rendering. Type is
// either "text" or "image"; the template discriminates with the eq builtin.
type StepView struct {
	Type string
	Data string
}

// FindingView is the per-finding render context. Rich-text fields are
// sanitized before they reach the template and are emitted through the raw
// helper, everything else goes through the default escaper.
type FindingView struct {
	Index          int
	Title          string
	Description    string
	Impact         string
	Recommendation string
	HTTPRequest    string
	FindingType    string
	Severity       string
	SeverityClass  string
	CVSSScore      string
	CVSSVector     string
	Status         string
	Steps          []StepView
	Screenshots    []string
	HasScreenshots bool
	SeverityFlags
}

var statusLabels = map[dtos.FindingState]string{
	dtos.FindingStateOpen:          "Open",
	dtos.FindingStateTriaged:       "Triaged",
	dtos.FindingStateFixed:         "Fixed",
	dtos.FindingStateAccepted:      "Risk Accepted",
	dtos.FindingStateFalsePositive: "False Positive",
	dtos.FindingStateClosed:        "Closed",
}

// assetTypeCoverage maps the requested asset type to the fixed coverage
// paragraph shown on the cover page.
var assetTypeCoverage = map[string]string{
	"web":     "This assessment covered the in-scope web applications, including authentication, session handling, access control and input validation.",
	"mobile":  "This assessment covered the in-scope mobile applications and their backend APIs, including local data storage, transport security and platform interaction.",
	"api":     "This assessment covered the in-scope APIs, including authentication, authorization, rate limiting and input validation.",
	"network": "This assessment covered the in-scope network ranges and hosts, including exposed services, patch levels and segmentation.",
}

// Assembler turns a project's reportable findings plus request metadata into
// a rendered report document.
type Assembler struct {
	renderer *Renderer
}

func NewAssembler() *Assembler {
	return &Assembler{renderer: NewRenderer()}
}

// BuildContext merges the decorated findings with the request metadata into a
// single template context. Keys follow the persisted template variable
// contract, so custom organization templates see the same names as the
// default one.
func (a *Assembler) BuildContext(findings []models.Finding, req dtos.ReportRequest) map[string]any {
	views := decorate(findings)

	testers := make([]dtos.Tester, 0, len(req.Testers))
	testers = append(testers, req.Testers...)

	return map[string]any{
		"report_title":        req.ReportName,
		"company_logo":        req.CompanyLogo,
		"test_scope":          req.ReportScope,
		"test_time":           req.TestTime,
		"testers":             testers,
		"executive_summary":   a.executiveSummary(req),
		"coverage_asset_type": coverageFor(req.AssetType),
		"assumptions":         req.Assumptions,
		"findings":            views,
	}
}

// BuildHTML renders the given template source against the assembled context.
// An empty source falls back to the embedded default report template.
func (a *Assembler) BuildHTML(templateSrc string, findings []models.Finding, req dtos.ReportRequest) (string, error) {
	if templateSrc == "" {
		templateSrc = DefaultTemplate
	}
	return a.renderer.Render(templateSrc, a.BuildContext(findings, req))
}

// executiveSummary expands the known placeholders inside the user-supplied
// summary and sanitizes the result. The summary is rich text from the editor,
// so it is emitted raw in the template.
func (a *Assembler) executiveSummary(req dtos.ReportRequest) string {
	summary := strings.NewReplacer(
		"{{company_name}}", req.CompanyName,
		"{{asset_type}}", req.AssetType,
	).Replace(req.ExecutiveSummary)
	return SanitizeHTML(summary)
}

func coverageFor(assetType string) string {
	if text, ok := assetTypeCoverage[strings.ToLower(strings.TrimSpace(assetType))]; ok {
		return text
	}
	return assetType
}

// decorate sorts the findings by severity rank (stable, so equal severities
// keep their original order) and builds the display views with a 1-based
// index assigned after sorting.
func decorate(findings []models.Finding) []FindingView {
	sorted := make([]models.Finding, len(findings))
	copy(sorted, findings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Rank(sorted[i].Severity) < Rank(sorted[j].Severity)
	})

	views := make([]FindingView, 0, len(sorted))
	for i, finding := range sorted {
		views = append(views, newFindingView(i+1, finding))
	}
	return views
}

func newFindingView(index int, finding models.Finding) FindingView {
	steps := make([]StepView, 0)
	for _, step := range finding.Steps() {
		data := step.Data
		if step.Type == dtos.StepTypeText {
			data = SanitizeHTML(data)
		}
		steps = append(steps, StepView{Type: string(step.Type), Data: data})
	}

	screenshots := finding.ScreenshotURLs()

	status, ok := statusLabels[finding.State]
	if !ok {
		status = string(finding.State)
	}

	return FindingView{
		Index:          index,
		Title:          finding.Title,
		Description:    SanitizeHTML(finding.Description),
		Impact:         SanitizeHTML(finding.Impact),
		Recommendation: SanitizeHTML(finding.SuggestedFix),
		HTTPRequest:    finding.HTTPRequest,
		FindingType:    finding.FindingType,
		Severity:       string(finding.Severity),
		SeverityClass:  CSSClass(finding.Severity),
		CVSSScore:      formatScore(finding),
		CVSSVector:     finding.CVSSVector,
		Status:         status,
		Steps:          steps,
		Screenshots:    screenshots,
		HasScreenshots: len(screenshots) > 0,
		SeverityFlags:  Flags(finding.Severity),
	}
}

// formatScore prefers the persisted score and falls back to recomputing it
// from the vector.
func formatScore(finding models.Finding) string {
	if finding.CVSSScore != nil {
		return fmt.Sprintf("%.1f", *finding.CVSSScore)
	}
	if finding.CVSSVector == "" {
		return ""
	}
	score, err := BaseScore(finding.CVSSVector)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%.1f", score)
}
