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

package dtos

type Tester struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role"`
}

type ReportRequest struct {
	ReportName       string   `json:"reportName" validate:"required"`
	ReportScope      []string `json:"reportScope"`
	TemplateType     string   `json:"templateType"`
	ExecutiveSummary string   `json:"executiveSummary"`
	CompanyName      string   `json:"companyName"`
	CompanyLogo      string   `json:"companyLogo" validate:"omitempty,url"`
	AssetType        string   `json:"assetType"`
	TestTime         string   `json:"testTime"`
	Testers          []Tester `json:"testers" validate:"dive"`
	Assumptions      string   `json:"assumptions"`
}

type TemplateFormat string

const (
	TemplateFormatHTML     TemplateFormat = "html"
	TemplateFormatMarkdown TemplateFormat = "markdown"
	TemplateFormatDocx     TemplateFormat = "docx"
)

type ReportTemplateCreateRequest struct {
	Name      string         `json:"name" validate:"required"`
	Format    TemplateFormat `json:"format" validate:"required,oneof=html markdown docx"`
	Content   string         `json:"content" validate:"required"`
	Variables []string       `json:"variables"`
	IsDefault bool           `json:"isDefault"`
}

type ReportTemplateDTO struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Format    TemplateFormat `json:"format"`
	Variables []string       `json:"variables"`
	IsDefault bool           `json:"isDefault"`
}

type ReportExportDTO struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	FileName  string `json:"fileName"`
	Checksum  string `json:"checksum"`
	Size      int64  `json:"size"`
	CreatedAt string `json:"createdAt"`
}
