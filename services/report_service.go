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

package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/l3montree-dev/pentestpro/database/models"
	databasetypes "github.com/l3montree-dev/pentestpro/database/types"
	"github.com/l3montree-dev/pentestpro/dtos"
	"github.com/l3montree-dev/pentestpro/report"
	"github.com/l3montree-dev/pentestpro/shared"
	"github.com/labstack/echo/v4"
)

type ReportService struct {
	findingRepository  shared.FindingRepository
	templateRepository shared.ReportTemplateRepository
	exportRepository   shared.ReportExportRepository
	converter          shared.PDFConverter
	assembler          *report.Assembler
}

func NewReportService(
	findingRepository shared.FindingRepository,
	templateRepository shared.ReportTemplateRepository,
	exportRepository shared.ReportExportRepository,
	converter shared.PDFConverter,
) *ReportService {
	return &ReportService{
		findingRepository:  findingRepository,
		templateRepository: templateRepository,
		exportRepository:   exportRepository,
		converter:          converter,
		assembler:          report.NewAssembler(),
	}
}

// GenerateReport renders the project's reportable findings into a PDF and
// records an export row. The two steps are deliberately not transactional: a
// persisted export row without a delivered PDF is acceptable, a delivered PDF
// without a row is not.
func (s *ReportService) GenerateReport(ctx context.Context, project models.Project, req dtos.ReportRequest) ([]byte, models.ReportExport, error) {
	findings, err := s.findingRepository.ListReportable(project.ID)
	if err != nil {
		return nil, models.ReportExport{}, echo.NewHTTPError(500, "could not load findings").WithInternal(err)
	}

	templateSrc, templateID, err := s.resolveTemplate(project.OrganizationID, req.TemplateType)
	if err != nil {
		return nil, models.ReportExport{}, err
	}

	html, err := s.assembler.BuildHTML(templateSrc, findings, req)
	if err != nil {
		return nil, models.ReportExport{}, echo.NewHTTPError(500, "could not render report").WithInternal(err)
	}

	pdf, err := s.converter.Convert(ctx, html, report.DefaultPDFOptions())
	if err != nil {
		return nil, models.ReportExport{}, echo.NewHTTPError(500, "could not convert report to pdf").WithInternal(err)
	}

	checksum := sha256.Sum256(pdf)
	export := models.ReportExport{
		ProjectID:  project.ID,
		TemplateID: templateID,
		FileName:   slug.Make(req.ReportName) + ".pdf",
		Checksum:   hex.EncodeToString(checksum[:]),
		Size:       int64(len(pdf)),
		Parameters: databasetypes.JSONB{
			"reportName":   req.ReportName,
			"reportScope":  req.ReportScope,
			"templateType": req.TemplateType,
			"assetType":    req.AssetType,
			"testers":      len(req.Testers),
		},
	}
	if err := s.exportRepository.Create(nil, &export); err != nil {
		return nil, models.ReportExport{}, echo.NewHTTPError(500, "could not record report export").WithInternal(err)
	}

	slog.Info("report generated", "projectID", project.ID, "fileName", export.FileName, "findings", len(findings), "size", export.Size)
	return pdf, export, nil
}

// resolveTemplate picks the template source: an explicit template id, the
// organization default, or the embedded standard template. Only html
// templates are renderable.
func (s *ReportService) resolveTemplate(organizationID uuid.UUID, templateType string) (string, *uuid.UUID, error) {
	if templateType != "" && templateType != "default" {
		id, err := uuid.Parse(templateType)
		if err != nil {
			return "", nil, echo.NewHTTPError(400, "unknown template type").WithInternal(err)
		}
		tpl, err := s.templateRepository.Read(id)
		if err != nil || tpl.OrganizationID != organizationID {
			return "", nil, echo.NewHTTPError(404, "template not found").WithInternal(err)
		}
		if tpl.Format != dtos.TemplateFormatHTML {
			return "", nil, echo.NewHTTPError(400, "only html templates can be rendered to pdf")
		}
		return tpl.Content, &tpl.ID, nil
	}

	tpl, err := s.templateRepository.GetDefault(organizationID)
	if err == nil && tpl.Format == dtos.TemplateFormatHTML {
		return tpl.Content, &tpl.ID, nil
	}
	// no stored default, use the embedded one
	return "", nil, nil
}
