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

package controllers

import (
	"fmt"

	"github.com/l3montree-dev/pentestpro/dtos"
	"github.com/l3montree-dev/pentestpro/services"
	"github.com/l3montree-dev/pentestpro/shared"
	"github.com/l3montree-dev/pentestpro/transformer"
	"github.com/l3montree-dev/pentestpro/utils"
	"github.com/labstack/echo/v4"
)

type ReportController struct {
	reportService    *services.ReportService
	exportRepository shared.ReportExportRepository
}

func NewReportController(reportService *services.ReportService, exportRepository shared.ReportExportRepository) *ReportController {
	return &ReportController{
		reportService:    reportService,
		exportRepository: exportRepository,
	}
}

// Export generates the report PDF and streams it back. The export row is
// recorded before the stream starts; a failed conversion is a plain error
// response, never a truncated PDF.
func (controller *ReportController) Export(ctx shared.Context) error {
	var req dtos.ReportRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	project := shared.GetProject(ctx)

	pdf, export, err := controller.reportService.GenerateReport(ctx.Request().Context(), project, req)
	if err != nil {
		return err
	}

	ctx.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	// reports are downloaded straight from browser apps on other origins
	ctx.Response().Header().Set("Access-Control-Allow-Origin", "*")
	return ctx.Blob(200, "application/pdf", pdf)
}

func (controller *ReportController) ListExports(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	exports, err := controller.exportRepository.ListByProject(project.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list report exports").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(exports, transformer.ReportExportToDTO))
}
