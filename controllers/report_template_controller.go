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

	"github.com/google/uuid"
	"github.com/l3montree-dev/pentestpro/dtos"
	"github.com/l3montree-dev/pentestpro/shared"
	"github.com/l3montree-dev/pentestpro/transformer"
	"github.com/l3montree-dev/pentestpro/utils"
	"github.com/labstack/echo/v4"
)

type ReportTemplateController struct {
	templateRepository shared.ReportTemplateRepository
}

func NewReportTemplateController(templateRepository shared.ReportTemplateRepository) *ReportTemplateController {
	return &ReportTemplateController{
		templateRepository: templateRepository,
	}
}

func (controller *ReportTemplateController) Create(ctx shared.Context) error {
	var req dtos.ReportTemplateCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	org := shared.GetOrg(ctx)
	template := transformer.ReportTemplateCreateRequestToModel(req, org.ID)

	if err := controller.templateRepository.Create(nil, &template); err != nil {
		return echo.NewHTTPError(500, "could not create template").WithInternal(err)
	}

	if req.IsDefault {
		if err := controller.templateRepository.SetDefault(nil, org.ID, template.ID); err != nil {
			return echo.NewHTTPError(500, "could not set default template").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.ReportTemplateToDTO(template))
}

func (controller *ReportTemplateController) List(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	templates, err := controller.templateRepository.ListByOrganization(org.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list templates").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(templates, transformer.ReportTemplateToDTO))
}

func (controller *ReportTemplateController) Read(ctx shared.Context) error {
	template, err := controller.readScoped(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(200, template)
}

func (controller *ReportTemplateController) SetDefault(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	template, err := controller.readScoped(ctx)
	if err != nil {
		return err
	}

	id, _ := uuid.Parse(template.ID)
	if err := controller.templateRepository.SetDefault(nil, org.ID, id); err != nil {
		return echo.NewHTTPError(500, "could not set default template").WithInternal(err)
	}

	template.IsDefault = true
	return ctx.JSON(200, template)
}

func (controller *ReportTemplateController) Delete(ctx shared.Context) error {
	template, err := controller.readScoped(ctx)
	if err != nil {
		return err
	}

	id, _ := uuid.Parse(template.ID)
	if err := controller.templateRepository.Delete(nil, id); err != nil {
		return echo.NewHTTPError(500, "could not delete template").WithInternal(err)
	}

	return ctx.NoContent(204)
}

// readScoped loads the template of the route parameter and enforces that it
// belongs to the current organization. Foreign templates surface as 404.
func (controller *ReportTemplateController) readScoped(ctx shared.Context) (dtos.ReportTemplateDTO, error) {
	org := shared.GetOrg(ctx)

	id, err := uuid.Parse(shared.GetParam(ctx, "templateID"))
	if err != nil {
		return dtos.ReportTemplateDTO{}, echo.NewHTTPError(400, "invalid template id").WithInternal(err)
	}

	template, err := controller.templateRepository.Read(id)
	if err != nil || template.OrganizationID != org.ID {
		return dtos.ReportTemplateDTO{}, echo.NewHTTPError(404, "could not find template")
	}

	return transformer.ReportTemplateToDTO(template), nil
}
