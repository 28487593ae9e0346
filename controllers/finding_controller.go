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

type FindingController struct {
	findingRepository shared.FindingRepository
	commentRepository shared.CommentRepository
	findingService    shared.FindingService
}

func NewFindingController(findingRepository shared.FindingRepository, commentRepository shared.CommentRepository, findingService shared.FindingService) *FindingController {
	return &FindingController{
		findingRepository: findingRepository,
		commentRepository: commentRepository,
		findingService:    findingService,
	}
}

func (controller *FindingController) Create(ctx shared.Context) error {
	var req dtos.FindingCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	project := shared.GetProject(ctx)

	var reporterID *uuid.UUID
	if userID := shared.GetSession(ctx).GetUserID(); userID != "" {
		if id, err := uuid.Parse(userID); err == nil {
			reporterID = &id
		}
	}

	finding := transformer.FindingCreateRequestToModel(req, project.ID, reporterID)

	if err := controller.findingService.CreateFinding(ctx, &finding); err != nil {
		return err
	}

	return ctx.JSON(200, transformer.FindingToDTO(finding))
}

func (controller *FindingController) List(ctx shared.Context) error {
	project := shared.GetProject(ctx)
	pageInfo := shared.GetPageInfo(ctx)

	paged, err := controller.findingRepository.ListByProjectPaged(project.ID, pageInfo)
	if err != nil {
		return echo.NewHTTPError(500, "could not list findings").WithInternal(err)
	}

	return ctx.JSON(200, shared.NewPaged(paged.PageInfo, paged.Total,
		utils.Map(paged.Data, transformer.FindingToDTO)))
}

func (controller *FindingController) Read(ctx shared.Context) error {
	finding := shared.GetFinding(ctx)

	comments, err := controller.commentRepository.ListByFinding(finding.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not load comments").WithInternal(err)
	}

	return ctx.JSON(200, dtos.NewDetailedFindingDTO(
		transformer.FindingToDTO(finding),
		utils.Map(comments, transformer.CommentToDTO),
	))
}

func (controller *FindingController) Update(ctx shared.Context) error {
	finding := shared.GetFinding(ctx)

	var req dtos.FindingUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updated := transformer.ApplyFindingUpdateRequestToModel(req, &finding)
	if updated {
		if err := controller.findingRepository.Save(nil, &finding); err != nil {
			return echo.NewHTTPError(500, "could not update finding").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.FindingToDTO(finding))
}

func (controller *FindingController) UpdateStatus(ctx shared.Context) error {
	finding := shared.GetFinding(ctx)

	var req dtos.FindingStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if err := controller.findingService.UpdateState(ctx, &finding, req.Status); err != nil {
		return err
	}

	return ctx.JSON(200, transformer.FindingToDTO(finding))
}

func (controller *FindingController) Delete(ctx shared.Context) error {
	finding := shared.GetFinding(ctx)

	if err := controller.findingRepository.Delete(nil, finding.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete finding").WithInternal(err)
	}

	return ctx.NoContent(204)
}
