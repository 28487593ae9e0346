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
	"github.com/l3montree-dev/pentestpro/database/models"
	"github.com/l3montree-dev/pentestpro/dtos"
	"github.com/l3montree-dev/pentestpro/shared"
	"github.com/l3montree-dev/pentestpro/transformer"
	"github.com/l3montree-dev/pentestpro/utils"
	"github.com/labstack/echo/v4"
)

type ProjectController struct {
	projectRepository shared.ProjectRepository
	projectService    shared.ProjectService
}

func NewProjectController(repository shared.ProjectRepository, projectService shared.ProjectService) *ProjectController {
	return &ProjectController{
		projectRepository: repository,
		projectService:    projectService,
	}
}

func (controller *ProjectController) Create(ctx shared.Context) error {
	var req dtos.ProjectCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	org := shared.GetOrg(ctx)
	project := transformer.ProjectCreateRequestToModel(req, org.ID)

	if err := controller.projectService.CreateProject(ctx, &project); err != nil {
		return err
	}

	return ctx.JSON(200, transformer.ProjectToDTO(project))
}

func (controller *ProjectController) List(ctx shared.Context) error {
	paged, err := controller.projectService.ListAllowedProjectsPaged(ctx)
	if err != nil {
		return echo.NewHTTPError(500, "could not list projects").WithInternal(err)
	}

	return ctx.JSON(200, shared.NewPaged(paged.PageInfo, paged.Total,
		utils.Map(paged.Data, transformer.ProjectToDTO)))
}

func (controller *ProjectController) Read(ctx shared.Context) error {
	project := shared.GetProject(ctx)
	return ctx.JSON(200, transformer.ProjectToDTO(project))
}

func (controller *ProjectController) Update(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	var req dtos.ProjectUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	updated := transformer.ApplyProjectUpdateRequestToModel(req, &project)
	if updated {
		if err := controller.projectRepository.Save(nil, &project); err != nil {
			return echo.NewHTTPError(500, "could not update project").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.ProjectToDTO(project))
}

func (controller *ProjectController) Delete(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	if err := controller.projectRepository.Delete(nil, project.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete project").WithInternal(err)
	}

	return ctx.NoContent(204)
}

func (controller *ProjectController) Members(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	members, err := controller.projectRepository.GetMembers(project.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not get members of project").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(members, func(m models.ProjectMember) dtos.UserDTO {
		dto := transformer.UserToDTO(m.User)
		dto.ID = m.UserID.String()
		return dto
	}))
}

// UpsertMember adds a user to the project or toggles the edit flag. The edit
// flag maps onto the project admin role.
func (controller *ProjectController) UpsertMember(ctx shared.Context) error {
	project := shared.GetProject(ctx)
	rbac := shared.GetRBAC(ctx)

	var req dtos.ProjectMemberRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return echo.NewHTTPError(400, "invalid user id").WithInternal(err)
	}

	member := models.ProjectMember{
		ProjectID: project.ID,
		UserID:    userID,
		CanEdit:   req.CanEdit,
	}
	if err := controller.projectRepository.UpsertMember(nil, &member); err != nil {
		return echo.NewHTTPError(500, "could not add member").WithInternal(err)
	}

	role := shared.RoleMember
	if req.CanEdit {
		role = shared.RoleAdmin
	}
	if err := rbac.RevokeAllRolesInProjectForUser(req.UserID, project.ID.String()); err != nil {
		return echo.NewHTTPError(500, "could not update member roles").WithInternal(err)
	}
	if err := rbac.GrantRoleInProject(req.UserID, role, project.ID.String()); err != nil {
		return echo.NewHTTPError(500, "could not grant project role").WithInternal(err)
	}

	return ctx.JSON(200, member)
}

func (controller *ProjectController) RemoveMember(ctx shared.Context) error {
	project := shared.GetProject(ctx)
	rbac := shared.GetRBAC(ctx)

	userID, err := uuid.Parse(shared.GetParam(ctx, "userID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid user id").WithInternal(err)
	}

	if err := controller.projectRepository.RemoveMember(nil, project.ID, userID); err != nil {
		return echo.NewHTTPError(500, "could not remove member").WithInternal(err)
	}

	if err := rbac.RevokeAllRolesInProjectForUser(userID.String(), project.ID.String()); err != nil {
		return echo.NewHTTPError(500, "could not revoke project roles").WithInternal(err)
	}

	return ctx.NoContent(204)
}
