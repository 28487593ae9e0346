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
	"log/slog"

	"github.com/google/uuid"
	"github.com/l3montree-dev/pentestpro/database"
	"github.com/l3montree-dev/pentestpro/database/models"
	"github.com/l3montree-dev/pentestpro/shared"
	"github.com/l3montree-dev/pentestpro/utils"
	"github.com/labstack/echo/v4"
)

type ProjectService struct {
	projectRepository shared.ProjectRepository
}

func NewProjectService(projectRepository shared.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepository: projectRepository,
	}
}

func (s *ProjectService) CreateProject(ctx shared.Context, project *models.Project) error {
	if err := s.projectRepository.Create(nil, project); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "project with that name already exists").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create project").WithInternal(err)
	}

	rbac := shared.GetRBAC(ctx)
	if err := shared.BootstrapProject(rbac, project.ID.String()); err != nil {
		return echo.NewHTTPError(500, "could not bootstrap project roles").WithInternal(err)
	}

	// the creator manages the project regardless of the domain role
	userID := shared.GetSession(ctx).GetUserID()
	if err := rbac.GrantRoleInProject(userID, shared.RoleAdmin, project.ID.String()); err != nil {
		return echo.NewHTTPError(500, "could not grant project role").WithInternal(err)
	}

	slog.Info("project created", "projectSlug", project.Slug, "projectID", project.ID)
	return nil
}

// ListAllowedProjects returns every project of the organization the user may
// read: all of them for organization admins, otherwise only the projects with
// an explicit project role.
func (s *ProjectService) ListAllowedProjects(ctx shared.Context) ([]models.Project, error) {
	org := shared.GetOrg(ctx)
	rbac := shared.GetRBAC(ctx)
	userID := shared.GetSession(ctx).GetUserID()

	allowed, err := rbac.IsAllowed(userID, shared.ObjectProject, shared.ActionRead)
	if err != nil {
		return nil, err
	}
	if allowed {
		return s.projectRepository.ListByOrganization(org.ID)
	}

	projectIDs := utils.Filter(utils.Map(rbac.GetAllProjectsForUser(userID), func(id string) uuid.UUID {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return uuid.Nil
		}
		return parsed
	}), func(id uuid.UUID) bool {
		return id != uuid.Nil
	})

	projects, err := s.projectRepository.List(projectIDs)
	if err != nil {
		return nil, err
	}
	// a user might have project roles in other organizations
	return utils.Filter(projects, func(p models.Project) bool {
		return p.OrganizationID == org.ID
	}), nil
}

func (s *ProjectService) ListAllowedProjectsPaged(ctx shared.Context) (shared.Paged[models.Project], error) {
	org := shared.GetOrg(ctx)
	rbac := shared.GetRBAC(ctx)
	userID := shared.GetSession(ctx).GetUserID()
	pageInfo := shared.GetPageInfo(ctx)

	allowed, err := rbac.IsAllowed(userID, shared.ObjectProject, shared.ActionRead)
	if err != nil {
		return shared.Paged[models.Project]{}, err
	}
	if allowed {
		return s.projectRepository.ListPaged(org.ID, pageInfo)
	}

	projects, err := s.ListAllowedProjects(ctx)
	if err != nil {
		return shared.Paged[models.Project]{}, err
	}

	total := int64(len(projects))
	start := (pageInfo.Page - 1) * pageInfo.PageSize
	if start > len(projects) {
		start = len(projects)
	}
	end := start + pageInfo.PageSize
	if end > len(projects) {
		end = len(projects)
	}
	return shared.NewPaged(pageInfo, total, projects[start:end]), nil
}
