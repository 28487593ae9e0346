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

package router

import (
	"github.com/l3montree-dev/pentestpro/controllers"
	"github.com/l3montree-dev/pentestpro/middlewares"
	"github.com/l3montree-dev/pentestpro/shared"
	"github.com/labstack/echo/v4"
)

type ProjectRouter struct {
	*echo.Group
}

func NewProjectRouter(
	organizationGroup OrgRouter,
	projectController *controllers.ProjectController,
	findingController *controllers.FindingController,
	reportController *controllers.ReportController,
	projectRepository shared.ProjectRepository,
) ProjectRouter {
	/**
	Project scoped router
	All routes below this line are scoped to a specific project.
	*/
	projectScopedRBAC := middlewares.ProjectAccessControlFactory(projectRepository)

	projectRouter := organizationGroup.Group.Group("/projects/:projectSlug", projectScopedRBAC(shared.ObjectProject, shared.ActionRead))
	projectRouter.GET("/", projectController.Read)
	projectRouter.GET("/members/", projectController.Members)
	projectRouter.GET("/findings/", findingController.List)
	projectRouter.GET("/exports/", reportController.ListExports)

	projectRouter.POST("/findings/", findingController.Create, middlewares.NeededScope([]string{"manage"}), projectScopedRBAC(shared.ObjectFinding, shared.ActionCreate))

	projectUpdateAccessControlRequired := projectRouter.Group("", middlewares.NeededScope([]string{"manage"}), projectScopedRBAC(shared.ObjectProject, shared.ActionUpdate))

	projectUpdateAccessControlRequired.POST("/export/", reportController.Export)
	projectUpdateAccessControlRequired.PUT("/members/", projectController.UpsertMember)

	projectUpdateAccessControlRequired.PATCH("/", projectController.Update)

	projectUpdateAccessControlRequired.DELETE("/", projectController.Delete)
	projectUpdateAccessControlRequired.DELETE("/members/:userID/", projectController.RemoveMember)

	return ProjectRouter{Group: projectRouter}
}
