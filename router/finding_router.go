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

type FindingRouter struct {
	*echo.Group
}

func NewFindingRouter(
	projectGroup ProjectRouter,
	findingController *controllers.FindingController,
	commentController *controllers.CommentController,
	findingRepository shared.FindingRepository,
	projectRepository shared.ProjectRepository,
) FindingRouter {
	/**
	Finding scoped router
	All routes below this line are scoped to a single finding of the project.
	*/
	projectScopedRBAC := middlewares.ProjectAccessControlFactory(projectRepository)

	findingRouter := projectGroup.Group.Group("/findings/:findingID", middlewares.FindingMiddleware(findingRepository))
	findingRouter.GET("/", findingController.Read)
	findingRouter.GET("/comments/", commentController.List)

	findingRouter.POST("/comments/", commentController.Create, middlewares.NeededScope([]string{"manage"}))

	findingUpdateAccessControlRequired := findingRouter.Group("", middlewares.NeededScope([]string{"manage"}), projectScopedRBAC(shared.ObjectFinding, shared.ActionUpdate))

	findingUpdateAccessControlRequired.PATCH("/", findingController.Update)
	findingUpdateAccessControlRequired.PUT("/status/", findingController.UpdateStatus)
	findingUpdateAccessControlRequired.DELETE("/", findingController.Delete, projectScopedRBAC(shared.ObjectFinding, shared.ActionDelete))

	return FindingRouter{Group: findingRouter}
}
