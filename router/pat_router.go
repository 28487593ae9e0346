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
	"github.com/labstack/echo/v4"
)

type PatRouter struct {
	*echo.Group
}

func NewPatRouter(
	sessionGroup SessionRouter,
	sessionController *controllers.SessionController,
) PatRouter {
	/**
	Personal access token router
	This does not happen in an org or anything.
	We only need to make sure, that the user is logged in (sessionRouter)
	*/
	patRouter := sessionGroup.Group.Group("/pats", middlewares.NeededScope([]string{"manage"}))
	patRouter.GET("/", sessionController.ListPATs)
	patRouter.POST("/", sessionController.CreatePAT)
	patRouter.DELETE("/:patID/", sessionController.RevokePAT)

	return PatRouter{Group: patRouter}
}
