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

type CommentController struct {
	commentRepository shared.CommentRepository
	userRepository    shared.UserRepository
}

func NewCommentController(commentRepository shared.CommentRepository, userRepository shared.UserRepository) *CommentController {
	return &CommentController{
		commentRepository: commentRepository,
		userRepository:    userRepository,
	}
}

// commenterRole maps the platform role onto the two comment thread sides.
func commenterRole(role dtos.UserRole) dtos.CommenterRole {
	if role == dtos.UserRoleClient {
		return dtos.CommenterRoleClient
	}
	return dtos.CommenterRoleTester
}

func (controller *CommentController) Create(ctx shared.Context) error {
	finding := shared.GetFinding(ctx)

	var req dtos.CommentCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	authorID, err := uuid.Parse(shared.GetSession(ctx).GetUserID())
	if err != nil {
		return echo.NewHTTPError(401, "authentication required").WithInternal(err)
	}

	author, err := controller.userRepository.Read(authorID)
	if err != nil {
		return echo.NewHTTPError(500, "could not load author").WithInternal(err)
	}

	comment := transformer.CommentCreateRequestToModel(req, finding.ID, authorID, commenterRole(author.Role))
	if err := controller.commentRepository.Create(nil, &comment); err != nil {
		return echo.NewHTTPError(500, "could not create comment").WithInternal(err)
	}

	return ctx.JSON(200, transformer.CommentToDTO(comment))
}

// List returns the thread and marks the opposite side's comments as read.
func (controller *CommentController) List(ctx shared.Context) error {
	finding := shared.GetFinding(ctx)

	authorID, err := uuid.Parse(shared.GetSession(ctx).GetUserID())
	if err != nil {
		return echo.NewHTTPError(401, "authentication required").WithInternal(err)
	}

	reader, err := controller.userRepository.Read(authorID)
	if err != nil {
		return echo.NewHTTPError(500, "could not load user").WithInternal(err)
	}

	if err := controller.commentRepository.MarkReadForCounterpart(nil, finding.ID, commenterRole(reader.Role)); err != nil {
		return echo.NewHTTPError(500, "could not mark comments as read").WithInternal(err)
	}

	comments, err := controller.commentRepository.ListByFinding(finding.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not load comments").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(comments, transformer.CommentToDTO))
}
