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

type OrgController struct {
	organizationRepository shared.OrganizationRepository
	orgService             shared.OrgService
	userRepository         shared.UserRepository
	rbacProvider           shared.RBACProvider
}

func NewOrganizationController(repository shared.OrganizationRepository, orgService shared.OrgService, userRepository shared.UserRepository, rbacProvider shared.RBACProvider) *OrgController {
	return &OrgController{
		organizationRepository: repository,
		orgService:             orgService,
		userRepository:         userRepository,
		rbacProvider:           rbacProvider,
	}
}

func (controller *OrgController) List(ctx shared.Context) error {
	// get all organizations the user has access to
	userID := shared.GetSession(ctx).GetUserID()

	domains, err := controller.rbacProvider.DomainsOfUser(userID)
	if err != nil {
		return echo.NewHTTPError(500, "could not get domains of user").WithInternal(err)
	}

	organizationIDs := make([]uuid.UUID, 0, len(domains))
	for _, domain := range domains {
		id, err := uuid.Parse(domain)
		if err != nil {
			continue
		}
		organizationIDs = append(organizationIDs, id)
	}

	organizations, err := controller.organizationRepository.List(organizationIDs)
	if err != nil {
		return echo.NewHTTPError(500, "could not read organizations").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(organizations, transformer.OrgToDTO))
}

func (controller *OrgController) Create(ctx shared.Context) error {
	var req dtos.OrgCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	organization := transformer.OrgCreateRequestToModel(req)
	if organization.Slug == "" {
		return echo.NewHTTPError(400, "slug is required")
	}

	if err := controller.orgService.CreateOrganization(ctx, &organization); err != nil {
		return err
	}

	return ctx.JSON(200, transformer.OrgToDTO(organization))
}

func (controller *OrgController) Read(ctx shared.Context) error {
	organization := shared.GetOrg(ctx)
	return ctx.JSON(200, transformer.OrgToDTO(organization))
}

func (controller *OrgController) Update(ctx shared.Context) error {
	organization := shared.GetOrg(ctx)

	var req dtos.OrgUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	updated := transformer.ApplyOrgUpdateRequestToModel(req, &organization)

	if organization.Name == "" || organization.Slug == "" {
		return echo.NewHTTPError(409, "organizations with an empty name or an empty slug are not allowed")
	}

	if updated {
		if err := controller.organizationRepository.Save(nil, &organization); err != nil {
			return echo.NewHTTPError(500, "could not update organization").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.OrgToDTO(organization))
}

func (controller *OrgController) Members(ctx shared.Context) error {
	rbac := shared.GetRBAC(ctx)

	memberIDs, err := rbac.GetAllMembersOfOrganization()
	if err != nil {
		return echo.NewHTTPError(500, "could not get members of organization").WithInternal(err)
	}

	ids := utils.Filter(utils.Map(memberIDs, func(id string) uuid.UUID {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return uuid.Nil
		}
		return parsed
	}), func(id uuid.UUID) bool {
		return id != uuid.Nil
	})

	users, err := controller.userRepository.List(ids)
	if err != nil {
		return echo.NewHTTPError(500, "could not load members").WithInternal(err)
	}

	result := make([]dtos.UserDTO, 0, len(users))
	for _, user := range users {
		dto := transformer.UserToDTO(user)
		if role, err := rbac.GetDomainRole(user.ID.String()); err == nil {
			dto.Role = string(role)
		}
		result = append(result, dto)
	}

	return ctx.JSON(200, result)
}
