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
	"fmt"

	"github.com/l3montree-dev/pentestpro/database"
	"github.com/l3montree-dev/pentestpro/database/models"
	"github.com/l3montree-dev/pentestpro/shared"
	"github.com/labstack/echo/v4"
)

type OrgService struct {
	organizationRepository shared.OrganizationRepository
	rbacProvider           shared.RBACProvider
}

func NewOrgService(organizationRepository shared.OrganizationRepository, rbacProvider shared.RBACProvider) *OrgService {
	return &OrgService{
		organizationRepository: organizationRepository,
		rbacProvider:           rbacProvider,
	}
}

func (o *OrgService) CreateOrganization(ctx shared.Context, organization *models.Org) error {
	if organization.Name == "" || organization.Slug == "" {
		return echo.NewHTTPError(409, "organizations with an empty name or an empty slug are not allowed").WithInternal(fmt.Errorf("organizations with an empty name or an empty slug are not allowed"))
	}

	err := o.organizationRepository.Create(nil, organization)
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "organization with that name already exists").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create organization").WithInternal(err)
	}

	rbac := o.rbacProvider.GetDomainRBAC(organization.ID.String())
	userID := shared.GetSession(ctx).GetUserID()
	if err = shared.BootstrapOrg(rbac, userID, shared.RoleOwner); err != nil {
		return echo.NewHTTPError(500, "could not bootstrap organization roles").WithInternal(err)
	}
	shared.SetRBAC(ctx, rbac)

	return nil
}
