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

package middlewares

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/l3montree-dev/pentestpro/database/models"
	"github.com/l3montree-dev/pentestpro/shared"
	"github.com/l3montree-dev/pentestpro/utils"
	"github.com/labstack/echo/v4"
)

// OrganizationMiddleware resolves the organization slug, builds the domain
// scoped rbac and verifies membership. Unauthorized and nonexistent
// organizations are deliberately indistinguishable.
func OrganizationMiddleware(rbacProvider shared.RBACProvider, organizationRepository shared.OrganizationRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			orgSlug, err := shared.GetOrgSlug(ctx)
			if err != nil {
				return echo.NewHTTPError(400, "invalid organization slug")
			}

			org, err := organizationRepository.ReadBySlug(orgSlug)
			if err != nil {
				return echo.NewHTTPError(404, "could not find organization").WithInternal(err)
			}

			domainRBAC := rbacProvider.GetDomainRBAC(org.ID.String())

			session := shared.GetSession(ctx)
			allowed, err := domainRBAC.HasAccess(session.GetUserID())
			if err != nil {
				return echo.NewHTTPError(500, "could not determine if the user has access").WithInternal(err)
			}

			if !allowed {
				if org.IsPublic {
					shared.SetIsPublicRequest(ctx)
				} else {
					slog.Warn("access denied in organizationMiddleware", "user", session.GetUserID(), "organization", orgSlug)
					return echo.NewHTTPError(404, "could not find organization")
				}
			}

			shared.SetOrg(ctx, org)
			shared.SetRBAC(ctx, domainRBAC)
			return next(ctx)
		}
	}
}

func OrganizationAccessControlMiddleware(obj shared.Object, act shared.Action) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			rbac := shared.GetRBAC(ctx)
			org := shared.GetOrg(ctx)
			user := shared.GetSession(ctx).GetUserID()

			allowed, err := rbac.IsAllowed(user, obj, act)
			if err != nil {
				return echo.NewHTTPError(500, "could not determine if the user has access").WithInternal(err)
			}

			if !allowed {
				if org.IsPublic && act == shared.ActionRead {
					shared.SetIsPublicRequest(ctx)
				} else {
					slog.Warn("access denied in accessControlMiddleware", "user", user, "object", obj, "action", act)
					return echo.NewHTTPError(404, "could not find organization")
				}
			}

			return next(ctx)
		}
	}
}

// ProjectAccessControlFactory fetches the project by slug, checks the
// project scoped permission and stores the project in the context.
func ProjectAccessControlFactory(projectRepository shared.ProjectRepository) shared.RBACMiddleware {
	return func(obj shared.Object, act shared.Action) shared.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(ctx shared.Context) error {
				rbac := shared.GetRBAC(ctx)
				user := shared.GetSession(ctx).GetUserID()

				projectSlug, err := shared.GetProjectSlug(ctx)
				if err != nil {
					return echo.NewHTTPError(400, "invalid project slug")
				}

				var project models.Project
				if p, ok := ctx.Get("project").(models.Project); ok {
					project = p
				} else {
					project, err = projectRepository.ReadBySlug(shared.GetOrg(ctx).GetID(), projectSlug)
					if err != nil {
						return echo.NewHTTPError(404, "could not find project").WithInternal(err)
					}
				}

				allowed, err := rbac.IsAllowedInProject(project.ID.String(), user, obj, act)
				if err != nil {
					return echo.NewHTTPError(500, "could not determine if the user has access").WithInternal(err)
				}

				if !allowed {
					slog.Warn("access denied in projectAccessControl", "user", user, "object", obj, "action", act, "projectSlug", projectSlug)
					return echo.NewHTTPError(404, "could not find project")
				}

				shared.SetProject(ctx, project)
				return next(ctx)
			}
		}
	}
}

// FindingMiddleware resolves the finding id below the current project. A
// finding of another project is a 404, not a 403.
func FindingMiddleware(findingRepository shared.FindingRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			project := shared.GetProject(ctx)

			findingID, err := shared.GetFindingID(ctx)
			if err != nil {
				return echo.NewHTTPError(400, "invalid finding id")
			}

			finding, err := findingRepository.ReadByProject(project.ID, findingID)
			if err != nil {
				return echo.NewHTTPError(404, "could not find finding").WithInternal(err)
			}

			shared.SetFinding(ctx, finding)
			return next(ctx)
		}
	}
}

func NeededScope(neededScopes []string) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c shared.Context) error {
			userScopes := shared.GetSession(c).GetScopes()

			ok := utils.ContainsAll(userScopes, neededScopes)
			if !ok {
				slog.Error("user does not have the required scopes", "neededScopes", neededScopes, "userScopes", userScopes)
				return echo.NewHTTPError(403, fmt.Sprintf("your personal access token does not have the required scope, needed scopes: %s", strings.Join(neededScopes, ", ")))
			}

			return next(c)
		}
	}
}
