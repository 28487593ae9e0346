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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/pentestpro/accesscontrol"
	"github.com/l3montree-dev/pentestpro/database/models"
	"github.com/l3montree-dev/pentestpro/mocks"
	"github.com/l3montree-dev/pentestpro/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestOrganizationAccessControlMiddleware(t *testing.T) {
	t.Run("allows access with correct organization permissions", func(t *testing.T) {
		ctx, rec := newTestContext(t)

		rbac := mocks.NewAccessControl(t)
		rbac.On("IsAllowed", "user-id", shared.ObjectOrganization, shared.ActionRead).Return(true, nil)

		shared.SetRBAC(ctx, rbac)
		shared.SetSession(ctx, accesscontrol.NewSession("user-id", []string{"manage"}))
		shared.SetOrg(ctx, models.Org{Model: models.Model{ID: uuid.New()}})

		middleware := OrganizationAccessControlMiddleware(shared.ObjectOrganization, shared.ActionRead)

		err := middleware(func(ctx echo.Context) error {
			return ctx.JSON(http.StatusOK, "success")
		})(ctx)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("denies access without organization permissions as not found", func(t *testing.T) {
		ctx, _ := newTestContext(t)

		rbac := mocks.NewAccessControl(t)
		rbac.On("IsAllowed", "user-id", shared.ObjectOrganization, shared.ActionUpdate).Return(false, nil)

		shared.SetRBAC(ctx, rbac)
		shared.SetSession(ctx, accesscontrol.NewSession("user-id", []string{"manage"}))
		shared.SetOrg(ctx, models.Org{Model: models.Model{ID: uuid.New()}})

		middleware := OrganizationAccessControlMiddleware(shared.ObjectOrganization, shared.ActionUpdate)

		err := middleware(func(ctx echo.Context) error {
			return ctx.JSON(http.StatusOK, "success")
		})(ctx)

		// unauthorized must be indistinguishable from nonexistent
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})

	t.Run("lets unauthorized reads through on public organizations", func(t *testing.T) {
		ctx, rec := newTestContext(t)

		rbac := mocks.NewAccessControl(t)
		rbac.On("IsAllowed", "user-id", shared.ObjectOrganization, shared.ActionRead).Return(false, nil)

		shared.SetRBAC(ctx, rbac)
		shared.SetSession(ctx, accesscontrol.NewSession("user-id", nil))
		shared.SetOrg(ctx, models.Org{Model: models.Model{ID: uuid.New()}, IsPublic: true})

		middleware := OrganizationAccessControlMiddleware(shared.ObjectOrganization, shared.ActionRead)

		err := middleware(func(ctx echo.Context) error {
			return ctx.JSON(http.StatusOK, "success")
		})(ctx)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, shared.IsPublicRequest(ctx))
	})
}

func TestProjectAccessControl(t *testing.T) {
	t.Run("denies access to the project as not found", func(t *testing.T) {
		ctx, _ := newTestContext(t)
		ctx.SetParamNames("projectSlug")
		ctx.SetParamValues("internal-pentest")

		projectID := uuid.New()
		project := models.Project{Model: models.Model{ID: projectID}, Slug: "internal-pentest"}

		rbac := mocks.NewAccessControl(t)
		rbac.On("IsAllowedInProject", projectID.String(), "user-id", shared.ObjectProject, shared.ActionRead).Return(false, nil)

		shared.SetRBAC(ctx, rbac)
		shared.SetSession(ctx, accesscontrol.NewSession("user-id", []string{"manage"}))
		ctx.Set("project", project)

		middleware := ProjectAccessControlFactory(nil)(shared.ObjectProject, shared.ActionRead)

		err := middleware(func(ctx echo.Context) error {
			return ctx.JSON(http.StatusOK, "success")
		})(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})

	t.Run("allows access and stores the project in the context", func(t *testing.T) {
		ctx, rec := newTestContext(t)
		ctx.SetParamNames("projectSlug")
		ctx.SetParamValues("internal-pentest")

		projectID := uuid.New()
		project := models.Project{Model: models.Model{ID: projectID}, Slug: "internal-pentest"}

		rbac := mocks.NewAccessControl(t)
		rbac.On("IsAllowedInProject", projectID.String(), "user-id", shared.ObjectProject, shared.ActionRead).Return(true, nil)

		shared.SetRBAC(ctx, rbac)
		shared.SetSession(ctx, accesscontrol.NewSession("user-id", []string{"manage"}))
		ctx.Set("project", project)

		middleware := ProjectAccessControlFactory(nil)(shared.ObjectProject, shared.ActionRead)

		err := middleware(func(ctx echo.Context) error {
			return ctx.JSON(http.StatusOK, "success")
		})(ctx)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, project.ID, shared.GetProject(ctx).ID)
	})

	t.Run("rejects a missing project slug", func(t *testing.T) {
		ctx, _ := newTestContext(t)

		shared.SetRBAC(ctx, mocks.NewAccessControl(t))
		shared.SetSession(ctx, accesscontrol.NewSession("user-id", nil))

		middleware := ProjectAccessControlFactory(nil)(shared.ObjectProject, shared.ActionRead)

		err := middleware(func(ctx echo.Context) error {
			return ctx.JSON(http.StatusOK, "success")
		})(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestFindingMiddleware(t *testing.T) {
	t.Run("rejects a malformed finding id", func(t *testing.T) {
		ctx, _ := newTestContext(t)
		ctx.SetParamNames("findingID")
		ctx.SetParamValues("not-a-uuid")

		shared.SetProject(ctx, models.Project{Model: models.Model{ID: uuid.New()}})

		middleware := FindingMiddleware(nil)

		err := middleware(func(ctx echo.Context) error {
			return ctx.JSON(http.StatusOK, "success")
		})(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestNeededScope(t *testing.T) {
	t.Run("rejects tokens without the required scope", func(t *testing.T) {
		ctx, _ := newTestContext(t)
		shared.SetSession(ctx, accesscontrol.NewSession("user-id", []string{"read"}))

		middleware := NeededScope([]string{"manage"})

		err := middleware(func(ctx echo.Context) error {
			return ctx.JSON(http.StatusOK, "success")
		})(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("accepts tokens carrying all required scopes", func(t *testing.T) {
		ctx, rec := newTestContext(t)
		shared.SetSession(ctx, accesscontrol.NewSession("user-id", []string{"read", "manage"}))

		middleware := NeededScope([]string{"manage"})

		err := middleware(func(ctx echo.Context) error {
			return ctx.JSON(http.StatusOK, "success")
		})(ctx)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
