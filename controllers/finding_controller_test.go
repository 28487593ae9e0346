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
	"net/http"
	"testing"

	"github.com/l3montree-dev/pentestpro/database/models"
	"github.com/l3montree-dev/pentestpro/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestFindingControllerCreateValidation(t *testing.T) {
	controller := NewFindingController(nil, nil, nil)

	t.Run("rejects a finding without title or description", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPost, `{"severity":"high","agreeToTerms":true}`)

		err := controller.Create(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("rejects an unknown severity label", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPost,
			`{"title":"x","description":"y","severity":"catastrophic","agreeToTerms":true}`)

		err := controller.Create(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("rejects a step with a bad type", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPost,
			`{"title":"x","description":"y","severity":"high","agreeToTerms":true,`+
				`"stepsToReproduce":[{"type":"video","data":"z"}]}`)

		err := controller.Create(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("rejects a submission without agreeing to the terms", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPost,
			`{"title":"x","description":"y","severity":"high"}`)

		err := controller.Create(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("rejects a screenshot that is not a url", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPost,
			`{"title":"x","description":"y","severity":"high","agreeToTerms":true,`+
				`"screenshots":["not a url"]}`)

		err := controller.Create(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestFindingControllerUpdateStatusValidation(t *testing.T) {
	controller := NewFindingController(nil, nil, nil)

	t.Run("rejects an unknown status", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPut, `{"status":"wontfix"}`)
		shared.SetFinding(ctx, models.Finding{})

		err := controller.UpdateStatus(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}
