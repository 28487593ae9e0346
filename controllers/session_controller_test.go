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
	"time"

	"github.com/l3montree-dev/pentestpro/middlewares"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestSessionControllerSignupValidation(t *testing.T) {
	controller := NewSessionController(nil, nil, middlewares.NewLoginRateLimiter())

	t.Run("rejects a malformed email", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPost,
			`{"name":"Jane","email":"not-an-email","password":"longenoughpassword"}`)

		err := controller.Signup(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPost,
			`{"name":"Jane","email":"jane@example.com","password":"short"}`)

		err := controller.Signup(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestSessionControllerLoginRateLimit(t *testing.T) {
	t.Run("throttles repeated attempts from the same address", func(t *testing.T) {
		limiter := middlewares.NewKeyedRateLimiter(rate.Every(time.Hour), 1)
		controller := NewSessionController(nil, nil, limiter)

		// first attempt passes the limiter and fails validation instead
		ctx, _ := newJSONContext(t, http.MethodPost, `{}`)
		err := controller.Login(ctx)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)

		// second attempt from the same address is throttled
		ctx, _ = newJSONContext(t, http.MethodPost, `{}`)
		err = controller.Login(ctx)
		httpErr, ok = err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
	})
}
