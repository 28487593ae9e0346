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
	"log/slog"
	"strings"

	"github.com/l3montree-dev/pentestpro/accesscontrol"
	"github.com/l3montree-dev/pentestpro/shared"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func tokenFromRequest(ctx echo.Context) string {
	auth := ctx.Request().Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	// legacy clients send the token in its own header
	return ctx.Request().Header.Get("X-Api-Token")
}

// SessionMiddleware resolves the personal access token of a request into a
// session. Requests without a valid token continue with NoSession - the
// resource might be public.
func SessionMiddleware(patRepository shared.PersonalAccessTokenRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := tokenFromRequest(ctx)
			if token == "" {
				shared.SetSession(ctx, accesscontrol.NoSession)
				return next(ctx)
			}

			pat, err := patRepository.ReadByToken(token)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					return echo.NewHTTPError(401, "token provided but not found in database").WithInternal(err)
				}
				return echo.NewHTTPError(500, "unexpected error").WithInternal(err)
			}

			if err := patRepository.MarkAsLastUsedNow(pat.ID); err != nil {
				slog.Warn("could not update token usage timestamp", "err", err)
			}

			shared.SetSession(ctx, accesscontrol.NewSession(pat.GetUserID(), strings.Fields(pat.Scopes)))
			return next(ctx)
		}
	}
}

// SessionRequired rejects unauthenticated requests. Used on routes that can
// never be public.
func SessionRequired() shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			if shared.GetSession(ctx).GetUserID() == "" {
				return echo.NewHTTPError(401, "authentication required")
			}
			return next(ctx)
		}
	}
}
