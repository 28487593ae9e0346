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
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/pentestpro/database"
	"github.com/l3montree-dev/pentestpro/database/models"
	"github.com/l3montree-dev/pentestpro/dtos"
	"github.com/l3montree-dev/pentestpro/shared"
	"github.com/l3montree-dev/pentestpro/transformer"
	"github.com/l3montree-dev/pentestpro/utils"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

type SessionController struct {
	userRepository shared.UserRepository
	patRepository  shared.PersonalAccessTokenRepository
	rateLimiter    shared.RateLimiter
}

func NewSessionController(userRepository shared.UserRepository, patRepository shared.PersonalAccessTokenRepository, rateLimiter shared.RateLimiter) *SessionController {
	return &SessionController{
		userRepository: userRepository,
		patRepository:  patRepository,
		rateLimiter:    rateLimiter,
	}
}

func generateToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

func (controller *SessionController) Signup(ctx shared.Context) error {
	var req dtos.SignupRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(500, "could not hash password").WithInternal(err)
	}

	user := models.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         dtos.UserRoleClient,
	}

	if err := controller.userRepository.Create(nil, &user); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "a user with that email already exists").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create user").WithInternal(err)
	}

	return ctx.JSON(200, transformer.UserToDTO(user))
}

// Login checks the credentials and mints a personal access token. Attempts
// are rate limited per remote address; a successful login resets the window.
func (controller *SessionController) Login(ctx shared.Context) error {
	if !controller.rateLimiter.Check(ctx.RealIP()) {
		return echo.NewHTTPError(429, "too many login attempts, slow down")
	}

	var req dtos.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	user, err := controller.userRepository.ReadByEmail(req.Email)
	if err != nil {
		// same response as a wrong password
		return echo.NewHTTPError(401, "invalid credentials").WithInternal(err)
	}

	if user.Suspended {
		return echo.NewHTTPError(401, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(401, "invalid credentials").WithInternal(err)
	}

	token, err := generateToken()
	if err != nil {
		return echo.NewHTTPError(500, "could not generate token").WithInternal(err)
	}

	pat := models.PAT{
		UserID:      user.ID,
		Description: "login session",
		Scopes:      "manage",
	}
	pat.Fingerprint = pat.HashToken(token)

	if err := controller.patRepository.Create(nil, &pat); err != nil {
		return echo.NewHTTPError(500, "could not create session token").WithInternal(err)
	}

	controller.rateLimiter.Reset(ctx.RealIP())

	return ctx.JSON(200, dtos.LoginResponse{
		Token:  token,
		UserID: user.ID.String(),
	})
}

func (controller *SessionController) CreatePAT(ctx shared.Context) error {
	var req dtos.PATCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	userID, err := uuid.Parse(shared.GetSession(ctx).GetUserID())
	if err != nil {
		return echo.NewHTTPError(401, "authentication required").WithInternal(err)
	}

	token, err := generateToken()
	if err != nil {
		return echo.NewHTTPError(500, "could not generate token").WithInternal(err)
	}

	pat := models.PAT{
		UserID:      userID,
		Description: req.Description,
		Scopes:      req.Scopes,
	}
	pat.Fingerprint = pat.HashToken(token)

	if err := controller.patRepository.Create(nil, &pat); err != nil {
		return echo.NewHTTPError(500, "could not create personal access token").WithInternal(err)
	}

	dto := transformer.PATToDTO(pat)
	dto.Token = token // shown exactly once
	return ctx.JSON(200, dto)
}

func (controller *SessionController) ListPATs(ctx shared.Context) error {
	userID, err := uuid.Parse(shared.GetSession(ctx).GetUserID())
	if err != nil {
		return echo.NewHTTPError(401, "authentication required").WithInternal(err)
	}

	pats, err := controller.patRepository.ListByUser(userID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list personal access tokens").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(pats, transformer.PATToDTO))
}

func (controller *SessionController) RevokePAT(ctx shared.Context) error {
	userID, err := uuid.Parse(shared.GetSession(ctx).GetUserID())
	if err != nil {
		return echo.NewHTTPError(401, "authentication required").WithInternal(err)
	}

	patID, err := uuid.Parse(shared.GetParam(ctx, "patID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid token id").WithInternal(err)
	}

	pats, err := controller.patRepository.ListByUser(userID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list personal access tokens").WithInternal(err)
	}
	if !utils.Any(pats, func(p models.PAT) bool { return p.ID == patID }) {
		return echo.NewHTTPError(404, "could not find token")
	}

	if err := controller.patRepository.Delete(nil, patID); err != nil {
		return echo.NewHTTPError(500, "could not revoke token").WithInternal(err)
	}

	return ctx.NoContent(204)
}
