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

package shared

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/l3montree-dev/pentestpro/database/models"
	"gorm.io/gorm"
)

type AuthSession interface {
	GetUserID() string
	GetScopes() []string
}

func SetOrg(ctx Context, org models.Org) {
	ctx.Set("organization", org)
}

func GetOrg(ctx Context) models.Org {
	return ctx.Get("organization").(models.Org)
}

func HasOrganization(ctx Context) bool {
	_, ok := ctx.Get("organization").(models.Org)
	return ok
}

func SetProject(ctx Context, project models.Project) {
	ctx.Set("project", project)
}

func GetProject(ctx Context) models.Project {
	return ctx.Get("project").(models.Project)
}

func HasProject(ctx Context) bool {
	_, ok := ctx.Get("project").(models.Project)
	return ok
}

func SetFinding(ctx Context, finding models.Finding) {
	ctx.Set("finding", finding)
}

func GetFinding(ctx Context) models.Finding {
	return ctx.Get("finding").(models.Finding)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetRBAC(ctx Context, rbac AccessControl) {
	ctx.Set("rbac", rbac)
}

func GetRBAC(ctx Context) AccessControl {
	return ctx.Get("rbac").(AccessControl)
}

func SetIsPublicRequest(ctx Context) {
	ctx.Set("publicRequest", true)
}

func IsPublicRequest(ctx Context) bool {
	return ctx.Get("publicRequest") != nil
}

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		// check if the param is set in the context itself
		if s, ok := ctx.Get(param).(string); ok {
			return s
		}
	}
	return SanitizeParam(v)
}

func GetOrgSlug(ctx Context) (string, error) {
	slug := GetParam(ctx, "organizationSlug")
	if slug == "" {
		return "", fmt.Errorf("could not get organization slug")
	}
	return slug, nil
}

func GetProjectSlug(ctx Context) (string, error) {
	slug := GetParam(ctx, "projectSlug")
	if slug == "" {
		return "", fmt.Errorf("could not get project slug")
	}
	return slug, nil
}

func GetFindingID(ctx Context) (uuid.UUID, error) {
	id, err := uuid.Parse(GetParam(ctx, "findingID"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("could not parse finding id: %w", err)
	}
	return id, nil
}

type PageInfo struct {
	PageSize int `json:"pageSize"`
	Page     int `json:"page"`
}

func (p PageInfo) ApplyOnDB(db *gorm.DB) *gorm.DB {
	return db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

func GetPageInfo(ctx Context) PageInfo {
	page := 1
	pageSize := 25

	if _, err := fmt.Sscanf(ctx.QueryParam("page"), "%d", &page); err != nil || page < 1 {
		page = 1
	}
	if _, err := fmt.Sscanf(ctx.QueryParam("pageSize"), "%d", &pageSize); err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 25
	}

	return PageInfo{
		Page:     page,
		PageSize: pageSize,
	}
}
