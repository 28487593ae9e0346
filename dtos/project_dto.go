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

package dtos

import "time"

type ProjectStatus string

const (
	ProjectStatusPlanned    ProjectStatus = "planned"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusComplete   ProjectStatus = "complete"
)

type ProjectCreateRequest struct {
	Name         string  `json:"name" validate:"required"`
	CustomerName string  `json:"customerName" validate:"required"`
	Scope        string  `json:"scope"`
	Methodology  string  `json:"methodology"`
	StartDate    *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

type ProjectUpdateRequest struct {
	Name         *string        `json:"name"`
	CustomerName *string        `json:"customerName"`
	Scope        *string        `json:"scope"`
	Methodology  *string        `json:"methodology"`
	Status       *ProjectStatus `json:"status" validate:"omitempty,oneof=planned in_progress complete"`
	StartDate    *string        `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string        `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

type ProjectMemberRequest struct {
	UserID  string `json:"userId" validate:"required,uuid"`
	CanEdit bool   `json:"canEdit"`
}

type ProjectDTO struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	CustomerName string        `json:"customerName"`
	Scope        string        `json:"scope"`
	Methodology  string        `json:"methodology"`
	Status       ProjectStatus `json:"status"`
	StartDate    *time.Time    `json:"startDate"`
	EndDate      *time.Time    `json:"endDate"`
	CreatedAt    time.Time     `json:"createdAt"`
}
