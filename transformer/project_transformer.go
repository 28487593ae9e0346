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

package transformer

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/l3montree-dev/pentestpro/database/models"
	"github.com/l3montree-dev/pentestpro/dtos"
	"gorm.io/datatypes"
)

func ProjectCreateRequestToModel(c dtos.ProjectCreateRequest, organizationID uuid.UUID) models.Project {
	return models.Project{
		Name:           c.Name,
		Slug:           slug.Make(c.Name),
		OrganizationID: organizationID,
		CustomerName:   c.CustomerName,
		Scope:          c.Scope,
		Methodology:    c.Methodology,
		Status:         dtos.ProjectStatusPlanned,
		StartDate:      parseDate(c.StartDate),
		EndDate:        parseDate(c.EndDate),
	}
}

func ApplyProjectUpdateRequestToModel(p dtos.ProjectUpdateRequest, project *models.Project) bool {
	updated := false

	if p.Name != nil {
		updated = true
		project.Name = *p.Name
		project.Slug = slug.Make(*p.Name)
	}
	if p.CustomerName != nil {
		updated = true
		project.CustomerName = *p.CustomerName
	}
	if p.Scope != nil {
		updated = true
		project.Scope = *p.Scope
	}
	if p.Methodology != nil {
		updated = true
		project.Methodology = *p.Methodology
	}
	if p.Status != nil {
		updated = true
		project.Status = *p.Status
	}
	if p.StartDate != nil {
		updated = true
		project.StartDate = parseDate(p.StartDate)
	}
	if p.EndDate != nil {
		updated = true
		project.EndDate = parseDate(p.EndDate)
	}

	return updated
}

func ProjectToDTO(project models.Project) dtos.ProjectDTO {
	return dtos.ProjectDTO{
		ID:           project.ID.String(),
		Name:         project.Name,
		Slug:         project.Slug,
		CustomerName: project.CustomerName,
		Scope:        project.Scope,
		Methodology:  project.Methodology,
		Status:       project.Status,
		StartDate:    dateToTime(project.StartDate),
		EndDate:      dateToTime(project.EndDate),
		CreatedAt:    project.CreatedAt,
	}
}

// parseDate converts a validated yyyy-mm-dd string. The format is checked by
// the dto validation, a failed parse here means a nil date.
func parseDate(s *string) *datatypes.Date {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	d := datatypes.Date(t)
	return &d
}

func dateToTime(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}
