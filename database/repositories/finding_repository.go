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

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/pentestpro/database/models"
	"github.com/l3montree-dev/pentestpro/dtos"
	"github.com/l3montree-dev/pentestpro/shared"
	"github.com/l3montree-dev/pentestpro/utils"
	"gorm.io/gorm"
)

type findingRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Finding]
}

func NewFindingRepository(db *gorm.DB) *findingRepository {
	return &findingRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Finding](db),
	}
}

func (g *findingRepository) ReadByProject(projectID uuid.UUID, id uuid.UUID) (models.Finding, error) {
	var t models.Finding
	err := g.db.Where("project_id = ? AND id = ?", projectID, id).First(&t).Error
	return t, err
}

func (g *findingRepository) ListByProject(projectID uuid.UUID) ([]models.Finding, error) {
	var findings []models.Finding
	err := g.db.Where("project_id = ?", projectID).Order("created_at ASC").Find(&findings).Error
	return findings, err
}

func (g *findingRepository) ListByProjectPaged(projectID uuid.UUID, pageInfo shared.PageInfo) (shared.Paged[models.Finding], error) {
	var count int64
	if err := g.db.Model(&models.Finding{}).Where("project_id = ?", projectID).Count(&count).Error; err != nil {
		return shared.Paged[models.Finding]{}, err
	}

	var findings []models.Finding
	err := pageInfo.ApplyOnDB(g.db.Where("project_id = ?", projectID).Order("created_at ASC")).Find(&findings).Error
	if err != nil {
		return shared.Paged[models.Finding]{}, err
	}
	return shared.NewPaged(pageInfo, count, findings), nil
}

// ListReportable returns the findings in a renderable state, creation order.
// Severity ordering happens during report assembly, not here.
func (g *findingRepository) ListReportable(projectID uuid.UUID) ([]models.Finding, error) {
	states := utils.Map(dtos.ReportableStates, func(s dtos.FindingState) string {
		return string(s)
	})

	var findings []models.Finding
	err := g.db.Where("project_id = ? AND state IN ?", projectID, states).Order("created_at ASC").Find(&findings).Error
	return findings, err
}
